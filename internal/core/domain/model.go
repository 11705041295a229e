package domain

import "sort"

// Invocation is a command recognized in a chat message. Internal commands
// are the $-prefixed administrative ones handled locally, everything else
// is relayed to a registered handler URL.
type Invocation struct {
	Command   string
	Arguments string
	Internal  bool
}

// GroupCommand is a single command provided by a command group manifest.
type GroupCommand struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CommandGroup is a remotely sourced set of commands, keyed in the group
// registry by its id. Commands holds the result of the most recent
// successful fetch and is empty until the first one completes.
type CommandGroup struct {
	URL      string         `json:"url"`
	Commands []GroupCommand `json:"commands"`
}

// SortedGroupIDs returns the group ids in sorted order. The registry is a
// JSON object with no inherent ordering, so anything iterating groups uses
// this to keep first-match tie-breaks deterministic.
func SortedGroupIDs(groups map[string]CommandGroup) []string {
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

type Author struct {
	ID       string
	Username string
	Nickname string
}

type Channel struct {
	ID   string
	Name string
	Type string
}

type Guild struct {
	ID   string
	Name string
}

// Message carries the chat context of an inbound message. Guild is nil
// outside of guild channels.
type Message struct {
	ID        string
	ChannelID string
	Content   string
	Author    Author
	Channel   Channel
	Guild     *Guild
}
