package domain

import (
	"bytes"
	"encoding/json"
)

// RelayRequest is the JSON body posted to a resolved command URL.
type RelayRequest struct {
	Author    RelayAuthor  `json:"author"`
	Channel   RelayChannel `json:"channel"`
	Guild     *RelayGuild  `json:"guild"`
	Command   string       `json:"command"`
	Arguments string       `json:"arguments"`
}

type RelayAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Name is the guild nickname when one is set, the username otherwise.
	Name string `json:"name"`
}

type RelayChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type RelayGuild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RelayMessage is one outbound chat message described by a handler
// response. ImageURL accepts both a single string and an array of strings
// on the wire.
type RelayMessage struct {
	Message  string    `json:"message"`
	ImageURL ImageURLs `json:"imageUrl"`
}

type ImageURLs []string

func (u *ImageURLs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*u = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*u = ImageURLs{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*u = ImageURLs(many)
		return nil
	}

	// anything else is ignored rather than rejected
	*u = nil

	return nil
}
