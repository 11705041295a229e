package commands

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"sort"
	"strings"
)

// ListHandler renders the direct command registry followed by every
// group's resolved commands, chunked into multiple replies where needed.
type ListHandler struct {
	directory port.Directory
	replier   port.Replier
	command   string
}

func NewListHandler(directory port.Directory, replier port.Replier, command string) *ListHandler {
	return &ListHandler{directory: directory, replier: replier, command: command}
}

func (h *ListHandler) GetCommand() string {
	return h.command
}

func (h *ListHandler) Respond(ctx context.Context, _ *domain.Invocation, message *domain.Message) error {
	cmds, err := h.directory.Commands(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("- `%s` pointed at %s", name, cmds[name])
	}

	if err := h.replyChunked(ctx, message, strings.Join(lines, "\n")); err != nil {
		return err
	}

	groups, err := h.directory.Groups(ctx)
	if err != nil {
		return err
	}

	for _, id := range domain.SortedGroupIDs(groups) {
		group := groups[id]

		groupLines := make([]string, 0, len(group.Commands)+1)
		groupLines = append(groupLines, fmt.Sprintf("From group `%s` at URL `%s`:", id, group.URL))

		for _, c := range group.Commands {
			groupLines = append(groupLines, fmt.Sprintf("- `%s` at `%s`", c.Name, c.URL))
		}

		if err := h.replyChunked(ctx, message, strings.Join(groupLines, "\n")); err != nil {
			return err
		}
	}

	return nil
}

func (h *ListHandler) replyChunked(ctx context.Context, message *domain.Message, text string) error {
	chunks, err := domain.SplitMessage(text, domain.SplitOptions{})
	if err != nil {
		return err
	}

	for _, chunk := range chunks {
		if err := h.replier.Reply(ctx, message, chunk); err != nil {
			return err
		}
	}

	return nil
}
