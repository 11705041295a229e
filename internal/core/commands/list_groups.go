package commands

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"strings"
)

// ListGroupsHandler renders the id and manifest URL of every registered
// group.
type ListGroupsHandler struct {
	directory port.Directory
	replier   port.Replier
	command   string
}

func NewListGroupsHandler(directory port.Directory, replier port.Replier, command string) *ListGroupsHandler {
	return &ListGroupsHandler{directory: directory, replier: replier, command: command}
}

func (h *ListGroupsHandler) GetCommand() string {
	return h.command
}

func (h *ListGroupsHandler) Respond(ctx context.Context, _ *domain.Invocation, message *domain.Message) error {
	groups, err := h.directory.Groups(ctx)
	if err != nil {
		return err
	}

	ids := domain.SortedGroupIDs(groups)

	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("* `%s` pointed at `%s`", id, groups[id].URL)
	}

	chunks, err := domain.SplitMessage(strings.Join(lines, "\n"), domain.SplitOptions{})
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
