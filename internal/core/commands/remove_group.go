package commands

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// RemoveGroupHandler cancels a group's synchronization loop and deletes
// the group. The cancellation happens before the registry write so no
// timer is left behind for a deleted group.
type RemoveGroupHandler struct {
	directory port.Directory
	scheduler port.Scheduler
	replier   port.Replier
	command   string
}

func NewRemoveGroupHandler(directory port.Directory, scheduler port.Scheduler, replier port.Replier,
	command string) *RemoveGroupHandler {
	return &RemoveGroupHandler{directory: directory, scheduler: scheduler, replier: replier, command: command}
}

func (h *RemoveGroupHandler) GetCommand() string {
	return h.command
}

func (h *RemoveGroupHandler) Respond(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error {
	args, err := splitArgs(invocation.Arguments, 1)
	if err != nil {
		return err
	}

	groupID := args[0]

	groups, err := h.directory.Groups(ctx)
	if err != nil {
		return err
	}

	group, ok := groups[groupID]
	if !ok {
		return h.replier.Reply(ctx, message, fmt.Sprintf("No such group with ID `%s`", groupID))
	}

	h.scheduler.Cancel(groupID)

	delete(groups, groupID)

	if err := h.directory.SetGroups(ctx, groups); err != nil {
		return err
	}

	log.Info().Str("groupId", groupID).Str("url", group.URL).Msg("removed command group")

	return h.replier.Reply(ctx, message, fmt.Sprintf("Removed group with ID `%s` and URL `%s`", groupID, group.URL))
}
