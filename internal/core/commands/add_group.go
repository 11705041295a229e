package commands

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// AddGroupHandler creates an empty command group for a manifest URL and
// starts its synchronization loop.
type AddGroupHandler struct {
	directory port.Directory
	scheduler port.Scheduler
	replier   port.Replier
	command   string
}

func NewAddGroupHandler(directory port.Directory, scheduler port.Scheduler, replier port.Replier,
	command string) *AddGroupHandler {
	return &AddGroupHandler{directory: directory, scheduler: scheduler, replier: replier, command: command}
}

func (h *AddGroupHandler) GetCommand() string {
	return h.command
}

func (h *AddGroupHandler) Respond(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error {
	args, err := splitArgs(invocation.Arguments, 1)
	if err != nil {
		return err
	}

	url := args[0]

	groups, err := h.directory.Groups(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("generating group id: %w", err)
	}

	groupID := id.String()
	groups[groupID] = domain.CommandGroup{URL: url, Commands: []domain.GroupCommand{}}

	if err := h.directory.SetGroups(ctx, groups); err != nil {
		return err
	}

	h.scheduler.Start(groupID)

	log.Info().Str("groupId", groupID).Str("url", url).Msg("added command group")

	return h.replier.Reply(ctx, message, fmt.Sprintf("Added group with ID `%s` and URL `%s`", groupID, url))
}
