package commands

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

// RemoveHandler deletes a direct command. Removing an absent name is a
// no-op.
type RemoveHandler struct {
	directory port.Directory
	replier   port.Replier
	command   string
}

func NewRemoveHandler(directory port.Directory, replier port.Replier, command string) *RemoveHandler {
	return &RemoveHandler{directory: directory, replier: replier, command: command}
}

func (h *RemoveHandler) GetCommand() string {
	return h.command
}

func (h *RemoveHandler) Respond(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error {
	args, err := splitArgs(invocation.Arguments, 1)
	if err != nil {
		return err
	}

	name := args[0]

	if strings.HasPrefix(name, "$") {
		return domain.ErrNamePrefixed
	}

	cmds, err := h.directory.Commands(ctx)
	if err != nil {
		return err
	}

	delete(cmds, name)

	if err := h.directory.SetCommands(ctx, cmds); err != nil {
		return err
	}

	log.Info().Str("name", name).Msg("removed direct command")

	return h.replier.Reply(ctx, message, fmt.Sprintf("Removed command `%s`", name))
}
