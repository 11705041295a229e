package commands

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// AddHandler upserts a direct command into the registry.
type AddHandler struct {
	directory port.Directory
	replier   port.Replier
	command   string
}

func NewAddHandler(directory port.Directory, replier port.Replier, command string) *AddHandler {
	return &AddHandler{directory: directory, replier: replier, command: command}
}

func (h *AddHandler) GetCommand() string {
	return h.command
}

func (h *AddHandler) Respond(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error {
	args, err := splitArgs(invocation.Arguments, 2)
	if err != nil {
		return err
	}

	name, url := args[0], args[1]

	if err := validateCommandName(name); err != nil {
		return err
	}

	cmds, err := h.directory.Commands(ctx)
	if err != nil {
		return err
	}

	cmds[name] = url

	if err := h.directory.SetCommands(ctx, cmds); err != nil {
		return err
	}

	log.Info().Str("name", name).Str("url", url).Msg("added direct command")

	return h.replier.Reply(ctx, message, fmt.Sprintf("Added command `%s` pointing to URL %s", name, url))
}
