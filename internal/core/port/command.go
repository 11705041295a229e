package port

import (
	"context"
	"relaybot/internal/core/domain"
)

type Command interface {
	// Respond executes an internal command invocation in the context of the
	// originating message.
	Respond(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error
	// GetCommand retrieves the command identifier associated with a specific command handler.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or fails with
	// domain.UnknownCommandError if no handler matches.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
}
