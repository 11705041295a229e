package commands

import (
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog/log"
)

// Registry holds the fixed set of internal command handlers and fails
// closed on anything it does not know.
type Registry struct {
	commands map[string]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Info().Str("handler", handler.GetCommand()).Msg("adding internal command handler to registry")
	r.commands[handler.GetCommand()] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching internal command handler from registry")

	handler, ok := r.commands[command]
	if !ok {
		return nil, &domain.UnknownCommandError{Command: command}
	}

	return handler, nil
}

func (r *Registry) ListCommands() []string {
	keys := make([]string, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}

// splitArgs tokenizes an argument string with shell quoting rules, so a
// quoted argument containing spaces stays a single token.
func splitArgs(arguments string, want int) ([]string, error) {
	tokens, err := shlex.Split(arguments)
	if err != nil {
		return nil, fmt.Errorf("tokenizing arguments: %w", err)
	}

	if len(tokens) < want {
		return nil, fmt.Errorf("expected %d argument(s), got %d", want, len(tokens))
	}

	return tokens, nil
}

func validateCommandName(name string) error {
	if strings.HasPrefix(name, "$") {
		return domain.ErrNamePrefixed
	}

	if strings.ContainsAny(name, " \t\n\r") {
		return domain.ErrNameWhitespace
	}

	return nil
}
