package port

import (
	"context"
	"relaybot/internal/core/domain"
)

type Directory interface {
	// Commands returns the direct command registry, an empty map if none
	// has been stored yet.
	Commands(ctx context.Context) (map[string]string, error)
	// SetCommands replaces the direct command registry.
	SetCommands(ctx context.Context, commands map[string]string) error
	// Groups returns the command group registry keyed by group id.
	Groups(ctx context.Context) (map[string]domain.CommandGroup, error)
	// SetGroups replaces the command group registry.
	SetGroups(ctx context.Context, groups map[string]domain.CommandGroup) error
	// Resolve finds the target URL for a command name. Direct commands take
	// precedence over group-provided ones.
	Resolve(ctx context.Context, command string) (string, bool, error)
}
