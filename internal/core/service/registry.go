package service

import (
	"context"
	"encoding/json"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
)

// Registry provides typed access to the two records the store holds: the
// direct command map and the command group map. Every mutation is a full
// read-modify-write of one record; the store gives no transactional
// guarantee, so concurrent writers are last-writer-wins.
type Registry struct {
	store port.Store
}

func NewRegistry(store port.Store) *Registry {
	return &Registry{store: store}
}

func (r *Registry) Commands(ctx context.Context) (map[string]string, error) {
	raw, ok, err := r.store.Get(ctx, domain.CommandsKey)
	if err != nil {
		return nil, fmt.Errorf("reading command registry: %w", err)
	}

	if !ok {
		return map[string]string{}, nil
	}

	var commands map[string]string
	if err := json.Unmarshal(raw, &commands); err != nil {
		return nil, fmt.Errorf("decoding command registry: %w", err)
	}

	return commands, nil
}

func (r *Registry) SetCommands(ctx context.Context, commands map[string]string) error {
	raw, err := json.Marshal(commands)
	if err != nil {
		return fmt.Errorf("encoding command registry: %w", err)
	}

	if err := r.store.Set(ctx, domain.CommandsKey, raw); err != nil {
		return fmt.Errorf("writing command registry: %w", err)
	}

	return nil
}

func (r *Registry) Groups(ctx context.Context) (map[string]domain.CommandGroup, error) {
	raw, ok, err := r.store.Get(ctx, domain.GroupsKey)
	if err != nil {
		return nil, fmt.Errorf("reading group registry: %w", err)
	}

	if !ok {
		return map[string]domain.CommandGroup{}, nil
	}

	var groups map[string]domain.CommandGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("decoding group registry: %w", err)
	}

	return groups, nil
}

func (r *Registry) SetGroups(ctx context.Context, groups map[string]domain.CommandGroup) error {
	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encoding group registry: %w", err)
	}

	if err := r.store.Set(ctx, domain.GroupsKey, raw); err != nil {
		return fmt.Errorf("writing group registry: %w", err)
	}

	return nil
}

// Resolve looks a command name up first in the direct registry, then in
// the groups' command lists. Groups are scanned in sorted id order so the
// tie-break between same-named commands is stable.
func (r *Registry) Resolve(ctx context.Context, command string) (string, bool, error) {
	commands, err := r.Commands(ctx)
	if err != nil {
		return "", false, err
	}

	if url, ok := commands[command]; ok {
		return url, true, nil
	}

	groups, err := r.Groups(ctx)
	if err != nil {
		return "", false, err
	}

	for _, id := range domain.SortedGroupIDs(groups) {
		for _, c := range groups[id].Commands {
			if c.Name == command {
				return c.URL, true, nil
			}
		}
	}

	return "", false, nil
}
