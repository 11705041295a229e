package service

import (
	"context"
	"errors"
	"relaybot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	values map[string][]byte
	getErr error
	setErr error
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}

	value, ok := m.values[key]

	return value, ok, nil
}

func (m *mockStore) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}

	if m.values == nil {
		m.values = map[string][]byte{}
	}

	m.values[key] = value

	return nil
}

func TestRegistryCommandsEmptyStore(t *testing.T) {
	r := NewRegistry(&mockStore{})

	commands, err := r.Commands(context.Background())

	require.NoError(t, err)
	assert.Empty(t, commands)
}

func TestRegistryCommandsRoundTrip(t *testing.T) {
	r := NewRegistry(&mockStore{})

	err := r.SetCommands(context.Background(), map[string]string{"ping-url": "https://h/x"})
	require.NoError(t, err)

	commands, err := r.Commands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ping-url": "https://h/x"}, commands)
}

func TestRegistryGroupsRoundTrip(t *testing.T) {
	r := NewRegistry(&mockStore{})

	groups := map[string]domain.CommandGroup{
		"group-1": {URL: "https://manifests.example/one", Commands: []domain.GroupCommand{
			{Name: "weather", URL: "https://manifests.example/weather"},
		}},
	}

	err := r.SetGroups(context.Background(), groups)
	require.NoError(t, err)

	got, err := r.Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, groups, got)
}

func TestRegistryResolveDirectTakesPrecedence(t *testing.T) {
	r := NewRegistry(&mockStore{})
	ctx := context.Background()

	require.NoError(t, r.SetCommands(ctx, map[string]string{"weather": "https://direct.example/weather"}))
	require.NoError(t, r.SetGroups(ctx, map[string]domain.CommandGroup{
		"group-1": {URL: "https://manifests.example", Commands: []domain.GroupCommand{
			{Name: "weather", URL: "https://group.example/weather"},
		}},
	}))

	url, ok, err := r.Resolve(ctx, "weather")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://direct.example/weather", url)
}

func TestRegistryResolveFallsBackToGroups(t *testing.T) {
	r := NewRegistry(&mockStore{})
	ctx := context.Background()

	require.NoError(t, r.SetGroups(ctx, map[string]domain.CommandGroup{
		"b-group": {Commands: []domain.GroupCommand{{Name: "weather", URL: "https://b.example/weather"}}},
		"a-group": {Commands: []domain.GroupCommand{{Name: "weather", URL: "https://a.example/weather"}}},
	}))

	url, ok, err := r.Resolve(ctx, "weather")

	require.NoError(t, err)
	require.True(t, ok)
	// groups are scanned in sorted id order
	assert.Equal(t, "https://a.example/weather", url)
}

func TestRegistryResolveUnknownCommand(t *testing.T) {
	r := NewRegistry(&mockStore{})

	_, ok, err := r.Resolve(context.Background(), "nope")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistryStoreErrorPropagates(t *testing.T) {
	r := NewRegistry(&mockStore{getErr: errors.New("disk gone")})

	_, err := r.Commands(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading command registry")
}
