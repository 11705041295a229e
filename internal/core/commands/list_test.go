package commands

import (
	"context"
	"relaybot/internal/core/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRendersCommandsAndGroups(t *testing.T) {
	directory := &mockDirectory{
		commands: map[string]string{
			"ping-url": "https://h/x",
			"weather":  "https://h/weather",
		},
		groups: map[string]domain.CommandGroup{
			"group-1": {URL: "https://manifests.example/m.json", Commands: []domain.GroupCommand{
				{Name: "deploy", URL: "https://manifests.example/deploy"},
			}},
		},
	}
	replier := &mockReplier{}

	h := NewListHandler(directory, replier, "$list")

	err := h.Respond(context.Background(), invocation("$list", ""), testMessage())

	require.NoError(t, err)
	require.Len(t, replier.replies, 2)

	assert.Equal(t, "- `ping-url` pointed at https://h/x\n- `weather` pointed at https://h/weather",
		replier.replies[0])
	assert.Equal(t, "From group `group-1` at URL `https://manifests.example/m.json`:\n"+
		"- `deploy` at `https://manifests.example/deploy`",
		replier.replies[1])
}

func TestListChunksLongOutput(t *testing.T) {
	commands := map[string]string{}
	for i := 0; i < 100; i++ {
		commands[strings.Repeat("x", 10)+string(rune('a'+i%26))+string(rune('a'+i/26))] = "https://h/" + strings.Repeat("y", 40)
	}

	directory := &mockDirectory{commands: commands}
	replier := &mockReplier{}

	h := NewListHandler(directory, replier, "$list")

	err := h.Respond(context.Background(), invocation("$list", ""), testMessage())

	require.NoError(t, err)
	assert.Greater(t, len(replier.replies), 1)

	for _, reply := range replier.replies {
		assert.LessOrEqual(t, len(reply), domain.DefaultMaxLength)
	}
}

func TestListEmptyRegistries(t *testing.T) {
	replier := &mockReplier{}

	h := NewListHandler(&mockDirectory{}, replier, "$list")

	err := h.Respond(context.Background(), invocation("$list", ""), testMessage())

	require.NoError(t, err)
	require.Len(t, replier.replies, 1)
	assert.Empty(t, replier.replies[0])
}
