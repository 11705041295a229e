package commands

import (
	"context"
	"relaybot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCommand(t *testing.T) {
	directory := &mockDirectory{commands: map[string]string{"ping-url": "https://h/x"}}
	replier := &mockReplier{}

	h := NewRemoveHandler(directory, replier, "$remove")

	err := h.Respond(context.Background(), invocation("$remove", "ping-url"), testMessage())

	require.NoError(t, err)
	assert.NotContains(t, directory.commands, "ping-url")
	require.Len(t, replier.replies, 1)
	assert.Equal(t, "Removed command `ping-url`", replier.replies[0])
}

func TestRemoveAbsentCommandIsNoOp(t *testing.T) {
	directory := &mockDirectory{commands: map[string]string{"other": "https://h/y"}}
	replier := &mockReplier{}

	h := NewRemoveHandler(directory, replier, "$remove")

	err := h.Respond(context.Background(), invocation("$remove", "ping-url"), testMessage())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"other": "https://h/y"}, directory.commands)
	assert.Len(t, replier.replies, 1)
}

func TestRemoveCommandRejectsDollarPrefix(t *testing.T) {
	directory := &mockDirectory{}

	h := NewRemoveHandler(directory, &mockReplier{}, "$remove")

	err := h.Respond(context.Background(), invocation("$remove", "$add"), testMessage())

	require.ErrorIs(t, err, domain.ErrNamePrefixed)
	assert.Zero(t, directory.setCmdCalls)
}
