package commands

import (
	"context"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
)

const ackEmoji = "👌"

// PingHandler acknowledges a liveness probe with a reaction. It touches no
// registry state.
type PingHandler struct {
	replier port.Replier
	command string
}

func NewPingHandler(replier port.Replier, command string) *PingHandler {
	return &PingHandler{replier: replier, command: command}
}

func (h *PingHandler) GetCommand() string {
	return h.command
}

func (h *PingHandler) Respond(ctx context.Context, _ *domain.Invocation, message *domain.Message) error {
	return h.replier.React(ctx, message, ackEmoji)
}
