package port

import (
	"context"
	"relaybot/internal/core/domain"
)

type Replier interface {
	// Reply sends text as a reply to the given message, chunking it if it
	// exceeds the platform message length limit.
	Reply(ctx context.Context, message *domain.Message, text string) error
	// React attaches an emoji reaction to the given message.
	React(ctx context.Context, message *domain.Message, emoji string) error
}

type Sender interface {
	// Send posts a message to a channel, attaching any image URLs as
	// files.
	Send(ctx context.Context, channelID string, text string, imageURLs []string) error
}
