package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Relay resolves user commands against the registries and forwards them to
// the registered handler URL, turning the response into chat messages.
type Relay struct {
	directory port.Directory
	poster    port.Poster
	sender    port.Sender
}

func NewRelay(directory port.Directory, poster port.Poster, sender port.Sender) *Relay {
	return &Relay{directory: directory, poster: poster, sender: sender}
}

func (r *Relay) Dispatch(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error {
	url, ok, err := r.directory.Resolve(ctx, invocation.Command)
	if err != nil {
		return fmt.Errorf("resolving command %q: %w", invocation.Command, err)
	}

	if !ok {
		// an unrecognized !word is ordinary chat, not an error
		log.Debug().Str("command", invocation.Command).Msg("command not registered, ignoring")
		return nil
	}

	log.Info().Str("url", url).Str("arguments", invocation.Arguments).Msg("POSTing resolved command")

	body, err := json.Marshal(buildRequest(invocation, message))
	if err != nil {
		return fmt.Errorf("encoding relay request: %w", err)
	}

	resBody, err := r.poster.Post(ctx, url, body)
	if err != nil {
		return fmt.Errorf("relaying command %q: %w", invocation.Command, err)
	}

	responses, err := decodeResponse(resBody)
	if err != nil {
		return fmt.Errorf("decoding response of command %q: %w", invocation.Command, err)
	}

	for _, res := range responses {
		if err := r.sender.Send(ctx, message.ChannelID, res.Message, res.ImageURL); err != nil {
			return fmt.Errorf("sending relayed message: %w", err)
		}
	}

	return nil
}

func buildRequest(invocation *domain.Invocation, message *domain.Message) *domain.RelayRequest {
	name := message.Author.Nickname
	if name == "" {
		name = message.Author.Username
	}

	req := &domain.RelayRequest{
		Author: domain.RelayAuthor{
			ID:       message.Author.ID,
			Username: message.Author.Username,
			Name:     name,
		},
		Channel: domain.RelayChannel{
			ID:   message.Channel.ID,
			Name: message.Channel.Name,
			Type: message.Channel.Type,
		},
		Command:   invocation.Command,
		Arguments: invocation.Arguments,
	}

	if message.Guild != nil {
		req.Guild = &domain.RelayGuild{
			ID:   message.Guild.ID,
			Name: message.Guild.Name,
		}
	}

	return req
}

// decodeResponse accepts either a single response object or an array of
// them, preserving array order.
func decodeResponse(body []byte) ([]domain.RelayMessage, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []domain.RelayMessage
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, err
		}

		return many, nil
	}

	var single domain.RelayMessage
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}

	return []domain.RelayMessage{single}, nil
}
