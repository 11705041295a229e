package handler

import (
	"context"
	"fmt"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Message is the inbound boundary: it recognizes command invocations in
// chat messages and routes them to the internal command registry or the
// relay. Errors are reported back to the invoking message, never fatal.
type Message struct {
	registry port.CommandRegistry
	relay    port.Dispatcher
	replier  port.Replier
	timeout  time.Duration
}

func NewMessage(registry port.CommandRegistry, relay port.Dispatcher, replier port.Replier,
	timeout time.Duration) *Message {
	return &Message{registry: registry, relay: relay, replier: replier, timeout: timeout}
}

func (h *Message) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	invocation := domain.ParseCommand(s.State.User.ID, m.Content)
	if invocation == nil {
		return
	}

	l := log.With().
		Str("messageId", m.ID).
		Str("channelId", m.ChannelID).
		Str("command", invocation.Command).
		Logger()

	l.Debug().Bool("internal", invocation.Internal).Msg("received command")

	message := h.buildMessage(s, m)

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	var err error
	if invocation.Internal {
		var cmd port.Command
		cmd, err = h.registry.Get(invocation.Command)
		if err == nil {
			err = cmd.Respond(ctx, invocation, message)
		}
	} else {
		err = h.relay.Dispatch(ctx, invocation, message)
	}

	if err == nil {
		return
	}

	l.Error().Err(err).Msg("failed to respond to command")

	if rerr := h.replier.Reply(ctx, message, fmt.Sprintf("Oops, an error occurred! %s", err)); rerr != nil {
		l.Error().Err(rerr).Msg("failed to send error reply")
	}
}

func (h *Message) buildMessage(s *discordgo.Session, m *discordgo.MessageCreate) *domain.Message {
	message := &domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		Author: domain.Author{
			ID:       m.Author.ID,
			Username: m.Author.Username,
		},
		Channel: domain.Channel{ID: m.ChannelID},
	}

	if m.Member != nil {
		message.Author.Nickname = m.Member.Nick
	}

	if channel := lookupChannel(s, m.ChannelID); channel != nil {
		message.Channel.Name = channel.Name
		message.Channel.Type = channelTypeName(channel.Type)
	}

	if m.GuildID != "" {
		message.Guild = &domain.Guild{ID: m.GuildID}

		if guild := lookupGuild(s, m.GuildID); guild != nil {
			message.Guild.Name = guild.Name
		}
	}

	return message
}

func lookupChannel(s *discordgo.Session, channelID string) *discordgo.Channel {
	channel, err := s.State.Channel(channelID)
	if err == nil {
		return channel
	}

	channel, err = s.Channel(channelID)
	if err != nil {
		log.Warn().Err(err).Str("channelId", channelID).Msg("could not resolve channel")
		return nil
	}

	return channel
}

func lookupGuild(s *discordgo.Session, guildID string) *discordgo.Guild {
	guild, err := s.State.Guild(guildID)
	if err == nil {
		return guild
	}

	guild, err = s.Guild(guildID)
	if err != nil {
		log.Warn().Err(err).Str("guildId", guildID).Msg("could not resolve guild")
		return nil
	}

	return guild
}

func channelTypeName(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return "GUILD_TEXT"
	case discordgo.ChannelTypeDM:
		return "DM"
	case discordgo.ChannelTypeGuildVoice:
		return "GUILD_VOICE"
	case discordgo.ChannelTypeGroupDM:
		return "GROUP_DM"
	case discordgo.ChannelTypeGuildCategory:
		return "GUILD_CATEGORY"
	case discordgo.ChannelTypeGuildNews:
		return "GUILD_NEWS"
	case discordgo.ChannelTypeGuildStore:
		return "GUILD_STORE"
	case discordgo.ChannelTypeGuildNewsThread:
		return "GUILD_NEWS_THREAD"
	case discordgo.ChannelTypeGuildPublicThread:
		return "GUILD_PUBLIC_THREAD"
	case discordgo.ChannelTypeGuildPrivateThread:
		return "GUILD_PRIVATE_THREAD"
	case discordgo.ChannelTypeGuildStageVoice:
		return "GUILD_STAGE_VOICE"
	case discordgo.ChannelTypeGuildForum:
		return "GUILD_FORUM"
	default:
		return fmt.Sprintf("UNKNOWN_%d", t)
	}
}
