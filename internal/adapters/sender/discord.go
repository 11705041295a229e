package sender

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"relaybot/internal/adapters/file"
	"relaybot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DiscordSender sends replies, reactions and channel messages through a
// discordgo session. Outbound text is chunked to the platform message
// length limit before sending.
type DiscordSender struct {
	session   *discordgo.Session
	maxLength int
}

func NewDiscordSender(session *discordgo.Session, maxLength int) *DiscordSender {
	if maxLength <= 0 {
		maxLength = domain.DefaultMaxLength
	}

	return &DiscordSender{session: session, maxLength: maxLength}
}

func (s *DiscordSender) Reply(ctx context.Context, message *domain.Message, text string) error {
	chunks, err := domain.SplitMessage(text, domain.SplitOptions{MaxLength: s.maxLength})
	if err != nil {
		return err
	}

	ref := &discordgo.MessageReference{
		MessageID: message.ID,
		ChannelID: message.ChannelID,
	}

	for _, chunk := range chunks {
		_, err := s.session.ChannelMessageSendReply(message.ChannelID, chunk, ref, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to send reply: %w", err)
		}
	}

	return nil
}

func (s *DiscordSender) React(ctx context.Context, message *domain.Message, emoji string) error {
	err := s.session.MessageReactionAdd(message.ChannelID, message.ID, emoji, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}

	return nil
}

func (s *DiscordSender) Send(ctx context.Context, channelID string, text string, imageURLs []string) error {
	chunks, err := domain.SplitMessage(text, domain.SplitOptions{MaxLength: s.maxLength})
	if err != nil {
		return err
	}

	files, err := s.downloadFiles(ctx, imageURLs)
	if err != nil {
		return err
	}

	for i, chunk := range chunks {
		data := &discordgo.MessageSend{Content: chunk}

		// attachments go out with the first chunk
		if i == 0 {
			data.Files = files
		}

		if _, err := s.session.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}

	return nil
}

func (s *DiscordSender) downloadFiles(ctx context.Context, urls []string) ([]*discordgo.File, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	files := make([]*discordgo.File, 0, len(urls))

	for _, imageURL := range urls {
		buf, err := file.DownloadFile(ctx, imageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to download attachment: %w", err)
		}

		log.Debug().Str("url", imageURL).Int("bytes", len(buf)).Msg("downloaded attachment")

		files = append(files, &discordgo.File{
			Name:   attachmentName(imageURL),
			Reader: bytes.NewReader(buf),
		})
	}

	return files, nil
}

func attachmentName(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "attachment"
	}

	return path.Base(u.Path)
}
