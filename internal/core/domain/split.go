package domain

import "strings"

const DefaultMaxLength = 2000

type SplitOptions struct {
	MaxLength int
	Char      string
	Prepend   string
	Append    string
}

// SplitMessage breaks a long message into chunks no longer than MaxLength,
// splitting on Char (newline by default). A line that alone exceeds
// MaxLength cannot be chunked and fails with ErrChunkTooLong.
func SplitMessage(text string, opts SplitOptions) ([]string, error) {
	if opts.MaxLength == 0 {
		opts.MaxLength = DefaultMaxLength
	}

	if opts.Char == "" {
		opts.Char = "\n"
	}

	if len(text) <= opts.MaxLength {
		return []string{text}, nil
	}

	parts := strings.Split(text, opts.Char)
	for _, part := range parts {
		if len(part) > opts.MaxLength {
			return nil, ErrChunkTooLong
		}
	}

	var messages []string
	msg := ""

	for _, chunk := range parts {
		if msg != "" && len(msg+opts.Char+chunk+opts.Append) > opts.MaxLength {
			messages = append(messages, msg+opts.Append)
			msg = opts.Prepend
		}

		if msg != "" && msg != opts.Prepend {
			msg += opts.Char
		}

		msg += chunk
	}

	if msg != "" {
		messages = append(messages, msg)
	}

	return messages, nil
}
