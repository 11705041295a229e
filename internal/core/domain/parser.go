package domain

import (
	"regexp"
	"strings"
)

var (
	prefixRegex  = regexp.MustCompile(`(?s)^!(\S+?)(?:\s+(.+))?$`)
	mentionRegex = regexp.MustCompile(`(?s)^<@!?(\d{18})>\s*(\S+?)(?:\s+(.+))?$`)
)

// ParseCommand extracts an Invocation from a message, or returns nil if the
// message is not addressed to the bot. Two forms are recognized: the `!`
// prefix for ordinary commands, and an explicit mention of the bot id,
// which is the only way to invoke the internal `$` commands.
func ParseCommand(selfID, content string) *Invocation {
	if m := prefixRegex.FindStringSubmatch(content); m != nil && !strings.HasPrefix(m[1], "$") {
		return &Invocation{
			Command:   m[1],
			Arguments: m[2],
		}
	}

	if m := mentionRegex.FindStringSubmatch(content); m != nil && m[1] == selfID {
		return &Invocation{
			Command:   m[2],
			Arguments: m[3],
			Internal:  strings.HasPrefix(m[2], "$"),
		}
	}

	return nil
}
