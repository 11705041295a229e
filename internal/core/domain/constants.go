package domain

import "errors"

var (
	ErrNamePrefixed   = errors.New("command names are not allowed to be prefixed with symbol `$`")
	ErrNameWhitespace = errors.New("command names are not allowed to contain whitespace")
	ErrUnknownGroup   = errors.New("no such group")
	ErrChunkTooLong   = errors.New("message contains a line exceeding the maximum chunk length")
)

const (
	CommandsKey = "commands"
	GroupsKey   = "command-groups"
)
