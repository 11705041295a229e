package domain

import (
	"fmt"
	"strings"
)

// UnknownCommandError reports an internal command with no registered handler.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown internal command '%s'", e.Command)
}

// FieldIssue describes one structural problem in a group manifest.
type FieldIssue struct {
	Field  string
	Reason string
}

func (i FieldIssue) String() string {
	return i.Field + " " + i.Reason
}

// SchemaError reports every field of a group manifest that failed
// validation.
type SchemaError struct {
	Issues []FieldIssue
}

func (e *SchemaError) Error() string {
	issues := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		issues[i] = issue.String()
	}

	return fmt.Sprintf("manifest failed validation: %s", strings.Join(issues, "; "))
}

// SyncError wraps any failure during a group synchronization run with the
// id of the affected group.
type SyncError struct {
	GroupID string
	Err     error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("syncing group %s: %v", e.GroupID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
