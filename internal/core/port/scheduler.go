package port

import (
	"context"
	"time"
)

type Syncer interface {
	// Sync refreshes a group's commands from its manifest URL and returns
	// the instant the manifest wants to be fetched again.
	Sync(ctx context.Context, groupID string) (time.Time, error)
}

type Scheduler interface {
	// Start begins the periodic synchronization loop for a group,
	// replacing any loop already running for the same id.
	Start(groupID string)
	// Cancel stops the loop for a group. Canceling an unknown or already
	// canceled id is a no-op.
	Cancel(groupID string)
}
