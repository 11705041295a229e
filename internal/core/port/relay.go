package port

import (
	"context"
	"relaybot/internal/core/domain"
)

type Dispatcher interface {
	// Dispatch resolves a non-internal invocation against the registries
	// and relays it to the matching handler URL. An unresolved command is
	// a silent no-op.
	Dispatch(ctx context.Context, invocation *domain.Invocation, message *domain.Message) error
}
