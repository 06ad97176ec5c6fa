package ports

import (
	"context"

	"dolarbot/internal/domain/model"
)

// QuoteProvider retrieves the current quote set for all known variants.
// Implementations must always return a usable set: upstream failures are
// substituted with static fallback data, never surfaced to the caller.
type QuoteProvider interface {
	FetchAll(ctx context.Context) model.QuoteSet
}
