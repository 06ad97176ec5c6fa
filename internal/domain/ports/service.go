package ports

import (
	"context"
)

// QuoteService renders the three human-readable USD/ARS reports.
type QuoteService interface {
	GetPrice(ctx context.Context, variant string) (string, error)
	GetHistory(ctx context.Context, variant string, days int) (string, error)
	GetTypes(ctx context.Context) (string, error)
}
