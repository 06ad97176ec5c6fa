package ports

import (
	"context"
)

// ReportCache memoizes rendered report strings per key with a fixed TTL.
// Expiry is lazy: expired entries are treated as misses on read and only
// removed by ClearExpired.
type ReportCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	ClearExpired(ctx context.Context) error
}
