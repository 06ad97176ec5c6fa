package ports

import (
	"context"
)

// ChatModel is a minimal abstraction over a hosted generative-text
// endpoint: one composed prompt in, one reply text out.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
