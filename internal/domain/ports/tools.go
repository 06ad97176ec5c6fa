package ports

import (
	"context"

	"dolarbot/internal/domain/model"
)

// ToolRegistry exposes the quote operations as named, schema-described
// tools and dispatches calls by name.
type ToolRegistry interface {
	Schemas() []model.ToolSchema
	Execute(ctx context.Context, name string, args map[string]any) (string, error)
}
