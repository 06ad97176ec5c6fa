package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dolarbot/internal/domain/model"
	"dolarbot/pkg/logger"
)

const (
	ToolGetPrice   = "get_dollar_price"
	ToolGetHistory = "get_dollar_history"
	ToolGetTypes   = "get_dollar_types"
)

var ErrUnknownTool = errors.New("unknown tool")

// Registry describes the quote service's operations as callable tool
// schemas and dispatches named calls to the HTTP facade over loopback.
type Registry struct {
	serverURL  string
	httpClient *http.Client
	log        *logger.Logger
}

func NewRegistry(serverURL string, timeout time.Duration, log *logger.Logger) *Registry {
	return &Registry{
		serverURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (r *Registry) Schemas() []model.ToolSchema {
	return []model.ToolSchema{
		{
			Name:        ToolGetPrice,
			Description: "Obtiene el precio actual del dólar según el tipo",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"dollar_type": map[string]any{
						"type":        "string",
						"description": "Tipo de dólar: blue, oficial, bolsa, liqui, turista",
						"default":     "blue",
					},
				},
				"required": []string{"dollar_type"},
			},
		},
		{
			Name:        ToolGetHistory,
			Description: "Obtiene el historial del dólar de los últimos días",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"dollar_type": map[string]any{
						"type":        "string",
						"description": "Tipo de dólar",
						"default":     "blue",
					},
					"days": map[string]any{
						"type":        "integer",
						"description": "Número de días",
						"default":     7,
					},
				},
				"required": []string{"dollar_type", "days"},
			},
		},
		{
			Name:        ToolGetTypes,
			Description: "Obtiene los tipos de dólar disponibles",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}

// Execute dispatches a named tool call to the quote facade and unwraps the
// result envelope.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	var endpoint string

	switch name {
	case ToolGetPrice:
		variant := stringArg(args, "dollar_type", model.DefaultVariant)
		endpoint = "/dollar/" + url.PathEscape(variant)
	case ToolGetHistory:
		variant := stringArg(args, "dollar_type", model.DefaultVariant)
		days := intArg(args, "days", 7)
		endpoint = fmt.Sprintf("/history/%s/%d", url.PathEscape(variant), days)
	case ToolGetTypes:
		endpoint = "/types"
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	return r.fetch(ctx, endpoint)
}

func (r *Registry) fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.serverURL+endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach quote server: %w", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Result string `json:"result"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if envelope.Error != "" {
			return "", fmt.Errorf("quote server returned status %d: %s", resp.StatusCode, envelope.Error)
		}
		return "", fmt.Errorf("quote server returned non-OK status: %d", resp.StatusCode)
	}

	return envelope.Result, nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intArg tolerates float64 because JSON-decoded numbers arrive that way.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}
