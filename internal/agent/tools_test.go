package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dolarbot/pkg/logger"
)

func newTestRegistry(t *testing.T, handler http.HandlerFunc) *Registry {
	t.Helper()

	facade := httptest.NewServer(handler)
	t.Cleanup(facade.Close)

	return NewRegistry(facade.URL, 2*time.Second, logger.NewLogger("error"))
}

func TestRegistry_Schemas(t *testing.T) {

	registry := NewRegistry("http://localhost:8080", time.Second, logger.NewLogger("error"))

	schemas := registry.Schemas()
	require.Len(t, schemas, 3)

	names := make([]string, 0, len(schemas))
	for _, schema := range schemas {
		names = append(names, schema.Name)
		assert.NotEmpty(t, schema.Description)
		assert.Equal(t, "object", schema.Parameters["type"])
	}
	assert.ElementsMatch(t, []string{ToolGetPrice, ToolGetHistory, ToolGetTypes}, names)
}

func TestRegistry_Execute(t *testing.T) {

	testCases := []struct {
		name     string
		tool     string
		args     map[string]any
		wantPath string
	}{
		{
			name:     "Price with explicit variant",
			tool:     ToolGetPrice,
			args:     map[string]any{"dollar_type": "oficial"},
			wantPath: "/dollar/oficial",
		},
		{
			name:     "Price defaults to blue",
			tool:     ToolGetPrice,
			args:     nil,
			wantPath: "/dollar/blue",
		},
		{
			name:     "History with JSON-decoded float days",
			tool:     ToolGetHistory,
			args:     map[string]any{"dollar_type": "blue", "days": float64(30)},
			wantPath: "/history/blue/30",
		},
		{
			name:     "History defaults",
			tool:     ToolGetHistory,
			args:     map[string]any{},
			wantPath: "/history/blue/7",
		},
		{
			name:     "Types",
			tool:     ToolGetTypes,
			args:     nil,
			wantPath: "/types",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				json.NewEncoder(w).Encode(map[string]string{"result": "tool output"})
			})

			result, err := registry.Execute(context.Background(), tc.tool, tc.args)

			require.NoError(t, err)
			assert.Equal(t, "tool output", result)
			assert.Equal(t, tc.wantPath, gotPath)
		})
	}
}

func TestRegistry_Execute_UnknownTool(t *testing.T) {

	registry := NewRegistry("http://localhost:8080", time.Second, logger.NewLogger("error"))

	_, err := registry.Execute(context.Background(), "get_weather", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTool))
}

func TestRegistry_Execute_FacadeError(t *testing.T) {

	registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "days must be between 1 and 365"})
	})

	_, err := registry.Execute(context.Background(), ToolGetHistory, map[string]any{"days": 9999})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "days must be between 1 and 365")
}

func TestRegistry_Execute_FacadeUnreachable(t *testing.T) {

	facade := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	facade.Close()

	registry := NewRegistry(facade.URL, time.Second, logger.NewLogger("error"))

	_, err := registry.Execute(context.Background(), ToolGetTypes, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach quote server")
}
