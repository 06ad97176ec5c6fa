package model

// ToolSchema describes one operation the chat agent can invoke to fetch
// facts before composing its answer. Parameters follows the JSON-schema
// object convention used by function-calling LLM APIs.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}
