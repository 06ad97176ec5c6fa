package agent

import (
	"context"
	"errors"
	"fmt"

	"dolarbot/internal/domain/ports"
	"dolarbot/pkg/logger"
)

var ErrLLMFailure = errors.New("LLM query failed")

// Orchestrator answers natural-language questions about the USD/ARS rate:
// it classifies the question, optionally gathers tool data from the quote
// facade, and forwards everything to the hosted model in one prompt.
type Orchestrator struct {
	model      ports.ChatModel
	tools      ports.ToolRegistry
	classifier Classifier
	log        *logger.Logger
}

func NewOrchestrator(model ports.ChatModel, tools ports.ToolRegistry, classifier Classifier, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		model:      model,
		tools:      tools,
		classifier: classifier,
		log:        log,
	}
}

func (o *Orchestrator) Answer(ctx context.Context, question string) (string, error) {
	intent := o.classifier.Classify(question)
	prompt := basePrompt(question)

	switch intent {
	case IntentHistory:
		o.log.Info("History intent detected, gathering tool data")
		history := o.callTool(ctx, ToolGetHistory, map[string]any{"dollar_type": "blue", "days": 7})

		prompt += "\n\nDATOS OBTENIDOS DEL HISTORIAL:\n" + history
		prompt += "\n\nProporciona una respuesta útil con esta información."

	case IntentPrice:
		o.log.Info("Price intent detected, gathering tool data")
		types := o.callTool(ctx, ToolGetTypes, nil)
		bluePrice := o.callTool(ctx, ToolGetPrice, map[string]any{"dollar_type": "blue"})

		prompt += "\n\nDATOS ACTUALES:\n" + types
		prompt += "\n\nEJEMPLO DÓLAR BLUE:\n" + bluePrice
		prompt += "\n\nProporciona una respuesta útil con esta información."

	default:
		o.log.Info("General question, querying model without tool data")
	}

	reply, err := o.model.Generate(ctx, prompt)
	if err != nil {
		o.log.Error("Model query failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrLLMFailure, err)
	}

	return reply, nil
}

// callTool never fails the query: dispatch errors degrade to an error
// string that is forwarded into the prompt as context.
func (o *Orchestrator) callTool(ctx context.Context, name string, args map[string]any) string {
	result, err := o.tools.Execute(ctx, name, args)
	if err != nil {
		o.log.Error("Tool execution failed", "tool", name, "error", err)
		return fmt.Sprintf("❌ Error ejecutando %s: %v", name, err)
	}
	return result
}

func basePrompt(question string) string {
	return fmt.Sprintf(`Sos un analista financiero especializado en el dólar estadounidense vs peso argentino.

Consulta del usuario: %s

INSTRUCCIONES:
- Responde ÚNICAMENTE en español
- Sé claro y conciso
- Explicá las diferencias entre los tipos de dólar cuando sea relevante
- Aclará que los datos históricos son simulados cuando los menciones`, question)
}
