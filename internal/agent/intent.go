package agent

import "strings"

type Intent int

const (
	// IntentGeneral forwards the question to the model with no tool data.
	IntentGeneral Intent = iota
	// IntentPrice pulls the variant listing plus a sample price first.
	IntentPrice
	// IntentHistory pulls a simulated history report first.
	IntentHistory
)

// Classifier decides which tool data, if any, to gather before asking the
// model. Pluggable so the keyword heuristic can be swapped for a real
// classifier without touching the orchestrator.
type Classifier interface {
	Classify(text string) Intent
}

// KeywordClassifier routes on substring matches. History keywords are
// checked before price keywords, matching how users phrase evolution
// questions that also mention "dólar".
type KeywordClassifier struct{}

var historyKeywords = []string{"historial", "evolución", "últimos", "días"}

var priceKeywords = []string{"precio", "tipos", "cuánto está", "dólar"}

func (KeywordClassifier) Classify(text string) Intent {
	lowered := strings.ToLower(text)

	for _, keyword := range historyKeywords {
		if strings.Contains(lowered, keyword) {
			return IntentHistory
		}
	}

	for _, keyword := range priceKeywords {
		if strings.Contains(lowered, keyword) {
			return IntentPrice
		}
	}

	return IntentGeneral
}
