package agent

import (
	"testing"
)

func TestKeywordClassifier_Classify(t *testing.T) {

	classifier := KeywordClassifier{}

	testCases := []struct {
		text string
		want Intent
	}{
		{"evolución del oficial últimos 7 días", IntentHistory},
		{"mostrame el historial del blue", IntentHistory},
		{"cómo estuvo el dólar los últimos meses", IntentHistory},
		{"precio del dólar blue", IntentPrice},
		{"tipos de dólar disponibles", IntentPrice},
		{"cuánto está el blue?", IntentPrice},
		{"qué dólar me conviene para ahorrar", IntentPrice},
		{"PRECIO DEL BLUE", IntentPrice},
		{"qué es la inflación?", IntentGeneral},
		{"hola, cómo estás?", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			if got := classifier.Classify(tc.text); got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestKeywordClassifier_HistoryWinsOverPrice(t *testing.T) {

	classifier := KeywordClassifier{}

	// Mentions both "dólar" and "evolución": the history path must win so
	// the model receives history data, not just prices.
	if got := classifier.Classify("evolución del precio del dólar blue"); got != IntentHistory {
		t.Errorf("Expected IntentHistory, got %v", got)
	}
}
