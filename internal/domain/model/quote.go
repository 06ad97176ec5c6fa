package model

import (
	"time"
)

// Source tells whether a quote came from the live upstream API or from the
// static fallback table.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Quote is one currency-pair variant's current state: buy/sell prices in ARS
// per USD plus refresh metadata.
type Quote struct {
	Name      string    `json:"nombre"`
	Buy       float64   `json:"compra"`
	Sell      float64   `json:"venta"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
	Source    Source    `json:"fuente"`
}

// QuoteSet maps a variant key (lowercased display name) to its Quote.
// Unknown keys returned by the provider are passed through untouched.
type QuoteSet map[string]Quote

// Resolve looks up a requested variant, applying the alias table first and
// falling back to the blue entry when the key is absent.
func (s QuoteSet) Resolve(variant string) (Quote, bool) {
	if q, ok := s[CanonicalVariant(variant)]; ok {
		return q, true
	}
	q, ok := s[DefaultVariant]
	return q, ok
}
