package service

import (
	"context"
	"fmt"
	"math"

	"dolarbot/internal/domain/model"
)

// History is simulated, not fetched: no real time-series source exists, so
// a synthetic series is derived from the current quote on every call.
// Consumers must treat the numbers as illustrative only.

const (
	maxHistoryDays = 365

	// The series starts below the current price and random-walks upward
	// on average, clamped to a floor.
	historyStartFactor = 0.95
	historyFloorFactor = 0.8
	historyStepMin     = -10.0
	historyStepMax     = 15.0

	// Used when the requested variant is absent from the quote set.
	defaultHistoryPrice = 1000.0
)

// GetHistory renders a synthetic price-evolution report for the variant
// over the given number of days.
func (s *QuoteService) GetHistory(ctx context.Context, variant string, days int) (string, error) {
	if days < 1 || days > maxHistoryDays {
		return "", fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	quotes := s.provider.FetchAll(ctx)

	currentPrice := defaultHistoryPrice
	if quote, ok := quotes[model.CanonicalVariant(variant)]; ok {
		currentPrice = quote.Sell
	}

	prices := s.simulatePrices(currentPrice, days)

	first := prices[0]
	last := prices[len(prices)-1]
	change := (last - first) / first * 100

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices[1:] {
		minPrice = math.Min(minPrice, p)
		maxPrice = math.Max(maxPrice, p)
	}

	report := fmt.Sprintf("📈 Evolución Dólar %s (%d días):\n", model.DisplayName(variant), days)
	report += fmt.Sprintf("• Precio inicial: $%.2f ARS\n", first)
	report += fmt.Sprintf("• Precio actual: $%.2f ARS\n", last)
	report += fmt.Sprintf("• Cambio: %+.2f%%\n", change)
	report += fmt.Sprintf("• Mínimo: $%.2f ARS\n", minPrice)
	report += fmt.Sprintf("• Máximo: $%.2f ARS\n", maxPrice)
	report += "• Tendencia: " + trendLabel(change)

	return report, nil
}

// simulatePrices random-walks from 95% of the current price, one step per
// day. The clamp applies to recorded points, not the walk itself.
func (s *QuoteService) simulatePrices(currentPrice float64, days int) []float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	prices := make([]float64, 0, days)
	base := currentPrice * historyStartFactor
	floor := currentPrice * historyFloorFactor

	for i := 0; i < days; i++ {
		base += historyStepMin + s.rng.Float64()*(historyStepMax-historyStepMin)
		prices = append(prices, math.Max(base, floor))
	}

	return prices
}

func trendLabel(change float64) string {
	switch {
	case change > 0:
		return "📈 Alcista"
	case change < 0:
		return "📉 Bajista"
	default:
		return "➡️ Estable"
	}
}
