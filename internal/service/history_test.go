package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"dolarbot/internal/adapter/cache"
	"dolarbot/internal/domain/model"
	"dolarbot/internal/metrics"
	"dolarbot/pkg/logger"
)

func newHistoryService(t *testing.T, quotes model.QuoteSet, seed int64) *QuoteService {
	t.Helper()

	log := logger.NewLogger("error")
	provider := MockQuoteProvider{
		FetchAllFunc: func(ctx context.Context) model.QuoteSet {
			return quotes
		},
	}

	svc := NewQuoteService(&provider, cache.NewMemoryCache(0, log), log, metrics.NewMetrics())
	svc.rng = rand.New(rand.NewSource(seed))
	return svc
}

func TestSimulatePrices_SeriesShape(t *testing.T) {

	svc := newHistoryService(t, testQuotes(), 1)

	testCases := []struct {
		days         int
		currentPrice float64
	}{
		{days: 1, currentPrice: 1000},
		{days: 7, currentPrice: 1000},
		{days: 30, currentPrice: 365},
		{days: 365, currentPrice: 600},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d days at %.0f", tc.days, tc.currentPrice), func(t *testing.T) {
			prices := svc.simulatePrices(tc.currentPrice, tc.days)

			if len(prices) != tc.days {
				t.Fatalf("Expected exactly %d points, got %d", tc.days, len(prices))
			}

			floor := tc.currentPrice * historyFloorFactor
			for i, p := range prices {
				if p < floor {
					t.Errorf("Point %d = %.2f below floor %.2f", i, p, floor)
				}
			}
		})
	}
}

func TestSimulatePrices_SeededReproducibility(t *testing.T) {

	first := newHistoryService(t, testQuotes(), 42).simulatePrices(1000, 30)
	second := newHistoryService(t, testQuotes(), 42).simulatePrices(1000, 30)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical series for identical seed, diverged at point %d: %f != %f", i, first[i], second[i])
		}
	}
}

func TestQuoteService_GetHistory(t *testing.T) {

	svc := newHistoryService(t, testQuotes(), 42)

	report, err := svc.GetHistory(context.Background(), "blue", 7)
	if err != nil {
		t.Fatalf("GetHistory returned error: %v", err)
	}

	// Recompute the expected summary with the same seed.
	expected := newHistoryService(t, testQuotes(), 42).simulatePrices(1000, 7)
	firstPrice := expected[0]
	lastPrice := expected[len(expected)-1]
	change := (lastPrice - firstPrice) / firstPrice * 100

	wantLines := []string{
		"Evolución Dólar Blue (7 días):",
		fmt.Sprintf("• Precio inicial: $%.2f ARS", firstPrice),
		fmt.Sprintf("• Precio actual: $%.2f ARS", lastPrice),
		fmt.Sprintf("• Cambio: %+.2f%%", change),
		"• Mínimo: $",
		"• Máximo: $",
		"• Tendencia: ",
	}
	for _, want := range wantLines {
		if !strings.Contains(report, want) {
			t.Errorf("Expected history report to contain %q, got:\n%s", want, report)
		}
	}
}

func TestQuoteService_GetHistory_VariantResolution(t *testing.T) {

	testCases := []struct {
		name       string
		variant    string
		wantHeader string
	}{
		{name: "Known variant", variant: "oficial", wantHeader: "Evolución Dólar Oficial"},
		{name: "Alias resolves to canonical quote", variant: "liqui", wantHeader: "Evolución Dólar CCL"},
		{name: "Unknown variant keeps requested label", variant: "cripto", wantHeader: "Evolución Dólar cripto"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newHistoryService(t, testQuotes(), 7)

			report, err := svc.GetHistory(context.Background(), tc.variant, 7)
			if err != nil {
				t.Fatalf("GetHistory returned error: %v", err)
			}

			if !strings.Contains(report, tc.wantHeader) {
				t.Errorf("Expected header %q, got:\n%s", tc.wantHeader, report)
			}
		})
	}
}

func TestQuoteService_GetHistory_InvalidDays(t *testing.T) {

	svc := newHistoryService(t, testQuotes(), 1)

	for _, days := range []int{0, -1, 366} {
		if _, err := svc.GetHistory(context.Background(), "blue", days); !errors.Is(err, ErrInvalidDays) {
			t.Errorf("Expected ErrInvalidDays for days=%d, got: %v", days, err)
		}
	}
}
