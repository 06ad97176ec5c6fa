package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"dolarbot/internal/domain/model"
	"dolarbot/internal/domain/ports"
	"dolarbot/internal/metrics"
	"dolarbot/pkg/logger"
	"dolarbot/pkg/utils"
)

var (
	ErrInvalidDays        = errors.New("days must be between 1 and 365")
	ErrVariantUnavailable = errors.New("no quote available for variant")
)

// QuoteService composes the provider and report cache into the three
// human-readable reports. Report text is locale-fixed Spanish.
type QuoteService struct {
	provider ports.QuoteProvider
	cache    ports.ReportCache
	log      *logger.Logger
	metrics  *metrics.Metrics

	// flight collapses concurrent cache misses for the same key into a
	// single upstream fetch.
	flight singleflight.Group

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

func NewQuoteService(provider ports.QuoteProvider, cache ports.ReportCache, log *logger.Logger, m *metrics.Metrics) *QuoteService {
	return &QuoteService{
		provider: provider,
		cache:    cache,
		log:      log,
		metrics:  m,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// GetPrice returns the price report for a variant. Reports are cached per
// requested variant name (aliases cache separately from their canonical
// key) for the configured TTL.
func (s *QuoteService) GetPrice(ctx context.Context, variant string) (string, error) {
	cacheKey := priceCacheKey(variant)

	if report, found := s.cache.Get(ctx, cacheKey); found {
		s.metrics.CacheHitsTotal.Inc()
		return report, nil
	}
	s.metrics.CacheMissesTotal.Inc()

	result, err, _ := s.flight.Do(cacheKey, func() (any, error) {
		// Another request may have filled the key while we waited.
		if report, found := s.cache.Get(ctx, cacheKey); found {
			return report, nil
		}

		s.log.Info("Fetching quotes from provider", "variant", variant)
		quotes := s.provider.FetchAll(ctx)

		quote, ok := quotes.Resolve(variant)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrVariantUnavailable, variant)
		}

		report := formatPriceReport(quote)
		s.cache.Set(ctx, cacheKey, report)
		return report, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

// GetTypes lists every variant the provider currently knows, in key order.
func (s *QuoteService) GetTypes(ctx context.Context) (string, error) {
	quotes := s.provider.FetchAll(ctx)

	keys := make([]string, 0, len(quotes))
	for key := range quotes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("💱 Tipos de dólar disponibles:\n")
	for _, key := range keys {
		quote := quotes[key]
		fmt.Fprintf(&b, "• %s: Compra $%.2f | Venta $%.2f\n", quote.Name, quote.Buy, quote.Sell)
	}
	fmt.Fprintf(&b, "\n🔄 Actualizado: %s", utils.FormatUpdated(s.now()))

	return b.String(), nil
}

func priceCacheKey(variant string) string {
	return "price_" + strings.ToLower(strings.TrimSpace(variant))
}

func formatPriceReport(quote model.Quote) string {
	return fmt.Sprintf("💵 Dólar %s:\n• Compra: $%.2f ARS\n• Venta: $%.2f ARS\n• Actualizado: %s\n• Fuente: %s",
		quote.Name,
		quote.Buy,
		quote.Sell,
		utils.FormatUpdated(quote.UpdatedAt),
		sourceLabel(quote.Source),
	)
}

func sourceLabel(source model.Source) string {
	if source == model.SourceFallback {
		return "📊 Datos de referencia"
	}
	return "🚀 API en tiempo real"
}
