package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dolarbot/internal/domain/model"
	"dolarbot/internal/metrics"
	"dolarbot/pkg/logger"
	"dolarbot/pkg/utils"
)

// DolarAPI fetches USD/ARS quotes for all variants from dolarapi.com.
// Availability wins over freshness: any upstream failure is swallowed and
// replaced by a static fallback set, so FetchAll never fails.
type DolarAPI struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

type dolarAPIRecord struct {
	Nombre             string  `json:"nombre"`
	Compra             float64 `json:"compra"`
	Venta              float64 `json:"venta"`
	FechaActualizacion string  `json:"fechaActualizacion"`
}

func NewDolarAPI(baseURL string, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *DolarAPI {
	return &DolarAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
		now:     time.Now,
	}
}

func (d *DolarAPI) FetchAll(ctx context.Context) model.QuoteSet {
	quotes, err := d.fetchLive(ctx)
	if err != nil {
		d.log.Error("Upstream quote fetch failed, using fallback data", "error", err)
		d.metrics.UpstreamFallbackTotal.Inc()
		return d.fallbackQuotes()
	}
	return quotes
}

func (d *DolarAPI) fetchLive(ctx context.Context) (model.QuoteSet, error) {
	url := d.baseURL + "/dolares"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned non-OK status: %d", resp.StatusCode)
	}

	var records []dolarAPIRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("API returned empty quote list")
	}

	quotes := make(model.QuoteSet, len(records))
	for _, record := range records {
		updatedAt, err := utils.ParseUpdatedAt(record.FechaActualizacion)
		if err != nil {
			d.log.Debug("Unparseable update timestamp, using current time",
				"variant", record.Nombre, "value", record.FechaActualizacion)
			updatedAt = d.now()
		}

		quotes[strings.ToLower(record.Nombre)] = model.Quote{
			Name:      record.Nombre,
			Buy:       record.Compra,
			Sell:      record.Venta,
			UpdatedAt: updatedAt,
			Source:    model.SourceLive,
		}
	}

	return quotes, nil
}

// fallbackQuotes returns plausible static numbers for the five documented
// variants, stamped with the current local time.
func (d *DolarAPI) fallbackQuotes() model.QuoteSet {
	now := d.now()

	return model.QuoteSet{
		"blue":              {Name: "Blue", Buy: 980, Sell: 1000, UpdatedAt: now, Source: model.SourceFallback},
		"oficial":           {Name: "Oficial", Buy: 350, Sell: 365, UpdatedAt: now, Source: model.SourceFallback},
		"bolsa":             {Name: "Bolsa", Buy: 920, Sell: 940, UpdatedAt: now, Source: model.SourceFallback},
		"contado con liqui": {Name: "Contado con Liqui", Buy: 950, Sell: 970, UpdatedAt: now, Source: model.SourceFallback},
		"turista":           {Name: "Turista", Buy: 0, Sell: 600, UpdatedAt: now, Source: model.SourceFallback},
	}
}
