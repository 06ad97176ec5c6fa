package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dolarbot/internal/domain/ports"
	"dolarbot/internal/metrics"
	"dolarbot/internal/service"
	"dolarbot/pkg/logger"
)

// ResultResponse is the single-field envelope every report route returns.
type ResultResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	service ports.QuoteService
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewHandler(service ports.QuoteService, log *logger.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		log:     log,
		metrics: metrics,
	}
}

func (h *Handler) GetPriceHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.PriceRequestsTotal.Inc()

	variant := r.PathValue("variant")

	report, err := h.service.GetPrice(r.Context(), variant)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendResult(w, report)
}

func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.HistoryRequestsTotal.Inc()

	variant := r.PathValue("variant")

	days, err := strconv.Atoi(r.PathValue("days"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid days parameter, must be an integer")
		return
	}

	report, err := h.service.GetHistory(r.Context(), variant, days)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendResult(w, report)
}

func (h *Handler) GetTypesHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.TypesRequestsTotal.Inc()

	report, err := h.service.GetTypes(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendResult(w, report)
}

func (h *Handler) sendResult(w http.ResponseWriter, report string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(ResultResponse{Result: report}); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	switch {
	case errors.Is(err, service.ErrInvalidDays):
		statusCode = http.StatusBadRequest
		errorMessage = "days must be between 1 and 365"
	case errors.Is(err, service.ErrVariantUnavailable):
		statusCode = http.StatusNotFound
		errorMessage = "no quote available for variant"
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendError(w, statusCode, errorMessage)
}
