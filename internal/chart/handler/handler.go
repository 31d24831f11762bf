// Package handler exposes the chart endpoints. It stays thin: decode,
// delegate to the chart service (through the response cache), encode.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jyotish/internal/cache"
	chartModel "jyotish/internal/chart/models"
	"jyotish/internal/chart/service"
	"jyotish/internal/platform/metrics"
	"jyotish/internal/platform/middleware"
	"jyotish/internal/transport/http/shared"
	apperrors "jyotish/pkg/domain-errors"
)

// Service is the chart operations interface the handler depends on.
type Service interface {
	Positions(ctx context.Context, req chartModel.BirthRequest) (*chartModel.PositionsResponse, error)
	Placidus(req chartModel.PlacidusRequest) *chartModel.PlacidusResponse
	Chart(ctx context.Context, req chartModel.BirthRequest) (*chartModel.ChartResponse, error)
}

// Handler handles chart-related endpoints.
type Handler struct {
	logger  *slog.Logger
	chart   Service
	cache   *cache.Cache
	metrics *metrics.Metrics
}

// New creates a chart Handler.
func New(chart Service, responses *cache.Cache, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, chart: chart, cache: responses, metrics: m}
}

// Register mounts the chart routes with the shared middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(cr chi.Router) {
		cr.Use(middleware.Recovery(h.logger))
		cr.Use(middleware.RequestID)
		cr.Use(middleware.Logger(h.logger))
		cr.Use(middleware.Timeout(30 * time.Second))
		cr.Use(middleware.ContentTypeJSON)
		cr.Use(middleware.Latency(h.metrics))
		cr.Post("/api/astro/positions", h.handlePositions)
		cr.Post("/api/astro/placidus", h.handlePlacidus)
		cr.Post("/api/astro/chart", h.handleChart)
	})
}

func (h *Handler) handlePositions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chartModel.BirthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	key := cache.RequestKey("positions", req.DatetimeLocal, req.TZ, req.Lat, req.Lon,
		service.NormalizeAyanamsaName(req.Ayanamsa))
	body, err := h.cache.Do(ctx, key, func() ([]byte, error) {
		resp, err := h.chart.Positions(ctx, req)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	})
	if err != nil {
		h.logError(ctx, "positions failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteRaw(w, body)
}

func (h *Handler) handlePlacidus(w http.ResponseWriter, r *http.Request) {
	var req chartModel.PlacidusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.JDUT == 0 {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "jd_ut is required"))
		return
	}
	shared.WriteJSON(w, h.chart.Placidus(req))
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chartModel.BirthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	key := cache.RequestKey("chart", req.DatetimeLocal, req.TZ, req.Lat, req.Lon,
		service.NormalizeAyanamsaName(req.Ayanamsa))
	body, err := h.cache.Do(ctx, key, func() ([]byte, error) {
		resp, err := h.chart.Chart(ctx, req)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	})
	if err != nil {
		h.logError(ctx, "chart failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteRaw(w, body)
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
}
