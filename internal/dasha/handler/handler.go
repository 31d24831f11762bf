// Package handler exposes the dasha endpoints: the cached mahadasha timeline
// and the lazy per-level builders the timeline UI expands on demand.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jyotish/internal/cache"
	"jyotish/internal/dasha"
	dashaModel "jyotish/internal/dasha/models"
	"jyotish/internal/platform/metrics"
	"jyotish/internal/platform/middleware"
	"jyotish/internal/transport/http/shared"
	apperrors "jyotish/pkg/domain-errors"
)

// Service is the dasha operations interface the handler depends on.
type Service interface {
	Mahadashas(ctx context.Context, req dashaModel.BaseRequest) (*dashaModel.MahaResponse, error)
	Level(level dasha.Level, req dashaModel.LevelRequest) (*dashaModel.LevelResponse, error)
	Tree(ctx context.Context, req dashaModel.TreeRequest) (*dashaModel.TreeResponse, error)
}

// Handler handles dasha-related endpoints.
type Handler struct {
	logger  *slog.Logger
	dasha   Service
	cache   *cache.Cache
	metrics *metrics.Metrics
}

// New creates a dasha Handler.
func New(svc Service, responses *cache.Cache, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, dasha: svc, cache: responses, metrics: m}
}

// Register mounts the dasha routes with the shared middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(dr chi.Router) {
		dr.Use(middleware.Recovery(h.logger))
		dr.Use(middleware.RequestID)
		dr.Use(middleware.Logger(h.logger))
		dr.Use(middleware.Timeout(30 * time.Second))
		dr.Use(middleware.ContentTypeJSON)
		dr.Use(middleware.Latency(h.metrics))
		dr.Post("/api/dasha/maha", h.handleMaha)
		dr.Post("/api/dasha/tree", h.handleTree)
		dr.Post("/api/dasha/bhukti", h.level(dasha.Bhukti))
		dr.Post("/api/dasha/antara", h.level(dasha.Antara))
		dr.Post("/api/dasha/sukshma", h.level(dasha.Sukshma))
		dr.Post("/api/dasha/prana", h.level(dasha.Prana))
	})
}

func (h *Handler) handleMaha(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dashaModel.BaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	key := cache.RequestKey("maha", req.DatetimeLocal, req.TZ, req.Lat, req.Lon, req.Ayanamsa)
	body, err := h.cache.Do(ctx, key, func() ([]byte, error) {
		resp, err := h.dasha.Mahadashas(ctx, req)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	})
	if err != nil {
		h.logError(ctx, "mahadasha list failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteRaw(w, body)
}

func (h *Handler) handleTree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dashaModel.TreeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	resp, err := h.dasha.Tree(ctx, req)
	if err != nil {
		h.logError(ctx, "dasha tree failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, resp)
}

// level returns a handler materializing one fixed level; the window and the
// parent lord come from the request, so no ephemeris lookup is needed.
func (h *Handler) level(lv dasha.Level) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dashaModel.LevelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
			return
		}
		resp, err := h.dasha.Level(lv, req)
		if err != nil {
			h.logError(r.Context(), "level build failed", err)
			shared.WriteError(w, err)
			return
		}
		shared.WriteJSON(w, resp)
	}
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
}
