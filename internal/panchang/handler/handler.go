// Package handler exposes the panchangam endpoint.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jyotish/internal/cache"
	chartservice "jyotish/internal/chart/service"
	"jyotish/internal/ephemeris"
	"jyotish/internal/panchang"
	panchModel "jyotish/internal/panchang/models"
	"jyotish/internal/platform/metrics"
	"jyotish/internal/platform/middleware"
	"jyotish/internal/timezone"
	"jyotish/internal/transport/http/shared"
	apperrors "jyotish/pkg/domain-errors"
)

const (
	localFormat = "2006-01-02 15:04"
	hmFormat    = "15:04"
)

// Handler handles the panchangam endpoint.
type Handler struct {
	logger   *slog.Logger
	solver   *panchang.Solver
	provider ephemeris.Provider
	cache    *cache.Cache
	metrics  *metrics.Metrics
}

// New creates a panchangam Handler. The provider is needed alongside the
// solver to resolve the Julian Day the ayanamsa is evaluated at.
func New(solver *panchang.Solver, provider ephemeris.Provider, responses *cache.Cache, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, solver: solver, provider: provider, cache: responses, metrics: m}
}

// Register mounts the panchangam route with the shared middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Recovery(h.logger))
		pr.Use(middleware.RequestID)
		pr.Use(middleware.Logger(h.logger))
		pr.Use(middleware.Timeout(30 * time.Second))
		pr.Use(middleware.ContentTypeJSON)
		pr.Use(middleware.Latency(h.metrics))
		pr.Post("/api/astro/panchangam", h.handlePanchangam)
	})
}

func (h *Handler) handlePanchangam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req panchModel.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	// The panchangam is a property of the local solar day, so the cache key
	// buckets on the date, not the minute.
	date := req.DatetimeLocal
	if len(date) >= 10 {
		date = date[:10]
	}
	key := cache.RequestKey("panchangam", date+"T00:00:00", req.TZ, req.Lat, req.Lon,
		chartservice.NormalizeAyanamsaName(req.Ayanamsa))

	body, err := h.cache.Do(ctx, key, func() ([]byte, error) {
		resp, err := h.compute(ctx, req)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "panchangam failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteRaw(w, body)
}

func (h *Handler) compute(ctx context.Context, req panchModel.Request) (*panchModel.Response, error) {
	utc, err := timezone.ToUTC(req.DatetimeLocal, req.TZ)
	if err != nil {
		return nil, err
	}
	res, err := h.provider.Positions(ctx, utc, req.Lat, req.Lon)
	if err != nil {
		return nil, err
	}
	ayan := chartservice.AyanamsaDeg(res.JDUT, chartservice.NormalizeAyanamsaName(req.Ayanamsa))

	zone := timezone.Load(req.TZ)
	local := utc.In(zone)
	day, err := h.solver.Compute(ctx, local, req.Lat, req.Lon, ayan)
	if err != nil {
		return nil, err
	}

	item := func(e panchang.Element, extra string) panchModel.Item {
		end := e.End.In(zone)
		return panchModel.Item{
			Name:     e.Name,
			Extra:    extra,
			EndLocal: end.Format(localFormat),
			EndHMS:   end.Format(hmFormat),
		}
	}

	return &panchModel.Response{
		SunriseLocal:     day.Sunrise.In(zone).Format(localFormat),
		NextSunriseLocal: day.NextSunrise.In(zone).Format(localFormat),
		Vaara:            day.Vaara,
		Tithi:            item(day.Tithi, ""),
		Nakshatra:        item(day.Nakshatra, fmt.Sprintf("Pada %d", day.Pada)),
		Yoga:             item(day.Yoga, ""),
		Karana:           item(day.Karana, ""),
	}, nil
}
