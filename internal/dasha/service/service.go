// Package service resolves the dasha entry point from the ephemeris and
// exposes the period-tree building operations to the handler.
package service

import (
	"context"
	"time"

	"jyotish/internal/astro"
	chartservice "jyotish/internal/chart/service"
	"jyotish/internal/dasha"
	"jyotish/internal/dasha/models"
	"jyotish/internal/ephemeris"
	"jyotish/internal/timezone"
	apperrors "jyotish/pkg/domain-errors"
)

// Service anchors Vimshottari trees to a birth instant.
type Service struct {
	provider ephemeris.Provider
}

// New creates a dasha Service.
func New(provider ephemeris.Provider) *Service {
	return &Service{provider: provider}
}

// entry resolves the Moon-derived dasha entry point for a request.
func (s *Service) entry(ctx context.Context, req models.BaseRequest) (models.Meta, time.Time, error) {
	utc, err := timezone.ToUTC(req.DatetimeLocal, req.TZ)
	if err != nil {
		return models.Meta{}, time.Time{}, err
	}
	res, err := s.provider.Positions(ctx, utc, req.Lat, req.Lon)
	if err != nil {
		return models.Meta{}, time.Time{}, err
	}
	moon, err := ephemeris.FindBody(res.Positions, "Moon")
	if err != nil {
		return models.Meta{}, time.Time{}, err
	}

	ayanName := chartservice.NormalizeAyanamsaName(req.Ayanamsa)
	ayan := chartservice.AyanamsaDeg(res.JDUT, ayanName)
	moonSidereal := astro.Siderealize(moon.Lon, ayan)

	lord, balance := dasha.MoonEntry(moonSidereal)
	meta := models.Meta{
		UTCISO:           res.UTC.Format(time.RFC3339),
		JDUT:             res.JDUT,
		Ayanamsa:         ayanName,
		AyanamsaValueDeg: ayan,
		MoonSidereal:     moonSidereal,
		MahaLord:         lord,
		BalanceYears:     balance,
	}
	return meta, res.UTC, nil
}

// Mahadashas returns the nine-mahadasha timeline for the birth instant.
func (s *Service) Mahadashas(ctx context.Context, req models.BaseRequest) (*models.MahaResponse, error) {
	meta, start, err := s.entry(ctx, req)
	if err != nil {
		return nil, err
	}
	list, err := dasha.MahadashaList(start, meta.MahaLord, meta.BalanceYears)
	if err != nil {
		return nil, err
	}
	return &models.MahaResponse{Meta: meta, Maha: list}, nil
}

// Level materializes one level's nodes for an explicit window and parent lord.
func (s *Service) Level(level dasha.Level, req models.LevelRequest) (*models.LevelResponse, error) {
	if req.Lord == "" {
		return nil, apperrors.New(apperrors.CodeBadRequest, "lord is required")
	}
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBadRequest, "invalid start", err)
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBadRequest, "invalid end", err)
	}
	nodes, err := dasha.BuildLevel(level, start, end, req.Lord)
	if err != nil {
		return nil, err
	}
	return &models.LevelResponse{Level: level, Nodes: nodes}, nil
}

// Tree builds the running mahadasha's eager subtree at the requested depth.
func (s *Service) Tree(ctx context.Context, req models.TreeRequest) (*models.TreeResponse, error) {
	meta, start, err := s.entry(ctx, req.BaseRequest)
	if err != nil {
		return nil, err
	}
	depth := req.Depth
	if depth == 0 {
		depth = dasha.MaxDepth
	}
	node, err := dasha.BuildTree(start, meta.MahaLord, meta.BalanceYears, depth)
	if err != nil {
		return nil, err
	}
	return &models.TreeResponse{Meta: meta, Tree: node}, nil
}
