// Package service orchestrates the chart pipeline: ephemeris positions,
// sidereal conversion, KP lordships, Placidus cusps and ruling planets.
package service

import (
	"context"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jyotish/internal/astro"
	"jyotish/internal/chart/models"
	"jyotish/internal/ephemeris"
	"jyotish/internal/houses"
	"jyotish/internal/kp"
	"jyotish/internal/timezone"
)

// Service computes chart documents through the ephemeris capability. It keeps
// orchestration out of handlers and holds no mutable state.
type Service struct {
	provider ephemeris.Provider
}

// New creates a chart Service.
func New(provider ephemeris.Provider) *Service {
	return &Service{provider: provider}
}

// DefaultAyanamsa is applied when a request omits the ayanamsa name. main
// overrides it from configuration at startup, before any request is served.
var DefaultAyanamsa = "KP"

// NormalizeAyanamsaName folds a user-supplied ayanamsa name to a canonical
// one. An omitted name takes the configured default; anything else that is
// not Lahiri is KP.
func NormalizeAyanamsaName(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "LAHIRI", "L":
		return "LAHIRI"
	case "":
		return DefaultAyanamsa
	default:
		return "KP"
	}
}

// AyanamsaDeg resolves the degree value for a canonical ayanamsa name.
func AyanamsaDeg(jd float64, name string) float64 {
	if name == "LAHIRI" {
		return astro.LahiriAyanamsa(jd)
	}
	return astro.KPAyanamsa(jd)
}

// rahuKetuSpeed is the placeholder longitude speed reported for the nodes,
// which regress at roughly this mean rate.
const rahuKetuSpeed = -0.053

// Positions resolves tropical positions for the roster plus the Moon-derived
// nodes, each enriched with the KP lordship of its sidereal longitude.
func (s *Service) Positions(ctx context.Context, req models.BirthRequest) (*models.PositionsResponse, error) {
	utc, err := timezone.ToUTC(req.DatetimeLocal, req.TZ)
	if err != nil {
		return nil, err
	}
	res, err := s.provider.Positions(ctx, utc, req.Lat, req.Lon)
	if err != nil {
		return nil, err
	}

	ayan := AyanamsaDeg(res.JDUT, NormalizeAyanamsaName(req.Ayanamsa))

	planets := make([]models.PlanetPosition, 0, len(res.Positions)+2)
	var moonLon float64
	moonSeen := false
	for _, p := range res.Positions {
		triple := kp.SubLords(astro.Siderealize(p.Lon, ayan))
		planets = append(planets, models.PlanetPosition{
			Name:       p.Name,
			Lon:        p.Lon,
			Lat:        p.Lat,
			DistAU:     p.DistAU,
			SpeedLon:   p.SpeedLon,
			StarLord:   triple.StarLord,
			SubLord:    triple.SubLord,
			SubSubLord: triple.SubSubLord,
		})
		if strings.EqualFold(p.Name, "Moon") {
			moonLon = p.Lon
			moonSeen = true
		}
	}

	if moonSeen {
		rahu := astro.Normalize(moonLon)
		ketu := astro.Normalize(rahu + 180.0)
		for _, node := range []struct {
			name string
			lon  float64
		}{{"Rahu", rahu}, {"Ketu", ketu}} {
			triple := kp.SubLords(astro.Siderealize(node.lon, ayan))
			planets = append(planets, models.PlanetPosition{
				Name:       node.name,
				Lon:        node.lon,
				SpeedLon:   rahuKetuSpeed,
				StarLord:   triple.StarLord,
				SubLord:    triple.SubLord,
				SubSubLord: triple.SubSubLord,
			})
		}
	}

	return &models.PositionsResponse{
		JDUT:    res.JDUT,
		UTCISO:  res.UTC.Format(time.RFC3339),
		Planets: planets,
	}, nil
}

// Placidus computes the tropical and sidereal cusp sets for a Julian Day.
func (s *Service) Placidus(req models.PlacidusRequest) *models.PlacidusResponse {
	trop := houses.Placidus(req.JDUT, req.Lat, req.Lon)
	sid := houses.Siderealize(trop, req.AyanamsaDeg)
	return &models.PlacidusResponse{
		CuspsTropical: cuspsMap(trop),
		CuspsSidereal: cuspsMap(sid),
	}
}

func cuspsMap(c houses.Cusps) map[string]float64 {
	out := make(map[string]float64, 14)
	out["asc"] = c.Asc
	out["mc"] = c.MC
	names := [12]string{
		"house1", "house2", "house3", "house4", "house5", "house6",
		"house7", "house8", "house9", "house10", "house11", "house12",
	}
	for i, n := range names {
		out[n] = c.Houses[i]
	}
	return out
}

// Chart builds the full chart document. The cusp solve and the planet table
// are independent once positions are in, so they run concurrently.
func (s *Service) Chart(ctx context.Context, req models.BirthRequest) (*models.ChartResponse, error) {
	utc, err := timezone.ToUTC(req.DatetimeLocal, req.TZ)
	if err != nil {
		return nil, err
	}
	res, err := s.provider.Positions(ctx, utc, req.Lat, req.Lon)
	if err != nil {
		return nil, err
	}

	ayanName := NormalizeAyanamsaName(req.Ayanamsa)
	ayan := AyanamsaDeg(res.JDUT, ayanName)

	var (
		cusps        houses.Cusps
		planets      []models.KundaliPlanet
		grahaTable   []models.GrahaRow
		moonSidereal float64
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		cusps = houses.Siderealize(houses.Placidus(res.JDUT, req.Lat, req.Lon), ayan)
		return nil
	})
	g.Go(func() error {
		var err error
		planets, grahaTable, moonSidereal, err = s.planetTables(res, ayan)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bhavaCusps := make([]models.BhavaCusp, 0, 12)
	bhavaTable := make([]models.BhavaRow, 0, 12)
	for i := 1; i <= 12; i++ {
		lon := cusps.House(i)
		triple := kp.SubLords(lon)
		bhavaCusps = append(bhavaCusps, models.BhavaCusp{Bhava: i, Longitude: astro.ToDMS(lon)})
		bhavaTable = append(bhavaTable, models.BhavaRow{
			Bhava:      i,
			Longitude:  astro.ToDMS(lon),
			StarLord:   triple.StarLord,
			SubLord:    triple.SubLord,
			SubSubLord: triple.SubSubLord,
		})
	}

	local := res.UTC.In(timezone.Load(req.TZ))
	ruling := models.RulingPlanets{
		DayLord:      kp.WeekdayLords[local.Weekday()],
		MoonSignLord: kp.SignLords[signIndex(moonSidereal)],
		AscSignLord:  kp.SignLords[signIndex(cusps.Asc)],
		AscStarLord:  bhavaTable[0].StarLord,
	}

	return &models.ChartResponse{
		Meta: models.Meta{
			UTCISO:           res.UTC.Format(time.RFC3339),
			JDUT:             res.JDUT,
			TZ:               req.TZ,
			Lat:              req.Lat,
			Lon:              req.Lon,
			Ayanamsa:         ayanName,
			AyanamsaValueDeg: ayan,
		},
		Kundali: models.Kundali{Planets: planets, BhavaCusps: bhavaCusps},
		KP: models.KPTables{
			Ayanamsa:   ayan,
			GrahaTable: grahaTable,
			BhavaTable: bhavaTable,
		},
		RulingPlanets: ruling,
	}, nil
}

// planetTables converts the roster to sidereal placements and KP rows, and
// appends the mean-node Rahu/Ketu. Returns the Moon's sidereal longitude for
// the ruling-planet block.
func (s *Service) planetTables(res ephemeris.Result, ayanDeg float64) ([]models.KundaliPlanet, []models.GrahaRow, float64, error) {
	moon, err := ephemeris.FindBody(res.Positions, "Moon")
	if err != nil {
		return nil, nil, 0, err
	}
	moonSidereal := astro.Siderealize(moon.Lon, ayanDeg)

	planets := make([]models.KundaliPlanet, 0, len(res.Positions)+2)
	rows := make([]models.GrahaRow, 0, len(res.Positions)+2)

	appendBody := func(name string, siderealLon float64, retro bool) {
		dms := astro.ToDMS(siderealLon)
		triple := kp.SubLords(siderealLon)
		planets = append(planets, models.KundaliPlanet{Planet: name, Longitude: dms, Retro: retro})
		rows = append(rows, models.GrahaRow{
			Planet:     name,
			Longitude:  dms,
			Retro:      retro,
			StarLord:   triple.StarLord,
			SubLord:    triple.SubLord,
			SubSubLord: triple.SubSubLord,
		})
	}

	for _, p := range res.Positions {
		appendBody(p.Name, astro.Siderealize(p.Lon, ayanDeg), p.SpeedLon < 0)
	}

	rahuTrop := astro.MeanLunarNode(res.JDUT)
	appendBody("Rahu", astro.Siderealize(rahuTrop, ayanDeg), true)
	appendBody("Ketu", astro.Siderealize(rahuTrop+180.0, ayanDeg), true)

	return planets, rows, moonSidereal, nil
}

func signIndex(deg float64) int {
	return int(math.Floor(astro.Normalize(deg)/30.0)) % 12
}
