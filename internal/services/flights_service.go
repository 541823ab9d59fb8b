package services

import (
	"context"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/entities"
	"atn-virtual/crewcenter/internal/scrape"
)

const minFlightLogColumns = 5

// flightLayout holds the positional fallbacks used when a header can't be
// matched. The airline listing and pilot pages put the date in different
// places.
type flightLayout struct {
	dateFallback int
}

var (
	airlineLayout = flightLayout{dateFallback: 5}
	pilotLayout   = flightLayout{dateFallback: -1}
)

// FlightsService reads recent flights from fsHub
type FlightsService struct {
	fshub   FsHubSource
	cache   *common.FreshnessCache
	metrics *metrics.MetricsRegistry
}

func NewFlightsService(fshub FsHubSource, cache *common.FreshnessCache, m *metrics.MetricsRegistry) *FlightsService {
	return &FlightsService{fshub: fshub, cache: cache, metrics: m}
}

// RecentFlights returns the airline-wide listing from the overview page
func (s *FlightsService) RecentFlights(ctx context.Context) entities.FlightLog {
	return common.Fetch(s.cache, constants.CachePrefixVAFlights, "", s.cache.Short, func() (entities.FlightLog, bool) {
		tables, err := s.fshub.FetchOverviewTables(ctx)
		if err != nil {
			return s.failed("recent_flights", string(constants.CachePrefixVAFlights), err.Error()), false
		}

		t, ok := selectFlightTable(tables, false)
		if !ok {
			return s.failed("recent_flights", string(constants.CachePrefixVAFlights), "no flight table on page"), false
		}
		return entities.FlightLog{Records: extractFlights(t, airlineLayout), Success: true}, true
	})
}

// PilotFlights returns the flights listed on one pilot's profile page. A
// pilot without a profile gets an empty log and no request is made.
func (s *FlightsService) PilotFlights(ctx context.Context, fsHubID string) entities.FlightLog {
	if fsHubID == "" {
		return entities.FlightLog{Records: []entities.FlightRecord{}, Success: false}
	}

	key := string(constants.CachePrefixPilotFlights) + fsHubID
	return common.Fetch(s.cache, constants.CachePrefixPilotFlights, fsHubID, s.cache.Short, func() (entities.FlightLog, bool) {
		tables, err := s.fshub.FetchPilotTables(ctx, fsHubID)
		if err != nil {
			return s.failed("pilot_flights", key, err.Error()), false
		}

		t, ok := selectFlightTable(tables, true)
		if !ok {
			return s.failed("pilot_flights", key, "no flight table on page"), false
		}
		return entities.FlightLog{Records: extractFlights(t, pilotLayout), Success: true}, true
	})
}

func (s *FlightsService) failed(op, key, reason string) entities.FlightLog {
	logging.Warn("Flight log unavailable",
		"source", "fshub",
		"key", key,
		"error", reason,
	)
	if s.metrics != nil {
		s.metrics.FallbacksTotal.WithLabelValues(op).Inc()
	}
	return entities.FlightLog{Records: []entities.FlightRecord{}, Success: false}
}

// selectFlightTable picks the first table wide enough to be a flight log. Pilot
// pages carry other wide tables, so there a flight-like header is required too.
func selectFlightTable(tables []scrape.Table, needFlightHeader bool) (scrape.Table, bool) {
	for _, t := range tables {
		if t.Width() < minFlightLogColumns {
			continue
		}
		if needFlightHeader && !t.HasColumn("aircraft", "distance", "time", "date") {
			continue
		}
		return t, true
	}
	return scrape.Table{}, false
}

func extractFlights(t scrape.Table, layout flightLayout) []entities.FlightRecord {
	landingCol := t.Column("landing", "fpm")

	records := make([]entities.FlightRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, entities.FlightRecord{
			Pilot:       t.Field(row, 0, "pilot"),
			Departure:   t.Field(row, 1, "dep"),
			Arrival:     t.Field(row, 2, "arr"),
			Aircraft:    t.Field(row, 3, "aircraft"),
			LandingRate: scrape.Cell(row, landingCol),
			Date:        t.Field(row, layout.dateFallback, "date"),
		})
	}
	return records
}
