package services

import (
	"context"
	"math"
	"regexp"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/entities"

	"github.com/dustin/go-humanize"
)

// The overview page shows the totals as a number followed by a label, usually
// in adjacent elements. The second pattern of each pair is the loose form.
var (
	totalFlightsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)([\d,]+)\s*<[^>]*>\s*Total Flights`),
		regexp.MustCompile(`(?is)>([\d,]+)<.*Total Flights`),
	}
	totalHoursPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)([\d,.]+)\s*<[^>]*>\s*Total Hours`),
		regexp.MustCompile(`(?is)>([\d,.]+)<.*Total Hours`),
	}
)

// OverviewTotals are the figures read from the fsHub overview page
type OverviewTotals struct {
	Flights string `json:"flights"`
	Hours   string `json:"hours"`
	Matched bool   `json:"matched"`
}

// StatsService builds the airline overview figures
type StatsService struct {
	fshub   FsHubSource
	roster  *RosterService
	cache   *common.FreshnessCache
	metrics *metrics.MetricsRegistry
}

func NewStatsService(fshub FsHubSource, rosterService *RosterService, cache *common.FreshnessCache, m *metrics.MetricsRegistry) *StatsService {
	return &StatsService{fshub: fshub, roster: rosterService, cache: cache, metrics: m}
}

// Overview returns airline totals from fsHub, falling back to the last known
// published figures, plus figures derived from the local roster.
func (s *StatsService) Overview(ctx context.Context) entities.VAStats {
	totals := common.Fetch(s.cache, constants.CachePrefixVAStats, "", s.cache.Short, func() (OverviewTotals, bool) {
		page, err := s.fshub.FetchOverviewHTML(ctx)
		if err != nil {
			s.degraded(err.Error())
			return defaultTotals(), false
		}

		totals := ParseOverviewTotals(string(page))
		if !totals.Matched {
			s.degraded("totals not found on overview page")
		}
		return totals, totals.Matched
	})

	entries := s.roster.Reconcile(ctx)
	var sum float64
	for _, e := range entries {
		sum += ParseHours(e.Hours)
	}

	return entities.VAStats{
		Flights:      totals.Flights,
		Hours:        totals.Hours,
		ActivePilots: len(entries),
		RosterHours:  humanize.Comma(int64(math.Round(sum))) + "h",
		AvgLanding:   constants.AverageLandingFPM,
		FromUpstream: totals.Matched,
	}
}

// ParseOverviewTotals extracts the flight and hour totals from the overview
// page. Figures that can't be found keep their defaults.
func ParseOverviewTotals(page string) OverviewTotals {
	totals := defaultTotals()
	if v, ok := firstSubmatch(totalFlightsPatterns, page); ok {
		totals.Flights = v
		totals.Matched = true
	}
	if v, ok := firstSubmatch(totalHoursPatterns, page); ok {
		totals.Hours = v
		totals.Matched = true
	}
	return totals
}

func defaultTotals() OverviewTotals {
	return OverviewTotals{Flights: constants.DefaultVAFlights, Hours: constants.DefaultVAHours}
}

func firstSubmatch(patterns []*regexp.Regexp, s string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func (s *StatsService) degraded(reason string) {
	logging.Warn("VA stats unavailable, using defaults",
		"source", "fshub",
		"key", string(constants.CachePrefixVAStats),
		"error", reason,
	)
	if s.metrics != nil {
		s.metrics.FallbacksTotal.WithLabelValues("va_stats").Inc()
	}
}
