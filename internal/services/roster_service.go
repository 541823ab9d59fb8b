package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/entities"
	"atn-virtual/crewcenter/internal/roster"
	"atn-virtual/crewcenter/internal/scrape"
)

// HoursEntry is one row of the fsHub pilot list
type HoursEntry struct {
	Pilot string `json:"pilot"`
	Hours string `json:"hours"`
}

// HoursMap keeps the fsHub rows in page order. Lookups scan it front to back,
// so when several rows mention the same identifier the first one wins.
type HoursMap []HoursEntry

// RosterService reconciles the local roster with the hours published on fsHub
type RosterService struct {
	roster  *roster.Roster
	fshub   FsHubSource
	cache   *common.FreshnessCache
	metrics *metrics.MetricsRegistry
}

func NewRosterService(r *roster.Roster, fshub FsHubSource, cache *common.FreshnessCache, m *metrics.MetricsRegistry) *RosterService {
	return &RosterService{roster: r, fshub: fshub, cache: cache, metrics: m}
}

// Roster returns the local roster table
func (s *RosterService) Roster() *roster.Roster {
	return s.roster
}

// HoursMap returns the remote pilot to hours mapping, cached on the long
// tier. Any failure yields an empty mapping.
func (s *RosterService) HoursMap(ctx context.Context) HoursMap {
	return common.Fetch(s.cache, constants.CachePrefixPilotHours, "", s.cache.Long, func() (HoursMap, bool) {
		tables, err := s.fshub.FetchPilotsTables(ctx)
		if err != nil {
			s.degraded("pilot_hours", err.Error())
			return HoursMap{}, false
		}

		hours, ok := extractHoursMap(tables)
		if !ok {
			s.degraded("pilot_hours", "no table with pilot and hours columns")
			return HoursMap{}, false
		}
		return hours, true
	})
}

// Reconcile resolves every roster pilot against the remote mapping
func (s *RosterService) Reconcile(ctx context.Context) []entities.RosterEntry {
	return ResolveHours(s.roster.All(), s.HoursMap(ctx))
}

// PilotHours resolves the hours of one pilot. ok is false for an identifier
// that is not on the roster.
func (s *RosterService) PilotHours(ctx context.Context, id string) (string, bool) {
	p, ok := s.roster.Find(id)
	if !ok {
		return "", false
	}
	return ResolveHours([]entities.PilotRecord{p}, s.HoursMap(ctx))[0].Hours, true
}

// Leaderboard returns the n pilots with the most hours
func (s *RosterService) Leaderboard(ctx context.Context, n int) []entities.LeaderboardEntry {
	ranked := RankByHours(s.Reconcile(ctx))
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (s *RosterService) degraded(op, reason string) {
	logging.Warn("Roster hours unavailable, using local defaults",
		"source", "fshub",
		"key", string(constants.CachePrefixPilotHours),
		"error", reason,
	)
	if s.metrics != nil {
		s.metrics.FallbacksTotal.WithLabelValues(op).Inc()
	}
}

// extractHoursMap reads the first table that has both a pilot and an hours
// column. ok is false when there is no such table.
func extractHoursMap(tables []scrape.Table) (HoursMap, bool) {
	for _, t := range tables {
		pilotCol := t.Column("pilot")
		hoursCol := t.Column("hour")
		if pilotCol < 0 || hoursCol < 0 {
			continue
		}

		hours := make(HoursMap, 0, len(t.Rows))
		for _, row := range t.Rows {
			hours = append(hours, HoursEntry{
				Pilot: scrape.Cell(row, pilotCol),
				Hours: scrape.Cell(row, hoursCol),
			})
		}
		return hours, true
	}
	return nil, false
}

// ResolveHours pairs each pilot with the hours of the first remote row whose
// pilot text contains the pilot identifier, or with the local default.
func ResolveHours(pilots []entities.PilotRecord, hours HoursMap) []entities.RosterEntry {
	out := make([]entities.RosterEntry, 0, len(pilots))
	for _, p := range pilots {
		entry := entities.RosterEntry{Pilot: p, Hours: p.DefaultHours}
		if h, ok := hours.lookup(p.ID); ok {
			entry.Hours = h
			entry.Synced = true
		}
		v := strings.TrimSpace(entry.Hours)
		entry.Inactive = v == "" || v == constants.InactiveHours
		out = append(out, entry)
	}
	return out
}

func (m HoursMap) lookup(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for _, e := range m {
		if strings.Contains(e.Pilot, id) {
			return e.Hours, true
		}
	}
	return "", false
}

// ParseHours turns a display value such as "1,828h" into a number. Anything
// that doesn't parse counts as zero.
func ParseHours(s string) float64 {
	s = strings.ToLower(s)
	s = strings.NewReplacer("h", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RankByHours sorts entries by parsed hours, highest first. Equal values keep
// their roster order. Display strings are carried through unchanged.
func RankByHours(entries []entities.RosterEntry) []entities.LeaderboardEntry {
	ranked := make([]entities.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, entities.LeaderboardEntry{
			Name:  e.Pilot.Name,
			Grade: e.Pilot.Grade,
			Hours: e.Hours,
			Value: ParseHours(e.Hours),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
