package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/scrape"
)

var errUpstream = errors.New("connection refused")

// Mock FsHubSource
type mockFsHub struct {
	mu       sync.Mutex
	calls    map[string]int
	pilots   []scrape.Table
	overview []scrape.Table
	html     []byte
	pilot    map[string][]scrape.Table
	err      error
}

func (m *mockFsHub) count(page string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[page]++
}

func (m *mockFsHub) Calls(page string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[page]
}

func (m *mockFsHub) FetchPilotsTables(ctx context.Context) ([]scrape.Table, error) {
	m.count("pilots")
	return m.pilots, m.err
}

func (m *mockFsHub) FetchOverviewTables(ctx context.Context) ([]scrape.Table, error) {
	m.count("overview")
	return m.overview, m.err
}

func (m *mockFsHub) FetchOverviewHTML(ctx context.Context) ([]byte, error) {
	m.count("overview_html")
	return m.html, m.err
}

func (m *mockFsHub) FetchPilotTables(ctx context.Context, fsHubID string) ([]scrape.Table, error) {
	m.count("pilot/" + fsHubID)
	return m.pilot[fsHubID], m.err
}

// Mock WeatherSource
type mockWeather struct {
	mu    sync.Mutex
	calls int
	metar map[string]string
	taf   map[string]string
}

func (m *mockWeather) FetchMetar(ctx context.Context, icao string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if raw, ok := m.metar[icao]; ok {
		return raw, true
	}
	return constants.WeatherUnavailable, false
}

func (m *mockWeather) FetchTaf(ctx context.Context, icao string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if raw, ok := m.taf[icao]; ok {
		return raw, true
	}
	return constants.WeatherConnectionError, false
}

func newTestCache() *common.FreshnessCache {
	return common.NewFreshnessCache(common.NewCacheService(time.Minute, time.Minute), 0, 0, metrics.Nop())
}

func pilotsTable(rows ...[]string) scrape.Table {
	return scrape.Table{Headers: []string{"Pilot", "Flights", "Hours"}, Rows: rows}
}
