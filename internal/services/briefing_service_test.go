package services

import (
	"context"
	"errors"
	"testing"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/roster"
	"atn-virtual/crewcenter/internal/scrape"
)

func TestBriefingService_Brief(t *testing.T) {
	source := &mockWeather{
		metar: map[string]string{"NTAA": "NTAA 011200Z 10008KT 24/22 Q1012"},
		taf:   map[string]string{"NTAA": "TAF NTAA 011100Z"},
	}
	svc := NewBriefingService(NewWeatherService(source, newTestCache(), metrics.Nop()))

	resp, err := svc.Brief(context.Background(), "ntaa", "NTTB", "A320")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Departure.Metar.Fields.Pressure != "Q1012" || resp.Departure.Taf.Raw != "TAF NTAA 011100Z" {
		t.Errorf("Unexpected departure %+v", resp.Departure)
	}
	if resp.Arrival.Metar.Available || resp.Arrival.Metar.Raw != constants.WeatherUnavailable {
		t.Errorf("Expected arrival weather to be unavailable, got %+v", resp.Arrival.Metar)
	}
	if resp.SimBriefURL != "https://dispatch.simbrief.com/options/new?type=A320&orig=NTAA&dest=NTTB" {
		t.Errorf("Unexpected SimBrief URL %q", resp.SimBriefURL)
	}
}

func TestBriefingService_RequiresAirports(t *testing.T) {
	svc := NewBriefingService(NewWeatherService(&mockWeather{}, newTestCache(), metrics.Nop()))

	var verr *ValidationError
	if _, err := svc.Brief(context.Background(), "NTAA", " ", ""); !errors.As(err, &verr) {
		t.Errorf("Expected validation error, got %v", err)
	}
	resp, err := svc.Brief(context.Background(), "NTAA", "NTTB", "")
	if err != nil || resp.SimBriefURL != "" {
		t.Errorf("Expected no SimBrief link without aircraft, got %+v, %v", resp, err)
	}
}

func TestDashboardService(t *testing.T) {
	cache := newTestCache()
	m := metrics.Nop()
	fshub := &mockFsHub{
		pilots: []scrape.Table{pilotsTable([]string{"THT1001", "1", "900h"})},
		overview: []scrape.Table{{
			Headers: []string{"Pilot", "Dep", "Arr", "Aircraft", "Landing", "Date"},
			Rows: [][]string{
				{"a", "NTAA", "NTTB", "AT76", "-100", "1"}, {"b", "NTAA", "NTTB", "AT76", "-100", "2"},
				{"c", "NTAA", "NTTB", "AT76", "-100", "3"}, {"d", "NTAA", "NTTB", "AT76", "-100", "4"},
				{"e", "NTAA", "NTTB", "AT76", "-100", "5"}, {"f", "NTAA", "NTTB", "AT76", "-100", "6"},
			},
		}},
		pilot: map[string][]scrape.Table{},
	}
	weather := NewWeatherService(&mockWeather{metar: map[string]string{"NTAA": "NTAA 011200Z 10008KT 24/22 Q1012"}}, cache, m)
	rosterService := NewRosterService(roster.Default(), fshub, cache, m)
	svc := NewDashboardService(weather, NewStatsService(fshub, rosterService, cache, m), rosterService, NewFlightsService(fshub, cache, m))

	home := svc.Home(context.Background())
	if home.Weather.ICAO != "NTAA" || !home.Weather.Available {
		t.Errorf("Unexpected weather %+v", home.Weather)
	}
	if len(home.Leaderboard) != 3 || home.Leaderboard[0].Hours != "900h" {
		t.Errorf("Unexpected leaderboard %+v", home.Leaderboard)
	}
	if !home.RecentFlights.Success || len(home.RecentFlights.Records) != 5 {
		t.Errorf("Expected 5 recent flights, got %+v", home.RecentFlights)
	}
	if home.Stats.FromUpstream {
		t.Errorf("Expected default stats for an empty overview page, got %+v", home.Stats)
	}

	profile, err := svc.Profile(context.Background(), "THT1001")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if profile.Hours != "900h" || !profile.Linked || profile.Flights.Success {
		t.Errorf("Unexpected profile %+v", profile)
	}

	if _, err := svc.Profile(context.Background(), "admin"); err == nil {
		t.Error("Expected unknown profile error")
	}
}
