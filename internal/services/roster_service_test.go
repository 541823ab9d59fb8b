package services

import (
	"context"
	"reflect"
	"testing"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/entities"
	"atn-virtual/crewcenter/internal/roster"
	"atn-virtual/crewcenter/internal/scrape"
)

func testPilot(id, hours string) entities.PilotRecord {
	return entities.PilotRecord{ID: id, Name: "Pilot " + id, Grade: constants.GradePPL, Role: constants.RoleRegular, DefaultHours: hours}
}

func TestResolveHours_SubstringMatch(t *testing.T) {
	pilots := []entities.PilotRecord{testPilot("THT1001", "100h")}
	hours := HoursMap{{Pilot: "SomeName THT1001_extra", Hours: "232h"}}

	got := ResolveHours(pilots, hours)
	if got[0].Hours != "232h" {
		t.Errorf("Expected 232h, got %s", got[0].Hours)
	}
	if !got[0].Synced {
		t.Error("Expected entry to be marked synced")
	}
}

func TestResolveHours_DefaultWhenNoMatch(t *testing.T) {
	pilots := []entities.PilotRecord{testPilot("THT1001", "100h")}
	hours := HoursMap{{Pilot: "Other THT1002", Hours: "232h"}}

	got := ResolveHours(pilots, hours)
	if got[0].Hours != "100h" || got[0].Synced {
		t.Errorf("Expected unchanged default, got %+v", got[0])
	}

	empty := ResolveHours(pilots, nil)
	if empty[0].Hours != "100h" {
		t.Errorf("Expected default with empty mapping, got %s", empty[0].Hours)
	}
}

func TestResolveHours_FirstRowWins(t *testing.T) {
	pilots := []entities.PilotRecord{testPilot("THT1001", "0h")}
	hours := HoursMap{
		{Pilot: "A THT1001", Hours: "10h"},
		{Pilot: "B THT1001", Hours: "20h"},
	}

	if got := ResolveHours(pilots, hours)[0].Hours; got != "10h" {
		t.Errorf("Expected first row to win, got %s", got)
	}
}

func TestResolveHours_Inactive(t *testing.T) {
	pilots := []entities.PilotRecord{testPilot("THT1001", "-"), testPilot("THT1002", ""), testPilot("THT1003", "0h")}

	got := ResolveHours(pilots, nil)
	if !got[0].Inactive || !got[1].Inactive {
		t.Error("Expected '-' and empty hours to be inactive")
	}
	if got[2].Inactive {
		t.Error("Expected 0h to be active")
	}
}

func TestParseHours(t *testing.T) {
	tests := map[string]float64{
		"232h":    232,
		"1,828h":  1828,
		"abc":     0,
		"74h":     74,
		"1 234 H": 1234,
		"12.5h":   12.5,
		"":        0,
		"-":       0,
		"NaN":     0,
	}
	for in, want := range tests {
		if got := ParseHours(in); got != want {
			t.Errorf("ParseHours(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRankByHours(t *testing.T) {
	var entries []entities.RosterEntry
	for i, h := range []string{"232h", "1,828h", "abc", "74h"} {
		entries = append(entries, entities.RosterEntry{Pilot: testPilot(string(rune('A'+i)), h), Hours: h})
	}

	ranked := RankByHours(entries)

	var order []string
	var values []float64
	for _, e := range ranked {
		order = append(order, e.Hours)
		values = append(values, e.Value)
	}
	if want := []string{"1,828h", "232h", "74h", "abc"}; !reflect.DeepEqual(order, want) {
		t.Errorf("Expected order %v, got %v", want, order)
	}
	if want := []float64{1828, 232, 74, 0}; !reflect.DeepEqual(values, want) {
		t.Errorf("Expected values %v, got %v", want, values)
	}
	if ranked[0].Rank != 1 || ranked[3].Rank != 4 {
		t.Errorf("Unexpected ranks %+v", ranked)
	}
}

func TestRankByHours_StableOnTies(t *testing.T) {
	entries := []entities.RosterEntry{
		{Pilot: testPilot("first", "10h"), Hours: "10h"},
		{Pilot: testPilot("second", "10h"), Hours: "10h"},
		{Pilot: testPilot("third", "x"), Hours: "x"},
		{Pilot: testPilot("fourth", "y"), Hours: "y"},
	}

	ranked := RankByHours(entries)
	if ranked[0].Name != "Pilot first" || ranked[1].Name != "Pilot second" {
		t.Errorf("Expected ties to keep roster order, got %+v", ranked)
	}
	if ranked[2].Name != "Pilot third" || ranked[3].Name != "Pilot fourth" {
		t.Errorf("Expected zero values to keep roster order, got %+v", ranked)
	}
}

func TestExtractHoursMap_PicksMatchingTable(t *testing.T) {
	tables := []scrape.Table{
		{Headers: []string{"Rank", "Airline"}, Rows: [][]string{{"1", "THT"}}},
		{Headers: []string{" Pilot ", "Total Hours"}, Rows: [][]string{{"Jane THT1001", "232h"}, {"Joe THT1002", "190h"}}},
	}

	got, ok := extractHoursMap(tables)
	if !ok {
		t.Fatal("Expected a hours table")
	}
	want := HoursMap{{Pilot: "Jane THT1001", Hours: "232h"}, {Pilot: "Joe THT1002", Hours: "190h"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if _, ok := extractHoursMap(tables[:1]); ok {
		t.Error("Expected no table without pilot and hours columns")
	}
}

func TestRosterService_Reconcile(t *testing.T) {
	fshub := &mockFsHub{pilots: []scrape.Table{pilotsTable(
		[]string{"Teiki THT1001", "120", "250h"},
		[]string{"Hina THT1007", "80", "1,130h"},
	)}}
	svc := NewRosterService(roster.Default(), fshub, newTestCache(), metrics.Nop())

	entries := svc.Reconcile(context.Background())
	if len(entries) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(entries))
	}

	byID := map[string]entities.RosterEntry{}
	for _, e := range entries {
		byID[e.Pilot.ID] = e
	}
	if byID["THT1001"].Hours != "250h" {
		t.Errorf("Expected THT1001 from fsHub, got %s", byID["THT1001"].Hours)
	}
	if byID["THT1002"].Hours != "190h" || byID["THT1002"].Synced {
		t.Errorf("Expected THT1002 default, got %+v", byID["THT1002"])
	}

	top := svc.Leaderboard(context.Background(), constants.LeaderboardSize)
	if len(top) != 3 {
		t.Fatalf("Expected 3 leaders, got %d", len(top))
	}
	if top[0].Hours != "1,130h" {
		t.Errorf("Expected 1,130h to lead, got %+v", top[0])
	}

	if fshub.Calls("pilots") != 1 {
		t.Errorf("Expected hours to be fetched once, got %d", fshub.Calls("pilots"))
	}
}

func TestRosterService_FallsBackToDefaults(t *testing.T) {
	fshub := &mockFsHub{err: errUpstream}
	svc := NewRosterService(roster.Default(), fshub, newTestCache(), metrics.Nop())

	for _, e := range svc.Reconcile(context.Background()) {
		if e.Hours != e.Pilot.DefaultHours || e.Synced {
			t.Errorf("Expected default for %s, got %+v", e.Pilot.ID, e)
		}
	}

	svc.HoursMap(context.Background())
	if fshub.Calls("pilots") != 2 {
		t.Errorf("Expected failed fetch not to be cached, got %d calls", fshub.Calls("pilots"))
	}
}

func TestRosterService_PilotHours(t *testing.T) {
	fshub := &mockFsHub{pilots: []scrape.Table{pilotsTable([]string{"THT1003 Moana", "300", "612h"})}}
	svc := NewRosterService(roster.Default(), fshub, newTestCache(), metrics.Nop())

	hours, ok := svc.PilotHours(context.Background(), "THT1003")
	if !ok || hours != "612h" {
		t.Errorf("Expected 612h, got %q (%v)", hours, ok)
	}

	if _, ok := svc.PilotHours(context.Background(), "THT9999"); ok {
		t.Error("Expected unknown pilot to be reported")
	}
}
