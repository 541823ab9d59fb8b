package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

const simBriefDispatchURL = "https://dispatch.simbrief.com/options/new"

// BriefingService assembles the weather for both ends of a route
type BriefingService struct {
	weather *WeatherService
}

func NewBriefingService(weather *WeatherService) *BriefingService {
	return &BriefingService{weather: weather}
}

// Brief fetches METAR and TAF of dep and arr concurrently. The weather calls
// never fail, so the only error is a missing airport.
func (s *BriefingService) Brief(ctx context.Context, dep, arr, aircraft string) (*dtos.BriefingResponse, error) {
	dep = common.NormalizeICAO(dep)
	arr = common.NormalizeICAO(arr)
	if dep == "" {
		return nil, newValidationError("dep", "departure airport is required")
	}
	if arr == "" {
		return nil, newValidationError("arr", "arrival airport is required")
	}

	resp := &dtos.BriefingResponse{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.Departure.Metar = s.weather.GetMetar(gctx, dep)
		return nil
	})
	g.Go(func() error {
		resp.Departure.Taf = s.weather.GetTaf(gctx, dep)
		return nil
	})
	g.Go(func() error {
		resp.Arrival.Metar = s.weather.GetMetar(gctx, arr)
		return nil
	})
	g.Go(func() error {
		resp.Arrival.Taf = s.weather.GetTaf(gctx, arr)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ac := strings.TrimSpace(aircraft); ac != "" {
		resp.SimBriefURL = SimBriefURL(ac, dep, arr)
	}
	return resp, nil
}

// SimBriefURL links to a pre-filled SimBrief dispatch form
func SimBriefURL(aircraft, dep, arr string) string {
	return fmt.Sprintf("%s?type=%s&orig=%s&dest=%s", simBriefDispatchURL,
		url.QueryEscape(aircraft), url.QueryEscape(dep), url.QueryEscape(arr))
}
