package services

import (
	"context"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

// DashboardService composes the home page and pilot profile views. Each part
// degrades on its own; none of them can fail the whole view.
type DashboardService struct {
	weather *WeatherService
	stats   *StatsService
	roster  *RosterService
	flights *FlightsService
}

func NewDashboardService(weather *WeatherService, stats *StatsService, rosterService *RosterService, flights *FlightsService) *DashboardService {
	return &DashboardService{weather: weather, stats: stats, roster: rosterService, flights: flights}
}

// Home returns hub weather, airline stats, the leaderboard and the latest flights
func (s *DashboardService) Home(ctx context.Context) *dtos.DashboardResponse {
	resp := &dtos.DashboardResponse{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.Weather = s.weather.GetMetar(gctx, constants.HomeAirport)
		return nil
	})
	g.Go(func() error {
		resp.Stats = s.stats.Overview(gctx)
		return nil
	})
	g.Go(func() error {
		resp.Leaderboard = s.roster.Leaderboard(gctx, constants.LeaderboardSize)
		return nil
	})
	g.Go(func() error {
		resp.RecentFlights = s.flights.RecentFlights(gctx).Limit(constants.DashboardFlights)
		return nil
	})
	_ = g.Wait()

	return resp
}

// Profile returns the roster record of pilotID with resolved hours and
// personal flights
func (s *DashboardService) Profile(ctx context.Context, pilotID string) (*dtos.ProfileResponse, error) {
	p, ok := s.roster.Roster().Find(pilotID)
	if !ok {
		return nil, newServiceError(constants.ErrCodeProfileNotFound, nil)
	}

	hours, _ := s.roster.PilotHours(ctx, pilotID)
	return &dtos.ProfileResponse{
		Pilot:   p,
		Hours:   hours,
		Linked:  p.HasProfile(),
		Flights: s.flights.PilotFlights(ctx, p.FsHubID).Limit(constants.DashboardFlights),
	}, nil
}
