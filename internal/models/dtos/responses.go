package dtos

import (
	"time"

	"atn-virtual/crewcenter/internal/models/entities"
)

// --- Controller endpoints ----

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
}

// BriefingResponse pairs the weather of both ends of a route
type BriefingResponse struct {
	Departure   AirportBriefing `json:"departure"`
	Arrival     AirportBriefing `json:"arrival"`
	SimBriefURL string          `json:"simbrief_url,omitempty"`
}

type AirportBriefing struct {
	Metar entities.WeatherReport  `json:"metar"`
	Taf   entities.ForecastReport `json:"taf"`
}

type DashboardResponse struct {
	Weather       entities.WeatherReport      `json:"weather"`
	Stats         entities.VAStats            `json:"stats"`
	Leaderboard   []entities.LeaderboardEntry `json:"leaderboard"`
	RecentFlights entities.FlightLog          `json:"recent_flights"`
}

type ProfileResponse struct {
	Pilot   entities.PilotRecord `json:"pilot"`
	Hours   string               `json:"hours"`
	Linked  bool                 `json:"linked"`
	Flights entities.FlightLog   `json:"flights"`
}

type RosterResponse struct {
	Pilots []entities.RosterEntry `json:"pilots"`
	Count  int                    `json:"count"`
}

type MailQueuedResponse struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
}

type ParticipantsResponse struct {
	EventID string                        `json:"event_id"`
	Present []string                      `json:"present"`
	Maybe   []string                      `json:"maybe"`
	Absent  []string                      `json:"absent"`
	Votes   []entities.EventParticipation `json:"votes"`
}

type OutboxResponse struct {
	Pending int64 `json:"pending"`
}
