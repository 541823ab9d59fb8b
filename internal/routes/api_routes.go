package routes

import (
	"atn-virtual/crewcenter/internal/api"
	"atn-virtual/crewcenter/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the login endpoint and all API v1 routes
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies, limiter *middleware.RateLimiter) {

	// Public routes
	r.Group(func(public chi.Router) {
		public.With(limiter.Middleware).Post("/auth/login", handlers.LoginHandler())
	})

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Services.Signer)) // every route needs a session token

		v1.Get("/weather/{icao}", handlers.MetarHandler())
		v1.Get("/weather/{icao}/taf", handlers.TafHandler())
		v1.Get("/briefing", handlers.BriefingHandler())

		v1.Get("/dashboard", handlers.DashboardHandler())
		v1.Get("/stats", handlers.StatsHandler())
		v1.Get("/roster", handlers.RosterHandler())
		v1.Get("/leaderboard", handlers.LeaderboardHandler())
		v1.Get("/flights/recent", handlers.RecentFlightsHandler())
		v1.Get("/pilots/{id}/flights", handlers.PilotFlightsHandler())
		v1.Get("/pilot/me", handlers.ProfileHandler())

		// Forms that end up in the staff mailbox
		v1.Group(func(forms chi.Router) {
			forms.Use(limiter.Middleware)
			forms.Post("/pireps", handlers.PirepHandler())
			forms.Post("/tours/validation", handlers.TourValidationHandler())
			forms.Post("/contact", handlers.ContactHandler())
		})

		v1.Get("/events/{event}/participants", handlers.EventParticipantsHandler())
		v1.Get("/events/{event}/rsvp", handlers.MyAnswerHandler())
		v1.Post("/events/{event}/rsvp", handlers.EventRSVPHandler())

		// Staff-only group
		v1.Group(func(staff chi.Router) {
			staff.Use(middleware.IsStaffMiddleware())
			staff.Get("/staff/outbox", handlers.OutboxHandler())
		})
	})
}
