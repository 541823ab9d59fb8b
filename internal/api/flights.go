package api

import (
	"errors"
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/auth"
	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"

	"github.com/go-chi/chi/v5"
)

// RecentFlightsHandler godoc
// @Summary      Latest airline flights
// @Description  success=false means fsHub could not be read, not that nobody flew.
// @Tags         Flights
// @Produce      json
// @Success      200  {object} dtos.APIResponse
// @Router       /api/v1/flights/recent [get]
func (h *Handlers) RecentFlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		log := h.deps.Services.Flights.RecentFlights(r.Context()).Limit(constants.DashboardFlights)
		common.RespondSuccess(w, initTime, "Flights fetched", log)
	}
}

// PilotFlightsHandler godoc
// @Summary      Latest flights of a roster pilot
// @Tags         Flights
// @Produce      json
// @Param        id   path  string  true  "Roster identifier, e.g. THT1001"
// @Success      200  {object} dtos.APIResponse
// @Failure      404  {object} dtos.APIResponse
// @Router       /api/v1/pilots/{id}/flights [get]
func (h *Handlers) PilotFlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilot, ok := h.deps.Services.Roster.Roster().Find(chi.URLParam(r, "id"))
		if !ok {
			common.RespondError(w, initTime, errors.New("pilot not found"), "", http.StatusNotFound)
			return
		}

		log := h.deps.Services.Flights.PilotFlights(r.Context(), pilot.FsHubID).Limit(constants.DashboardFlights)
		common.RespondSuccess(w, initTime, "Flights fetched", log)
	}
}

// ProfileHandler returns the caller's roster profile
func (h *Handlers) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		profile, err := h.deps.Services.Dashboard.Profile(r.Context(), claims.UserID())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Profile fetched", profile)
	}
}
