package api

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/models/dtos"
)

// RosterHandler godoc
// @Summary      Roster with reconciled hours
// @Tags         Roster
// @Produce      json
// @Success      200  {object} dtos.APIResponse
// @Router       /api/v1/roster [get]
func (h *Handlers) RosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		entries := h.deps.Services.Roster.Reconcile(r.Context())
		common.RespondSuccess(w, initTime, "Roster fetched", dtos.RosterResponse{
			Pilots: entries,
			Count:  len(entries),
		})
	}
}

// LeaderboardHandler godoc
// @Summary      Top pilots by hours
// @Tags         Roster
// @Produce      json
// @Success      200  {object} dtos.APIResponse
// @Router       /api/v1/leaderboard [get]
func (h *Handlers) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		top := h.deps.Services.Roster.Leaderboard(r.Context(), constants.LeaderboardSize)
		common.RespondSuccess(w, initTime, "Leaderboard fetched", top)
	}
}

func (h *Handlers) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Stats fetched", h.deps.Services.Stats.Overview(r.Context()))
	}
}

func (h *Handlers) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Dashboard fetched", h.deps.Services.Dashboard.Home(r.Context()))
	}
}
