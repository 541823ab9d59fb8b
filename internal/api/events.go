package api

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/auth"
	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// EventParticipantsHandler godoc
// @Summary      Answers for an event
// @Tags         Events
// @Produce      json
// @Param        event  path  string  true  "Event identifier"
// @Success      200    {object} dtos.APIResponse
// @Router       /api/v1/events/{event}/participants [get]
func (h *Handlers) EventParticipantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := h.deps.Services.Events.Participants(r.Context(), chi.URLParam(r, "event"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Participants fetched", resp)
	}
}

// MyAnswerHandler godoc
// @Summary      The caller's answer to an event
// @Description  status is empty until the pilot has answered.
// @Tags         Events
// @Produce      json
// @Param        event  path  string  true  "Event identifier"
// @Success      200    {object} dtos.APIResponse
// @Router       /api/v1/events/{event}/rsvp [get]
func (h *Handlers) MyAnswerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		answer, err := h.deps.Services.Events.AnswerOf(r.Context(), chi.URLParam(r, "event"), claims.UserID())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Answer fetched", answer)
	}
}

// EventRSVPHandler godoc
// @Summary      Answer an event invitation
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        event  path  string            true  "Event identifier"
// @Param        body   body  dtos.RSVPRequest  true  "present, maybe or absent"
// @Success      200    {object} dtos.APIResponse
// @Failure      400    {object} dtos.APIResponse
// @Router       /api/v1/events/{event}/rsvp [post]
func (h *Handlers) EventRSVPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.RSVPRequest
		if err := decodeJSON(r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		vote, err := h.deps.Services.Events.Vote(r.Context(), chi.URLParam(r, "event"), claims.UserID(), req.Status)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Answer recorded", vote)
	}
}
