package api

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/auth"
	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/models/dtos"
)

// PirepHandler godoc
// @Summary      Submit a manual PIREP
// @Description  The report is mailed to the staff; 202 means it was queued.
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        body  body  dtos.PirepRequest  true  "Flight report"
// @Success      202   {object} dtos.APIResponse
// @Failure      400,503  {object} dtos.APIResponse
// @Router       /api/v1/pireps [post]
func (h *Handlers) PirepHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.PirepRequest
		if err := decodeJSON(r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		msg, err := h.deps.Services.Mail.SubmitPirep(r.Context(), claims.UserID(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "PIREP sent to staff", dtos.MailQueuedResponse{ID: msg.ID, Subject: msg.Subject}, http.StatusAccepted)
	}
}

// TourValidationHandler godoc
// @Summary      Request validation of a tour leg
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        body  body  dtos.TourValidationRequest  true  "Tour leg"
// @Success      202   {object} dtos.APIResponse
// @Failure      400,503  {object} dtos.APIResponse
// @Router       /api/v1/tours/validation [post]
func (h *Handlers) TourValidationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.TourValidationRequest
		if err := decodeJSON(r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		msg, err := h.deps.Services.Mail.SubmitTourValidation(r.Context(), claims.UserID(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Validation request sent to staff", dtos.MailQueuedResponse{ID: msg.ID, Subject: msg.Subject}, http.StatusAccepted)
	}
}

func (h *Handlers) ContactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.ContactRequest
		if err := decodeJSON(r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		msg, err := h.deps.Services.Mail.SubmitContact(r.Context(), claims.UserID(), req)
		if err != nil {
			logging.WithRequest(auth.GetRequestID(r.Context()), claims.UserID(), r.URL.Path).Warnw("Contact form rejected", "error", err)
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Message sent to staff", dtos.MailQueuedResponse{ID: msg.ID, Subject: msg.Subject}, http.StatusAccepted)
	}
}
