package api

import (
	"errors"
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/models/dtos"
)

// OutboxHandler godoc
// @Summary      Mail outbox depth
// @Description  Staff only. Number of form messages waiting for the mail worker.
// @Tags         Staff
// @Produce      json
// @Success      200  {object} dtos.APIResponse
// @Failure      403,503  {object} dtos.APIResponse
// @Router       /api/v1/staff/outbox [get]
func (h *Handlers) OutboxHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		n, err := h.deps.Services.MailQueue.Len(r.Context())
		if err != nil {
			logging.Error("Failed to read mail outbox length", "error", err.Error())
			common.RespondError(w, initTime, errors.New("mail outbox unavailable"), "", http.StatusServiceUnavailable)
			return
		}
		common.RespondSuccess(w, initTime, "Outbox fetched", dtos.OutboxResponse{Pending: n})
	}
}
