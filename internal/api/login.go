package api

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/models/dtos"
)

// LoginHandler godoc
// @Summary      Log in
// @Description  Checks the crew credentials and returns a session token for the
// @Description  Authorization header.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body  dtos.LoginRequest  true  "Credentials"
// @Success      200   {object} dtos.APIResponse
// @Failure      400,401  {object} dtos.APIResponse
// @Router       /auth/login [post]
func (h *Handlers) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		resp, err := h.deps.Services.Auth.Login(req.Username, req.Password)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}
