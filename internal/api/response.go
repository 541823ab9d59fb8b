package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/services"
)

const maxBodyBytes = 64 << 10

// respondServiceError maps service errors onto HTTP statuses
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	var verr *services.ValidationError
	var serr *services.ServiceError

	switch {
	case errors.As(err, &verr):
		common.RespondError(w, initTime, err, "", http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidCredentials):
		common.RespondError(w, initTime, err, "", http.StatusUnauthorized)
	case errors.As(err, &serr):
		switch serr.Code {
		case constants.ErrCodeProfileNotFound:
			common.RespondError(w, initTime, errors.New(serr.Message), "", http.StatusNotFound)
		case constants.ErrCodeQueueFailure:
			common.RespondError(w, initTime, errors.New(serr.Message), "", http.StatusServiceUnavailable)
		default:
			common.RespondError(w, initTime, errors.New(serr.Message), "", http.StatusInternalServerError)
		}
	default:
		common.RespondError(w, initTime, nil, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON reads a bounded JSON body into dst
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &services.ValidationError{Message: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	return nil
}
