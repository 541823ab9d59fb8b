package api

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/common"

	"github.com/go-chi/chi/v5"
)

// MetarHandler godoc
// @Summary      Current weather for an airport
// @Description  Latest METAR with wind, temperature and pressure decoded. A station
// @Description  that can't be read still answers 200 with available=false.
// @Tags         Weather
// @Produce      json
// @Param        icao  path  string  true  "ICAO code"
// @Success      200   {object} dtos.APIResponse
// @Router       /api/v1/weather/{icao} [get]
func (h *Handlers) MetarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report := h.deps.Services.Weather.GetMetar(r.Context(), chi.URLParam(r, "icao"))
		common.RespondSuccess(w, initTime, "METAR fetched", report)
	}
}

// TafHandler godoc
// @Summary      Forecast for an airport
// @Tags         Weather
// @Produce      json
// @Param        icao  path  string  true  "ICAO code"
// @Success      200   {object} dtos.APIResponse
// @Router       /api/v1/weather/{icao}/taf [get]
func (h *Handlers) TafHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report := h.deps.Services.Weather.GetTaf(r.Context(), chi.URLParam(r, "icao"))
		common.RespondSuccess(w, initTime, "TAF fetched", report)
	}
}

// BriefingHandler godoc
// @Summary      Route weather briefing
// @Tags         Weather
// @Produce      json
// @Param        dep       query  string  true   "Departure ICAO"
// @Param        arr       query  string  true   "Arrival ICAO"
// @Param        aircraft  query  string  false  "Aircraft type for the SimBrief link"
// @Success      200  {object} dtos.APIResponse
// @Failure      400  {object} dtos.APIResponse
// @Router       /api/v1/briefing [get]
func (h *Handlers) BriefingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		resp, err := h.deps.Services.Briefing.Brief(r.Context(), q.Get("dep"), q.Get("arr"), q.Get("aircraft"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Briefing ready", resp)
	}
}
