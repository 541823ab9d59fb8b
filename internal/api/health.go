package api

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/db"
	"atn-virtual/crewcenter/internal/models/entities"

	"gorm.io/gorm"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports database and cache status and the server uptime.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(gormDB *gorm.DB, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		services := make(map[string]entities.ServiceStatus)

		// Check database
		dbStatus := "ok"
		dbDetails := "Database Connected"
		if err := db.Ping(gormDB); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		// Check cache
		cacheStatus := "ok"
		cacheDetails := "Cache Reachable"
		if err := cache.Ping(); err != nil {
			cacheStatus = "down"
			cacheDetails = err.Error()
		}
		services["cache"] = entities.ServiceStatus{
			Status:  cacheStatus,
			Details: cacheDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		common.RespondSuccess(w, initTime, overallStatus, resp, code)
	}
}
