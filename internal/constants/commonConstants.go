package constants

import "time"

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixMetar        CachePrefix = "METAR_"
	CachePrefixTaf          CachePrefix = "TAF_"
	CachePrefixPilotHours   CachePrefix = "FSHUB_HOURS"
	CachePrefixVAFlights    CachePrefix = "FSHUB_FLIGHTS"
	CachePrefixPilotFlights CachePrefix = "FSHUB_PILOT_"
	CachePrefixVAStats      CachePrefix = "FSHUB_STATS"
)

// Freshness tiers
const (
	ShortCacheTTL = 5 * time.Minute
	LongCacheTTL  = time.Hour
)

// Values handed to callers when an upstream source can't be used
const (
	NotAvailable           = "N/A"
	WeatherUnavailable     = "weather unavailable"
	WeatherConnectionError = "connection error"
	InactiveHours          = "-"
)

// Fallback overview figures shown when the fsHub overview page can't be read
const (
	DefaultVAFlights = "835"
	DefaultVAHours   = "1,828"
)

const (
	HomeAirport       = "NTAA"
	DashboardFlights  = 5
	LeaderboardSize   = 3
	AverageLandingFPM = "-289 fpm"
)

// IsWeatherSentinel reports whether raw is one of the weather fallback strings
func IsWeatherSentinel(raw string) bool {
	switch raw {
	case WeatherUnavailable, WeatherConnectionError:
		return true
	}
	return false
}
