package services

import (
	"context"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/entities"
)

// WeatherService serves decoded METARs and raw TAFs through the short cache tier
type WeatherService struct {
	source  WeatherSource
	cache   *common.FreshnessCache
	metrics *metrics.MetricsRegistry
}

func NewWeatherService(source WeatherSource, cache *common.FreshnessCache, m *metrics.MetricsRegistry) *WeatherService {
	return &WeatherService{source: source, cache: cache, metrics: m}
}

// GetMetar never fails; an unreachable station yields a report whose Raw is a
// sentinel and whose fields are all "N/A".
func (s *WeatherService) GetMetar(ctx context.Context, icao string) entities.WeatherReport {
	icao = common.NormalizeICAO(icao)

	return common.Fetch(s.cache, constants.CachePrefixMetar, icao, s.cache.Short, func() (entities.WeatherReport, bool) {
		raw, ok := s.source.FetchMetar(ctx, icao)
		ok = ok && !constants.IsWeatherSentinel(raw)
		if !ok {
			s.fallback("metar")
		}
		return entities.WeatherReport{
			ICAO:      icao,
			Raw:       raw,
			Fields:    ExtractMetarFields(raw),
			Available: ok,
		}, ok
	})
}

// GetTaf returns the full forecast document for icao
func (s *WeatherService) GetTaf(ctx context.Context, icao string) entities.ForecastReport {
	icao = common.NormalizeICAO(icao)

	return common.Fetch(s.cache, constants.CachePrefixTaf, icao, s.cache.Short, func() (entities.ForecastReport, bool) {
		raw, ok := s.source.FetchTaf(ctx, icao)
		ok = ok && !constants.IsWeatherSentinel(raw)
		if !ok {
			s.fallback("taf")
		}
		return entities.ForecastReport{ICAO: icao, Raw: raw, Available: ok}, ok
	})
}

func (s *WeatherService) fallback(op string) {
	if s.metrics != nil {
		s.metrics.FallbacksTotal.WithLabelValues(op).Inc()
	}
}
