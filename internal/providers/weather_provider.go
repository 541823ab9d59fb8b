package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
)

const (
	DefaultWeatherBaseURL = "https://tgftp.nws.noaa.gov"
	DefaultWeatherTimeout = 2 * time.Second

	metarPathFmt = "/data/observations/metar/stations/%s.TXT"
	tafPathFmt   = "/data/forecasts/taf/stations/%s.TXT"
)

// WeatherProvider reads METAR and TAF bulletins from the NOAA text feed.
// Every call is one best-effort GET; failures come back as sentinel strings.
type WeatherProvider struct {
	BaseURL string
	src     httpSource
}

// NewWeatherProvider creates a NOAA provider. A zero timeout means the default.
func NewWeatherProvider(baseURL string, timeout time.Duration, m *metrics.MetricsRegistry) *WeatherProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultWeatherTimeout
	}
	return &WeatherProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		src: httpSource{
			name:    "noaa",
			client:  &http.Client{Timeout: timeout},
			metrics: m,
		},
	}
}

// FetchMetar returns the observation line for icao. The feed's first line is
// a timestamp and is dropped. ok is false when raw is a sentinel.
func (p *WeatherProvider) FetchMetar(ctx context.Context, icao string) (raw string, ok bool) {
	body, err := p.src.doGET(ctx, p.BaseURL+fmt.Sprintf(metarPathFmt, icao))
	if err != nil {
		return p.sentinel("metar", icao, err), false
	}

	text := string(body)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) >= 2 {
		return strings.TrimSpace(lines[1]), true
	}
	return text, true
}

// FetchTaf returns the whole forecast document for icao
func (p *WeatherProvider) FetchTaf(ctx context.Context, icao string) (raw string, ok bool) {
	body, err := p.src.doGET(ctx, p.BaseURL+fmt.Sprintf(tafPathFmt, icao))
	if err != nil {
		return p.sentinel("taf", icao, err), false
	}
	return string(body), true
}

func (p *WeatherProvider) sentinel(kind, icao string, err error) string {
	logging.Warn("Weather fetch failed",
		"source", "noaa",
		"kind", kind,
		"icao", icao,
		"error", err.Error(),
	)
	if isTransportError(err) {
		return constants.WeatherConnectionError
	}
	return constants.WeatherUnavailable
}
