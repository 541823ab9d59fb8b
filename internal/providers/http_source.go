package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/metrics"
)

const maxBodyBytes = 4 << 20

// httpSource is the plumbing shared by the NOAA and fsHub providers: one GET,
// bounded body, status classification and upstream metrics.
type httpSource struct {
	name      string
	client    *http.Client
	userAgent string
	metrics   *metrics.MetricsRegistry
}

// doGET performs a single GET and returns the body of a 200 response. Any
// other outcome is a *ProviderError.
func (s *httpSource) doGET(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	body, err := s.get(ctx, url)
	s.observe(start, err)
	return body, err
}

func (s *httpSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &ProviderError{
			Code:       constants.ErrCodeNetworkError,
			Message:    "Failed to read response body",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, buildHTTPError(resp.StatusCode, url, body)
	}
	return body, nil
}

func (s *httpSource) observe(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if pe, ok := err.(*ProviderError); ok {
		outcome = pe.Code
	}
	s.metrics.UpstreamRequestsTotal.WithLabelValues(s.name, outcome).Inc()
	s.metrics.UpstreamRequestDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
}

// buildHTTPError creates appropriate error based on status code
func buildHTTPError(statusCode int, url string, body []byte) error {
	details := string(body)
	if len(details) > 256 {
		details = details[:256]
	}

	switch statusCode {
	case http.StatusNotFound:
		return &ProviderError{
			Code:       constants.ErrCodeResourceNotFound,
			Message:    fmt.Sprintf("Resource not found: %s", url),
			Details:    details,
			StatusCode: statusCode,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:       constants.ErrCodeRateLimited,
			Message:    constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details:    details,
			StatusCode: statusCode,
		}
	default:
		return &ProviderError{
			Code:       constants.ErrCodeUpstreamStatus,
			Message:    fmt.Sprintf("HTTP %d from %s", statusCode, url),
			Details:    details,
			StatusCode: statusCode,
		}
	}
}

// isTransportError reports whether err never got an HTTP status back
func isTransportError(err error) bool {
	pe, ok := err.(*ProviderError)
	return !ok || pe.StatusCode == 0
}
