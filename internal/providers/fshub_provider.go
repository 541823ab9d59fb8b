package providers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/scrape"
)

const (
	DefaultFsHubBaseURL = "https://fshub.io"
	DefaultFsHubAirline = "THT"
	DefaultFsHubTimeout = 8 * time.Second

	// fsHub turns away clients it doesn't recognise
	fsHubUserAgent = "Mozilla/5.0"
)

// FsHubProvider reads the public airline and pilot pages of fsHub
type FsHubProvider struct {
	BaseURL string
	Airline string
	src     httpSource
}

// NewFsHubProvider creates an fsHub provider. Empty values mean the defaults.
func NewFsHubProvider(baseURL, airline string, timeout time.Duration, m *metrics.MetricsRegistry) *FsHubProvider {
	if baseURL == "" {
		baseURL = DefaultFsHubBaseURL
	}
	if airline == "" {
		airline = DefaultFsHubAirline
	}
	if timeout <= 0 {
		timeout = DefaultFsHubTimeout
	}
	return &FsHubProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Airline: airline,
		src: httpSource{
			name:      "fshub",
			client:    &http.Client{Timeout: timeout},
			userAgent: fsHubUserAgent,
			metrics:   m,
		},
	}
}

// FetchPilotsTables returns the tables of the airline pilot list
func (p *FsHubProvider) FetchPilotsTables(ctx context.Context) ([]scrape.Table, error) {
	return p.fetchTables(ctx, p.airlineURL("pilots"))
}

// FetchOverviewTables returns the tables of the airline overview page
func (p *FsHubProvider) FetchOverviewTables(ctx context.Context) ([]scrape.Table, error) {
	return p.fetchTables(ctx, p.airlineURL("overview"))
}

// FetchOverviewHTML returns the raw overview page
func (p *FsHubProvider) FetchOverviewHTML(ctx context.Context) ([]byte, error) {
	return p.src.doGET(ctx, p.airlineURL("overview"))
}

// FetchPilotTables returns the tables of one pilot's profile page
func (p *FsHubProvider) FetchPilotTables(ctx context.Context, fsHubID string) ([]scrape.Table, error) {
	if fsHubID == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "fsHub ID cannot be empty",
		}
	}
	return p.fetchTables(ctx, fmt.Sprintf("%s/pilot/%s", p.BaseURL, url.PathEscape(fsHubID)))
}

func (p *FsHubProvider) airlineURL(page string) string {
	return fmt.Sprintf("%s/airline/%s/%s", p.BaseURL, url.PathEscape(p.Airline), page)
}

func (p *FsHubProvider) fetchTables(ctx context.Context, pageURL string) ([]scrape.Table, error) {
	body, err := p.src.doGET(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	tables, err := scrape.ParseTables(bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{
			Code:       constants.ErrCodeInvalidDataFormat,
			Message:    "Failed to parse page",
			StatusCode: http.StatusOK,
			Err:        err,
		}
	}
	return tables, nil
}
