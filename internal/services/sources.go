package services

import (
	"context"

	"atn-virtual/crewcenter/internal/scrape"
)

// WeatherSource is implemented by providers.WeatherProvider. A false ok means
// raw is one of the weather sentinels.
type WeatherSource interface {
	FetchMetar(ctx context.Context, icao string) (raw string, ok bool)
	FetchTaf(ctx context.Context, icao string) (raw string, ok bool)
}

// FsHubSource is implemented by providers.FsHubProvider
type FsHubSource interface {
	FetchPilotsTables(ctx context.Context) ([]scrape.Table, error)
	FetchOverviewTables(ctx context.Context) ([]scrape.Table, error)
	FetchOverviewHTML(ctx context.Context) ([]byte, error)
	FetchPilotTables(ctx context.Context, fsHubID string) ([]scrape.Table, error)
}
