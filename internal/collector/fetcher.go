package collector

import (
	"context"

	"cryptodash/internal/model"
)

// Fetcher defines the interface for fetching latest quotes for a set of assets.
type Fetcher interface {
	FetchQuotes(ctx context.Context, slugs []string) ([]model.Quote, error)
	Name() string
}
