package view

import (
	"cryptodash/internal/model"
)

// Card is the display projection of one asset. All figures arrive
// pre-formatted; the transport layer never touches raw numbers.
type Card struct {
	Slug      string              `json:"slug"`
	Name      string              `json:"name"`
	Symbol    string              `json:"symbol"`
	Icon      string              `json:"icon"`
	Category  model.AssetCategory `json:"category"`
	Price     string              `json:"price"`
	RawPrice  float64             `json:"raw_price"`
	Change    string              `json:"change"`
	Direction string              `json:"direction"` // up | down
	Volume    string              `json:"volume"`
	MarketCap string              `json:"market_cap"`
	Flash     string              `json:"flash,omitempty"` // up | down, self-reverting
}

// ChartSeries is one line of the price chart.
type ChartSeries struct {
	Label  string    `json:"label"`
	Color  string    `json:"color"`
	Points []float64 `json:"points"`
}

// Chart holds parallel label/series arrays sourced from the history store.
type Chart struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// Dashboard is the full view pushed to clients after each refresh.
type Dashboard struct {
	Cards      []Card `json:"cards"`
	Chart      Chart  `json:"chart"`
	LastUpdate string `json:"last_update,omitempty"`
	Error      string `json:"error,omitempty"` // transient fetch failure, stale data retained
}
