package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptodash/internal/model"
)

// GeckoFetcher implements Fetcher using the unauthenticated CoinGecko simple API.
// Its response is a flat slug→figures map, unlike the keyed CMC shape.
type GeckoFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewGeckoFetcher creates a fetcher with optional proxy support.
func NewGeckoFetcher(baseURL, proxyURL string) *GeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GeckoFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *GeckoFetcher) Name() string { return "coingecko" }

// geckoEntry is one coin's figures. Absent fields decode to 0, which is the
// normalization rule for both sources.
type geckoEntry struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
	USDMarketCap float64 `json:"usd_market_cap"`
	USD24hVol    float64 `json:"usd_24h_vol"`
}

func (f *GeckoFetcher) FetchQuotes(ctx context.Context, slugs []string) ([]model.Quote, error) {
	endpoint := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true&include_market_cap=true&include_24hr_vol=true",
		f.BaseURL, url.QueryEscape(strings.Join(slugs, ",")))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out map[string]geckoEntry
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("coingecko: no data returned")
	}

	now := time.Now()
	quotes := make([]model.Quote, 0, len(out))
	for slug, e := range out {
		quotes = append(quotes, model.Quote{
			Slug:         slug,
			USDPrice:     e.USD,
			PctChange24h: e.USD24hChange,
			Volume24h:    e.USD24hVol,
			MarketCap:    e.USDMarketCap,
			ObservedAt:   now,
		})
	}
	return quotes, nil
}
