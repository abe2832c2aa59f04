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

// CMCFetcher implements Fetcher using the CoinMarketCap pro REST API.
type CMCFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewCMCFetcher creates a fetcher with optional proxy support.
func NewCMCFetcher(baseURL, apiKey, proxyURL string) *CMCFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CMCFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CMCFetcher) Name() string { return "coinmarketcap" }

// cmcResponse is the expected JSON shape of /v1/cryptocurrency/quotes/latest.
// Records are keyed by numeric coin id; the slug inside each record is what
// ties them back to the catalog.
type cmcResponse struct {
	Data map[string]struct {
		Slug  string `json:"slug"`
		Quote map[string]struct {
			Price            float64 `json:"price"`
			PercentChange24h float64 `json:"percent_change_24h"`
			MarketCap        float64 `json:"market_cap"`
			Volume24h        float64 `json:"volume_24h"`
		} `json:"quote"`
	} `json:"data"`
}

func (f *CMCFetcher) FetchQuotes(ctx context.Context, slugs []string) ([]model.Quote, error) {
	endpoint := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?slug=%s&convert=USD",
		f.BaseURL, url.QueryEscape(strings.Join(slugs, ",")))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-CMC_PRO_API_KEY", f.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cmc fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cmc: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out cmcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("cmc decode: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("cmc: no data returned")
	}

	now := time.Now()
	quotes := make([]model.Quote, 0, len(out.Data))
	for _, rec := range out.Data {
		usd, ok := rec.Quote["USD"]
		if !ok || rec.Slug == "" {
			continue
		}
		quotes = append(quotes, model.Quote{
			Slug:         rec.Slug,
			USDPrice:     usd.Price,
			PctChange24h: usd.PercentChange24h,
			Volume24h:    usd.Volume24h,
			MarketCap:    usd.MarketCap,
			ObservedAt:   now,
		})
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("cmc: no usable USD quotes in response")
	}
	return quotes, nil
}
