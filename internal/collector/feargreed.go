package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"cryptodash/internal/model"
)

// FearGreedClient fetches the latest fear & greed index reading.
type FearGreedClient struct {
	BaseURL string
	Client  *http.Client
}

// NewFearGreedClient creates a client for an alternative.me-compatible endpoint.
func NewFearGreedClient(baseURL string) *FearGreedClient {
	return &FearGreedClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type fngResponse struct {
	Data []struct {
		Value          string `json:"value"`
		Classification string `json:"value_classification"`
	} `json:"data"`
}

// Fetch returns the latest index reading from the remote API.
func (c *FearGreedClient) Fetch(ctx context.Context) (model.FearGreedReading, error) {
	endpoint := fmt.Sprintf("%s/fng/?limit=1", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return model.FearGreedReading{}, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return model.FearGreedReading{}, fmt.Errorf("fear-greed fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.FearGreedReading{}, fmt.Errorf("fear-greed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out fngResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.FearGreedReading{}, fmt.Errorf("fear-greed decode: %w", err)
	}
	if len(out.Data) == 0 {
		return model.FearGreedReading{}, fmt.Errorf("fear-greed: empty data")
	}
	value, err := strconv.Atoi(out.Data[0].Value)
	if err != nil {
		return model.FearGreedReading{}, fmt.Errorf("fear-greed: bad value %q: %w", out.Data[0].Value, err)
	}
	if value < 0 || value > 100 {
		return model.FearGreedReading{}, fmt.Errorf("fear-greed: value %d out of range", value)
	}
	return ClassifyFearGreed(value, false), nil
}

// SyntheticFearGreed produces a uniformly random fallback reading, explicitly
// marked estimated so the gauge can show it is not authoritative.
func SyntheticFearGreed() model.FearGreedReading {
	return ClassifyFearGreed(rand.Intn(101), true)
}

// ClassifyFearGreed maps a [0,100] value onto its label and display class.
func ClassifyFearGreed(value int, estimated bool) model.FearGreedReading {
	var classification, colorClass string
	switch {
	case value <= 20:
		classification, colorClass = "Extreme Fear", "fear-greed-extreme-fear"
	case value <= 40:
		classification, colorClass = "Fear", "fear-greed-fear"
	case value <= 60:
		classification, colorClass = "Neutral", "fear-greed-neutral"
	case value <= 80:
		classification, colorClass = "Greed", "fear-greed-greed"
	default:
		classification, colorClass = "Extreme Greed", "fear-greed-extreme-greed"
	}
	return model.FearGreedReading{
		Value:          value,
		Classification: classification,
		ColorClass:     colorClass,
		Estimated:      estimated,
		FetchedAt:      time.Now(),
	}
}
