package panels

import (
	"fmt"
	"sync"

	"cryptodash/internal/format"
	"cryptodash/internal/model"
)

// tickerAssets lead the strip with live prices.
var tickerAssets = []string{"bitcoin", "ethereum"}

// tickerHeadlines trail the price entries with generic market items.
var tickerHeadlines = []model.TickerItem{
	{Icon: "🌍", Text: "Gold rises as the dollar retreats"},
	{Icon: "🛢️", Text: "Oil steadies near $80 a barrel"},
	{Icon: "💵", Text: "Dollar strengthens against the euro"},
	{Icon: "🏦", Text: "Fed holds interest rates steady"},
	{Icon: "📊", Text: "S&P 500 posts fresh gains"},
	{Icon: "🪙", Text: "Crypto adoption keeps growing worldwide"},
	{Icon: "🇨🇳", Text: "Chinese economy grows 5%"},
	{Icon: "🇪🇺", Text: "EU weighs crypto regulation"},
	{Icon: "💰", Text: "Federal Reserve targets lower inflation"},
	{Icon: "🚀", Text: "Tech investment hits record highs"},
}

// Ticker keeps the scrolling summary strip. It refreshes on the slow panel
// cycle from the latest quote snapshot.
type Ticker struct {
	mu    sync.Mutex
	items []model.TickerItem
}

// NewTicker creates a ticker populated with the static headlines only.
func NewTicker() *Ticker {
	t := &Ticker{}
	t.Refresh(nil)
	return t
}

// Refresh rebuilds the strip from the current quote snapshot.
func (t *Ticker) Refresh(quotes model.QuoteSet) {
	items := make([]model.TickerItem, 0, len(tickerAssets)+len(tickerHeadlines))
	for _, slug := range tickerAssets {
		q, ok := quotes[slug]
		if !ok {
			continue
		}
		asset, _ := model.AssetBySlug(slug)
		icon := "📈"
		if q.PctChange24h < 0 {
			icon = "📉"
		}
		items = append(items, model.TickerItem{
			Icon: icon,
			Text: fmt.Sprintf("%s $%s (%s)", asset.Symbol, format.Price(q.USDPrice), format.Change(q.PctChange24h)),
		})
	}
	items = append(items, tickerHeadlines...)

	t.mu.Lock()
	t.items = items
	t.mu.Unlock()
}

// Items returns the current strip content.
func (t *Ticker) Items() []model.TickerItem {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.TickerItem, len(t.items))
	copy(out, t.items)
	return out
}
