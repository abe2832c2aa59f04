package view

import (
	"sync"
	"time"

	"cryptodash/internal/format"
	"cryptodash/internal/history"
	"cryptodash/internal/model"
)

// chartAssetCount is how many leading catalog assets appear on the chart.
const chartAssetCount = 3

var chartColors = []string{"#00d4aa", "#6c5ce7", "#f39c12"}

// Hook runs after each successful render, in registration order.
// The WebSocket broadcast is registered here instead of re-wrapping the renderer.
type Hook func(Dashboard)

type cardState struct {
	card       Card
	flashUntil time.Time
}

// Renderer projects quotes and price history onto dashboard view models.
// Cards are created lazily on first sight and updated in place afterwards.
type Renderer struct {
	mu         sync.Mutex
	history    *history.Store
	cards      map[string]*cardState
	order      []string
	lastUpdate time.Time
	lastError  string
	hooks      []Hook

	// FlashTTL is how long a price-change flash stays visible.
	FlashTTL time.Duration
}

// NewRenderer creates a Renderer over the given history store.
func NewRenderer(h *history.Store) *Renderer {
	return &Renderer{
		history:  h,
		cards:    make(map[string]*cardState),
		FlashTTL: 500 * time.Millisecond,
	}
}

// AddHook registers a post-render hook. Hooks run synchronously after the
// view is rebuilt, in the order they were added.
func (r *Renderer) AddHook(h Hook) {
	r.mu.Lock()
	r.hooks = append(r.hooks, h)
	r.mu.Unlock()
}

// Render updates the view from a fresh quote set, clears any transient error,
// and runs the post-render hooks. Returns the rebuilt dashboard.
func (r *Renderer) Render(quotes []model.Quote) Dashboard {
	r.mu.Lock()
	now := time.Now()
	for _, q := range quotes {
		r.upsertCard(q, now)
	}
	r.lastUpdate = now
	r.lastError = ""
	d := r.buildDashboard(now)
	hooks := make([]Hook, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.Unlock()

	for _, h := range hooks {
		h(d)
	}
	return d
}

// RenderError records a transient fetch failure. Previously rendered cards
// stay untouched so the dashboard shows stale-but-present data.
func (r *Renderer) RenderError(err error) {
	r.mu.Lock()
	r.lastError = err.Error()
	r.mu.Unlock()
}

// Dashboard returns the current view. Expired flashes are cleared here, so a
// flash self-reverts without any timer of its own.
func (r *Renderer) Dashboard() Dashboard {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildDashboard(time.Now())
}

func (r *Renderer) upsertCard(q model.Quote, now time.Time) {
	st, ok := r.cards[q.Slug]
	if !ok {
		asset, known := model.AssetBySlug(q.Slug)
		if !known {
			return
		}
		st = &cardState{card: Card{
			Slug:     asset.Slug,
			Name:     asset.Name,
			Symbol:   asset.Symbol,
			Icon:     asset.Icon,
			Category: asset.Category,
		}}
		r.cards[q.Slug] = st
		r.order = append(r.order, q.Slug)
	}

	oldPrice := st.card.RawPrice
	if oldPrice != 0 && oldPrice != q.USDPrice {
		if q.USDPrice > oldPrice {
			st.card.Flash = "up"
		} else {
			st.card.Flash = "down"
		}
		st.flashUntil = now.Add(r.FlashTTL)
	}

	st.card.RawPrice = q.USDPrice
	st.card.Price = format.Price(q.USDPrice)
	st.card.Change = format.Change(q.PctChange24h)
	if q.PctChange24h >= 0 {
		st.card.Direction = "up"
	} else {
		st.card.Direction = "down"
	}
	st.card.Volume = format.Compact(q.Volume24h)
	st.card.MarketCap = format.Compact(q.MarketCap)
}

func (r *Renderer) buildDashboard(now time.Time) Dashboard {
	cards := make([]Card, 0, len(r.order))
	for _, slug := range r.order {
		st := r.cards[slug]
		if st.card.Flash != "" && now.After(st.flashUntil) {
			st.card.Flash = ""
		}
		cards = append(cards, st.card)
	}

	d := Dashboard{
		Cards: cards,
		Chart: r.buildChart(),
		Error: r.lastError,
	}
	if !r.lastUpdate.IsZero() {
		d.LastUpdate = r.lastUpdate.Format("15:04:05")
	}
	return d
}

// buildChart rebuilds the label/series arrays from the history store for the
// first chartAssetCount catalog assets. Labels follow the first asset's
// timestamps; all assets are sampled on the same cycle so they line up.
func (r *Renderer) buildChart() Chart {
	assets := model.Assets
	if len(assets) > chartAssetCount {
		assets = assets[:chartAssetCount]
	}

	var chart Chart
	for i, a := range assets {
		samples := r.history.Series(a.Slug)
		if i == 0 {
			chart.Labels = make([]string, len(samples))
			for j, s := range samples {
				chart.Labels[j] = s.Timestamp.Format("15:04")
			}
		}
		points := make([]float64, len(samples))
		for j, s := range samples {
			points[j] = s.Price
		}
		chart.Series = append(chart.Series, ChartSeries{
			Label:  a.Name,
			Color:  chartColors[i%len(chartColors)],
			Points: points,
		})
	}
	return chart
}
