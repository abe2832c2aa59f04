package panels

import (
	"strings"
	"testing"
	"time"

	"cryptodash/internal/history"
	"cryptodash/internal/model"
)

func TestNewsFilters(t *testing.T) {
	all := News(TabLatest)
	if len(all) == 0 {
		t.Fatal("expected non-empty feed")
	}

	for _, n := range News(TabBullish) {
		if n.Sentiment != model.SentimentPositive {
			t.Errorf("bullish tab leaked %q (%s)", n.Title, n.Sentiment)
		}
	}
	for _, n := range News(TabBearish) {
		if n.Sentiment != model.SentimentNegative {
			t.Errorf("bearish tab leaked %q (%s)", n.Title, n.Sentiment)
		}
	}
	for _, n := range News(TabBinance) {
		if !strings.Contains(strings.ToLower(n.Source+n.Title), "binance") {
			t.Errorf("binance tab leaked %q", n.Title)
		}
	}
	if got := News("nonsense"); len(got) != len(all) {
		t.Errorf("unknown tab should behave as latest: got %d, want %d", len(got), len(all))
	}
}

func TestSignalsStaticFallback(t *testing.T) {
	got := Signals(nil)
	if len(got) != len(staticSignals) {
		t.Fatalf("expected static fallback, got %d signals", len(got))
	}
}

func TestSignalsDerivedFromQuotes(t *testing.T) {
	quotes := model.QuoteSet{
		"bitcoin":  {Slug: "bitcoin", USDPrice: 43000, PctChange24h: 4.2},
		"ethereum": {Slug: "ethereum", USDPrice: 2280, PctChange24h: -3.1},
		"solana":   {Slug: "solana", USDPrice: 150, PctChange24h: 0.4},
	}
	got := Signals(quotes)
	byCoin := make(map[string]model.TradingSignal)
	for _, s := range got {
		byCoin[s.Coin] = s
	}

	if s := byCoin["Bitcoin (BTC)"]; s.Action != model.ActionBuy {
		t.Errorf("bitcoin: expected buy, got %s", s.Action)
	}
	if s := byCoin["Ethereum (ETH)"]; s.Action != model.ActionSell {
		t.Errorf("ethereum: expected sell, got %s", s.Action)
	}
	if s := byCoin["Solana (SOL)"]; s.Action != model.ActionHold {
		t.Errorf("solana: expected hold, got %s", s.Action)
	}

	if s := byCoin["Bitcoin (BTC)"]; s.Confidence < 50 || s.Confidence > 95 {
		t.Errorf("confidence out of range: %d", s.Confidence)
	}
}

func TestCommentary(t *testing.T) {
	if got := Commentary(nil, history.NewStore()); len(got) != len(staticCommentary) {
		t.Fatalf("expected static fallback, got %d notes", len(got))
	}

	h := history.NewStore()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		h.Record("bitcoin", 42000+float64(i*10), ts)
		h.Record("ethereum", 2200+float64(i), ts)
	}
	quotes := model.QuoteSet{
		"bitcoin":  {Slug: "bitcoin", USDPrice: 43000, PctChange24h: 2},
		"ethereum": {Slug: "ethereum", USDPrice: 2280, PctChange24h: 1},
	}
	notes := Commentary(quotes, h)
	if len(notes) != 4 {
		t.Fatalf("expected 4 notes, got %d: %v", len(notes), notes)
	}
	if !strings.Contains(notes[0], "Bitcoin") || !strings.Contains(notes[0], "uptrend") {
		t.Errorf("unexpected first note: %q", notes[0])
	}
	if !strings.Contains(notes[2], "Support levels") || !strings.Contains(notes[3], "Resistance levels") {
		t.Errorf("missing levels notes: %v", notes[2:])
	}
}

func TestTickerRefresh(t *testing.T) {
	tk := NewTicker()
	base := len(tk.Items())
	if base == 0 {
		t.Fatal("expected static headlines before any quotes")
	}

	tk.Refresh(model.QuoteSet{
		"bitcoin":  {Slug: "bitcoin", USDPrice: 43000, PctChange24h: 2.15},
		"ethereum": {Slug: "ethereum", USDPrice: 2280, PctChange24h: -1.2},
	})
	items := tk.Items()
	if len(items) != base+2 {
		t.Fatalf("expected %d items, got %d", base+2, len(items))
	}
	if items[0].Icon != "📈" || !strings.Contains(items[0].Text, "BTC $43,000") {
		t.Errorf("unexpected BTC entry: %+v", items[0])
	}
	if items[1].Icon != "📉" || !strings.Contains(items[1].Text, "-1.20%") {
		t.Errorf("unexpected ETH entry: %+v", items[1])
	}
}

func TestBitcoinFlows(t *testing.T) {
	flows := BitcoinFlows()
	if len(flows) != 4 {
		t.Fatalf("expected 4 flow stats, got %d", len(flows))
	}
	if flows[3].Positive != nil {
		t.Error("exchange balance carries no direction")
	}
}
