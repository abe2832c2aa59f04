package panels

import (
	"fmt"
	"math"

	"cryptodash/internal/model"
)

// staticSignals is the fallback shown before the first successful fetch.
var staticSignals = []model.TradingSignal{
	{Coin: "Bitcoin (BTC)", Action: model.ActionBuy, Confidence: 75, Reason: "resistance breakout"},
	{Coin: "Ethereum (ETH)", Action: model.ActionBuy, Confidence: 68, Reason: "positive momentum"},
	{Coin: "BNB (BNB)", Action: model.ActionHold, Confidence: 52, Reason: "sideways trading"},
	{Coin: "Solana (SOL)", Action: model.ActionSell, Confidence: 62, Reason: "strong resistance"},
}

// signalAssets are the coins the panel covers.
var signalAssets = []string{"bitcoin", "ethereum", "binancecoin", "solana"}

// Signals derives buy/sell/hold recommendations from 24h momentum. These are
// heuristic panel content, not investment advice; with no quotes available the
// static fallback is returned.
func Signals(quotes model.QuoteSet) []model.TradingSignal {
	if len(quotes) == 0 {
		return staticSignals
	}

	var out []model.TradingSignal
	for _, slug := range signalAssets {
		q, ok := quotes[slug]
		if !ok {
			continue
		}
		asset, _ := model.AssetBySlug(slug)
		out = append(out, signalFor(asset, q))
	}
	if len(out) == 0 {
		return staticSignals
	}
	return out
}

func signalFor(asset model.Asset, q model.Quote) model.TradingSignal {
	change := q.PctChange24h

	var action model.SignalAction
	var reason string
	switch {
	case change >= 2:
		action, reason = model.ActionBuy, "positive momentum"
	case change <= -2:
		action, reason = model.ActionSell, "downward pressure"
	default:
		action, reason = model.ActionHold, "sideways trading"
	}

	// 50 at flat, +5 per percent moved, capped at 95
	confidence := 50 + int(math.Min(math.Abs(change)*5, 45))

	return model.TradingSignal{
		Coin:       fmt.Sprintf("%s (%s)", asset.Name, asset.Symbol),
		Action:     action,
		Confidence: confidence,
		Reason:     reason,
	}
}
