package panels

import (
	"fmt"

	"cryptodash/internal/calculator"
	"cryptodash/internal/format"
	"cryptodash/internal/history"
	"cryptodash/internal/model"
)

// commentaryWindow is how many recent samples feed support/resistance levels.
const commentaryWindow = 30

// staticCommentary is the fallback before the first successful fetch.
var staticCommentary = []string{
	"**Bitcoin** is trading above its short-term average, pointing to a near-term uptrend.",
	"**Ethereum** shows relative strength against Bitcoin with rising volume.",
	"**The broader market** is seeing improved sentiment as the fear index eases.",
}

// Commentary produces short market notes with support/resistance levels drawn
// from the retained price history. Bold markers survive for the client to style.
func Commentary(quotes model.QuoteSet, hist *history.Store) []string {
	btc, haveBTC := quotes["bitcoin"]
	eth, haveETH := quotes["ethereum"]
	if !haveBTC && !haveETH {
		return staticCommentary
	}

	var out []string
	if haveBTC {
		out = append(out, trendNote("Bitcoin", "bitcoin", btc, hist))
	}
	if haveETH {
		out = append(out, trendNote("Ethereum", "ethereum", eth, hist))
	}
	if haveBTC && haveETH {
		out = append(out,
			fmt.Sprintf("**Support levels**: Bitcoin $%s | Ethereum $%s",
				format.Price(levelOr(hist, "bitcoin", btc.USDPrice*0.95, false)),
				format.Price(levelOr(hist, "ethereum", eth.USDPrice*0.95, false))),
			fmt.Sprintf("**Resistance levels**: Bitcoin $%s | Ethereum $%s",
				format.Price(levelOr(hist, "bitcoin", btc.USDPrice*1.08, true)),
				format.Price(levelOr(hist, "ethereum", eth.USDPrice*1.08, true))),
		)
	}
	return out
}

func trendNote(name, slug string, q model.Quote, hist *history.Store) string {
	prices := hist.Prices(slug)
	if sma, err := calculator.SMA(prices, 10); err == nil {
		if q.USDPrice >= sma {
			return fmt.Sprintf("**%s** is trading above its 10-sample average, pointing to a near-term uptrend.", name)
		}
		return fmt.Sprintf("**%s** is trading below its 10-sample average, suggesting near-term weakness.", name)
	}
	if q.PctChange24h >= 0 {
		return fmt.Sprintf("**%s** is up %s over 24h.", name, format.Change(q.PctChange24h))
	}
	return fmt.Sprintf("**%s** is down %s over 24h.", name, format.Change(q.PctChange24h))
}

// levelOr returns the recent high (resistance) or low (support) from history,
// falling back to the supplied estimate when history is empty.
func levelOr(hist *history.Store, slug string, fallback float64, high bool) float64 {
	h, l, err := calculator.HighLow(hist.Prices(slug), commentaryWindow)
	if err != nil {
		return fallback
	}
	if high {
		return h
	}
	return l
}
