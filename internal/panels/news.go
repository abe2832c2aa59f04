package panels

import (
	"strings"

	"cryptodash/internal/model"
)

// News tabs.
const (
	TabLatest  = "latest"
	TabBullish = "bullish"
	TabBearish = "bearish"
	TabBinance = "binance"
)

// newsFeed is the curated feed shown until a real news API is wired in.
var newsFeed = []model.NewsItem{
	{
		Title:       "Bitcoin breaks key resistance level at $43,000",
		Source:      "CoinDesk",
		Age:         "1h ago",
		Description: "Bitcoin staged a decisive breakout after days of tight-range trading, pointing to continued upward momentum.",
		Sentiment:   model.SentimentPositive,
		URL:         "https://coindesk.com",
	},
	{
		Title:       "Binance announces new trading platform updates",
		Source:      "Binance Blog",
		Age:         "2h ago",
		Description: "Binance rolled out new features including interface improvements and advanced analysis tools for traders.",
		Sentiment:   model.SentimentPositive,
		URL:         "https://binance.com",
	},
	{
		Title:       "Securities regulator issues warning on crypto assets",
		Source:      "Reuters",
		Age:         "3h ago",
		Description: "The regulator warned investors about the risks of investing in unregulated digital currencies.",
		Sentiment:   model.SentimentNegative,
		URL:         "https://reuters.com",
	},
	{
		Title:       "Ethereum 2.0: new updates land on the validation network",
		Source:      "Crypto News",
		Age:         "4h ago",
		Description: "Significant updates were deployed on the Ethereum 2.0 network, improving transaction speed and lowering fees.",
		Sentiment:   model.SentimentPositive,
		URL:         "https://cryptonews.com",
	},
	{
		Title:       "Trading volume declines across crypto markets",
		Source:      "CoinMarketCap",
		Age:         "5h ago",
		Description: "Markets saw lower trading volumes over the past 24 hours, reflecting investor caution.",
		Sentiment:   model.SentimentNegative,
		URL:         "https://coinmarketcap.com",
	},
	{
		Title:       "MicroStrategy adds more Bitcoin to its treasury",
		Source:      "Bloomberg",
		Age:         "6h ago",
		Description: "The company continued its accumulation strategy with a new $100M purchase.",
		Sentiment:   model.SentimentPositive,
		URL:         "https://bloomberg.com",
	},
}

// News returns the feed filtered by the active tab. Unknown tabs behave as
// the latest tab.
func News(tab string) []model.NewsItem {
	var out []model.NewsItem
	for _, n := range newsFeed {
		switch tab {
		case TabBullish:
			if n.Sentiment != model.SentimentPositive {
				continue
			}
		case TabBearish:
			if n.Sentiment != model.SentimentNegative {
				continue
			}
		case TabBinance:
			if !strings.Contains(strings.ToLower(n.Source), "binance") &&
				!strings.Contains(strings.ToLower(n.Title), "binance") {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}
