package model

// NewsSentiment classifies a headline.
type NewsSentiment string

const (
	SentimentPositive NewsSentiment = "positive"
	SentimentNegative NewsSentiment = "negative"
	SentimentNeutral  NewsSentiment = "neutral"
)

// NewsItem is one feed entry.
type NewsItem struct {
	Title       string        `json:"title"`
	Source      string        `json:"source"`
	Age         string        `json:"age"`
	Description string        `json:"description"`
	Sentiment   NewsSentiment `json:"sentiment"`
	URL         string        `json:"url,omitempty"`
}

// SignalAction is a trading-signal recommendation.
type SignalAction string

const (
	ActionBuy  SignalAction = "buy"
	ActionSell SignalAction = "sell"
	ActionHold SignalAction = "hold"
)

// TradingSignal is one entry of the signal panel.
type TradingSignal struct {
	Coin       string       `json:"coin"`
	Action     SignalAction `json:"action"`
	Confidence int          `json:"confidence"`
	Reason     string       `json:"reason"`
}

// TickerItem is one entry of the scrolling summary strip.
type TickerItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// FlowStat is one exchange-flow figure of the Bitcoin flows panel.
type FlowStat struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Positive *bool  `json:"positive,omitempty"`
}
