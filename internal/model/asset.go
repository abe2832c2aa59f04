package model

// AssetCategory distinguishes established coins from meme coins.
type AssetCategory string

const (
	CategoryMajor AssetCategory = "major"
	CategoryMeme  AssetCategory = "meme"
)

// Asset describes one tracked coin. The catalog is static and immutable.
type Asset struct {
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	Symbol   string        `json:"symbol"`
	Icon     string        `json:"icon"`
	Category AssetCategory `json:"category"`
}

// Assets is the tracked catalog, in display order. The first three feed the chart.
var Assets = []Asset{
	{Slug: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Icon: "₿", Category: CategoryMajor},
	{Slug: "ethereum", Name: "Ethereum", Symbol: "ETH", Icon: "Ξ", Category: CategoryMajor},
	{Slug: "binancecoin", Name: "BNB", Symbol: "BNB", Icon: "🔶", Category: CategoryMajor},
	{Slug: "cardano", Name: "Cardano", Symbol: "ADA", Icon: "₳", Category: CategoryMajor},
	{Slug: "solana", Name: "Solana", Symbol: "SOL", Icon: "◎", Category: CategoryMajor},
	{Slug: "dogecoin", Name: "Dogecoin", Symbol: "DOGE", Icon: "🐕", Category: CategoryMeme},
	{Slug: "shiba-inu", Name: "Shiba Inu", Symbol: "SHIB", Icon: "🐕", Category: CategoryMeme},
	{Slug: "pepe", Name: "Pepe", Symbol: "PEPE", Icon: "🐸", Category: CategoryMeme},
	{Slug: "floki", Name: "Floki", Symbol: "FLOKI", Icon: "⚔️", Category: CategoryMeme},
	{Slug: "bonk", Name: "Bonk", Symbol: "BONK", Icon: "🔨", Category: CategoryMeme},
}

var assetIndex = func() map[string]Asset {
	m := make(map[string]Asset, len(Assets))
	for _, a := range Assets {
		m[a.Slug] = a
	}
	return m
}()

// AssetBySlug looks up a catalog entry.
func AssetBySlug(slug string) (Asset, bool) {
	a, ok := assetIndex[slug]
	return a, ok
}

// Slugs returns the catalog slugs in display order.
func Slugs() []string {
	out := make([]string, len(Assets))
	for i, a := range Assets {
		out[i] = a.Slug
	}
	return out
}
