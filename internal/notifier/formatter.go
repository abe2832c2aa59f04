package notifier

import (
	"fmt"

	"cryptodash/internal/format"
	"cryptodash/internal/model"
)

// FormatAlertMessage builds the title and body for a triggered price alert.
func FormatAlertMessage(slug string, price float64) (title, body string) {
	name := slug
	symbol := ""
	if asset, ok := model.AssetBySlug(slug); ok {
		name = asset.Name
		symbol = asset.Symbol
	}
	title = "🚨 Price Alert"
	if symbol != "" {
		body = fmt.Sprintf("%s (%s) reached $%s", name, symbol, format.Price(price))
	} else {
		body = fmt.Sprintf("%s reached $%s", name, format.Price(price))
	}
	return title, body
}
