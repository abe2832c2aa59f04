package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for non-positive prices or amounts.
var ErrInvalidInput = errors.New("prices and amount must be positive")

// ProfitResult is the outcome of a buy/sell simulation. Monetary figures are
// rounded to cents; the percent keeps two decimals.
type ProfitResult struct {
	Investment float64 `json:"investment"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	Percent    float64 `json:"percent"`
	IsProfit   bool    `json:"is_profit"`
}

// Profit computes profit/loss for buying amount units at buyPrice and selling
// at sellPrice. Decimal arithmetic avoids float drift on small-denomination
// coins where unit prices carry six decimals.
func Profit(buyPrice, sellPrice, amount float64) (ProfitResult, error) {
	if buyPrice <= 0 || sellPrice <= 0 || amount <= 0 {
		return ProfitResult{}, ErrInvalidInput
	}

	buy := decimal.NewFromFloat(buyPrice)
	sell := decimal.NewFromFloat(sellPrice)
	qty := decimal.NewFromFloat(amount)

	investment := buy.Mul(qty)
	revenue := sell.Mul(qty)
	profit := revenue.Sub(investment)
	percent := profit.Div(investment).Mul(decimal.NewFromInt(100))

	return ProfitResult{
		Investment: investment.Round(2).InexactFloat64(),
		Revenue:    revenue.Round(2).InexactFloat64(),
		Profit:     profit.Round(2).InexactFloat64(),
		Percent:    percent.Round(2).InexactFloat64(),
		IsProfit:   !profit.IsNegative(),
	}, nil
}
