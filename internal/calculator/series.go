package calculator

import "errors"

// SMA computes the simple moving average of the most recent period prices.
func SMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// HighLow returns the extremes over the most recent window prices.
// A window larger than the series scans the whole series.
func HighLow(prices []float64, window int) (high, low float64, err error) {
	if len(prices) == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	start := len(prices) - window
	if start < 0 {
		start = 0
	}
	high, low = prices[start], prices[start]
	for _, p := range prices[start:] {
		if p > high {
			high = p
		}
		if p < low {
			low = p
		}
	}
	return high, low, nil
}
