package panels

import "cryptodash/internal/model"

func boolPtr(b bool) *bool { return &b }

// BitcoinFlows returns the exchange-flow panel. The figures are illustrative
// placeholders, matching the rest of the static panel content.
func BitcoinFlows() []model.FlowStat {
	return []model.FlowStat{
		{Label: "Inflow to exchanges (24h)", Value: "+$125M", Positive: boolPtr(false)},
		{Label: "Outflow from exchanges (24h)", Value: "-$89M", Positive: boolPtr(true)},
		{Label: "Net flow", Value: "-$36M", Positive: boolPtr(true)},
		{Label: "Exchange balance", Value: "2.1M BTC"},
	}
}
