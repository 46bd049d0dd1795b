package domain

import "github.com/shopspring/decimal"

type TrendDirection string

const (
	TrendFlat           TrendDirection = "flat"
	TrendMildDecrease   TrendDirection = "mild_decrease"
	TrendStrongDecrease TrendDirection = "strong_decrease"
	TrendMildIncrease   TrendDirection = "mild_increase"
	TrendStrongIncrease TrendDirection = "strong_increase"
)

// Trend é a classificação de uma série diária de lucro.
// Severity só é preenchida nos casos degenerados (série curta ou média zero).
type Trend struct {
	Direction TrendDirection   `json:"direction"`
	Severity  *float64         `json:"severity,omitempty"`
	ChangePct *decimal.Decimal `json:"change_pct,omitempty"`
	Recent    *decimal.Decimal `json:"recent,omitempty"`
	PrevAvg   *decimal.Decimal `json:"prev_avg,omitempty"`
}

func FlatTrend() Trend {
	severity := 0.0
	return Trend{Direction: TrendFlat, Severity: &severity}
}

func (t Trend) IsDecrease() bool {
	return t.Direction == TrendMildDecrease || t.Direction == TrendStrongDecrease
}
