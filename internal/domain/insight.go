package domain

import "github.com/shopspring/decimal"

type InsightType string

const (
	InsightOverallProfitDecline InsightType = "overall_profit_decline"
	InsightProductProfitDrivers InsightType = "product_profit_drivers"
)

type InsightSeverity string

const (
	SeverityMedium InsightSeverity = "medium"
	SeverityHigh   InsightSeverity = "high"
)

// TimeWindow usa start/end para a queda geral e os quatro limites de período
// para os drivers por produto
type TimeWindow struct {
	Start     *Date `json:"start,omitempty"`
	End       *Date `json:"end,omitempty"`
	PrevStart *Date `json:"prev_start,omitempty"`
	PrevEnd   *Date `json:"prev_end,omitempty"`
	CurrStart *Date `json:"curr_start,omitempty"`
	CurrEnd   *Date `json:"curr_end,omitempty"`
}

type Insight struct {
	Type       InsightType     `json:"type"`
	Severity   InsightSeverity `json:"severity"`
	Metric     string          `json:"metric"`
	TimeWindow TimeWindow      `json:"time_window"`
	Evidence   any             `json:"evidence"`
}

type ProfitDeclineEvidence struct {
	Trend       Trend                   `json:"trend"`
	DailyProfit []*DailyFinancialRecord `json:"daily_profit"`
}

type ProductDriversEvidence struct {
	TotalProfitDelta    decimal.Decimal `json:"total_profit_delta"`
	TopNegativeProducts []*ProductDelta `json:"top_negative_products"`
	TopPositiveProducts []*ProductDelta `json:"top_positive_products"`
}
