package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DailyFinancialRecord é uma linha do razão diário do restaurante
type DailyFinancialRecord struct {
	Date    Date            `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// ProductFinancialEntry é um lançamento de receita/custo de um produto em um dia
type ProductFinancialEntry struct {
	Date        Date            `json:"date"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
}

// ProductPeriodProfit é o lucro agregado de um produto dentro de um período
type ProductPeriodProfit struct {
	ProductID   string
	ProductName string
	Profit      decimal.Decimal
}

type ProductDelta struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	ProfitPeriod1 decimal.Decimal `json:"profit_period1"`
	ProfitPeriod2 decimal.Decimal `json:"profit_period2"`
	Delta         decimal.Decimal `json:"profit_delta"`
}

// MergeProductDeltas junta os agregados dos dois períodos por produto.
// Produto ausente em um período conta como zero. O resultado é ordenado pelo
// delta crescente; empates mantêm a ordem por product_id.
func MergeProductDeltas(period1, period2 []*ProductPeriodProfit, topN int) []*ProductDelta {
	byID := make(map[string]*ProductDelta, len(period1)+len(period2))

	get := func(p *ProductPeriodProfit) *ProductDelta {
		delta, ok := byID[p.ProductID]
		if !ok {
			delta = &ProductDelta{
				ProductID:     p.ProductID,
				ProductName:   p.ProductName,
				ProfitPeriod1: decimal.Zero,
				ProfitPeriod2: decimal.Zero,
			}
			byID[p.ProductID] = delta
		}
		if delta.ProductName == "" {
			delta.ProductName = p.ProductName
		}
		return delta
	}

	for _, p := range period1 {
		d := get(p)
		d.ProfitPeriod1 = d.ProfitPeriod1.Add(p.Profit)
	}
	for _, p := range period2 {
		d := get(p)
		d.ProfitPeriod2 = d.ProfitPeriod2.Add(p.Profit)
	}

	deltas := make([]*ProductDelta, 0, len(byID))
	for _, d := range byID {
		d.Delta = d.ProfitPeriod2.Sub(d.ProfitPeriod1)
		deltas = append(deltas, d)
	}

	sort.Slice(deltas, func(i, j int) bool {
		return deltas[i].ProductID < deltas[j].ProductID
	})
	sort.SliceStable(deltas, func(i, j int) bool {
		return deltas[i].Delta.LessThan(deltas[j].Delta)
	})

	if topN >= 0 && len(deltas) > topN {
		deltas = deltas[:topN]
	}

	return deltas
}

// SumDeltas soma os deltas de uma lista de produtos
func SumDeltas(deltas []*ProductDelta) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deltas {
		total = total.Add(d.Delta)
	}
	return total
}
