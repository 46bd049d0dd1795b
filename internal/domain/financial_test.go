package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestMergeProductDeltas(t *testing.T) {
	tests := []struct {
		name     string
		period1  []*ProductPeriodProfit
		period2  []*ProductPeriodProfit
		topN     int
		expected []string
		deltas   []string
	}{
		{
			name: "Produtos do cardápio de demonstração ordenados do pior para o melhor",
			period1: []*ProductPeriodProfit{
				{ProductID: "burger", ProductName: "Burger clasic", Profit: dec("4000")},
				{ProductID: "pizza", ProductName: "Pizza Margherita", Profit: dec("3000")},
				{ProductID: "pasta", ProductName: "Penne Alfredo", Profit: dec("2000")},
				{ProductID: "salad", ProductName: "Salată grecească", Profit: dec("1000")},
				{ProductID: "soda", ProductName: "Suc la pahar", Profit: dec("800")},
			},
			period2: []*ProductPeriodProfit{
				{ProductID: "burger", ProductName: "Burger clasic", Profit: dec("2500")},
				{ProductID: "pizza", ProductName: "Pizza Margherita", Profit: dec("3200")},
				{ProductID: "pasta", ProductName: "Penne Alfredo", Profit: dec("1500")},
				{ProductID: "salad", ProductName: "Salată grecească", Profit: dec("900")},
				{ProductID: "soda", ProductName: "Suc la pahar", Profit: dec("900")},
			},
			topN:     10,
			expected: []string{"burger", "pasta", "salad", "soda", "pizza"},
			deltas:   []string{"-1500", "-500", "-100", "100", "200"},
		},
		{
			name:     "Produto ausente em um dos períodos conta como zero",
			period1:  []*ProductPeriodProfit{{ProductID: "a", Profit: dec("50")}},
			period2:  []*ProductPeriodProfit{{ProductID: "b", Profit: dec("30")}},
			topN:     10,
			expected: []string{"a", "b"},
			deltas:   []string{"-50", "30"},
		},
		{
			name: "Empates mantêm a ordem por product_id",
			period1: []*ProductPeriodProfit{
				{ProductID: "c", Profit: dec("10")},
				{ProductID: "a", Profit: dec("10")},
				{ProductID: "b", Profit: dec("10")},
			},
			period2:  nil,
			topN:     10,
			expected: []string{"a", "b", "c"},
			deltas:   []string{"-10", "-10", "-10"},
		},
		{
			name: "Resultado truncado em topN",
			period2: []*ProductPeriodProfit{
				{ProductID: "x", Profit: dec("1")},
				{ProductID: "y", Profit: dec("2")},
				{ProductID: "z", Profit: dec("3")},
			},
			topN:     2,
			expected: []string{"x", "y"},
			deltas:   []string{"1", "2"},
		},
		{
			name:     "Sem dados retorna lista vazia",
			topN:     10,
			expected: []string{},
			deltas:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergeProductDeltas(tt.period1, tt.period2, tt.topN)

			ids := make([]string, 0, len(result))
			deltas := make([]string, 0, len(result))
			for _, r := range result {
				ids = append(ids, r.ProductID)
				deltas = append(deltas, r.Delta.String())
			}

			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, tt.deltas, deltas)
		})
	}
}

func TestMergeProductDeltas_KeepsPeriodTotals(t *testing.T) {
	result := MergeProductDeltas(
		[]*ProductPeriodProfit{{ProductID: "burger", ProductName: "Burger clasic", Profit: dec("4000")}},
		[]*ProductPeriodProfit{{ProductID: "burger", ProductName: "Burger clasic", Profit: dec("2500")}},
		10,
	)

	assert.Len(t, result, 1)
	assert.Equal(t, "Burger clasic", result[0].ProductName)
	assert.True(t, result[0].ProfitPeriod1.Equal(dec("4000")))
	assert.True(t, result[0].ProfitPeriod2.Equal(dec("2500")))
	assert.True(t, SumDeltas(result).Equal(dec("-1500")))
}

func TestProductDelta_JSON(t *testing.T) {
	result := MergeProductDeltas(
		[]*ProductPeriodProfit{{ProductID: "burger", ProductName: "Burger clasic", Profit: dec("4000")}},
		[]*ProductPeriodProfit{{ProductID: "burger", ProductName: "Burger clasic", Profit: dec("2500")}},
		10,
	)

	data, err := json.Marshal(result[0])
	assert.NoError(t, err)

	var fields map[string]any
	assert.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "profit_delta")
	assert.NotContains(t, fields, "delta")
	assert.Contains(t, fields, "profit_period1")
	assert.Contains(t, fields, "profit_period2")

	delta, err := decimal.NewFromString(fmt.Sprint(fields["profit_delta"]))
	assert.NoError(t, err)
	assert.True(t, delta.Equal(dec("-1500")))
}
