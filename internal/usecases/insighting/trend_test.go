package insighting

import (
	"testing"
	"time"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func profitSeries(start domain.Date, profits ...string) []*domain.DailyFinancialRecord {
	series := make([]*domain.DailyFinancialRecord, 0, len(profits))
	for i, p := range profits {
		profit := decimal.RequireFromString(p)
		series = append(series, &domain.DailyFinancialRecord{
			Date:    start.AddDays(i),
			Revenue: profit,
			Cost:    decimal.Zero,
			Profit:  profit,
		})
	}
	return series
}

func TestComputeTrend(t *testing.T) {
	start := domain.DateOf(2025, time.November, 10)

	tests := []struct {
		name              string
		profits           []string
		expectedDirection domain.TrendDirection
		expectedChange    string
		expectedPrevAvg   string
		degenerate        bool
	}{
		{
			name:              "Menos de 5 pontos é estável",
			profits:           []string{"100", "50", "10", "5"},
			expectedDirection: domain.TrendFlat,
			degenerate:        true,
		},
		{
			name:              "Série vazia é estável",
			profits:           []string{},
			expectedDirection: domain.TrendFlat,
			degenerate:        true,
		},
		{
			name:              "Média anterior zero é estável",
			profits:           []string{"0", "0", "0", "0", "10"},
			expectedDirection: domain.TrendFlat,
			degenerate:        true,
		},
		{
			name:              "Queda forte",
			profits:           []string{"100", "105", "98", "102", "99", "50"},
			expectedDirection: domain.TrendStrongDecrease,
			expectedChange:    "-50.4",
			expectedPrevAvg:   "100.8",
		},
		{
			name:              "Exatamente -20% é queda forte",
			profits:           []string{"100", "100", "100", "100", "80"},
			expectedDirection: domain.TrendStrongDecrease,
			expectedChange:    "-20",
			expectedPrevAvg:   "100",
		},
		{
			name:              "Exatamente -5% é queda leve",
			profits:           []string{"100", "100", "100", "100", "95"},
			expectedDirection: domain.TrendMildDecrease,
			expectedChange:    "-5",
			expectedPrevAvg:   "100",
		},
		{
			name:              "Pouco acima de -5% é estável",
			profits:           []string{"100", "100", "100", "100", "95.01"},
			expectedDirection: domain.TrendFlat,
			expectedChange:    "-5",
			expectedPrevAvg:   "100",
		},
		{
			name:              "Exatamente +5% é alta leve",
			profits:           []string{"100", "100", "100", "100", "105"},
			expectedDirection: domain.TrendMildIncrease,
			expectedChange:    "5",
			expectedPrevAvg:   "100",
		},
		{
			name:              "Exatamente +20% é alta forte",
			profits:           []string{"100", "100", "100", "100", "120"},
			expectedDirection: domain.TrendStrongIncrease,
			expectedChange:    "20",
			expectedPrevAvg:   "100",
		},
		{
			name:              "Média anterior negativa usa o valor absoluto",
			profits:           []string{"-100", "-100", "-100", "-100", "-150"},
			expectedDirection: domain.TrendStrongDecrease,
			expectedChange:    "-50",
			expectedPrevAvg:   "-100",
		},
		{
			name:              "Dados de demonstração de novembro",
			profits:           []string{"300", "350", "200", "230", "150", "140", "100", "70", "30", "10"},
			expectedDirection: domain.TrendStrongDecrease,
			expectedChange:    "-94.3",
			expectedPrevAvg:   "174.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := ComputeTrend(profitSeries(start, tt.profits...))

			assert.Equal(t, tt.expectedDirection, trend.Direction)

			if tt.degenerate {
				if assert.NotNil(t, trend.Severity) {
					assert.Equal(t, 0.0, *trend.Severity)
				}
				assert.Nil(t, trend.ChangePct)
				assert.Nil(t, trend.Recent)
				assert.Nil(t, trend.PrevAvg)
				return
			}

			assert.Nil(t, trend.Severity)
			if assert.NotNil(t, trend.ChangePct) {
				assert.Equal(t, tt.expectedChange, trend.ChangePct.Round(1).String())
			}
			if assert.NotNil(t, trend.PrevAvg) {
				assert.Equal(t, tt.expectedPrevAvg, trend.PrevAvg.Round(1).String())
			}
			if assert.NotNil(t, trend.Recent) {
				assert.True(t, trend.Recent.Equal(decimal.RequireFromString(tt.profits[len(tt.profits)-1])))
			}
		})
	}
}

func TestComputeTrend_IsPure(t *testing.T) {
	series := profitSeries(domain.DateOf(2025, time.November, 10), "100", "105", "98", "102", "99", "50")

	first := ComputeTrend(series)
	second := ComputeTrend(series)

	assert.Equal(t, first.Direction, second.Direction)
	assert.True(t, first.ChangePct.Equal(*second.ChangePct))
	assert.Equal(t, "50", series[5].Profit.String())
}
