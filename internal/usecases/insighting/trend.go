package insighting

import (
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/shopspring/decimal"
)

const minTrendPoints = 5

var (
	hundred = decimal.NewFromInt(100)

	strongDecreasePct = decimal.NewFromInt(-20)
	mildDecreasePct   = decimal.NewFromInt(-5)
	strongIncreasePct = decimal.NewFromInt(20)
	mildIncreasePct   = decimal.NewFromInt(5)
)

// ComputeTrend compara o lucro do último dia com a média dos dias anteriores.
// Séries com menos de 5 pontos ou média anterior zero são consideradas estáveis.
func ComputeTrend(series []*domain.DailyFinancialRecord) domain.Trend {
	if len(series) < minTrendPoints {
		return domain.FlatTrend()
	}

	recent := series[len(series)-1].Profit

	sum := decimal.Zero
	previous := series[:len(series)-1]
	for _, record := range previous {
		sum = sum.Add(record.Profit)
	}
	prevAvg := sum.Div(decimal.NewFromInt(int64(len(previous))))

	if prevAvg.IsZero() {
		return domain.FlatTrend()
	}

	changePct := recent.Sub(prevAvg).Div(prevAvg.Abs()).Mul(hundred)

	return domain.Trend{
		Direction: classifyChange(changePct),
		ChangePct: &changePct,
		Recent:    &recent,
		PrevAvg:   &prevAvg,
	}
}

func classifyChange(changePct decimal.Decimal) domain.TrendDirection {
	switch {
	case changePct.LessThanOrEqual(strongDecreasePct):
		return domain.TrendStrongDecrease
	case changePct.LessThanOrEqual(mildDecreasePct):
		return domain.TrendMildDecrease
	case changePct.GreaterThanOrEqual(strongIncreasePct):
		return domain.TrendStrongIncrease
	case changePct.GreaterThanOrEqual(mildIncreasePct):
		return domain.TrendMildIncrease
	default:
		return domain.TrendFlat
	}
}
