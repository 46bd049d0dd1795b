package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/George0Simion/BizzGenie/internal/domain"
)

// FinanceInsighter detecta problemas financeiros a partir do razão do restaurante
type FinanceInsighter interface {
	// CollectFinanceInsights roda todos os detectores sobre o mesmo snapshot do razão.
	// Nunca retorna nil quando não há erro.
	CollectFinanceInsights(ctx context.Context, today domain.Date) ([]*domain.Insight, error)

	// DetectProfitDeclineInsight avalia a tendência de lucro dos últimos 30 dias
	DetectProfitDeclineInsight(ctx context.Context, today domain.Date) (*domain.Insight, error)

	// DetectProductDriversInsight compara o mês corrente com o mês anterior por produto
	DetectProductDriversInsight(ctx context.Context, today domain.Date) (*domain.Insight, error)
}
