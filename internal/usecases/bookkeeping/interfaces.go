package bookkeeping

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/shopspring/decimal"
)

// Bookkeeper alimenta o razão financeiro usado pelos detectores
type Bookkeeper interface {
	RecordDailyFinancial(ctx context.Context, date domain.Date, revenue, cost decimal.Decimal) (*domain.DailyFinancialRecord, error)
	RecordProductFinancial(ctx context.Context, entry *domain.ProductFinancialEntry) (*domain.ProductFinancialEntry, error)
}
