package inventory

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/shopspring/decimal"
)

// Accountant controla o estoque por lotes com consumo FIFO por vencimento
type Accountant interface {
	AddProduct(ctx context.Context, req domain.AddProductRequest) (*domain.AddProductResult, error)
	ConsumeProduct(ctx context.Context, productName string, quantity decimal.Decimal) (*domain.ConsumptionResult, error)
	GetAlerts(ctx context.Context) (*domain.InventoryAlerts, error)
	ListInventory(ctx context.Context) ([]*domain.InventoryBatch, error)
}
