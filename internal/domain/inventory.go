package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBatch é um lote de um produto identificado por (product_name, expiration_date)
type InventoryBatch struct {
	ID             string          `json:"id"`
	ProductName    string          `json:"product_name"`
	Category       string          `json:"category"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate Date            `json:"expiration_date"`
	AutoBuy        bool            `json:"auto_buy"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type AddProductRequest struct {
	ProductName    string          `json:"product_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate Date            `json:"expiration_date"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	AutoBuy        bool            `json:"auto_buy"`
}

type AddProductAction string

const (
	AddProductCreated AddProductAction = "created"
	AddProductUpdated AddProductAction = "updated"
)

type AddProductResult struct {
	Action AddProductAction `json:"action"`
	Added  decimal.Decimal  `json:"added"`
	Batch  *InventoryBatch  `json:"batch"`
}

type ConsumptionStatus string

const (
	ConsumptionConsumed ConsumptionStatus = "consumed"
	ConsumptionPartial  ConsumptionStatus = "partial"
	ConsumptionNotFound ConsumptionStatus = "not_found"
)

// BatchConsumption registra quanto foi retirado de um lote
type BatchConsumption struct {
	BatchID          string          `json:"batch_id"`
	ExpirationDate   Date            `json:"expiration_date"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	RemainingInBatch decimal.Decimal `json:"remaining_in_batch"`
}

type ConsumptionResult struct {
	Status               ConsumptionStatus  `json:"status"`
	ProductName          string             `json:"product_name"`
	Requested            decimal.Decimal    `json:"requested"`
	Consumed             []BatchConsumption `json:"consumed"`
	RemainingUnfulfilled decimal.Decimal    `json:"remaining_unfulfilled"`
}

func (r *ConsumptionResult) TotalConsumed() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Consumed {
		total = total.Add(c.Quantity)
	}
	return total
}

// PlanConsumption percorre os lotes na ordem recebida (vencimento mais próximo
// primeiro) retirando min(quantidade do lote, restante) de cada um.
// Retorna as retiradas e o que ficou sem atender.
func PlanConsumption(batches []*InventoryBatch, quantity decimal.Decimal) ([]BatchConsumption, decimal.Decimal) {
	remaining := quantity
	plan := make([]BatchConsumption, 0, len(batches))

	for _, batch := range batches {
		if !remaining.IsPositive() {
			break
		}
		if !batch.Quantity.IsPositive() {
			continue
		}

		used := decimal.Min(batch.Quantity, remaining)
		remaining = remaining.Sub(used)

		plan = append(plan, BatchConsumption{
			BatchID:          batch.ID,
			ExpirationDate:   batch.ExpirationDate,
			Quantity:         used,
			Unit:             batch.Unit,
			RemainingInBatch: batch.Quantity.Sub(used),
		})
	}

	return plan, remaining
}
