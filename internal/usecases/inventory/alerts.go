package inventory

import (
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/shopspring/decimal"
)

type productStock struct {
	total decimal.Decimal
	meta  *domain.InventoryBatch
}

// BuildAlerts classifica os lotes em vencidos, a vencer em até warningDays e
// produtos com auto_buy abaixo do mínimo. Só lotes com quantidade positiva
// entram na varredura, então um produto com todos os lotes esgotados não gera
// alerta de reposição. O estoque total soma os lotes restantes do produto;
// auto_buy e min_threshold vêm do lote com metadados mais recentes.
func BuildAlerts(batches []*domain.InventoryBatch, today domain.Date, warningDays int) *domain.InventoryAlerts {
	alerts := &domain.InventoryAlerts{
		Date:          today,
		Expired:       []domain.ExpiryAlert{},
		ExpiringSoon:  []domain.ExpiryAlert{},
		RestockNeeded: []domain.RestockAlert{},
	}

	warningLimit := today.AddDays(warningDays)
	stocks := make(map[string]*productStock)
	order := make([]string, 0)

	for _, batch := range batches {
		if !batch.Quantity.IsPositive() {
			continue
		}

		stock, ok := stocks[batch.ProductName]
		if !ok {
			stock = &productStock{total: decimal.Zero}
			stocks[batch.ProductName] = stock
			order = append(order, batch.ProductName)
		}
		stock.total = stock.total.Add(batch.Quantity)
		if stock.meta == nil || !batch.UpdatedAt.Before(stock.meta.UpdatedAt) {
			stock.meta = batch
		}

		if batch.ExpirationDate.IsZero() {
			continue
		}

		alert := domain.ExpiryAlert{
			BatchID:        batch.ID,
			ProductName:    batch.ProductName,
			Quantity:       batch.Quantity,
			Unit:           batch.Unit,
			ExpirationDate: batch.ExpirationDate,
		}

		switch {
		case batch.ExpirationDate.Before(today):
			alerts.Expired = append(alerts.Expired, alert)
		case !batch.ExpirationDate.After(warningLimit):
			alerts.ExpiringSoon = append(alerts.ExpiringSoon, alert)
		}
	}

	for _, name := range order {
		stock := stocks[name]
		if stock.meta.AutoBuy && stock.total.LessThan(stock.meta.MinThreshold) {
			alerts.RestockNeeded = append(alerts.RestockNeeded, domain.RestockAlert{
				ProductName:  name,
				TotalStock:   stock.total,
				MinThreshold: stock.meta.MinThreshold,
				Unit:         stock.meta.Unit,
			})
		}
	}

	return alerts
}
