package domain

import "github.com/shopspring/decimal"

type ExpiryAlert struct {
	BatchID        string          `json:"batch_id"`
	ProductName    string          `json:"product_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate Date            `json:"expiration_date"`
}

type RestockAlert struct {
	ProductName  string          `json:"product_name"`
	TotalStock   decimal.Decimal `json:"total_stock"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	Unit         string          `json:"unit"`
}

// InventoryAlerts agrupa os três tipos de alerta; um lote nunca aparece
// em expired e expiring_soon ao mesmo tempo
type InventoryAlerts struct {
	Date          Date           `json:"date"`
	Expired       []ExpiryAlert  `json:"expired"`
	ExpiringSoon  []ExpiryAlert  `json:"expiring_soon"`
	RestockNeeded []RestockAlert `json:"restock_needed"`
}

func (a *InventoryAlerts) IsEmpty() bool {
	return len(a.Expired) == 0 && len(a.ExpiringSoon) == 0 && len(a.RestockNeeded) == 0
}

func (a *InventoryAlerts) Count() int {
	return len(a.Expired) + len(a.ExpiringSoon) + len(a.RestockNeeded)
}
