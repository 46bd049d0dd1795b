package inventory

import (
	"fmt"
	"strings"

	"github.com/George0Simion/BizzGenie/internal/domain"
)

func FormatAddResult(result *domain.AddProductResult) string {
	action := "Created new batch"
	if result.Action == domain.AddProductUpdated {
		action = "Updated existing batch"
	}

	b := result.Batch
	return fmt.Sprintf("%s: %s%s of '%s' (Category: %s, Exp: %s)",
		action, result.Added.String(), b.Unit, b.ProductName, b.Category, b.ExpirationDate)
}

func FormatConsumption(result *domain.ConsumptionResult) string {
	switch result.Status {
	case domain.ConsumptionNotFound:
		return fmt.Sprintf("Error: '%s' not found in stock.", result.ProductName)
	case domain.ConsumptionPartial:
		return fmt.Sprintf("Consumed available stock of %s. Still need %s more.",
			result.ProductName, result.RemainingUnfulfilled.String())
	}

	details := make([]string, 0, len(result.Consumed))
	for _, c := range result.Consumed {
		details = append(details, fmt.Sprintf("%s%s (batch %s)", c.Quantity.String(), c.Unit, c.ExpirationDate))
	}

	return fmt.Sprintf("Consumed %s: %s", result.ProductName, strings.Join(details, ", "))
}

// FormattedAlerts é a versão em texto de domain.InventoryAlerts
type FormattedAlerts struct {
	Expired       []string `json:"expired"`
	ExpiringSoon  []string `json:"expiring_soon"`
	RestockNeeded []string `json:"restock_needed"`
}

func FormatAlerts(alerts *domain.InventoryAlerts) FormattedAlerts {
	formatted := FormattedAlerts{
		Expired:       make([]string, 0, len(alerts.Expired)),
		ExpiringSoon:  make([]string, 0, len(alerts.ExpiringSoon)),
		RestockNeeded: make([]string, 0, len(alerts.RestockNeeded)),
	}

	for _, a := range alerts.Expired {
		formatted.Expired = append(formatted.Expired,
			fmt.Sprintf("%s: %s%s (Expired %s)", a.ProductName, a.Quantity.String(), a.Unit, a.ExpirationDate))
	}

	for _, a := range alerts.ExpiringSoon {
		formatted.ExpiringSoon = append(formatted.ExpiringSoon,
			fmt.Sprintf("%s: %s%s (Expires %s)", a.ProductName, a.Quantity.String(), a.Unit, a.ExpirationDate))
	}

	for _, a := range alerts.RestockNeeded {
		formatted.RestockNeeded = append(formatted.RestockNeeded,
			fmt.Sprintf("Auto-Buy Alert: %s (Stock: %s, Threshold: %s)", a.ProductName, a.TotalStock.String(), a.MinThreshold.String()))
	}

	return formatted
}

// Lines junta todos os alertas em uma lista única, na ordem vencidos, a vencer, reposição
func (f FormattedAlerts) Lines() []string {
	lines := make([]string, 0, len(f.Expired)+len(f.ExpiringSoon)+len(f.RestockNeeded))
	lines = append(lines, f.Expired...)
	lines = append(lines, f.ExpiringSoon...)
	lines = append(lines, f.RestockNeeded...)
	return lines
}
