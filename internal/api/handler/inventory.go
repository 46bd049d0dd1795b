package handler

import (
	"net/http"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/internal/usecases/inventory"
	"github.com/George0Simion/BizzGenie/pkg/apiErrors"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ConsumeProductRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type AddProductResponse struct {
	*domain.AddProductResult
	Message string `json:"message"`
}

type ConsumeProductResponse struct {
	*domain.ConsumptionResult
	Message string `json:"message"`
}

type InventoryAlertsResponse struct {
	*domain.InventoryAlerts
	Formatted inventory.FormattedAlerts `json:"formatted"`
}

func AddProduct(service inventory.Accountant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		result, err := service.AddProduct(r.Context(), req)
		if err != nil {
			handleInventoryError(w, r, err)
			return
		}

		status := http.StatusOK
		if result.Action == domain.AddProductCreated {
			status = http.StatusCreated
		}

		writeJSON(w, r, status, AddProductResponse{
			AddProductResult: result,
			Message:          inventory.FormatAddResult(result),
		})
	}
}

// ConsumeProduct sempre responde 200; falta de estoque vem no campo status
func ConsumeProduct(service inventory.Accountant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConsumeProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		result, err := service.ConsumeProduct(r.Context(), req.ProductName, req.Quantity)
		if err != nil {
			handleInventoryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ConsumeProductResponse{
			ConsumptionResult: result,
			Message:           inventory.FormatConsumption(result),
		})
	}
}

func ListInventory(service inventory.Accountant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batches, err := service.ListInventory(r.Context())
		if err != nil {
			handleInventoryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, batches)
	}
}

func GetInventoryAlerts(service inventory.Accountant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.GetAlerts(r.Context())
		if err != nil {
			handleInventoryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, InventoryAlertsResponse{
			InventoryAlerts: alerts,
			Formatted:       inventory.FormatAlerts(alerts),
		})
	}
}

func handleInventoryError(w http.ResponseWriter, r *http.Request, err error) {
	var invErr *inventory.InventoryError
	if errors.As(err, &invErr) {
		if inventory.IsValidationError(err) {
			apiErrors.WriteError(w, invErr.Code, invErr.Error(), nil)
			return
		}

		log.ForContext(r.Context()).WithError(err).WithField("product_name", invErr.ProductName).Error("Erro no estoque")
		apiErrors.WriteError(w, invErr.Code, "Erro ao acessar o estoque", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no estoque")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
