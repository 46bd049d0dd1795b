package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/repository"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/pkg/apiErrors"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/George0Simion/BizzGenie/pkg/utils"
	"github.com/shopspring/decimal"
)

const batchIDPrefix = "bat"

// Settings são os valores padrão aplicados a lotes novos e aos alertas
type Settings struct {
	DefaultMinThreshold decimal.Decimal
	DefaultUnit         string
	DefaultCategory     string
	DefaultShelfLife    int
	ExpiryWarningDays   int
	Location            *time.Location
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		DefaultMinThreshold: decimal.NewFromFloat(cfg.Inventory.DefaultMinThreshold),
		DefaultUnit:         cfg.Inventory.DefaultUnit,
		DefaultCategory:     cfg.Inventory.DefaultCategory,
		DefaultShelfLife:    cfg.Inventory.DefaultShelfLife,
		ExpiryWarningDays:   cfg.Inventory.ExpiryWarningDays,
		Location:            cfg.Location,
	}
}

type Service struct {
	repo     repository.InventoryBatchRepository
	settings Settings
	now      func() time.Time
}

func NewService(repo repository.InventoryBatchRepository, cfg *config.Config) Accountant {
	return &Service{
		repo:     repo,
		settings: SettingsFromConfig(cfg),
		now:      time.Now,
	}
}

func (s *Service) today() domain.Date {
	return domain.Today(s.now(), s.settings.Location)
}

// AddProduct soma a quantidade ao lote (produto, vencimento) ou cria um lote novo.
// Em lote existente, categoria e auto_buy são sobrescritos apenas nele.
func (s *Service) AddProduct(ctx context.Context, req domain.AddProductRequest) (*domain.AddProductResult, error) {
	name := normalizeProductName(req.ProductName)
	if name == "" {
		return nil, NewInventoryError(ErrMissingProductName, apiErrors.ErrMissingRequiredData, "", "informe product_name")
	}

	if err := validateQuantity(name, req.Quantity); err != nil {
		return nil, err
	}

	expiration := req.ExpirationDate
	if expiration.IsZero() {
		expiration = s.today().AddDays(s.settings.DefaultShelfLife)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = s.settings.DefaultCategory
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = s.settings.DefaultUnit
	}

	result := &domain.AddProductResult{Added: req.Quantity}

	err := s.repo.WithProductLock(ctx, name, func(tx repository.InventoryBatchTx) error {
		existing, err := tx.FindBatch(ctx, name, expiration)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Quantity = existing.Quantity.Add(req.Quantity)
			existing.Category = category
			existing.AutoBuy = req.AutoBuy

			if err := tx.UpdateBatch(ctx, existing); err != nil {
				return err
			}

			result.Action = domain.AddProductUpdated
			result.Batch = existing
			return nil
		}

		id, err := utils.GenerateID(batchIDPrefix)
		if err != nil {
			return err
		}

		batch := &domain.InventoryBatch{
			ID:             id,
			ProductName:    name,
			Category:       category,
			Quantity:       req.Quantity,
			Unit:           unit,
			ExpirationDate: expiration,
			AutoBuy:        req.AutoBuy,
			MinThreshold:   s.settings.DefaultMinThreshold,
		}

		if err := tx.CreateBatch(ctx, batch); err != nil {
			return err
		}

		result.Action = domain.AddProductCreated
		result.Batch = batch
		return nil
	})
	if err != nil {
		return nil, NewInventoryError(errors.Join(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, name, "erro ao registrar lote")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"product_name":    name,
		"batch_id":        result.Batch.ID,
		"action":          result.Action,
		"quantity":        req.Quantity.String(),
		"expiration_date": expiration.String(),
	}).Info("Lote registrado no estoque")

	return result, nil
}

// ConsumeProduct retira a quantidade dos lotes com vencimento mais próximo.
// Falta de estoque não é erro: o resultado informa not_found ou partial.
func (s *Service) ConsumeProduct(ctx context.Context, productName string, quantity decimal.Decimal) (*domain.ConsumptionResult, error) {
	name := normalizeProductName(productName)
	if name == "" {
		return nil, NewInventoryError(ErrMissingProductName, apiErrors.ErrMissingRequiredData, "", "informe product_name")
	}

	if err := validateQuantity(name, quantity); err != nil {
		return nil, err
	}

	result := &domain.ConsumptionResult{
		ProductName:          name,
		Requested:            quantity,
		Consumed:             []domain.BatchConsumption{},
		RemainingUnfulfilled: decimal.Zero,
	}

	err := s.repo.WithProductLock(ctx, name, func(tx repository.InventoryBatchTx) error {
		batches, err := tx.ListEligibleBatches(ctx, name)
		if err != nil {
			return err
		}

		if len(batches) == 0 {
			result.Status = domain.ConsumptionNotFound
			result.RemainingUnfulfilled = quantity
			return nil
		}

		plan, remaining := domain.PlanConsumption(batches, quantity)
		for _, step := range plan {
			if err := tx.UpdateQuantity(ctx, step.BatchID, step.RemainingInBatch); err != nil {
				return err
			}
		}

		result.Consumed = plan
		result.RemainingUnfulfilled = remaining
		result.Status = domain.ConsumptionConsumed
		if remaining.IsPositive() {
			result.Status = domain.ConsumptionPartial
		}

		return nil
	})
	if err != nil {
		return nil, NewInventoryError(errors.Join(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, name, "erro ao consumir estoque")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"product_name": name,
		"status":       result.Status,
		"requested":    quantity.String(),
		"remaining":    result.RemainingUnfulfilled.String(),
	}).Info("Consumo de estoque processado")

	return result, nil
}

func (s *Service) GetAlerts(ctx context.Context) (*domain.InventoryAlerts, error) {
	batches, err := s.repo.ListBatches(ctx)
	if err != nil {
		return nil, NewInventoryError(errors.Join(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "", "erro ao listar lotes")
	}

	return BuildAlerts(batches, s.today(), s.settings.ExpiryWarningDays), nil
}

func (s *Service) ListInventory(ctx context.Context) ([]*domain.InventoryBatch, error) {
	batches, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, NewInventoryError(errors.Join(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "", "erro ao listar estoque")
	}

	return batches, nil
}

func normalizeProductName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// quantidades são gravadas em NUMERIC(14,3)
const quantityScale = 3

func validateQuantity(name string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return NewInventoryError(ErrInvalidQuantity, apiErrors.ErrInvalidFormat, name, quantity.String())
	}
	if !quantity.Equal(quantity.Truncate(quantityScale)) {
		return NewInventoryError(ErrQuantityPrecision, apiErrors.ErrInvalidFormat, name, quantity.String())
	}
	return nil
}
