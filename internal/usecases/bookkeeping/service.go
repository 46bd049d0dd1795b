package bookkeeping

import (
	"context"
	"errors"
	"strings"

	"github.com/George0Simion/BizzGenie/infrastructure/repository"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingDate       = errors.New("data é obrigatória")
	ErrMissingProduct    = errors.New("product_id é obrigatório")
	ErrNegativeAmount    = errors.New("receita e custo não podem ser negativos")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// IsValidationError indica erros causados pela entrada do usuário
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingDate) || errors.Is(err, ErrMissingProduct) || errors.Is(err, ErrNegativeAmount)
}

type Service struct {
	ledger repository.FinancialLedgerRepository
}

func NewService(ledger repository.FinancialLedgerRepository) Bookkeeper {
	return &Service{ledger: ledger}
}

func (s *Service) RecordDailyFinancial(ctx context.Context, date domain.Date, revenue, cost decimal.Decimal) (*domain.DailyFinancialRecord, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if revenue.IsNegative() || cost.IsNegative() {
		return nil, ErrNegativeAmount
	}

	record, err := s.ledger.UpsertDailyFinancial(ctx, date, revenue, cost)
	if err != nil {
		return nil, errors.Join(ErrDatabaseOperation, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"date":   date.String(),
		"profit": record.Profit.String(),
	}).Info("Fechamento diário registrado")

	return record, nil
}

func (s *Service) RecordProductFinancial(ctx context.Context, entry *domain.ProductFinancialEntry) (*domain.ProductFinancialEntry, error) {
	if entry.Date.IsZero() {
		return nil, ErrMissingDate
	}

	entry.ProductID = strings.TrimSpace(entry.ProductID)
	if entry.ProductID == "" {
		return nil, ErrMissingProduct
	}
	if entry.Revenue.IsNegative() || entry.Cost.IsNegative() {
		return nil, ErrNegativeAmount
	}

	entry.ProductName = strings.TrimSpace(entry.ProductName)
	if entry.ProductName == "" {
		entry.ProductName = entry.ProductID
	}

	if err := s.ledger.AddProductFinancial(ctx, entry); err != nil {
		return nil, errors.Join(ErrDatabaseOperation, err)
	}

	return entry, nil
}
