package repository

//go:generate mockgen -source=financial_ledger.go -destination=mocks/financial_ledger.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/George0Simion/BizzGenie/infrastructure/database/postgres"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

const (
	dailyFinancialsTable   = "daily_financials"
	productFinancialsTable = "product_financials"
)

// FinancialLedgerReader são as consultas usadas pela detecção de insights
type FinancialLedgerReader interface {
	GetDailyProfit(ctx context.Context, start, end domain.Date) ([]*domain.DailyFinancialRecord, error)
	GetProfitByProductDelta(ctx context.Context, period1Start, period1End, period2Start, period2End domain.Date, topN int) ([]*domain.ProductDelta, error)
}

type FinancialLedgerRepository interface {
	FinancialLedgerReader
	// WithSnapshot executa fn em uma transação somente leitura REPEATABLE READ,
	// garantindo que todas as leituras vejam o mesmo estado do razão
	WithSnapshot(ctx context.Context, fn func(reader FinancialLedgerReader) error) error
	UpsertDailyFinancial(ctx context.Context, date domain.Date, revenue, cost decimal.Decimal) (*domain.DailyFinancialRecord, error)
	AddProductFinancial(ctx context.Context, entry *domain.ProductFinancialEntry) error
}

type financialLedgerRepository struct {
	financialLedgerReader
	conn *postgres.Connection
}

func NewFinancialLedgerRepository(conn *postgres.Connection) FinancialLedgerRepository {
	return &financialLedgerRepository{
		financialLedgerReader: financialLedgerReader{q: conn},
		conn:                  conn,
	}
}

func (r *financialLedgerRepository) WithSnapshot(ctx context.Context, fn func(reader FinancialLedgerReader) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

	return r.conn.RunInTransactionWithOptions(ctx, opts, func(tx *sql.Tx) error {
		return fn(&financialLedgerReader{q: tx})
	})
}

func (r *financialLedgerRepository) UpsertDailyFinancial(ctx context.Context, date domain.Date, revenue, cost decimal.Decimal) (*domain.DailyFinancialRecord, error) {
	queryBuilder := squirrel.
		Insert(dailyFinancialsTable).
		Columns("date", "revenue", "cost", "profit").
		Values(date, revenue, cost, revenue.Sub(cost)).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			revenue = EXCLUDED.revenue,
			cost = EXCLUDED.cost,
			profit = EXCLUDED.profit
			RETURNING date, revenue, cost, profit`).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var record domain.DailyFinancialRecord
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&record.Date, &record.Revenue, &record.Cost, &record.Profit)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar financeiro diário de %s: %w", date, err)
	}

	return &record, nil
}

func (r *financialLedgerRepository) AddProductFinancial(ctx context.Context, entry *domain.ProductFinancialEntry) error {
	entry.Profit = entry.Revenue.Sub(entry.Cost)

	query, args, err := squirrel.
		Insert(productFinancialsTable).
		Columns("date", "product_id", "product_name", "revenue", "cost", "profit").
		Values(entry.Date, entry.ProductID, entry.ProductName, entry.Revenue, entry.Cost, entry.Profit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir financeiro do produto %s: %w", entry.ProductID, err)
	}

	return nil
}

type financialLedgerReader struct {
	q postgres.Queryer
}

func (r *financialLedgerReader) GetDailyProfit(ctx context.Context, start, end domain.Date) ([]*domain.DailyFinancialRecord, error) {
	query, args, err := squirrel.
		Select("date", "revenue", "cost", "profit").
		From(dailyFinancialsTable).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.DailyFinancialRecord, 0)
	for rows.Next() {
		var record domain.DailyFinancialRecord
		if err := rows.Scan(&record.Date, &record.Revenue, &record.Cost, &record.Profit); err != nil {
			return nil, fmt.Errorf("erro ao ler financeiro diário: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return records, nil
}

func (r *financialLedgerReader) GetProfitByProductDelta(ctx context.Context, period1Start, period1End, period2Start, period2End domain.Date, topN int) ([]*domain.ProductDelta, error) {
	period1, err := r.productProfit(ctx, period1Start, period1End)
	if err != nil {
		return nil, err
	}

	period2, err := r.productProfit(ctx, period2Start, period2End)
	if err != nil {
		return nil, err
	}

	return domain.MergeProductDeltas(period1, period2, topN), nil
}

func (r *financialLedgerReader) productProfit(ctx context.Context, start, end domain.Date) ([]*domain.ProductPeriodProfit, error) {
	query, args, err := squirrel.
		Select("product_id", "MAX(product_name)", "COALESCE(SUM(profit), 0)").
		From(productFinancialsTable).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		GroupBy("product_id").
		OrderBy("product_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profits := make([]*domain.ProductPeriodProfit, 0)
	for rows.Next() {
		var p domain.ProductPeriodProfit
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Profit); err != nil {
			return nil, fmt.Errorf("erro ao ler lucro por produto: %w", err)
		}
		profits = append(profits, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return profits, nil
}
