package repository

//go:generate mockgen -source=inventory_batch.go -destination=mocks/inventory_batch.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/George0Simion/BizzGenie/infrastructure/database/postgres"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

const (
	inventoryBatchesTable = "inventory_batches"
)

var inventoryBatchColumns = []string{
	"id",
	"product_name",
	"category",
	"quantity",
	"unit",
	"expiration_date",
	"auto_buy",
	"min_threshold",
	"created_at",
	"updated_at",
}

type InventoryBatchRepository interface {
	// WithProductLock abre uma transação e segura o lock exclusivo do produto
	// até o commit ou rollback
	WithProductLock(ctx context.Context, productName string, fn func(tx InventoryBatchTx) error) error
	ListBatches(ctx context.Context) ([]*domain.InventoryBatch, error)
	ListAvailable(ctx context.Context) ([]*domain.InventoryBatch, error)
}

// InventoryBatchTx são as operações disponíveis dentro do lock de um produto
type InventoryBatchTx interface {
	FindBatch(ctx context.Context, productName string, expirationDate domain.Date) (*domain.InventoryBatch, error)
	CreateBatch(ctx context.Context, batch *domain.InventoryBatch) error
	UpdateBatch(ctx context.Context, batch *domain.InventoryBatch) error
	ListEligibleBatches(ctx context.Context, productName string) ([]*domain.InventoryBatch, error)
	UpdateQuantity(ctx context.Context, batchID string, quantity decimal.Decimal) error
}

type inventoryBatchRepository struct {
	conn *postgres.Connection
}

func NewInventoryBatchRepository(conn *postgres.Connection) InventoryBatchRepository {
	return &inventoryBatchRepository{
		conn: conn,
	}
}

func (r *inventoryBatchRepository) WithProductLock(ctx context.Context, productName string, fn func(tx InventoryBatchTx) error) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", productName); err != nil {
			return fmt.Errorf("erro ao obter lock do produto %s: %w", productName, err)
		}

		return fn(&inventoryBatchTx{q: tx})
	})
}

func (r *inventoryBatchRepository) ListBatches(ctx context.Context) ([]*domain.InventoryBatch, error) {
	queryBuilder := squirrel.
		Select(inventoryBatchColumns...).
		From(inventoryBatchesTable).
		OrderBy("product_name ASC", "expiration_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return queryBatches(ctx, r.conn, queryBuilder)
}

func (r *inventoryBatchRepository) ListAvailable(ctx context.Context) ([]*domain.InventoryBatch, error) {
	queryBuilder := squirrel.
		Select(inventoryBatchColumns...).
		From(inventoryBatchesTable).
		Where(squirrel.Gt{"quantity": 0}).
		OrderBy("category ASC", "product_name ASC", "expiration_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return queryBatches(ctx, r.conn, queryBuilder)
}

type inventoryBatchTx struct {
	q postgres.Queryer
}

func (t *inventoryBatchTx) FindBatch(ctx context.Context, productName string, expirationDate domain.Date) (*domain.InventoryBatch, error) {
	queryBuilder := squirrel.
		Select(inventoryBatchColumns...).
		From(inventoryBatchesTable).
		Where(squirrel.Eq{
			"product_name":    productName,
			"expiration_date": expirationDate,
		}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	batch, err := scanBatch(t.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar lote: %w", err)
	}

	return batch, nil
}

func (t *inventoryBatchTx) CreateBatch(ctx context.Context, batch *domain.InventoryBatch) error {
	queryBuilder := squirrel.
		Insert(inventoryBatchesTable).
		Columns("id", "product_name", "category", "quantity", "unit", "expiration_date", "auto_buy", "min_threshold", "created_at", "updated_at").
		Values(
			batch.ID,
			batch.ProductName,
			batch.Category,
			batch.Quantity,
			batch.Unit,
			batch.ExpirationDate,
			batch.AutoBuy,
			batch.MinThreshold,
			squirrel.Expr("NOW()"),
			squirrel.Expr("clock_timestamp()"),
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := t.q.QueryRowContext(ctx, query, args...).Scan(&batch.CreatedAt, &batch.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir lote: %w", err)
	}

	return nil
}

// UpdateBatch grava quantidade, categoria e auto_buy e marca o lote como o
// último com metadados escritos para o produto
func (t *inventoryBatchTx) UpdateBatch(ctx context.Context, batch *domain.InventoryBatch) error {
	queryBuilder := squirrel.
		Update(inventoryBatchesTable).
		Set("quantity", batch.Quantity).
		Set("category", batch.Category).
		Set("auto_buy", batch.AutoBuy).
		Set("updated_at", squirrel.Expr("clock_timestamp()")).
		Where(squirrel.Eq{"id": batch.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := t.q.QueryRowContext(ctx, query, args...).Scan(&batch.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao atualizar lote %s: %w", batch.ID, err)
	}

	return nil
}

func (t *inventoryBatchTx) ListEligibleBatches(ctx context.Context, productName string) ([]*domain.InventoryBatch, error) {
	queryBuilder := squirrel.
		Select(inventoryBatchColumns...).
		From(inventoryBatchesTable).
		Where(squirrel.Eq{"product_name": productName}).
		Where(squirrel.Gt{"quantity": 0}).
		OrderBy("expiration_date ASC", "id ASC").
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar)

	return queryBatches(ctx, t.q, queryBuilder)
}

// UpdateQuantity altera só a quantidade; consumo não conta como escrita de metadados
func (t *inventoryBatchTx) UpdateQuantity(ctx context.Context, batchID string, quantity decimal.Decimal) error {
	query, args, err := squirrel.
		Update(inventoryBatchesTable).
		Set("quantity", quantity).
		Where(squirrel.Eq{"id": batchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := t.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar quantidade do lote %s: %w", batchID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("lote %s não encontrado", batchID)
	}

	return nil
}

func queryBatches(ctx context.Context, q postgres.Queryer, queryBuilder squirrel.SelectBuilder) ([]*domain.InventoryBatch, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.InventoryBatch, 0)
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lote: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return batches, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (*domain.InventoryBatch, error) {
	var batch domain.InventoryBatch
	err := row.Scan(
		&batch.ID,
		&batch.ProductName,
		&batch.Category,
		&batch.Quantity,
		&batch.Unit,
		&batch.ExpirationDate,
		&batch.AutoBuy,
		&batch.MinThreshold,
		&batch.CreatedAt,
		&batch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &batch, nil
}
