package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/database/postgres"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/George0Simion/BizzGenie/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory_batches (
	id              TEXT PRIMARY KEY,
	product_name    TEXT NOT NULL,
	category        TEXT NOT NULL DEFAULT 'general',
	quantity        NUMERIC(14, 3) NOT NULL DEFAULT 0,
	unit            TEXT NOT NULL DEFAULT 'pcs',
	expiration_date DATE NOT NULL,
	auto_buy        BOOLEAN NOT NULL DEFAULT FALSE,
	min_threshold   NUMERIC(14, 3) NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (product_name, expiration_date)
);

CREATE INDEX IF NOT EXISTS idx_inventory_batches_product ON inventory_batches (product_name);

CREATE TABLE IF NOT EXISTS daily_financials (
	date    DATE PRIMARY KEY,
	revenue NUMERIC(14, 2) NOT NULL DEFAULT 0,
	cost    NUMERIC(14, 2) NOT NULL DEFAULT 0,
	profit  NUMERIC(14, 2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS product_financials (
	id           BIGSERIAL PRIMARY KEY,
	date         DATE NOT NULL,
	product_id   TEXT NOT NULL,
	product_name TEXT NOT NULL,
	revenue      NUMERIC(14, 2) NOT NULL DEFAULT 0,
	cost         NUMERIC(14, 2) NOT NULL DEFAULT 0,
	profit       NUMERIC(14, 2) NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_product_financials_date ON product_financials (date);
`

type dailySeed struct {
	Revenue int64
	Cost    int64
}

type productSeed struct {
	ProductID  string
	Name       string
	ProfitPrev int64
	ProfitCurr int64
}

type batchSeed struct {
	Name         string
	Category     string
	Quantity     string
	Unit         string
	ExpiresIn    int
	AutoBuy      bool
	MinThreshold string
}

// Dez dias de lucro em queda, o suficiente para disparar o alerta de declínio
var dailySeeds = []dailySeed{
	{1000, 700}, {1100, 750}, {900, 700}, {950, 720}, {800, 650},
	{780, 640}, {750, 650}, {730, 660}, {700, 670}, {690, 680},
}

var productSeeds = []productSeed{
	{"burger", "Burger clasic", 4000, 2500},
	{"pizza", "Pizza Margherita", 3000, 3200},
	{"pasta", "Penne Alfredo", 2000, 1500},
	{"salad", "Salată grecească", 1000, 900},
	{"soda", "Suc la pahar", 800, 900},
}

var batchSeeds = []batchSeed{
	{"milk", "dairy", "2", "l", -1, false, "2"},
	{"milk", "dairy", "6", "l", 2, false, "2"},
	{"cheese", "dairy", "3", "kg", 5, false, "1"},
	{"eggs", "general", "4", "pcs", 10, true, "12"},
	{"tomatoes", "vegetables", "8", "kg", 4, true, "3"},
	{"flour", "dry", "25", "kg", 120, true, "10"},
}

func main() {
	seed := flag.Bool("seed", false, "insere dados de demonstração após criar o schema")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o schema")
	}
	logrus.Infof("Schema aplicado em %v", time.Since(startTime))

	if !*seed {
		return
	}

	today := domain.Today(time.Now(), cfg.Location)

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertDailyFinancials(ctx, tx, today); err != nil {
			return err
		}
		if err := insertProductFinancials(ctx, tx, today); err != nil {
			return err
		}
		return insertInventoryBatches(ctx, tx, today)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados de demonstração, transação revertida")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}

// insertDailyFinancials grava os dias terminando ontem, o último seed é o mais recente
func insertDailyFinancials(ctx context.Context, tx *sql.Tx, today domain.Date) error {
	logrus.Infof("Iniciando inserção de %d dias de financeiro...", len(dailySeeds))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO daily_financials (date, revenue, cost, profit)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE SET revenue = EXCLUDED.revenue, cost = EXCLUDED.cost, profit = EXCLUDED.profit`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	first := today.AddDays(-len(dailySeeds))
	for i, d := range dailySeeds {
		revenue := decimal.NewFromInt(d.Revenue)
		cost := decimal.NewFromInt(d.Cost)
		date := first.AddDays(i)

		if _, err := stmt.ExecContext(ctx, date, revenue, cost, revenue.Sub(cost)); err != nil {
			return err
		}
		logrus.Debugf("[%d/%d] Dia %s inserido", i+1, len(dailySeeds), date)
	}

	return nil
}

// insertProductFinancials grava o lucro de cada produto no mês anterior e no atual
func insertProductFinancials(ctx context.Context, tx *sql.Tx, today domain.Date) error {
	logrus.Infof("Iniciando inserção de %d produtos...", len(productSeeds))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO product_financials (date, product_id, product_name, revenue, cost, profit)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	currStart := today.FirstOfMonth()
	prevStart := currStart.AddDays(-1).FirstOfMonth()

	for _, p := range productSeeds {
		for _, row := range []struct {
			date   domain.Date
			profit int64
		}{{prevStart, p.ProfitPrev}, {currStart, p.ProfitCurr}} {
			profit := decimal.NewFromInt(row.profit)
			revenue := profit.Mul(decimal.NewFromInt(2))
			if _, err := stmt.ExecContext(ctx, row.date, p.ProductID, p.Name, revenue, revenue.Sub(profit), profit); err != nil {
				return err
			}
		}
	}

	return nil
}

func insertInventoryBatches(ctx context.Context, tx *sql.Tx, today domain.Date) error {
	logrus.Infof("Iniciando inserção de %d lotes...", len(batchSeeds))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO inventory_batches
		(id, product_name, category, quantity, unit, expiration_date, auto_buy, min_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_name, expiration_date) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	successCount := 0
	for _, b := range batchSeeds {
		id, err := utils.GenerateID("bat")
		if err != nil {
			return err
		}

		res, err := stmt.ExecContext(ctx, id, b.Name, b.Category, decimal.RequireFromString(b.Quantity),
			b.Unit, today.AddDays(b.ExpiresIn), b.AutoBuy, decimal.RequireFromString(b.MinThreshold))
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			successCount++
		}
	}

	logrus.WithField("inseridos", successCount).Info("Lotes de estoque inseridos")
	return nil
}
