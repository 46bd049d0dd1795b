package main

import (
	"context"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/cache"
	"github.com/George0Simion/BizzGenie/infrastructure/database/postgres"
	"github.com/George0Simion/BizzGenie/infrastructure/integrator/llm"
	"github.com/George0Simion/BizzGenie/infrastructure/integrator/notifier"
	"github.com/George0Simion/BizzGenie/infrastructure/repository"
	"github.com/George0Simion/BizzGenie/internal/api"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/scheduler"
	"github.com/George0Simion/BizzGenie/internal/usecases/advising"
	"github.com/George0Simion/BizzGenie/internal/usecases/authenticating"
	"github.com/George0Simion/BizzGenie/internal/usecases/bookkeeping"
	"github.com/George0Simion/BizzGenie/internal/usecases/insighting"
	"github.com/George0Simion/BizzGenie/internal/usecases/inventory"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	inventoryRepo := repository.NewInventoryBatchRepository(pgConn)
	ledgerRepo := repository.NewFinancialLedgerRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)
	accountant := inventory.NewService(inventoryRepo, cfg)
	insighter := insighting.NewService(ledgerRepo)
	bookkeeper := bookkeeping.NewService(ledgerRepo)

	adviceStore := adviceCache(ctx, cfg.Redis)
	advisor := advising.NewService(insighter, adviceGenerator(ctx, cfg.LLM), adviceStore, cfg.LLM.AdviceCacheTTL)

	ownerNotifier := notifier.New(cfg.Notifier)

	financeCheck := scheduler.NewFinanceInsightsCheckService(advisor, ownerNotifier, cfg)
	if err := financeCheck.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da verificação financeira")
	}

	inventoryCheck := scheduler.NewInventoryAlertsCheckService(accountant, ownerNotifier, cfg)
	if err := inventoryCheck.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de estoque")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:  authenticator,
		Accountant:     accountant,
		Insighter:      insighter,
		Advisor:        advisor,
		Bookkeeper:     bookkeeper,
		FinanceCheck:   financeCheck,
		InventoryCheck: inventoryCheck,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// adviceGenerator retorna nil sem chave do modelo; o assistente responde 503 nesse caso
func adviceGenerator(ctx context.Context, cfg config.LLM) llm.AdviceGenerator {
	if cfg.APIKey == "" {
		logrus.Warn("LLM_API_KEY vazia, assistente financeiro desabilitado")
		return nil
	}

	generator, err := llm.NewAdviceGenerator(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar o assistente financeiro")
		return nil
	}

	logrus.WithField("model", cfg.Model).Info("Assistente financeiro inicializado")
	return generator
}

func adviceCache(ctx context.Context, cfg config.Redis) cache.AdviceCache {
	if cfg.Addr == "" {
		return cache.NoopAdviceCache{}
	}

	redisCache := cache.NewRedisAdviceCache(cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := redisCache.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de conselhos")
		return cache.NoopAdviceCache{}
	}

	logrus.WithField("addr", cfg.Addr).Info("Cache de conselhos no Redis habilitado")
	return redisCache
}
