package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/George0Simion/BizzGenie/internal/api/handler"
	"github.com/George0Simion/BizzGenie/internal/api/handler/router"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/scheduler"
	"github.com/George0Simion/BizzGenie/internal/usecases/advising"
	"github.com/George0Simion/BizzGenie/internal/usecases/authenticating"
	"github.com/George0Simion/BizzGenie/internal/usecases/bookkeeping"
	"github.com/George0Simion/BizzGenie/internal/usecases/insighting"
	"github.com/George0Simion/BizzGenie/internal/usecases/inventory"
	"github.com/George0Simion/BizzGenie/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator  authenticating.Authenticator
	Accountant     inventory.Accountant
	Insighter      insighting.FinanceInsighter
	Advisor        advising.Advisor
	Bookkeeper     bookkeeping.Bookkeeper
	FinanceCheck   *scheduler.FinanceInsightsCheckService
	InventoryCheck *scheduler.InventoryAlertsCheckService
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.FinanceCheck != nil {
		cronServices[handler.CronJobTypeFinance] = services.FinanceCheck
	}
	if services.InventoryCheck != nil {
		cronServices[handler.CronJobTypeInventory] = services.InventoryCheck
	}

	today := handler.NewClock(config.Location)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Inventory(services.Accountant)...),
		router.WithRoutes(handler.Finance(services.Insighter, services.Advisor, services.Bookkeeper, today)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			// o assistente financeiro pode levar alguns retries com backoff
			WriteTimeout: 90 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
