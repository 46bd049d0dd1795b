package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/integrator/notifier"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/internal/usecases/inventory"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const inventoryAlertsJob = "alertas de estoque"

type InventoryAlertsCheckService struct {
	syncState
	scheduler  *gocron.Scheduler
	accountant inventory.Accountant
	notifier   notifier.Notifier
	config     JobConfig
}

func NewInventoryAlertsCheckService(accountant inventory.Accountant, n notifier.Notifier, cfg *config.Config) *InventoryAlertsCheckService {
	jobConfig := JobConfig{
		CronSchedule: cfg.InventoryAlertCheck.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.InventoryAlertCheck.Enabled,
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
	}).Info("Configuração do agendador de alertas de estoque carregada")

	return &InventoryAlertsCheckService{
		scheduler:  gocron.NewScheduler(location),
		accountant: accountant,
		notifier:   n,
		config:     jobConfig,
	}
}

func (s *InventoryAlertsCheckService) Start(ctx context.Context) error {
	return startCron(ctx, s.scheduler, s.config, inventoryAlertsJob, func() {
		if _, err := s.RunCheck(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação agendada de alertas de estoque")
		}
	})
}

// RunCheck calcula os alertas e notifica o dono quando há algum
func (s *InventoryAlertsCheckService) RunCheck(ctx context.Context) (*domain.InventoryAlerts, error) {
	if !s.begin() {
		logrus.Warn("Verificação de alertas de estoque já está em execução")
		return nil, nil
	}
	defer s.end()

	logrus.Info("Iniciando verificação de alertas de estoque")

	alerts, err := s.accountant.GetAlerts(ctx)
	if err != nil {
		return nil, err
	}

	if alerts.IsEmpty() {
		logrus.Info("Nenhum alerta de estoque")
		return alerts, nil
	}

	if err := s.notifier.Notify(ctx, inventoryNotification(alerts)); err != nil {
		logrus.WithError(err).Error("Erro ao notificar alertas de estoque")
		return alerts, err
	}

	logrus.WithField("alerts", alerts.Count()).Info("Verificação de alertas de estoque concluída")

	return alerts, nil
}

func inventoryNotification(alerts *domain.InventoryAlerts) notifier.Notification {
	priority := notifier.PriorityNormal
	if len(alerts.Expired) > 0 {
		priority = notifier.PriorityHigh
	}

	formatted := inventory.FormatAlerts(alerts)

	return notifier.Notification{
		Subject:  fmt.Sprintf("Inventory alerts %s: %d item(s)", alerts.Date, alerts.Count()),
		Body:     strings.Join(formatted.Lines(), "\n"),
		Priority: priority,
		Payload:  formatted,
	}
}

// TriggerManualSync inicia manualmente a verificação de alertas de estoque
func (s *InventoryAlertsCheckService) TriggerManualSync() {
	if s.running() {
		logrus.Info("Verificação de alertas de estoque já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando verificação manual de alertas de estoque")
	go func() {
		if _, err := s.RunCheck(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual de alertas de estoque")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *InventoryAlertsCheckService) GetStatus() map[string]any {
	return s.status(s.config)
}
