package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/integrator/notifier"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/internal/usecases/advising"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const financeCheckJob = "verificação financeira"

type FinanceInsightsCheckService struct {
	syncState
	scheduler *gocron.Scheduler
	advisor   advising.Advisor
	notifier  notifier.Notifier
	config    JobConfig
	location  *time.Location
	now       func() time.Time
}

func NewFinanceInsightsCheckService(advisor advising.Advisor, n notifier.Notifier, cfg *config.Config) *FinanceInsightsCheckService {
	jobConfig := JobConfig{
		CronSchedule: cfg.FinanceCheck.CronSchedule, // Default: 7h da manhã todos os dias
		SyncEnabled:  cfg.FinanceCheck.Enabled,
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
	}).Info("Configuração do agendador da verificação financeira carregada")

	return &FinanceInsightsCheckService{
		scheduler: gocron.NewScheduler(location),
		advisor:   advisor,
		notifier:  n,
		config:    jobConfig,
		location:  location,
		now:       time.Now,
	}
}

func (s *FinanceInsightsCheckService) Start(ctx context.Context) error {
	return startCron(ctx, s.scheduler, s.config, financeCheckJob, func() {
		if _, err := s.RunCheck(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação financeira agendada")
		}
	})
}

// RunCheck roda a verificação do dia e notifica o dono quando há insights.
// Retorna nil sem erro quando outra execução já está em andamento.
func (s *FinanceInsightsCheckService) RunCheck(ctx context.Context) (*domain.FinanceCheckReport, error) {
	if !s.begin() {
		logrus.Warn("Verificação financeira já está em execução")
		return nil, nil
	}
	defer s.end()

	today := domain.Today(s.now(), s.location)
	logrus.WithField("date", today.String()).Info("Iniciando verificação financeira")

	report, err := s.advisor.AutoCheck(ctx, today)
	if err != nil {
		return nil, err
	}

	if len(report.Insights) == 0 {
		logrus.Info("Verificação financeira concluída sem problemas detectados")
		return report, nil
	}

	if err := s.notifier.Notify(ctx, financeNotification(report)); err != nil {
		logrus.WithError(err).Error("Erro ao notificar resultado da verificação financeira")
		return report, err
	}

	logrus.WithField("insights", len(report.Insights)).Info("Verificação financeira concluída")

	return report, nil
}

func financeNotification(report *domain.FinanceCheckReport) notifier.Notification {
	priority := notifier.PriorityNormal
	for _, insight := range report.Insights {
		if insight.Severity == domain.SeverityHigh {
			priority = notifier.PriorityHigh
			break
		}
	}

	var body strings.Builder
	if report.Advice != nil {
		body.WriteString(report.Advice.SummaryMarkdown)
		for _, action := range report.Advice.Actions {
			body.WriteString("\n- ")
			body.WriteString(action)
		}
	}

	return notifier.Notification{
		Subject:  fmt.Sprintf("Financial check %s: %d insight(s)", report.Date, len(report.Insights)),
		Body:     body.String(),
		Priority: priority,
		Payload:  report,
	}
}

// TriggerManualSync inicia manualmente a verificação financeira
func (s *FinanceInsightsCheckService) TriggerManualSync() {
	if s.running() {
		logrus.Info("Verificação financeira já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando verificação financeira manual")
	go func() {
		if _, err := s.RunCheck(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação financeira manual")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *FinanceInsightsCheckService) GetStatus() map[string]any {
	return s.status(s.config)
}
