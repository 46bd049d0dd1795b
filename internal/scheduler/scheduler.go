// Package scheduler contém os serviços de agendamento das verificações diárias
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Job é o que a API expõe para disparo manual e consulta de status
type Job interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

type JobConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// syncState evita execuções sobrepostas e guarda os horários da última execução
type syncState struct {
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// begin marca o início da execução; retorna false se já houver uma em andamento
func (s *syncState) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *syncState) end() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
}

func (s *syncState) running() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

func (s *syncState) status(cfg JobConfig) map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_enabled":           cfg.SyncEnabled,
		"sync_cron":              cfg.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// startCron agenda task e para o agendador quando ctx for cancelado
func startCron(ctx context.Context, scheduler *gocron.Scheduler, cfg JobConfig, name string, task func()) error {
	if !cfg.SyncEnabled {
		logrus.Infof("Cron de %s desabilitada por configuração", name)
		return nil
	}

	logrus.WithField("cron", cfg.CronSchedule).Infof("Iniciando cron de %s", name)

	if _, err := scheduler.Cron(cfg.CronSchedule).Do(task); err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", name, err)
	}

	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Infof("Parando cron de %s", name)
		scheduler.Stop()
	}()

	return nil
}
