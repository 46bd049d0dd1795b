package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/integrator/notifier"
	notifiermocks "github.com/George0Simion/BizzGenie/infrastructure/integrator/notifier/mocks"
	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/internal/usecases/advising"
	advisingmocks "github.com/George0Simion/BizzGenie/internal/usecases/advising/mocks"
	insightingmocks "github.com/George0Simion/BizzGenie/internal/usecases/insighting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) *config.Config {
	location, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)

	return &config.Config{
		FinanceCheck:        config.FinanceCheck{CronSchedule: "0 7 * * *", Enabled: true},
		InventoryAlertCheck: config.InventoryAlertCheck{CronSchedule: "0 6 * * *", Enabled: false},
		Location:            location,
	}
}

func TestFinanceInsightsCheckService_RunCheck(t *testing.T) {
	// 23h30 UTC já é o dia seguinte em Bucareste
	now := time.Date(2025, time.November, 27, 23, 30, 0, 0, time.UTC)
	today := domain.DateOf(2025, time.November, 28)

	advice := &domain.FinanceAdvice{
		SummaryMarkdown: "Profit is down",
		Actions:         []string{"Review costs", "Push desserts"},
		AffectedMetrics: []string{"profit"},
	}

	tests := []struct {
		name        string
		setup       func(advisor *advisingmocks.MockAdvisor, n *notifiermocks.MockNotifier)
		expectedErr bool
	}{
		{
			name: "Sem insights não notifica",
			setup: func(advisor *advisingmocks.MockAdvisor, n *notifiermocks.MockNotifier) {
				advisor.EXPECT().AutoCheck(gomock.Any(), today).Return(&domain.FinanceCheckReport{
					Date: today, Insights: []*domain.Insight{}, Advice: advice,
				}, nil)
			},
		},
		{
			name: "Insight de severidade alta notifica com prioridade alta",
			setup: func(advisor *advisingmocks.MockAdvisor, n *notifiermocks.MockNotifier) {
				advisor.EXPECT().AutoCheck(gomock.Any(), today).Return(&domain.FinanceCheckReport{
					Date:     today,
					Insights: []*domain.Insight{{Type: domain.InsightOverallProfitDecline, Severity: domain.SeverityHigh}},
					Advice:   advice,
				}, nil)
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, notification notifier.Notification) error {
					assert.Equal(t, notifier.PriorityHigh, notification.Priority)
					assert.Equal(t, "Financial check 2025-11-28: 1 insight(s)", notification.Subject)
					assert.Equal(t, "Profit is down\n- Review costs\n- Push desserts", notification.Body)
					return nil
				})
			},
		},
		{
			name: "Erro do assistente",
			setup: func(advisor *advisingmocks.MockAdvisor, n *notifiermocks.MockNotifier) {
				advisor.EXPECT().AutoCheck(gomock.Any(), today).Return(nil, errors.New("modelo fora do ar"))
			},
			expectedErr: true,
		},
		{
			name: "Erro ao notificar",
			setup: func(advisor *advisingmocks.MockAdvisor, n *notifiermocks.MockNotifier) {
				advisor.EXPECT().AutoCheck(gomock.Any(), today).Return(&domain.FinanceCheckReport{
					Date:     today,
					Insights: []*domain.Insight{{Type: domain.InsightProductProfitDrivers, Severity: domain.SeverityMedium}},
					Advice:   advice,
				}, nil)
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("webhook fora do ar"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			advisor := advisingmocks.NewMockAdvisor(ctrl)
			n := notifiermocks.NewMockNotifier(ctrl)
			tt.setup(advisor, n)

			service := NewFinanceInsightsCheckService(advisor, n, testConfig(t))
			service.now = func() time.Time { return now }

			_, err := service.RunCheck(context.Background())

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestFinanceInsightsCheckService_RunCheck_SemModelo(t *testing.T) {
	now := time.Date(2025, time.November, 27, 23, 30, 0, 0, time.UTC)
	today := domain.DateOf(2025, time.November, 28)

	ctrl := gomock.NewController(t)
	insighter := insightingmocks.NewMockFinanceInsighter(ctrl)
	insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{
		{Type: domain.InsightOverallProfitDecline, Severity: domain.SeverityHigh, Metric: "profit"},
	}, nil)

	n := notifiermocks.NewMockNotifier(ctrl)
	n.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, notification notifier.Notification) error {
		assert.Equal(t, notifier.PriorityHigh, notification.Priority)
		assert.Equal(t, "Financial check 2025-11-28: 1 insight(s)", notification.Subject)
		assert.Contains(t, notification.Body, "Detected 1 financial issue(s):")
		assert.Contains(t, notification.Body, "overall_profit_decline")
		return nil
	})

	advisor := advising.NewService(insighter, nil, nil, time.Hour)
	service := NewFinanceInsightsCheckService(advisor, n, testConfig(t))
	service.now = func() time.Time { return now }

	report, err := service.RunCheck(context.Background())

	require.NoError(t, err)
	require.NotNil(t, report.Advice)
	assert.Equal(t, []string{"profit"}, report.Advice.AffectedMetrics)
}

func TestFinanceInsightsCheckService_IgnoraExecucaoSobreposta(t *testing.T) {
	ctrl := gomock.NewController(t)
	advisor := advisingmocks.NewMockAdvisor(ctrl)
	n := notifiermocks.NewMockNotifier(ctrl)

	service := NewFinanceInsightsCheckService(advisor, n, testConfig(t))
	require.True(t, service.begin())

	report, err := service.RunCheck(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, report)
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestFinanceInsightsCheckService_GetStatus(t *testing.T) {
	service := NewFinanceInsightsCheckService(nil, nil, testConfig(t))

	status := service.GetStatus()

	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
}

func TestInventoryAlertsCheckService_StartDesabilitado(t *testing.T) {
	service := NewInventoryAlertsCheckService(nil, nil, testConfig(t))

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
