package advising

import (
	"context"
	"errors"
	"testing"
	"time"

	cachemocks "github.com/George0Simion/BizzGenie/infrastructure/cache/mocks"
	llmmocks "github.com/George0Simion/BizzGenie/infrastructure/integrator/llm/mocks"
	"github.com/George0Simion/BizzGenie/internal/domain"
	insightmocks "github.com/George0Simion/BizzGenie/internal/usecases/insighting/mocks"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var today = domain.DateOf(2025, time.November, 28)

func declineInsight() *domain.Insight {
	return &domain.Insight{
		Type:     domain.InsightOverallProfitDecline,
		Severity: domain.SeverityHigh,
		Metric:   "profit",
	}
}

func llmAdvice() *domain.FinanceAdvice {
	return &domain.FinanceAdvice{
		SummaryMarkdown: "Profit fell 30% over the last week",
		Actions:         []string{"Review supplier prices"},
		AffectedMetrics: []string{"profit"},
	}
}

type fixture struct {
	insighter *insightmocks.MockFinanceInsighter
	generator *llmmocks.MockAdviceGenerator
	cache     *cachemocks.MockAdviceCache
	service   Advisor
}

func newFixture(t *testing.T) *fixture {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	f := &fixture{
		insighter: insightmocks.NewMockFinanceInsighter(ctrl),
		generator: llmmocks.NewMockAdviceGenerator(ctrl),
		cache:     cachemocks.NewMockAdviceCache(ctrl),
	}
	f.service = NewService(f.insighter, f.generator, f.cache, time.Hour)
	return f
}

func TestService_AutoCheck(t *testing.T) {
	errLedger := errors.New("ledger fora do ar")
	errModel := errors.New("modelo fora do ar")

	tests := []struct {
		name           string
		setup          func(f *fixture)
		expectedErr    error
		expectedAdvice *domain.FinanceAdvice
	}{
		{
			name: "Sem insights não chama o modelo",
			setup: func(f *fixture) {
				f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{}, nil)
			},
			expectedAdvice: &domain.FinanceAdvice{
				SummaryMarkdown: "No major financial problems detected in recent days.",
				Actions:         []string{},
				AffectedMetrics: []string{},
			},
		},
		{
			name: "Com insights gera e grava no cache",
			setup: func(f *fixture) {
				f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{declineInsight()}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
				f.generator.EXPECT().GenerateAdvice(gomock.Any(), []*domain.Insight{declineInsight()}, "").Return(llmAdvice(), nil)
				f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), llmAdvice(), time.Hour).Return(nil)
			},
			expectedAdvice: llmAdvice(),
		},
		{
			name: "Conselho servido do cache",
			setup: func(f *fixture) {
				f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{declineInsight()}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(llmAdvice(), true, nil)
			},
			expectedAdvice: llmAdvice(),
		},
		{
			name: "Falha do cache é ignorada",
			setup: func(f *fixture) {
				f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{declineInsight()}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis fora"))
				f.generator.EXPECT().GenerateAdvice(gomock.Any(), gomock.Any(), "").Return(llmAdvice(), nil)
				f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis fora"))
			},
			expectedAdvice: llmAdvice(),
		},
		{
			name: "Erro ao coletar insights",
			setup: func(f *fixture) {
				f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return(nil, errLedger)
			},
			expectedErr: ErrInsightCollection,
		},
		{
			name: "Erro do modelo",
			setup: func(f *fixture) {
				f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{declineInsight()}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
				f.generator.EXPECT().GenerateAdvice(gomock.Any(), gomock.Any(), "").Return(nil, errModel)
			},
			expectedErr: ErrAdviceGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			report, err := f.service.AutoCheck(context.Background(), today)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, today, report.Date)
			assert.Equal(t, tt.expectedAdvice, report.Advice)
		})
	}
}

func TestService_AutoCheck_SemModeloResumeInsights(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	changePct := decimal.RequireFromString("-30.24")
	insights := []*domain.Insight{
		{
			Type:     domain.InsightOverallProfitDecline,
			Severity: domain.SeverityHigh,
			Metric:   "profit",
			Evidence: domain.ProfitDeclineEvidence{Trend: domain.Trend{Direction: domain.TrendStrongDecrease, ChangePct: &changePct}},
		},
		{
			Type:     domain.InsightProductProfitDrivers,
			Severity: domain.SeverityHigh,
			Metric:   "profit",
			Evidence: domain.ProductDriversEvidence{
				TotalProfitDelta:    decimal.NewFromInt(-1800),
				TopNegativeProducts: []*domain.ProductDelta{{ProductID: "burger", ProductName: "Burger clasic"}, {ProductID: "pasta", ProductName: "Penne Alfredo"}},
			},
		},
	}

	insighter := insightmocks.NewMockFinanceInsighter(ctrl)
	insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return(insights, nil)

	report, err := NewService(insighter, nil, nil, time.Hour).AutoCheck(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, insights, report.Insights)
	assert.Equal(t, "Detected 2 financial issue(s):\n"+
		"- **overall_profit_decline** (high): profit changed -30.2% vs. the previous average\n"+
		"- **product_profit_drivers** (high): profit delta -1800, driven by Burger clasic, Penne Alfredo",
		report.Advice.SummaryMarkdown)
	assert.Equal(t, []string{}, report.Advice.Actions)
	assert.Equal(t, []string{"profit"}, report.Advice.AffectedMetrics)
}

func TestService_AnswerQuestion(t *testing.T) {
	t.Run("Pergunta vazia", func(t *testing.T) {
		f := newFixture(t)

		answer, err := f.service.AnswerQuestion(context.Background(), today, "   ")

		assert.ErrorIs(t, err, ErrEmptyQuestion)
		assert.Nil(t, answer)
	})

	t.Run("Sem insights ainda consulta o modelo", func(t *testing.T) {
		f := newFixture(t)
		f.insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{}, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		f.generator.EXPECT().GenerateAdvice(gomock.Any(), []*domain.Insight{}, "Why is profit down?").Return(llmAdvice(), nil)
		f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		answer, err := f.service.AnswerQuestion(context.Background(), today, " Why is profit down? ")

		require.NoError(t, err)
		assert.Equal(t, "Why is profit down?", answer.Question)
		assert.Empty(t, answer.Insights)
		assert.Equal(t, llmAdvice(), answer.Advice)
	})

	t.Run("Modelo não configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := insightmocks.NewMockFinanceInsighter(ctrl)
		insighter.EXPECT().CollectFinanceInsights(gomock.Any(), today).Return([]*domain.Insight{}, nil)

		service := NewService(insighter, nil, nil, time.Hour)
		_, err := service.AnswerQuestion(context.Background(), today, "How are we doing?")

		assert.ErrorIs(t, err, ErrAdvisorUnavailable)
	})
}

func TestCacheKey(t *testing.T) {
	insights := []*domain.Insight{declineInsight()}

	check := cacheKey(today, insights, "")
	assert.Equal(t, check, cacheKey(today, []*domain.Insight{declineInsight()}, ""))
	assert.Contains(t, check, "check:2025-11-28:")

	question := cacheKey(today, insights, "Why?")
	assert.Contains(t, question, "question:2025-11-28:")
	assert.Equal(t, question, cacheKey(today, insights, "WHY?"))
	assert.NotEqual(t, check[len(check)-16:], question[len(question)-16:])

	other := declineInsight()
	other.Severity = domain.SeverityMedium
	assert.NotEqual(t, check, cacheKey(today, []*domain.Insight{other}, ""))
	assert.NotEqual(t, check, cacheKey(today.AddDays(1), insights, ""))
}
