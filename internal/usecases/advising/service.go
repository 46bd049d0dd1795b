package advising

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/cache"
	"github.com/George0Simion/BizzGenie/infrastructure/integrator/llm"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/internal/usecases/insighting"
	"github.com/George0Simion/BizzGenie/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const noProblemsSummary = "No major financial problems detected in recent days."

type Service struct {
	insighter insighting.FinanceInsighter
	generator llm.AdviceGenerator
	cache     cache.AdviceCache
	cacheTTL  time.Duration
}

// NewService aceita generator nil quando não há chave do modelo; nesse caso o
// AutoCheck responde com um resumo montado dos próprios insights e as perguntas
// retornam ErrAdvisorUnavailable
func NewService(insighter insighting.FinanceInsighter, generator llm.AdviceGenerator, adviceCache cache.AdviceCache, cacheTTL time.Duration) Advisor {
	if adviceCache == nil {
		adviceCache = cache.NoopAdviceCache{}
	}

	return &Service{
		insighter: insighter,
		generator: generator,
		cache:     adviceCache,
		cacheTTL:  cacheTTL,
	}
}

func (s *Service) AutoCheck(ctx context.Context, today domain.Date) (*domain.FinanceCheckReport, error) {
	insights, err := s.insighter.CollectFinanceInsights(ctx, today)
	if err != nil {
		return nil, errors.Join(ErrInsightCollection, err)
	}

	report := &domain.FinanceCheckReport{
		Date:     today,
		Insights: insights,
	}

	if len(insights) == 0 {
		report.Advice = noProblemsAdvice()
		return report, nil
	}

	advice, err := s.advise(ctx, today, insights, "")
	if errors.Is(err, ErrAdvisorUnavailable) {
		log.ForContext(ctx).WithField("insights", len(insights)).Warn("Assistente financeiro indisponível, usando resumo dos insights")
		report.Advice = insightsSummaryAdvice(insights)
		return report, nil
	}
	if err != nil {
		return nil, err
	}
	report.Advice = advice

	return report, nil
}

func (s *Service) AnswerQuestion(ctx context.Context, today domain.Date, question string) (*domain.FinanceAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	insights, err := s.insighter.CollectFinanceInsights(ctx, today)
	if err != nil {
		return nil, errors.Join(ErrInsightCollection, err)
	}

	// a pergunta sempre vai ao modelo, mesmo sem insights
	advice, err := s.advise(ctx, today, insights, question)
	if err != nil {
		return nil, err
	}

	return &domain.FinanceAnswer{
		Question: question,
		Insights: insights,
		Advice:   advice,
	}, nil
}

func (s *Service) advise(ctx context.Context, today domain.Date, insights []*domain.Insight, question string) (*domain.FinanceAdvice, error) {
	if s.generator == nil {
		return nil, ErrAdvisorUnavailable
	}

	logger := log.ForContext(ctx)
	key := cacheKey(today, insights, question)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler conselho do cache, seguindo sem cache")
	} else if found {
		logger.WithField("key", key).Debug("Conselho financeiro servido do cache")
		return cached, nil
	}

	advice, err := s.generator.GenerateAdvice(ctx, insights, question)
	if err != nil {
		return nil, errors.Join(ErrAdviceGeneration, err)
	}

	if err := s.cache.Set(ctx, key, advice, s.cacheTTL); err != nil {
		logger.WithError(err).Warn("Erro ao gravar conselho no cache")
	}

	return advice, nil
}

func noProblemsAdvice() *domain.FinanceAdvice {
	return &domain.FinanceAdvice{
		SummaryMarkdown: noProblemsSummary,
		Actions:         []string{},
		AffectedMetrics: []string{},
	}
}

// insightsSummaryAdvice descreve os insights sem o modelo, um item por linha
func insightsSummaryAdvice(insights []*domain.Insight) *domain.FinanceAdvice {
	lines := make([]string, 0, len(insights)+1)
	lines = append(lines, fmt.Sprintf("Detected %d financial issue(s):", len(insights)))

	metrics := []string{}
	seen := map[string]struct{}{}
	for _, insight := range insights {
		lines = append(lines, "- "+describeInsight(insight))
		if _, ok := seen[insight.Metric]; !ok && insight.Metric != "" {
			seen[insight.Metric] = struct{}{}
			metrics = append(metrics, insight.Metric)
		}
	}

	return &domain.FinanceAdvice{
		SummaryMarkdown: strings.Join(lines, "\n"),
		Actions:         []string{},
		AffectedMetrics: metrics,
	}
}

func describeInsight(insight *domain.Insight) string {
	switch evidence := insight.Evidence.(type) {
	case domain.ProfitDeclineEvidence:
		if evidence.Trend.ChangePct != nil {
			return fmt.Sprintf("**%s** (%s): %s changed %s%% vs. the previous average",
				insight.Type, insight.Severity, insight.Metric, evidence.Trend.ChangePct.StringFixed(1))
		}
	case domain.ProductDriversEvidence:
		names := make([]string, 0, len(evidence.TopNegativeProducts))
		for _, p := range evidence.TopNegativeProducts {
			names = append(names, p.ProductName)
		}
		return fmt.Sprintf("**%s** (%s): %s delta %s, driven by %s",
			insight.Type, insight.Severity, insight.Metric, evidence.TotalProfitDelta.String(), strings.Join(names, ", "))
	}
	return fmt.Sprintf("**%s** (%s): %s", insight.Type, insight.Severity, insight.Metric)
}

// cacheKey identifica o conselho pela data e pelo conteúdo dos insights, então
// qualquer mudança no razão invalida a entrada
func cacheKey(today domain.Date, insights []*domain.Insight, question string) string {
	payload, err := json.Marshal(insights)
	if err != nil {
		payload = []byte(today.String())
	}

	h := sha256.New()
	h.Write(payload)
	if question != "" {
		h.Write([]byte{0})
		h.Write([]byte(strings.ToLower(question)))
	}

	kind := "check"
	if question != "" {
		kind = "question"
	}

	return kind + ":" + today.String() + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}
