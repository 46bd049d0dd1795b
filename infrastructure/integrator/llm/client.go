package llm

import (
	"context"
	"strings"
	"time"

	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// AdviceGenerator transforma insights financeiros em conselhos para o dono
type AdviceGenerator interface {
	GenerateAdvice(ctx context.Context, insights []*domain.Insight, question string) (*domain.FinanceAdvice, error)
}

type EinoAdvisor struct {
	chatModel  model.BaseChatModel
	limiter    *rate.Limiter
	maxRetries int
	baseDelay  time.Duration
	sleep      func(time.Duration)
}

func NewAdviceGenerator(ctx context.Context, cfg config.LLM) (*EinoAdvisor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM_API_KEY não configurada")
	}

	temperature := cfg.Temperature
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inicializar o modelo de linguagem")
	}

	return NewAdviceGeneratorWithModel(chatModel, cfg), nil
}

func NewAdviceGeneratorWithModel(chatModel model.BaseChatModel, cfg config.LLM) *EinoAdvisor {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}

	// sempre ao menos uma tentativa
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &EinoAdvisor{
		chatModel:  chatModel,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		maxRetries: maxRetries,
		baseDelay:  cfg.RetryBaseDelay,
		sleep:      time.Sleep,
	}
}

func (a *EinoAdvisor) GenerateAdvice(ctx context.Context, insights []*domain.Insight, question string) (*domain.FinanceAdvice, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: financeSystemPrompt},
		{Role: schema.User, Content: buildUserMessage(insights, question)},
	}

	var lastErr error
	for i := 0; i <= a.maxRetries; i++ {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "limitador de requisições interrompido")
		}

		resp, err := a.chatModel.Generate(ctx, messages)
		if err != nil {
			if isRateLimited(err) && i < a.maxRetries {
				lastErr = err
				delay := a.backoff(i)
				logrus.WithError(err).WithField("tentativa", i+1).Warnf("Modelo limitou as requisições, aguardando %s", delay)
				a.sleep(delay)
				continue
			}
			return nil, errors.Wrap(err, "erro ao chamar o modelo de linguagem")
		}

		advice, err := parseAdvice(resp.Content)
		if err != nil {
			lastErr = err
			logrus.WithError(err).WithField("tentativa", i+1).Warn("Resposta do modelo inválida")
			if i < a.maxRetries {
				a.sleep(a.backoff(i))
			}
			continue
		}

		return advice, nil
	}

	if lastErr == nil {
		return nil, errors.New("modelo não foi consultado")
	}
	return nil, errors.Wrapf(lastErr, "modelo não retornou conselho válido após %d tentativas", a.maxRetries+1)
}

func (a *EinoAdvisor) backoff(attempt int) time.Duration {
	return a.baseDelay * time.Duration(1<<attempt)
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests")
}
