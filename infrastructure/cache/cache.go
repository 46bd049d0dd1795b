package cache

import (
	"context"
	"time"

	"github.com/George0Simion/BizzGenie/internal/domain"
)

// AdviceCache guarda conselhos já gerados para não repetir chamadas ao modelo
type AdviceCache interface {
	Get(ctx context.Context, key string) (*domain.FinanceAdvice, bool, error)
	Set(ctx context.Context, key string, advice *domain.FinanceAdvice, ttl time.Duration) error
}

type NoopAdviceCache struct{}

func (NoopAdviceCache) Get(_ context.Context, _ string) (*domain.FinanceAdvice, bool, error) {
	return nil, false, nil
}

func (NoopAdviceCache) Set(_ context.Context, _ string, _ *domain.FinanceAdvice, _ time.Duration) error {
	return nil
}
