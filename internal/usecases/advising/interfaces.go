package advising

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/George0Simion/BizzGenie/internal/domain"
)

// Advisor combina os insights financeiros com o modelo de linguagem
type Advisor interface {
	AutoCheck(ctx context.Context, today domain.Date) (*domain.FinanceCheckReport, error)
	AnswerQuestion(ctx context.Context, today domain.Date, question string) (*domain.FinanceAnswer, error)
}
