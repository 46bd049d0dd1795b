package insighting

import (
	"context"
	"fmt"

	"github.com/George0Simion/BizzGenie/infrastructure/repository"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/pkg/log"
)

const (
	declineLookbackDays = 30
	declineEvidenceDays = 7
	productDriversTopN  = 10
	profitMetric        = "profit"
)

type Service struct {
	ledger repository.FinancialLedgerRepository
}

func NewService(ledger repository.FinancialLedgerRepository) FinanceInsighter {
	return &Service{
		ledger: ledger,
	}
}

func (s *Service) CollectFinanceInsights(ctx context.Context, today domain.Date) ([]*domain.Insight, error) {
	insights := make([]*domain.Insight, 0, 2)

	err := s.ledger.WithSnapshot(ctx, func(reader repository.FinancialLedgerReader) error {
		decline, err := detectProfitDecline(ctx, reader, today)
		if err != nil {
			return err
		}
		if decline != nil {
			insights = append(insights, decline)
		}

		drivers, err := detectProductDrivers(ctx, reader, today)
		if err != nil {
			return err
		}
		if drivers != nil {
			insights = append(insights, drivers)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"date":     today.String(),
		"insights": len(insights),
	}).Info("Insights financeiros coletados")

	return insights, nil
}

func (s *Service) DetectProfitDeclineInsight(ctx context.Context, today domain.Date) (*domain.Insight, error) {
	return detectProfitDecline(ctx, s.ledger, today)
}

func (s *Service) DetectProductDriversInsight(ctx context.Context, today domain.Date) (*domain.Insight, error) {
	return detectProductDrivers(ctx, s.ledger, today)
}

func detectProfitDecline(ctx context.Context, reader repository.FinancialLedgerReader, today domain.Date) (*domain.Insight, error) {
	start := today.AddDays(-declineLookbackDays)
	end := today

	series, err := reader.GetDailyProfit(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lucro diário: %w", err)
	}

	trend := ComputeTrend(series)
	if !trend.IsDecrease() {
		return nil, nil
	}

	severity := domain.SeverityMedium
	if trend.Direction == domain.TrendStrongDecrease {
		severity = domain.SeverityHigh
	}

	lastDays := series
	if len(lastDays) > declineEvidenceDays {
		lastDays = lastDays[len(lastDays)-declineEvidenceDays:]
	}

	return &domain.Insight{
		Type:     domain.InsightOverallProfitDecline,
		Severity: severity,
		Metric:   profitMetric,
		TimeWindow: domain.TimeWindow{
			Start: &start,
			End:   &end,
		},
		Evidence: domain.ProfitDeclineEvidence{
			Trend:       trend,
			DailyProfit: lastDays,
		},
	}, nil
}

func detectProductDrivers(ctx context.Context, reader repository.FinancialLedgerReader, today domain.Date) (*domain.Insight, error) {
	currStart := today.FirstOfMonth()
	currEnd := today
	prevEnd := currStart.AddDays(-1)
	prevStart := prevEnd.FirstOfMonth()

	deltas, err := reader.GetProfitByProductDelta(ctx, prevStart, prevEnd, currStart, currEnd, productDriversTopN)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar variação de lucro por produto: %w", err)
	}

	total := domain.SumDeltas(deltas)
	if !total.IsNegative() {
		return nil, nil
	}

	negative := make([]*domain.ProductDelta, 0)
	positive := make([]*domain.ProductDelta, 0)
	for _, d := range deltas {
		switch {
		case d.Delta.IsNegative():
			negative = append(negative, d)
		case d.Delta.IsPositive():
			positive = append(positive, d)
		}
	}

	return &domain.Insight{
		Type:     domain.InsightProductProfitDrivers,
		Severity: domain.SeverityHigh,
		Metric:   profitMetric,
		TimeWindow: domain.TimeWindow{
			PrevStart: &prevStart,
			PrevEnd:   &prevEnd,
			CurrStart: &currStart,
			CurrEnd:   &currEnd,
		},
		Evidence: domain.ProductDriversEvidence{
			TotalProfitDelta:    total,
			TopNegativeProducts: negative,
			TopPositiveProducts: positive,
		},
	}, nil
}
