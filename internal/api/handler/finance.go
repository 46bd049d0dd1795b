package handler

import (
	"net/http"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/internal/usecases/advising"
	"github.com/George0Simion/BizzGenie/internal/usecases/bookkeeping"
	"github.com/George0Simion/BizzGenie/internal/usecases/insighting"
	"github.com/George0Simion/BizzGenie/pkg/apiErrors"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type FinanceMessageRequest struct {
	Message string `json:"message"`
}

type DailyFinancialRequest struct {
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
}

type FinanceInsightsResponse struct {
	Date     domain.Date       `json:"date"`
	Insights []*domain.Insight `json:"insights"`
}

func GetFinanceInsights(service insighting.FinanceInsighter, today Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := dateFromQuery(r, today)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		insights, err := service.CollectFinanceInsights(r.Context(), date)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao coletar insights financeiros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao coletar insights financeiros", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, FinanceInsightsResponse{
			Date:     date,
			Insights: insights,
		})
	}
}

func FinanceAutoCheck(service advising.Advisor, today Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := dateFromQuery(r, today)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.AutoCheck(r.Context(), date)
		if err != nil {
			handleAdvisingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func FinanceMessage(service advising.Advisor, today Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FinanceMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		answer, err := service.AnswerQuestion(r.Context(), today(), req.Message)
		if err != nil {
			handleAdvisingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, answer)
	}
}

func UpsertDailyFinancial(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := domain.ParseDate(httprouter.ParamsFromContext(r.Context()).ByName("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req DailyFinancialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, err := service.RecordDailyFinancial(r.Context(), date, req.Revenue, req.Cost)
		if err != nil {
			handleBookkeepingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, record)
	}
}

func AddProductFinancial(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry domain.ProductFinancialEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.RecordProductFinancial(r.Context(), &entry)
		if err != nil {
			handleBookkeepingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, saved)
	}
}

func handleAdvisingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, advising.ErrEmptyQuestion):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Mensagem é obrigatória", nil)
	case errors.Is(err, advising.ErrAdvisorUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Assistente financeiro não configurado", nil)
	case errors.Is(err, advising.ErrAdviceGeneration):
		log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar conselho financeiro")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o assistente financeiro", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao coletar insights financeiros")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao coletar insights financeiros", nil)
	}
}

func handleBookkeepingError(w http.ResponseWriter, r *http.Request, err error) {
	if bookkeeping.IsValidationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro ao registrar no razão financeiro")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar no razão financeiro", nil)
}
