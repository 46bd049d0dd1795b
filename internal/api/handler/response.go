package handler

import (
	"net/http"
	"time"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clock informa o dia corrente no fuso do restaurante
type Clock func() domain.Date

func NewClock(loc *time.Location) Clock {
	return func() domain.Date {
		return domain.Today(time.Now(), loc)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// dateFromQuery usa ?date=YYYY-MM-DD quando presente, senão o dia corrente
func dateFromQuery(r *http.Request, today Clock) (domain.Date, error) {
	value := r.URL.Query().Get("date")
	if value == "" {
		return today(), nil
	}
	return domain.ParseDate(value)
}
