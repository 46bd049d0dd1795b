package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/George0Simion/BizzGenie/internal/scheduler"
	"github.com/George0Simion/BizzGenie/pkg/apiErrors"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFinance   = "finance"
	CronJobTypeInventory = "inventory"
	CronJobTypeAll       = "all"
)

// CronJobServices mapeia o tipo de cron job para o serviço agendado
type CronJobServices map[string]scheduler.Job

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, job := range services {
				job.TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrUnknownCronJob,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for name := range s {
		types = append(types, name)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}
