package handler

import (
	"net/http"

	"github.com/George0Simion/BizzGenie/internal/api/handler/router"
	"github.com/George0Simion/BizzGenie/internal/usecases/advising"
	"github.com/George0Simion/BizzGenie/internal/usecases/authenticating"
	"github.com/George0Simion/BizzGenie/internal/usecases/bookkeeping"
	"github.com/George0Simion/BizzGenie/internal/usecases/insighting"
	"github.com/George0Simion/BizzGenie/internal/usecases/inventory"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Inventory(service inventory.Accountant) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inventory",
			Method:  http.MethodGet,
			Handler: ListInventory(service),
		},
		{
			Path:    "/v1/inventory/alerts",
			Method:  http.MethodGet,
			Handler: GetInventoryAlerts(service),
		},
		{
			Path:    "/v1/inventory/batches",
			Method:  http.MethodPost,
			Handler: AddProduct(service),
		},
		{
			Path:    "/v1/inventory/consume",
			Method:  http.MethodPost,
			Handler: ConsumeProduct(service),
		},
	}
}

func Finance(insighter insighting.FinanceInsighter, advisor advising.Advisor, bookkeeper bookkeeping.Bookkeeper, today Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/finance/insights",
			Method:  http.MethodGet,
			Handler: GetFinanceInsights(insighter, today),
		},
		{
			Path:    "/v1/finance/auto-check",
			Method:  http.MethodPost,
			Handler: FinanceAutoCheck(advisor, today),
		},
		{
			Path:    "/v1/finance/message",
			Method:  http.MethodPost,
			Handler: FinanceMessage(advisor, today),
		},
		{
			Path:    "/v1/finance/daily/:date",
			Method:  http.MethodPut,
			Handler: UpsertDailyFinancial(bookkeeper),
		},
		{
			Path:    "/v1/finance/products",
			Method:  http.MethodPost,
			Handler: AddProductFinancial(bookkeeper),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
