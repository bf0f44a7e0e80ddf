package handler

import (
	"net/http"

	"github.com/stayview/booking-insights-api/internal/api/handler/router"
	"github.com/stayview/booking-insights-api/internal/scheduler"
	"github.com/stayview/booking-insights-api/internal/usecases/insighting"
	"github.com/stayview/booking-insights-api/internal/usecases/reporting"
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

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/cancellations",
			Method:  http.MethodGet,
			Handler: GetCancellationOverview(service),
		},
		{
			Path:    "/v1/insights/cancellations/by-segment",
			Method:  http.MethodGet,
			Handler: GetCancellationsBySegment(service),
		},
		{
			Path:    "/v1/insights/cancellations/by-month",
			Method:  http.MethodGet,
			Handler: GetCancellationsByMonth(service),
		},
		{
			Path:    "/v1/insights/lead-time/buckets",
			Method:  http.MethodGet,
			Handler: GetLeadTimeBuckets(service),
		},
		{
			Path:    "/v1/insights/lead-time/trend",
			Method:  http.MethodGet,
			Handler: GetLeadTimeTrend(service),
		},
		{
			Path:    "/v1/insights/adr/by-segment",
			Method:  http.MethodGet,
			Handler: GetADRBySegment(service),
		},
		{
			Path:    "/v1/insights/adr/by-customer-type",
			Method:  http.MethodGet,
			Handler: GetADRByCustomerType(service),
		},
		{
			Path:    "/v1/insights/adr/by-day-of-week",
			Method:  http.MethodGet,
			Handler: GetADRByDayOfWeek(service),
		},
		{
			Path:    "/v1/insights/stays/pivot",
			Method:  http.MethodGet,
			Handler: GetStayPivot(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/report",
			Method:  http.MethodGet,
			Handler: GetDashboardReport(service),
		},
		{
			Path:    "/v1/insights/export",
			Method:  http.MethodGet,
			Handler: ExportInsights(service),
		},
	}
}

// Dataset retorna as rotas de inspeção e recarga do dataset em cache
func Dataset(service insighting.Insighter, refreshService *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/stats",
			Method:  http.MethodGet,
			Handler: DatasetStats(service),
		},
		{
			Path:    "/v1/dataset/refresh",
			Method:  http.MethodPost,
			Handler: RunDatasetRefresh(refreshService),
		},
		{
			Path:    "/v1/dataset/refresh/status",
			Method:  http.MethodGet,
			Handler: GetDatasetRefreshStatus(refreshService),
		},
	}
}
