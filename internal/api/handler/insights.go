package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/stayview/booking-insights-api/infrastructure/datasource"
	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/internal/usecases/insighting"
	"github.com/stayview/booking-insights-api/pkg/apiErrors"
	"github.com/stayview/booking-insights-api/pkg/log"
)

func GetCancellationOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing cancellation overview")

		overview, err := service.CancellationOverview(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewCancellations, err)
			return
		}

		respondJSON(w, logger, domain.ViewCancellations, overview)
	})
}

func GetCancellationsBySegment(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing cancellations by market segment")

		rows, err := service.CancellationsBySegment(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewCancellationsBySegment, err)
			return
		}

		respondJSON(w, logger, domain.ViewCancellationsBySegment, rows)
	})
}

func GetCancellationsByMonth(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing cancellations by arrival month")

		rows, err := service.CancellationsByMonth(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewCancellationsByMonth, err)
			return
		}

		respondJSON(w, logger, domain.ViewCancellationsByMonth, rows)
	})
}

func GetLeadTimeBuckets(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing lead time buckets")

		rows, err := service.LeadTimeBuckets(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewLeadTimeBuckets, err)
			return
		}

		respondJSON(w, logger, domain.ViewLeadTimeBuckets, rows)
	})
}

func GetLeadTimeTrend(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing lead time cancellation trend")

		trend, err := service.LeadTimeTrend(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewLeadTimeTrend, err)
			return
		}

		respondJSON(w, logger, domain.ViewLeadTimeTrend, trend)
	})
}

func GetADRBySegment(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing ADR by market segment")

		rows, err := service.ADRBySegment(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewADRBySegment, err)
			return
		}

		respondJSON(w, logger, domain.ViewADRBySegment, rows)
	})
}

func GetADRByCustomerType(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing ADR by customer type")

		rows, err := service.ADRByCustomerType(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewADRByCustomerType, err)
			return
		}

		respondJSON(w, logger, domain.ViewADRByCustomerType, rows)
	})
}

func GetADRByDayOfWeek(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing ADR by day of week")

		rows, err := service.ADRByDayOfWeek(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewADRByDayOfWeek, err)
			return
		}

		respondJSON(w, logger, domain.ViewADRByDayOfWeek, rows)
	})
}

func GetStayPivot(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: computing stay pivot by country and customer type")

		pivot, err := service.StayPivot(r.Context())
		if err != nil {
			writeViewError(w, logger, domain.ViewStayPivot, err)
			return
		}

		respondJSON(w, logger, domain.ViewStayPivot, pivot)
	})
}

// writeViewError traduz falhas de agregação e de carga do dataset para os
// códigos da API
func writeViewError(w http.ResponseWriter, logger log.Logger, view string, err error) {
	logger.WithFields(log.Fields{
		"view":  view,
		"error": err.Error(),
	}).Error("insights: failed computing view")

	var insightErr *insighting.InsightError
	switch {
	case errors.As(err, &insightErr):
		apiErrors.WriteError(w, insightErr.Code, err.Error(), nil)
	case datasource.IsParseError(err):
		apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func respondJSON(w http.ResponseWriter, logger log.Logger, view string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithFields(log.Fields{
			"view":  view,
			"error": err.Error(),
		}).Error("insights: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
