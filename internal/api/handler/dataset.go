package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/stayview/booking-insights-api/infrastructure/datasource"
	"github.com/stayview/booking-insights-api/internal/scheduler"
	"github.com/stayview/booking-insights-api/internal/usecases/insighting"
	"github.com/stayview/booking-insights-api/pkg/apiErrors"
)

// DatasetStats devolve o snapshot do dataset atualmente em cache
func DatasetStats(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DatasetStats")

		snapshot, err := service.Snapshot(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Falha ao carregar o snapshot do dataset")

			if datasource.IsParseError(err) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}

// RunDatasetRefresh dispara manualmente uma recarga do dataset em background
func RunDatasetRefresh(service *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDatasetRefresh")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
			return
		}

		// Apenas uma recarga por vez; a segunda chamada recebe 409
		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrRefreshInProgress, "Recarga do dataset já em andamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Recarga do dataset iniciada com sucesso",
		})
	}
}

// GetDatasetRefreshStatus retorna o status da recarga agendada e manual
func GetDatasetRefreshStatus(service *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDatasetRefreshStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
			return
		}

		status := map[string]any{
			"dataset_refresh": service.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
