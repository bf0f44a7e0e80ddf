package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/stayview/booking-insights-api/internal/usecases/reporting"
	"github.com/stayview/booking-insights-api/pkg/log"
)

const exportFilename = "booking-insights.xlsx"

// GetDashboardReport monta todas as visões derivadas em uma única resposta.
// Visões que falham aparecem no mapa de erros sem bloquear as demais.
func GetDashboardReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: building dashboard report")

		report, err := service.Report(r.Context())
		if err != nil {
			writeViewError(w, logger, "report", err)
			return
		}

		if len(report.Errors) > 0 {
			logger.WithFields(log.Fields{
				"failed_views": len(report.Errors),
			}).Warn("insights: report finished with failed views")
		}

		respondJSON(w, logger, "report", report)
	})
}

// ExportInsights entrega o relatório como uma planilha xlsx para download
func ExportInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: exporting dashboard workbook")

		workbook, err := service.Export(r.Context())
		if err != nil {
			writeViewError(w, logger, "export", err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename))
		w.Header().Set("Content-Length", strconv.Itoa(len(workbook)))

		if _, err := w.Write(workbook); err != nil {
			logger.WithFields(log.Fields{
				"error": err.Error(),
			}).Error("insights: failed writing workbook response")
		}
	})
}
