package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/calendar"
)

// @Summary Relatório de agendamentos
// @Description Agrega os agendamentos do período por status, tipo e profissional
// @Tags Relatórios
// @Produce json
// @Param from query string true "Início do período (AAAA-MM-DD)"
// @Param to query string true "Fim do período (AAAA-MM-DD)"
// @Param professional_id query int false "Restringir a um profissional"
// @Success 200 {object} domain.AppointmentReport
// @Failure 400 {object} errorResponseBody "Período inválido"
// @Security ApiKeyAuth
// @Router /reports/appointments [get]
func (h *Handler) getAppointmentReport(c *gin.Context) {
	from, to, professionalID, ok := h.reportParams(c)
	if !ok {
		return
	}

	report, err := h.services.Report.Appointments(c.Request.Context(), from, to, professionalID)
	if err != nil {
		h.logger.Error("erro ao gerar relatório", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, report)
}

// @Summary Exportar relatório em CSV
// @Description Gera o CSV do período, publica no armazenamento de objetos e devolve uma URL temporária de download
// @Tags Relatórios
// @Produce json
// @Param from query string true "Início do período (AAAA-MM-DD)"
// @Param to query string true "Fim do período (AAAA-MM-DD)"
// @Param professional_id query int false "Restringir a um profissional"
// @Success 200 {object} domain.ReportExport
// @Failure 503 {object} errorResponseBody "Armazenamento desabilitado"
// @Security ApiKeyAuth
// @Router /reports/appointments/export [post]
func (h *Handler) exportAppointmentReport(c *gin.Context) {
	from, to, professionalID, ok := h.reportParams(c)
	if !ok {
		return
	}

	export, err := h.services.Report.ExportAppointmentsCSV(c.Request.Context(), from, to, professionalID)
	if err != nil {
		h.logger.Error("erro ao exportar relatório", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, export)
}

func (h *Handler) reportParams(c *gin.Context) (time.Time, time.Time, *int64, bool) {
	from, err := time.Parse(calendar.DateLayout, c.Query("from"))
	if err != nil {
		badRequestResponse(c, "parâmetro from inválido")
		return time.Time{}, time.Time{}, nil, false
	}

	to, err := time.Parse(calendar.DateLayout, c.Query("to"))
	if err != nil {
		badRequestResponse(c, "parâmetro to inválido")
		return time.Time{}, time.Time{}, nil, false
	}

	if to.Before(from) {
		badRequestResponse(c, "período inválido")
		return time.Time{}, time.Time{}, nil, false
	}

	var professionalID *int64
	if raw := c.Query("professional_id"); raw != "" {
		id, err := parseQueryInt64(raw)
		if err != nil {
			badRequestResponse(c, "professional_id inválido")
			return time.Time{}, time.Time{}, nil, false
		}
		professionalID = &id
	}

	return from, to, professionalID, true
}
