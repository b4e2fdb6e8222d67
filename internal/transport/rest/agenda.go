package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/calendar"
	"clinica/internal/domain"
)

// @Summary Agenda mensal
// @Description Devolve a grade do mês: semanas de domingo a sábado, com feriados nacionais e agendamentos por dia. As células iniciais pertencem ao mês anterior.
// @Tags Agenda
// @Produce json
// @Param year query int true "Ano"
// @Param month query int true "Mês (1 a 12)"
// @Param professional_id query int false "Restringir a um profissional"
// @Success 200 {object} calendar.Month
// @Failure 400 {object} errorResponseBody "Ano ou mês inválido"
// @Security ApiKeyAuth
// @Router /agenda/month [get]
func (h *Handler) getAgendaMonth(c *gin.Context) {
	year := parseQueryInt(c, "year", 0)
	month := parseQueryInt(c, "month", 0)
	if year < 1 || month < 1 || month > 12 {
		badRequestResponse(c, "ano ou mês inválido")
		return
	}

	var professionalID *int64
	if raw := c.Query("professional_id"); raw != "" {
		id, err := parseQueryInt64(raw)
		if err != nil {
			badRequestResponse(c, "professional_id inválido")
			return
		}
		professionalID = &id
	}

	grid, err := h.services.Agenda.Month(c.Request.Context(), year, time.Month(month), professionalID)
	if err != nil {
		h.logger.Error("erro ao montar agenda mensal", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, grid)
}

// @Summary Verificar disponibilidade
// @Description Verificação prévia de um horário para o profissional. A resposta pode ser available, unavailable ou unknown quando a verificação não pôde ser concluída.
// @Tags Agenda
// @Produce json
// @Param professional_id query int true "ID do profissional"
// @Param date query string true "Data (AAAA-MM-DD)"
// @Param start_time query string true "Horário de início (HH:MM)"
// @Param duration query int true "Duração em minutos"
// @Param exclude_id query int false "Agendamento em edição, ignorado na verificação"
// @Success 200 {object} map[string]interface{} "Resultado da verificação"
// @Failure 400 {object} errorResponseBody "Parâmetros inválidos"
// @Security ApiKeyAuth
// @Router /agenda/availability [get]
func (h *Handler) checkAvailability(c *gin.Context) {
	professionalID, err := parseQueryInt64(c.Query("professional_id"))
	if err != nil {
		badRequestResponse(c, "professional_id inválido")
		return
	}

	date, err := time.Parse(calendar.DateLayout, c.Query("date"))
	if err != nil {
		badRequestResponse(c, "data inválida")
		return
	}

	startTime := c.Query("start_time")
	duration := parseQueryInt(c, "duration", 0)
	if startTime == "" || duration == 0 {
		badRequestResponse(c, "start_time e duration são obrigatórios")
		return
	}

	var excludeID int64
	if raw := c.Query("exclude_id"); raw != "" {
		excludeID, err = parseQueryInt64(raw)
		if err != nil {
			badRequestResponse(c, "exclude_id inválido")
			return
		}
	}

	availability := h.services.Appointment.CheckAvailability(
		c.Request.Context(), professionalID, date, startTime, duration, excludeID,
	)

	successResponse(c, http.StatusOK, gin.H{
		"availability": availability,
		"available":    availability == domain.AvailabilityAvailable,
	})
}
