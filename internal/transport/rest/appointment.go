package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/calendar"
	"clinica/internal/domain"
)

// @Summary Criar agendamento
// @Description Agenda uma consulta. O horário de término é derivado da duração e o conflito de horários é verificado na gravação.
// @Tags Agendamentos
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Dados do agendamento"
// @Success 201 {object} map[string]interface{} "ID do agendamento criado"
// @Failure 400 {object} errorResponseBody "Dados inválidos"
// @Failure 409 {object} errorResponseBody "Horário indisponível"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("erro ao criar agendamento", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Buscar agendamento por ID
// @Description Devolve o agendamento e as ações permitidas no status atual
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} map[string]interface{} "Agendamento e ações permitidas"
// @Failure 404 {object} errorResponseBody "Agendamento não encontrado"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, gin.H{
		"appointment":     appointment,
		"allowed_actions": domain.AllowedActions(appointment.Status),
	})
}

// @Summary Atualizar agendamento
// @Description Reagenda ou altera dados da consulta. Agendamentos cancelados não podem ser editados.
// @Tags Agendamentos
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.UpdateAppointmentDTO true "Campos a atualizar"
// @Success 200 {object} successResponseBody "Atualizado"
// @Failure 409 {object} errorResponseBody "Horário indisponível"
// @Security ApiKeyAuth
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Appointment.Update(c.Request.Context(), id, req); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "agendamento atualizado")
}

// @Summary Confirmar agendamento
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} successResponseBody "Confirmado"
// @Failure 409 {object} errorResponseBody "Transição de status inválida"
// @Security ApiKeyAuth
// @Router /appointments/{id}/confirm [post]
func (h *Handler) confirmAppointment(c *gin.Context) {
	h.transitionAppointment(c, h.services.Appointment.Confirm, "agendamento confirmado")
}

// @Summary Concluir atendimento
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} successResponseBody "Concluído"
// @Failure 409 {object} errorResponseBody "Transição de status inválida"
// @Security ApiKeyAuth
// @Router /appointments/{id}/complete [post]
func (h *Handler) completeAppointment(c *gin.Context) {
	h.transitionAppointment(c, h.services.Appointment.Complete, "atendimento concluído")
}

// @Summary Registrar falta
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} successResponseBody "Falta registrada"
// @Failure 409 {object} errorResponseBody "Transição de status inválida"
// @Security ApiKeyAuth
// @Router /appointments/{id}/no-show [post]
func (h *Handler) markAppointmentNoShow(c *gin.Context) {
	h.transitionAppointment(c, h.services.Appointment.MarkNoShow, "falta registrada")
}

// @Summary Cancelar agendamento
// @Description Cancela o agendamento. O motivo é obrigatório e o horário é liberado.
// @Tags Agendamentos
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.CancelAppointmentDTO true "Motivo do cancelamento"
// @Success 200 {object} successResponseBody "Cancelado"
// @Failure 400 {object} errorResponseBody "Motivo ausente"
// @Failure 409 {object} errorResponseBody "Já cancelado"
// @Security ApiKeyAuth
// @Router /appointments/{id}/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.CancelAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "motivo do cancelamento é obrigatório")
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "agendamento cancelado")
}

// @Summary Excluir agendamento
// @Description Remove o registro em definitivo. Diferente do cancelamento, não preserva histórico.
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} successResponseBody "Excluído"
// @Failure 404 {object} errorResponseBody "Agendamento não encontrado"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) deleteAppointment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.Appointment.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "agendamento excluído")
}

// @Summary Listar agendamentos
// @Tags Agendamentos
// @Produce json
// @Param patient_id query int false "Filtrar por paciente"
// @Param professional_id query int false "Filtrar por profissional"
// @Param status query string false "Filtrar por status"
// @Param start_date query string false "Início do período (AAAA-MM-DD)"
// @Param end_date query string false "Fim do período (AAAA-MM-DD)"
// @Param limit query int false "Tamanho da página"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} paginatedResponse
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	filter := domain.AppointmentFilter{
		Limit:  parseQueryInt(c, "limit", 20),
		Offset: parseQueryInt(c, "offset", 0),
	}

	if patientID := c.Query("patient_id"); patientID != "" {
		id, err := parseQueryInt64(patientID)
		if err != nil {
			badRequestResponse(c, "patient_id inválido")
			return
		}
		filter.PatientID = &id
	}
	if professionalID := c.Query("professional_id"); professionalID != "" {
		id, err := parseQueryInt64(professionalID)
		if err != nil {
			badRequestResponse(c, "professional_id inválido")
			return
		}
		filter.ProfessionalID = &id
	}
	if status := c.Query("status"); status != "" {
		apptStatus := domain.AppointmentStatus(status)
		filter.Status = &apptStatus
	}
	if startDate := c.Query("start_date"); startDate != "" {
		date, err := time.Parse(calendar.DateLayout, startDate)
		if err != nil {
			badRequestResponse(c, "start_date inválida")
			return
		}
		filter.StartDate = &date
	}
	if endDate := c.Query("end_date"); endDate != "" {
		date, err := time.Parse(calendar.DateLayout, endDate)
		if err != nil {
			badRequestResponse(c, "end_date inválida")
			return
		}
		filter.EndDate = &date
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar agendamentos", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, appointments, total, filter.Limit, filter.Offset)
}

func parseQueryInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func (h *Handler) transitionAppointment(c *gin.Context, fn func(ctx context.Context, id int64) error, message string) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, message)
}
