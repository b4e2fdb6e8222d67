package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Cadastrar paciente
// @Tags Pacientes
// @Accept json
// @Produce json
// @Param input body domain.CreatePatientDTO true "Dados do paciente"
// @Success 201 {object} map[string]interface{} "ID do paciente criado"
// @Failure 400 {object} errorResponseBody "CPF ou dados inválidos"
// @Failure 409 {object} errorResponseBody "CPF já cadastrado"
// @Security ApiKeyAuth
// @Router /patients [post]
func (h *Handler) createPatient(c *gin.Context) {
	var req domain.CreatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Patient.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("erro ao cadastrar paciente", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Buscar paciente por ID
// @Tags Pacientes
// @Produce json
// @Param id path int true "ID do paciente"
// @Success 200 {object} domain.Patient
// @Failure 404 {object} errorResponseBody "Paciente não encontrado"
// @Security ApiKeyAuth
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	patient, err := h.services.Patient.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Atualizar paciente
// @Tags Pacientes
// @Accept json
// @Produce json
// @Param id path int true "ID do paciente"
// @Param input body domain.UpdatePatientDTO true "Campos a atualizar"
// @Success 200 {object} successResponseBody "Atualizado"
// @Failure 404 {object} errorResponseBody "Paciente não encontrado"
// @Security ApiKeyAuth
// @Router /patients/{id} [put]
func (h *Handler) updatePatient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Patient.Update(c.Request.Context(), id, req); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "paciente atualizado")
}

// @Summary Remover paciente
// @Description Remove o cadastro do paciente (somente administradores)
// @Tags Pacientes
// @Produce json
// @Param id path int true "ID do paciente"
// @Success 200 {object} successResponseBody "Removido"
// @Failure 404 {object} errorResponseBody "Paciente não encontrado"
// @Security ApiKeyAuth
// @Router /patients/{id} [delete]
func (h *Handler) deletePatient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.Patient.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "paciente removido")
}

// @Summary Listar pacientes
// @Tags Pacientes
// @Produce json
// @Param name query string false "Busca por nome"
// @Param cpf query string false "Busca por CPF"
// @Param is_active query bool false "Filtrar por ativos"
// @Param limit query int false "Tamanho da página"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} paginatedResponse
// @Security ApiKeyAuth
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	filter := domain.PatientFilter{
		Limit:  parseQueryInt(c, "limit", 20),
		Offset: parseQueryInt(c, "offset", 0),
	}

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if cpf := c.Query("cpf"); cpf != "" {
		filter.CPF = &cpf
	}
	if isActive := c.Query("is_active"); isActive != "" {
		active := isActive == "true"
		filter.IsActive = &active
	}

	patients, total, err := h.services.Patient.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar pacientes", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, patients, total, filter.Limit, filter.Offset)
}
