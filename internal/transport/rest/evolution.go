package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Registrar evolução
// @Description Registra uma nota de evolução clínica em nome do profissional autenticado
// @Tags Evoluções
// @Accept json
// @Produce json
// @Param input body domain.CreateEvolutionDTO true "Dados da evolução"
// @Success 201 {object} map[string]interface{} "ID da evolução criada"
// @Failure 404 {object} errorResponseBody "Paciente não encontrado"
// @Security ApiKeyAuth
// @Router /evolutions [post]
func (h *Handler) createEvolution(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, "")
		return
	}

	var req domain.CreateEvolutionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Evolution.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Error("erro ao registrar evolução", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Buscar evolução por ID
// @Tags Evoluções
// @Produce json
// @Param id path int true "ID da evolução"
// @Success 200 {object} domain.Evolution
// @Failure 404 {object} errorResponseBody "Evolução não encontrada"
// @Security ApiKeyAuth
// @Router /evolutions/{id} [get]
func (h *Handler) getEvolutionByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	evolution, err := h.services.Evolution.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, evolution)
}

// @Summary Atualizar evolução
// @Description O autor ou um administrador pode corrigir o texto da evolução
// @Tags Evoluções
// @Accept json
// @Produce json
// @Param id path int true "ID da evolução"
// @Param input body domain.UpdateEvolutionDTO true "Novo conteúdo"
// @Success 200 {object} successResponseBody "Atualizada"
// @Failure 403 {object} errorResponseBody "Não é o autor"
// @Security ApiKeyAuth
// @Router /evolutions/{id} [put]
func (h *Handler) updateEvolution(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if !h.canEditEvolution(c, id) {
		return
	}

	var req domain.UpdateEvolutionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Evolution.Update(c.Request.Context(), id, req); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "evolução atualizada")
}

// @Summary Remover evolução
// @Tags Evoluções
// @Produce json
// @Param id path int true "ID da evolução"
// @Success 200 {object} successResponseBody "Removida"
// @Failure 403 {object} errorResponseBody "Não é o autor"
// @Security ApiKeyAuth
// @Router /evolutions/{id} [delete]
func (h *Handler) deleteEvolution(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if !h.canEditEvolution(c, id) {
		return
	}

	if err := h.services.Evolution.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "evolução removida")
}

// @Summary Evoluções do paciente
// @Description Lista as evoluções do paciente, das mais recentes para as mais antigas
// @Tags Evoluções
// @Produce json
// @Param id path int true "ID do paciente"
// @Param limit query int false "Tamanho da página"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} paginatedResponse
// @Security ApiKeyAuth
// @Router /patients/{id}/evolutions [get]
func (h *Handler) getPatientEvolutions(c *gin.Context) {
	patientID, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	evolutions, total, err := h.services.Evolution.ListByPatient(c.Request.Context(), patientID, limit, offset)
	if err != nil {
		h.logger.Error("erro ao listar evoluções", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, evolutions, total, limit, offset)
}

// canEditEvolution garante que só o autor ou um administrador altere a nota.
// Já responde ao cliente quando o acesso é negado.
func (h *Handler) canEditEvolution(c *gin.Context, evolutionID int64) bool {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, "")
		return false
	}

	role, _ := getUserRole(c)
	if role == domain.UserRoleAdmin {
		return true
	}

	evolution, err := h.services.Evolution.GetByID(c.Request.Context(), evolutionID)
	if err != nil {
		serviceErrorResponse(c, err)
		return false
	}

	if evolution.ProfessionalID != userID {
		forbiddenResponse(c)
		return false
	}
	return true
}
