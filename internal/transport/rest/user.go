package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Criar usuário
// @Description Cadastra um novo usuário do sistema (somente administradores)
// @Tags Usuários
// @Accept json
// @Produce json
// @Param input body domain.CreateUserDTO true "Dados do usuário"
// @Success 201 {object} map[string]interface{} "ID do usuário criado"
// @Failure 400 {object} errorResponseBody "Dados inválidos"
// @Failure 409 {object} errorResponseBody "E-mail já cadastrado"
// @Security ApiKeyAuth
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req domain.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.User.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("erro ao criar usuário", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Usuário autenticado
// @Description Devolve os dados do usuário da sessão atual
// @Tags Usuários
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, "")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Buscar usuário por ID
// @Tags Usuários
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} domain.User
// @Failure 404 {object} errorResponseBody "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Atualizar usuário
// @Tags Usuários
// @Accept json
// @Produce json
// @Param id path int true "ID do usuário"
// @Param input body domain.UpdateUserDTO true "Campos a atualizar"
// @Success 200 {object} successResponseBody "Atualizado"
// @Failure 404 {object} errorResponseBody "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.User.Update(c.Request.Context(), id, req); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "usuário atualizado")
}

// @Summary Alterar senha
// @Description O usuário altera a própria senha informando a atual
// @Tags Usuários
// @Accept json
// @Produce json
// @Param id path int true "ID do usuário"
// @Param input body domain.PasswordUpdateDTO true "Senha atual e nova"
// @Success 200 {object} successResponseBody "Senha alterada"
// @Failure 403 {object} errorResponseBody "Não é o próprio usuário"
// @Security ApiKeyAuth
// @Router /users/{id}/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, "")
		return
	}

	role, _ := getUserRole(c)
	if userID != id && role != domain.UserRoleAdmin {
		forbiddenResponse(c)
		return
	}

	var req domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), id, req); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "senha alterada")
}

// @Summary Listar usuários
// @Tags Usuários
// @Produce json
// @Param role query string false "Filtrar por papel"
// @Param is_active query bool false "Filtrar por ativos"
// @Param limit query int false "Tamanho da página"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} paginatedResponse
// @Security ApiKeyAuth
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	filter := domain.UserFilter{
		Limit:  parseQueryInt(c, "limit", 20),
		Offset: parseQueryInt(c, "offset", 0),
	}

	if role := c.Query("role"); role != "" {
		userRole := domain.UserRole(role)
		filter.Role = &userRole
	}
	if isActive := c.Query("is_active"); isActive != "" {
		active := isActive == "true"
		filter.IsActive = &active
	}

	users, total, err := h.services.User.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar usuários", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, users, total, filter.Limit, filter.Offset)
}

// @Summary Remover usuário
// @Tags Usuários
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} successResponseBody "Removido"
// @Failure 404 {object} errorResponseBody "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.User.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "usuário removido")
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parseQueryInt(c *gin.Context, name string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return defaultValue
	}
	return value
}
