package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Autenticar usuário
// @Description Autentica com e-mail e senha e devolve o par de tokens
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credenciais de acesso"
// @Success 200 {object} domain.Tokens "Tokens de acesso e atualização"
// @Failure 400 {object} errorResponseBody "Dados inválidos"
// @Failure 401 {object} errorResponseBody "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.logger.Warn("falha de login", zap.String("email", req.Email), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Renovar tokens
// @Description Troca um refresh token válido por um novo par de tokens
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} domain.Tokens "Novos tokens"
// @Failure 401 {object} errorResponseBody "Token inválido ou sessão expirada"
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Encerrar sessão
// @Description Invalida o refresh token da sessão atual
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} successResponseBody "Sessão encerrada"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "sessão encerrada")
}
