package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinica/internal/domain"
	"clinica/internal/service"
)

type successResponseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type paginatedResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Success: true,
		Data:    data,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Success: true,
		Data:    data,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, successResponseBody{
		Success: true,
		Message: message,
	})
}

func paginatedSuccessResponse(c *gin.Context, data interface{}, totalCount, limit, offset int) {
	c.JSON(http.StatusOK, paginatedResponse{
		Success:    true,
		Data:       data,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Success: false,
		Message: message,
		Code:    statusCode,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "autenticação necessária"
	}
	errorResponse(c, http.StatusUnauthorized, message)
}

func forbiddenResponse(c *gin.Context) {
	errorResponse(c, http.StatusForbidden, "acesso negado")
}

// serviceErrorResponse traduz os erros sentinela das regras de negócio para
// os códigos HTTP correspondentes. Erros não mapeados viram 500 sem vazar
// detalhes internos.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, "registro não encontrado")
	case errors.Is(err, domain.ErrTimeConflict):
		errorResponse(c, http.StatusConflict, "horário indisponível")
	case errors.Is(err, domain.ErrInvalidTransition):
		errorResponse(c, http.StatusConflict, "transição de status inválida")
	case errors.Is(err, domain.ErrReasonRequired):
		badRequestResponse(c, "motivo do cancelamento é obrigatório")
	case errors.Is(err, domain.ErrInvalidDuration):
		badRequestResponse(c, "duração inválida")
	case errors.Is(err, domain.ErrInvalidDate):
		badRequestResponse(c, "data inválida")
	case errors.Is(err, domain.ErrInvalidTime):
		badRequestResponse(c, "horário inválido")
	case errors.Is(err, domain.ErrInvalidCPF):
		badRequestResponse(c, "CPF inválido")
	case errors.Is(err, domain.ErrCPFInUse):
		errorResponse(c, http.StatusConflict, "CPF já cadastrado")
	case errors.Is(err, domain.ErrEmailInUse):
		errorResponse(c, http.StatusConflict, "e-mail já cadastrado")
	case errors.Is(err, domain.ErrStorageDisabled):
		errorResponse(c, http.StatusServiceUnavailable, "armazenamento de arquivos desabilitado")
	case errors.Is(err, service.ErrInvalidCredentials):
		unauthorizedResponse(c, "e-mail ou senha inválidos")
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrSessionExpired):
		unauthorizedResponse(c, err.Error())
	case errors.Is(err, service.ErrUserInactive):
		forbiddenResponse(c)
	default:
		errorResponse(c, http.StatusInternalServerError, "erro interno do servidor")
	}
}
