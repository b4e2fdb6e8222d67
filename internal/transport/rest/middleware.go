package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	userIDCtx           = "user_id"
	userRoleCtx         = "user_role"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)

		if status >= 500 {
			logger.Error("erro do servidor")
		} else if status >= 400 {
			logger.Warn("erro do cliente")
		} else {
			logger.Info("requisição processada")
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept-Encoding, Origin, Accept, User-Agent, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			unauthorizedResponse(c, "cabeçalho de autorização ausente")
			return
		}

		headerParts := strings.Split(header, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			unauthorizedResponse(c, "formato do cabeçalho de autorização inválido")
			return
		}

		userID, userRole, err := h.services.Auth.ParseToken(c.Request.Context(), headerParts[1])
		if err != nil {
			unauthorizedResponse(c, "token inválido ou expirado")
			return
		}

		c.Set(userIDCtx, userID)
		c.Set(userRoleCtx, userRole)

		c.Next()
	}
}

func (h *Handler) roleMiddleware(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := getUserRole(c)
		if err != nil {
			unauthorizedResponse(c, "usuário não autenticado")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		forbiddenResponse(c)
	}
}

func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return h.roleMiddleware(domain.UserRoleAdmin)
}

func getUserID(c *gin.Context) (int64, error) {
	value, exists := c.Get(userIDCtx)
	if !exists {
		return 0, errors.New("usuário não autenticado")
	}

	id, ok := value.(int64)
	if !ok {
		return 0, errors.New("identificador de usuário inválido no contexto")
	}
	return id, nil
}

func getUserRole(c *gin.Context) (domain.UserRole, error) {
	value, exists := c.Get(userRoleCtx)
	if !exists {
		return "", errors.New("usuário não autenticado")
	}

	role, ok := value.(domain.UserRole)
	if !ok {
		return "", errors.New("papel de usuário inválido no contexto")
	}
	return role, nil
}
