package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/domain"
	"clinica/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)

			// Não há cadastro aberto: novos usuários são criados por um
			// administrador.
			auth.POST("/register", h.authMiddleware(), h.adminMiddleware(), h.createUser)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.PUT("/:id", h.updateUser)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		patients := api.Group("/patients")
		patients.Use(h.authMiddleware())
		{
			patients.POST("/", h.createPatient)
			patients.GET("/", h.getPatients)
			patients.GET("/:id", h.getPatientByID)
			patients.PUT("/:id", h.updatePatient)
			patients.DELETE("/:id", h.adminMiddleware(), h.deletePatient)
			patients.GET("/:id/evolutions", h.getPatientEvolutions)
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.DELETE("/:id", h.deleteAppointment)

			appointments.POST("/:id/confirm", h.confirmAppointment)
			appointments.POST("/:id/complete", h.completeAppointment)
			appointments.POST("/:id/no-show", h.markAppointmentNoShow)
			appointments.POST("/:id/cancel", h.cancelAppointment)
		}

		agenda := api.Group("/agenda")
		agenda.Use(h.authMiddleware())
		{
			agenda.GET("/month", h.getAgendaMonth)
			agenda.GET("/availability", h.checkAvailability)
		}

		evolutions := api.Group("/evolutions")
		evolutions.Use(h.authMiddleware(), h.roleMiddleware(domain.UserRoleAdmin, domain.UserRoleProfessional))
		{
			evolutions.POST("/", h.createEvolution)
			evolutions.GET("/:id", h.getEvolutionByID)
			evolutions.PUT("/:id", h.updateEvolution)
			evolutions.DELETE("/:id", h.deleteEvolution)
		}

		reports := api.Group("/reports")
		reports.Use(h.authMiddleware(), h.roleMiddleware(domain.UserRoleAdmin, domain.UserRoleProfessional))
		{
			reports.GET("/appointments", h.getAppointmentReport)
			reports.POST("/appointments/export", h.exportAppointmentReport)
		}
	}
}
