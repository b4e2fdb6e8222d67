package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/cache"
	"clinica/internal/calendar"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Cache       cache.Cache
}

type Services struct {
	Auth        AuthService
	User        UserService
	Patient     PatientService
	Appointment AppointmentService
	Agenda      AgendaService
	Evolution   EvolutionService
	Report      ReportService
}

func NewServices(deps Deps) *Services {
	appointment := NewAppointmentService(deps.Repos.Appointment, deps.Repos.Patient, deps.Repos.User, deps.Cache, deps.Logger)

	return &Services{
		Auth:        NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		User:        NewUserService(deps.Repos.User, deps.Repos.Auth, deps.Logger),
		Patient:     NewPatientService(deps.Repos.Patient, deps.Logger),
		Appointment: appointment,
		Agenda:      NewAgendaService(deps.Repos.Appointment, deps.Cache, deps.Logger),
		Evolution:   NewEvolutionService(deps.Repos.Evolution, deps.Repos.Patient, deps.Logger),
		Report:      NewReportService(deps.Repos.Appointment, deps.FileStorage, deps.Logger),
	}
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error)
}

type PatientService interface {
	Create(ctx context.Context, dto domain.CreatePatientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error
	Confirm(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
	MarkNoShow(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	CheckAvailability(ctx context.Context, professionalID int64, date time.Time, startTime string, duration int, excludeID int64) domain.Availability
}

type AgendaService interface {
	Month(ctx context.Context, year int, month time.Month, professionalID *int64) (*calendar.Month, error)
}

type EvolutionService interface {
	Create(ctx context.Context, professionalID int64, dto domain.CreateEvolutionDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Evolution, error)
	Update(ctx context.Context, id int64, dto domain.UpdateEvolutionDTO) error
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]domain.Evolution, int, error)
}

type ReportService interface {
	Appointments(ctx context.Context, from, to time.Time, professionalID *int64) (*domain.AppointmentReport, error)
	ExportAppointmentsCSV(ctx context.Context, from, to time.Time, professionalID *int64) (*domain.ReportExport, error)
}
