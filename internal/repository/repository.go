package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type Repositories struct {
	User        UserRepository
	Auth        AuthRepository
	Patient     PatientRepository
	Appointment AppointmentRepository
	Evolution   EvolutionRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Auth:        NewAuthRepository(db),
		Patient:     NewPatientRepository(db),
		Appointment: NewAppointmentRepository(db),
		Evolution:   NewEvolutionRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient domain.Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Patient, error)
	Update(ctx context.Context, patient domain.Patient) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, appt domain.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, cancelReason string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	ListByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]domain.Appointment, error)
}

type EvolutionRepository interface {
	Create(ctx context.Context, evolution domain.Evolution) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Evolution, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]domain.Evolution, int, error)
}
