package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinica/internal/cache"
	"clinica/internal/calendar"
	"clinica/internal/domain"
	"clinica/internal/repository"
)

// agendaCachePrefix agrupa as chaves de cache da agenda mensal. Toda mutação
// de agendamento invalida o prefixo inteiro.
const agendaCachePrefix = "agenda:"

type AppointmentServiceImpl struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	cache       cache.Cache
	logger      *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	cache cache.Cache,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:        repo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error) {
	if _, err := s.patientRepo.GetByID(ctx, dto.PatientID); err != nil {
		return 0, fmt.Errorf("paciente não encontrado: %w", err)
	}

	professional, err := s.userRepo.GetByID(ctx, dto.ProfessionalID)
	if err != nil {
		return 0, fmt.Errorf("profissional não encontrado: %w", err)
	}

	appt, err := s.buildAppointment(dto)
	if err != nil {
		return 0, err
	}
	if appt.Specialty == "" {
		appt.Specialty = professional.Specialty
	}

	id, err := s.repo.Create(ctx, appt)
	if err != nil {
		return 0, err
	}

	s.invalidateAgenda(ctx)

	s.logger.Info("agendamento criado",
		zap.Int64("appointment_id", id),
		zap.Int64("professional_id", dto.ProfessionalID),
		zap.String("date", dto.Date),
		zap.String("start_time", appt.StartTime),
	)

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if appt.Status == domain.AppointmentStatusCancelled {
		return domain.ErrInvalidTransition
	}

	if dto.Date != nil {
		date, err := time.Parse(calendar.DateLayout, *dto.Date)
		if err != nil {
			return domain.ErrInvalidDate
		}
		appt.Date = date
	}
	if dto.StartTime != nil {
		start, err := calendar.ParseTime(*dto.StartTime)
		if err != nil {
			return err
		}
		appt.StartTime = start
	}
	if dto.Duration != nil {
		if !domain.IsValidDuration(*dto.Duration) {
			return domain.ErrInvalidDuration
		}
		appt.Duration = *dto.Duration
	}
	if dto.Type != nil {
		appt.Type = *dto.Type
	}
	if dto.Specialty != nil {
		appt.Specialty = *dto.Specialty
	}
	if dto.Notes != nil {
		appt.Notes = *dto.Notes
	}

	if !calendar.FitsInDay(appt.StartTime, appt.Duration) {
		return domain.ErrInvalidTime
	}

	// O término é sempre derivado, nunca aceito do cliente.
	appt.EndTime = calendar.AddMinutes(appt.StartTime, appt.Duration)

	if err := s.repo.Update(ctx, *appt); err != nil {
		return err
	}

	s.invalidateAgenda(ctx)
	return nil
}

func (s *AppointmentServiceImpl) Confirm(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.AppointmentStatusConfirmed, "")
}

func (s *AppointmentServiceImpl) Complete(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.AppointmentStatusCompleted, "")
}

func (s *AppointmentServiceImpl) MarkNoShow(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.AppointmentStatusNoShow, "")
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		return domain.ErrReasonRequired
	}
	return s.transition(ctx, id, domain.AppointmentStatusCancelled, reason)
}

func (s *AppointmentServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateAgenda(ctx)

	s.logger.Info("agendamento excluído", zap.Int64("appointment_id", id))
	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	appts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return appts, total, nil
}

// CheckAvailability faz a verificação prévia de um horário. O resultado
// Unknown sinaliza falha de infraestrutura: o chamador mostra o estado como
// indeterminado em vez de livre. A palavra final continua sendo a checagem
// transacional feita na gravação.
func (s *AppointmentServiceImpl) CheckAvailability(ctx context.Context, professionalID int64, date time.Time, startTime string, duration int, excludeID int64) domain.Availability {
	start, err := calendar.ParseTime(startTime)
	if err != nil {
		return domain.AvailabilityUnavailable
	}
	if !domain.IsValidDuration(duration) {
		return domain.AvailabilityUnavailable
	}
	if !calendar.FitsInDay(start, duration) {
		return domain.AvailabilityUnavailable
	}
	end := calendar.AddMinutes(start, duration)

	existing, err := s.repo.ListByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		s.logger.Warn("verificação de disponibilidade falhou",
			zap.Int64("professional_id", professionalID),
			zap.Time("date", date),
			zap.Error(err),
		)
		return domain.AvailabilityUnknown
	}

	if calendar.HasConflict(existing, start, end, excludeID) {
		return domain.AvailabilityUnavailable
	}
	return domain.AvailabilityAvailable
}

func (s *AppointmentServiceImpl) buildAppointment(dto domain.CreateAppointmentDTO) (domain.Appointment, error) {
	date, err := time.Parse(calendar.DateLayout, dto.Date)
	if err != nil {
		return domain.Appointment{}, domain.ErrInvalidDate
	}

	start, err := calendar.ParseTime(dto.StartTime)
	if err != nil {
		return domain.Appointment{}, err
	}

	if !domain.IsValidDuration(dto.Duration) {
		return domain.Appointment{}, domain.ErrInvalidDuration
	}

	if !calendar.FitsInDay(start, dto.Duration) {
		return domain.Appointment{}, domain.ErrInvalidTime
	}

	return domain.Appointment{
		PatientID:      dto.PatientID,
		ProfessionalID: dto.ProfessionalID,
		Date:           date,
		StartTime:      start,
		EndTime:        calendar.AddMinutes(start, dto.Duration),
		Duration:       dto.Duration,
		Type:           dto.Type,
		Specialty:      dto.Specialty,
		Status:         domain.AppointmentStatusScheduled,
		Notes:          dto.Notes,
	}, nil
}

func (s *AppointmentServiceImpl) transition(ctx context.Context, id int64, to domain.AppointmentStatus, cancelReason string) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanTransition(appt.Status, to) {
		return domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, to, cancelReason); err != nil {
		return err
	}

	s.invalidateAgenda(ctx)

	s.logger.Info("status do agendamento alterado",
		zap.Int64("appointment_id", id),
		zap.String("from", string(appt.Status)),
		zap.String("to", string(to)),
	)

	return nil
}

func (s *AppointmentServiceImpl) invalidateAgenda(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePrefix(ctx, agendaCachePrefix); err != nil {
		s.logger.Warn("erro ao invalidar cache da agenda", zap.Error(err))
	}
}
