package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinica/internal/calendar"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/validator"
)

type PatientServiceImpl struct {
	repo   repository.PatientRepository
	logger *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, logger *zap.Logger) *PatientServiceImpl {
	return &PatientServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PatientServiceImpl) Create(ctx context.Context, dto domain.CreatePatientDTO) (int64, error) {
	if !validator.ValidateCPF(dto.CPF) {
		return 0, domain.ErrInvalidCPF
	}
	cpf := validator.FormatCPF(dto.CPF)

	existing, err := s.repo.GetByCPF(ctx, cpf)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("erro ao verificar CPF: %w", err)
	}
	if existing != nil {
		return 0, domain.ErrCPFInUse
	}

	birthDate, err := time.Parse(calendar.DateLayout, dto.BirthDate)
	if err != nil {
		return 0, domain.ErrInvalidDate
	}
	if birthDate.After(time.Now()) {
		return 0, domain.ErrInvalidDate
	}

	patient := domain.Patient{
		Name:      validator.FormatName(dto.Name),
		CPF:       cpf,
		BirthDate: birthDate,
		Email:     dto.Email,
		Address:   validator.SanitizeString(dto.Address),
		Notes:     validator.SanitizeString(dto.Notes),
		IsActive:  true,
	}
	if dto.Phone != "" {
		patient.Phone = validator.FormatPhone(dto.Phone)
	}

	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		return 0, err
	}

	s.logger.Info("paciente cadastrado", zap.Int64("patient_id", id))

	return id, nil
}

func (s *PatientServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Name != nil {
		patient.Name = validator.FormatName(*dto.Name)
	}
	if dto.Phone != nil {
		patient.Phone = validator.FormatPhone(*dto.Phone)
	}
	if dto.Email != nil {
		patient.Email = *dto.Email
	}
	if dto.Address != nil {
		patient.Address = validator.SanitizeString(*dto.Address)
	}
	if dto.Notes != nil {
		patient.Notes = validator.SanitizeString(*dto.Notes)
	}
	if dto.IsActive != nil {
		patient.IsActive = *dto.IsActive
	}
	if dto.BirthDate != nil {
		birthDate, err := time.Parse(calendar.DateLayout, *dto.BirthDate)
		if err != nil {
			return domain.ErrInvalidDate
		}
		patient.BirthDate = birthDate
	}

	return s.repo.Update(ctx, *patient)
}

func (s *PatientServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *PatientServiceImpl) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.CPF != nil {
		formatted := validator.FormatCPF(*filter.CPF)
		filter.CPF = &formatted
	}
	return s.repo.List(ctx, filter)
}
