package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
)

type EvolutionServiceImpl struct {
	repo        repository.EvolutionRepository
	patientRepo repository.PatientRepository
	logger      *zap.Logger
}

func NewEvolutionService(
	repo repository.EvolutionRepository,
	patientRepo repository.PatientRepository,
	logger *zap.Logger,
) *EvolutionServiceImpl {
	return &EvolutionServiceImpl{
		repo:        repo,
		patientRepo: patientRepo,
		logger:      logger,
	}
}

func (s *EvolutionServiceImpl) Create(ctx context.Context, professionalID int64, dto domain.CreateEvolutionDTO) (int64, error) {
	if _, err := s.patientRepo.GetByID(ctx, dto.PatientID); err != nil {
		return 0, fmt.Errorf("paciente não encontrado: %w", err)
	}

	evolution := domain.Evolution{
		PatientID:      dto.PatientID,
		ProfessionalID: professionalID,
		AppointmentID:  dto.AppointmentID,
		Content:        dto.Content,
	}

	id, err := s.repo.Create(ctx, evolution)
	if err != nil {
		return 0, err
	}

	s.logger.Info("evolução registrada",
		zap.Int64("evolution_id", id),
		zap.Int64("patient_id", dto.PatientID),
		zap.Int64("professional_id", professionalID),
	)

	return id, nil
}

func (s *EvolutionServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Evolution, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EvolutionServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateEvolutionDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, dto.Content)
}

func (s *EvolutionServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *EvolutionServiceImpl) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]domain.Evolution, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
