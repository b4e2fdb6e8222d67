package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/auth"
	"clinica/pkg/validator"
)

type UserServiceImpl struct {
	repo     repository.UserRepository
	authRepo repository.AuthRepository
	logger   *zap.Logger
}

func NewUserService(repo repository.UserRepository, authRepo repository.AuthRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:     repo,
		authRepo: authRepo,
		logger:   logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error) {
	if !validator.ValidateEmail(dto.Email) {
		return 0, errors.New("e-mail inválido")
	}

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("erro ao verificar e-mail: %w", err)
	}
	if existing != nil {
		return 0, domain.ErrEmailInUse
	}

	hash, err := auth.HashPassword(dto.Password)
	if err != nil {
		return 0, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	dto.Name = validator.FormatName(dto.Name)
	if dto.Phone != "" {
		dto.Phone = validator.FormatPhone(dto.Phone)
	}

	id, err := s.repo.Create(ctx, dto, hash)
	if err != nil {
		return 0, err
	}

	s.logger.Info("usuário criado",
		zap.Int64("user_id", id),
		zap.String("role", string(dto.Role)),
	)

	return id, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if dto.Email != nil {
		if !validator.ValidateEmail(*dto.Email) {
			return errors.New("e-mail inválido")
		}
		existing, err := s.repo.GetByEmail(ctx, *dto.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("erro ao verificar e-mail: %w", err)
		}
		if existing != nil && existing.ID != id {
			return domain.ErrEmailInUse
		}
	}

	if dto.Name != nil {
		formatted := validator.FormatName(*dto.Name)
		dto.Name = &formatted
	}
	if dto.Phone != nil && *dto.Phone != "" {
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		return err
	}

	// Desativar o usuário derruba as sessões abertas.
	if dto.IsActive != nil && !*dto.IsActive {
		if err := s.authRepo.DeleteSessionsByUserID(ctx, id); err != nil {
			s.logger.Warn("erro ao encerrar sessões do usuário desativado",
				zap.Int64("user_id", id),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("erro ao verificar senha atual: %w", err)
	}
	if !ok {
		return errors.New("senha atual incorreta")
	}

	hash, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da nova senha: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.authRepo.DeleteSessionsByUserID(ctx, id); err != nil {
		return fmt.Errorf("erro ao encerrar sessões do usuário: %w", err)
	}

	return s.repo.Delete(ctx, id)
}

func (s *UserServiceImpl) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}
