package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinica/internal/cache"
	"clinica/internal/calendar"
	"clinica/internal/domain"
	"clinica/internal/repository"
)

type AgendaServiceImpl struct {
	repo   repository.AppointmentRepository
	cache  cache.Cache
	logger *zap.Logger
}

func NewAgendaService(repo repository.AppointmentRepository, cache cache.Cache, logger *zap.Logger) *AgendaServiceImpl {
	return &AgendaServiceImpl{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Month monta a grade mensal da agenda. A consulta cobre desde o primeiro
// dia visível (domingo da primeira semana, possivelmente do mês anterior)
// até o último dia do mês, de modo que as células iniciais também mostrem
// seus agendamentos.
func (s *AgendaServiceImpl) Month(ctx context.Context, year int, month time.Month, professionalID *int64) (*calendar.Month, error) {
	if month < time.January || month > time.December {
		return nil, domain.ErrInvalidDate
	}

	cacheKey := s.cacheKey(year, month, professionalID)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	firstVisible := calendar.FirstVisibleDate(year, month)
	lastOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)

	cancelled := domain.AppointmentStatusCancelled
	filter := domain.AppointmentFilter{
		ProfessionalID: professionalID,
		ExcludeStatus:  &cancelled,
		StartDate:      &firstVisible,
		EndDate:        &lastOfMonth,
		Limit:          1000,
	}

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar agendamentos do mês: %w", err)
	}

	grid := calendar.BuildMonth(year, month, time.Now().UTC(), calendar.IndexByDate(appointments))

	s.toCache(ctx, cacheKey, &grid)

	return &grid, nil
}

func (s *AgendaServiceImpl) cacheKey(year int, month time.Month, professionalID *int64) string {
	prof := int64(0)
	if professionalID != nil {
		prof = *professionalID
	}
	return fmt.Sprintf("%s%d:%04d-%02d", agendaCachePrefix, prof, year, int(month))
}

func (s *AgendaServiceImpl) fromCache(ctx context.Context, key string) *calendar.Month {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("erro ao ler agenda do cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var grid calendar.Month
	if err := json.Unmarshal(data, &grid); err != nil {
		s.logger.Warn("cache da agenda corrompido", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &grid
}

func (s *AgendaServiceImpl) toCache(ctx context.Context, key string, grid *calendar.Month) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(grid)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warn("erro ao gravar agenda no cache", zap.String("key", key), zap.Error(err))
	}
}
