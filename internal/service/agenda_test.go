package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinica/internal/domain"
)

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.data[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte) error {
	c.data[key] = value
	return nil
}

func (c *fakeCache) DeletePrefix(ctx context.Context, prefix string) error {
	for key := range c.data {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.data, key)
		}
	}
	return nil
}

func TestAgendaMonthGrid(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.appointments[1] = domain.Appointment{
		ID:             1,
		ProfessionalID: 1,
		Date:           time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "10:00",
		Status:         domain.AppointmentStatusScheduled,
	}

	svc := NewAgendaService(repo, nil, zap.NewNop())

	grid, err := svc.Month(context.Background(), 2024, time.November, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if grid.Year != 2024 || grid.Month != 11 {
		t.Fatalf("grade %d-%d, esperado 2024-11", grid.Year, grid.Month)
	}
	if len(grid.Weeks) != 5 {
		t.Fatalf("semanas = %d, esperado 5", len(grid.Weeks))
	}

	// 18 de novembro de 2024 é segunda-feira da quarta semana.
	day := grid.Weeks[3][1]
	if day == nil || day.Date.Day() != 18 {
		t.Fatalf("célula inesperada para 18/11")
	}
	if len(day.Appointments) != 1 {
		t.Errorf("agendamentos em 18/11 = %d, esperado 1", len(day.Appointments))
	}
}

func TestAgendaMonthUsesCache(t *testing.T) {
	repo := newFakeAppointmentRepo()
	cache := newFakeCache()
	svc := NewAgendaService(repo, cache, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Month(ctx, 2024, time.November, nil); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(cache.data) != 1 {
		t.Fatalf("chaves no cache = %d, esperado 1", len(cache.data))
	}

	// Com o cache aquecido, uma falha no repositório passa despercebida.
	repo.failList = true
	if _, err := svc.Month(ctx, 2024, time.November, nil); err != nil {
		t.Errorf("leitura do cache deveria evitar o repositório: %v", err)
	}

	if _, err := svc.Month(ctx, 2024, time.December, nil); err == nil {
		t.Error("mês fora do cache deveria propagar a falha do repositório")
	}
}

func TestAgendaMonthRejectsInvalidMonth(t *testing.T) {
	svc := NewAgendaService(newFakeAppointmentRepo(), nil, zap.NewNop())

	if _, err := svc.Month(context.Background(), 2024, time.Month(13), nil); err == nil {
		t.Error("mês 13 deveria ser rejeitado")
	}
	if _, err := svc.Month(context.Background(), 2024, time.Month(0), nil); err == nil {
		t.Error("mês 0 deveria ser rejeitado")
	}
}
