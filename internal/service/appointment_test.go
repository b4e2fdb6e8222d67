package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinica/internal/calendar"
	"clinica/internal/domain"
)

type fakeAppointmentRepo struct {
	appointments map[int64]domain.Appointment
	nextID       int64
	failList     bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: map[int64]domain.Appointment{},
		nextID:       1,
	}
}

func (r *fakeAppointmentRepo) hasConflict(appt domain.Appointment) bool {
	for _, existing := range r.appointments {
		if existing.ID == appt.ID {
			continue
		}
		if existing.ProfessionalID != appt.ProfessionalID {
			continue
		}
		if !existing.Date.Equal(appt.Date) {
			continue
		}
		if existing.Status == domain.AppointmentStatusCancelled {
			continue
		}
		if calendar.Overlaps(existing.StartTime, existing.EndTime, appt.StartTime, appt.EndTime) {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (int64, error) {
	if r.hasConflict(appt) {
		return 0, domain.ErrTimeConflict
	}
	appt.ID = r.nextID
	r.nextID++
	r.appointments[appt.ID] = appt
	return appt.ID, nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &appt, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appt domain.Appointment) error {
	if _, ok := r.appointments[appt.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.hasConflict(appt) {
		return domain.ErrTimeConflict
	}
	r.appointments[appt.ID] = appt
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, cancelReason string) error {
	appt, ok := r.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	appt.Status = status
	appt.CancelReason = cancelReason
	r.appointments[id] = appt
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	if r.failList {
		return nil, errors.New("banco indisponível")
	}
	var result []domain.Appointment
	for _, appt := range r.appointments {
		result = append(result, appt)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	return len(r.appointments), nil
}

func (r *fakeAppointmentRepo) ListByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]domain.Appointment, error) {
	if r.failList {
		return nil, errors.New("banco indisponível")
	}
	var result []domain.Appointment
	for _, appt := range r.appointments {
		if appt.ProfessionalID == professionalID && appt.Date.Equal(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

type fakePatientRepo struct{}

func (fakePatientRepo) Create(ctx context.Context, patient domain.Patient) (int64, error) {
	return 1, nil
}

func (fakePatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return &domain.Patient{ID: id, Name: "Maria Souza", IsActive: true}, nil
}

func (fakePatientRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Patient, error) {
	return nil, domain.ErrNotFound
}

func (fakePatientRepo) Update(ctx context.Context, patient domain.Patient) error { return nil }

func (fakePatientRepo) Delete(ctx context.Context, id int64) error { return nil }

func (fakePatientRepo) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	return nil, 0, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error) {
	return 1, nil
}

func (fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Name: "Dra. Ana Lima", Role: domain.UserRoleProfessional, Specialty: "fisioterapia", IsActive: true}, nil
}

func (fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (fakeUserRepo) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error { return nil }

func (fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return nil
}

func (fakeUserRepo) Delete(ctx context.Context, id int64) error { return nil }

func (fakeUserRepo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	return nil, 0, nil
}

func newTestAppointmentService(repo *fakeAppointmentRepo) *AppointmentServiceImpl {
	return NewAppointmentService(repo, fakePatientRepo{}, fakeUserRepo{}, nil, zap.NewNop())
}

func createDTO(start string, duration int) domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		PatientID:      1,
		ProfessionalID: 1,
		Date:           "2024-11-18",
		StartTime:      start,
		Duration:       duration,
		Type:           domain.AppointmentTypeConsultation,
	}
}

func TestCreateDerivesEndTime(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)

	id, err := svc.Create(context.Background(), createDTO("09:00", 60))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	appt, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if appt.EndTime != "10:00" {
		t.Errorf("EndTime = %q, esperado 10:00", appt.EndTime)
	}
	if appt.Status != domain.AppointmentStatusScheduled {
		t.Errorf("Status = %q, esperado scheduled", appt.Status)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newTestAppointmentService(newFakeAppointmentRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, createDTO("09:00", 50)); !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("duração 50: err = %v, esperado ErrInvalidDuration", err)
	}
	if _, err := svc.Create(ctx, createDTO("25:00", 60)); !errors.Is(err, domain.ErrInvalidTime) {
		t.Errorf("horário 25:00: err = %v, esperado ErrInvalidTime", err)
	}

	dto := createDTO("09:00", 60)
	dto.Date = "18/11/2024"
	if _, err := svc.Create(ctx, dto); !errors.Is(err, domain.ErrInvalidDate) {
		t.Errorf("data 18/11/2024: err = %v, esperado ErrInvalidDate", err)
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, createDTO("09:00", 60)); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := svc.Create(ctx, createDTO("09:30", 60)); !errors.Is(err, domain.ErrTimeConflict) {
		t.Errorf("09:30-10:30 sobre 09:00-10:00: err = %v, esperado ErrTimeConflict", err)
	}

	// Intervalos semiabertos: 10:00 encosta mas não colide.
	if _, err := svc.Create(ctx, createDTO("10:00", 60)); err != nil {
		t.Errorf("10:00-11:00 após 09:00-10:00: err = %v, esperado nil", err)
	}
}

func TestCreateRejectsPastMidnight(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()
	date := time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC)

	// 23:30 + 60min atravessaria a meia-noite.
	if _, err := svc.Create(ctx, createDTO("23:30", 60)); !errors.Is(err, domain.ErrInvalidTime) {
		t.Errorf("23:30+60: err = %v, esperado ErrInvalidTime", err)
	}

	// Terminar exatamente à meia-noite é permitido e o intervalo segue
	// bloqueando a noite inteira.
	id, err := svc.Create(ctx, createDTO("23:00", 60))
	if err != nil {
		t.Fatalf("23:00+60: %v", err)
	}
	appt, _ := svc.GetByID(ctx, id)
	if appt.EndTime != "24:00" {
		t.Errorf("EndTime = %q, esperado 24:00", appt.EndTime)
	}

	if _, err := svc.Create(ctx, createDTO("23:30", 30)); !errors.Is(err, domain.ErrTimeConflict) {
		t.Errorf("23:30-24:00 sobre 23:00-24:00: err = %v, esperado ErrTimeConflict", err)
	}
	if got := svc.CheckAvailability(ctx, 1, date, "23:30", 30, 0); got != domain.AvailabilityUnavailable {
		t.Errorf("23:30 = %q, esperado unavailable", got)
	}
	if got := svc.CheckAvailability(ctx, 1, date, "23:30", 60, 0); got != domain.AvailabilityUnavailable {
		t.Errorf("23:30+60 atravessa o dia = %q, esperado unavailable", got)
	}

	newStart := "23:30"
	if err := svc.Update(ctx, id, domain.UpdateAppointmentDTO{StartTime: &newStart}); !errors.Is(err, domain.ErrInvalidTime) {
		t.Errorf("reagendar para 23:30+60: err = %v, esperado ErrInvalidTime", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()
	date := time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ctx, createDTO("09:00", 60)); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if got := svc.CheckAvailability(ctx, 1, date, "09:30", 60, 0); got != domain.AvailabilityUnavailable {
		t.Errorf("09:30 = %q, esperado unavailable", got)
	}
	if got := svc.CheckAvailability(ctx, 1, date, "10:00", 60, 0); got != domain.AvailabilityAvailable {
		t.Errorf("10:00 = %q, esperado available", got)
	}
	if got := svc.CheckAvailability(ctx, 2, date, "09:30", 60, 0); got != domain.AvailabilityAvailable {
		t.Errorf("outro profissional = %q, esperado available", got)
	}
}

func TestCheckAvailabilityUnknownOnRepositoryFailure(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.failList = true
	svc := newTestAppointmentService(repo)
	date := time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC)

	if got := svc.CheckAvailability(context.Background(), 1, date, "09:00", 60, 0); got != domain.AvailabilityUnknown {
		t.Errorf("falha de repositório = %q, esperado unknown", got)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()
	date := time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC)

	id, err := svc.Create(ctx, createDTO("09:00", 60))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := svc.Cancel(ctx, id, "solicitação do paciente"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	appt, _ := svc.GetByID(ctx, id)
	if appt.Status != domain.AppointmentStatusCancelled {
		t.Errorf("Status = %q, esperado cancelled", appt.Status)
	}
	if appt.CancelReason != "solicitação do paciente" {
		t.Errorf("CancelReason = %q", appt.CancelReason)
	}

	if got := svc.CheckAvailability(ctx, 1, date, "09:30", 60, 0); got != domain.AvailabilityAvailable {
		t.Errorf("horário após cancelamento = %q, esperado available", got)
	}
	if _, err := svc.Create(ctx, createDTO("09:30", 60)); err != nil {
		t.Errorf("novo agendamento sobre horário cancelado: err = %v", err)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, createDTO("09:00", 60))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := svc.Cancel(ctx, id, ""); !errors.Is(err, domain.ErrReasonRequired) {
		t.Errorf("err = %v, esperado ErrReasonRequired", err)
	}

	appt, _ := svc.GetByID(ctx, id)
	if appt.Status != domain.AppointmentStatusScheduled {
		t.Errorf("Status = %q, cancelamento sem motivo não deveria transicionar", appt.Status)
	}
}

func TestStatusTransitions(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, createDTO("09:00", 60))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Concluir direto de scheduled é inválido.
	if err := svc.Complete(ctx, id); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Complete de scheduled: err = %v, esperado ErrInvalidTransition", err)
	}

	if err := svc.Confirm(ctx, id); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if err := svc.Confirm(ctx, id); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Confirm repetido: err = %v, esperado ErrInvalidTransition", err)
	}

	if err := svc.Complete(ctx, id); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// Cancelamento é aceito mesmo de status terminal, com motivo.
	if err := svc.Cancel(ctx, id, "lançamento incorreto"); err != nil {
		t.Errorf("Cancel de completed: %v", err)
	}
	if err := svc.Cancel(ctx, id, "de novo"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Cancel de cancelled: err = %v, esperado ErrInvalidTransition", err)
	}
}

func TestUpdateRecomputesEndTimeAndChecksConflict(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, createDTO("09:00", 60))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := svc.Create(ctx, createDTO("11:00", 30))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	newDuration := 90
	if err := svc.Update(ctx, first, domain.UpdateAppointmentDTO{Duration: &newDuration}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	appt, _ := svc.GetByID(ctx, first)
	if appt.EndTime != "10:30" {
		t.Errorf("EndTime = %q, esperado 10:30", appt.EndTime)
	}

	// Mover o segundo para cima do primeiro deve colidir.
	newStart := "10:00"
	if err := svc.Update(ctx, second, domain.UpdateAppointmentDTO{StartTime: &newStart}); !errors.Is(err, domain.ErrTimeConflict) {
		t.Errorf("err = %v, esperado ErrTimeConflict", err)
	}

	// Reagendar no próprio horário não colide consigo mesmo.
	sameStart := "09:00"
	if err := svc.Update(ctx, first, domain.UpdateAppointmentDTO{StartTime: &sameStart}); err != nil {
		t.Errorf("reagendar no mesmo horário: err = %v", err)
	}
}

func TestUpdateCancelledAppointmentRejected(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, createDTO("09:00", 60))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if err := svc.Cancel(ctx, id, "paciente desistiu"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	newStart := "14:00"
	if err := svc.Update(ctx, id, domain.UpdateAppointmentDTO{StartTime: &newStart}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("err = %v, esperado ErrInvalidTransition", err)
	}
}
