package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

const appointmentColumns = `
	a.id, a.patient_id, a.professional_id, a.date, a.start_time, a.end_time,
	a.duration, a.type, a.specialty, a.status, a.notes, a.cancel_reason,
	a.created_at, a.updated_at, p.name AS patient_name, u.name AS professional_name
`

// conflictCount conta agendamentos não cancelados do profissional na data
// cujo intervalo [start_time, end_time) intersecta o candidato. A contagem
// roda dentro da transação de escrita: é a verificação autoritativa, a
// checagem prévia de disponibilidade é apenas orientativa.
func conflictCount(ctx context.Context, tx pgx.Tx, appt domain.Appointment) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE professional_id = $1
		AND date = $2
		AND status != 'cancelled'
		AND id != $3
		AND start_time < $4
		AND $5 < end_time
	`

	var count int
	err := tx.QueryRow(ctx, query,
		appt.ProfessionalID,
		appt.Date,
		appt.ID,
		appt.EndTime,
		appt.StartTime,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao verificar conflito de horário: %w", err)
	}

	return count, nil
}

func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := conflictCount(ctx, tx, appt)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, domain.ErrTimeConflict
	}

	query := `
		INSERT INTO appointments (patient_id, professional_id, date, start_time, end_time, duration, type, specialty, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRow(ctx, query,
		appt.PatientID,
		appt.ProfessionalID,
		appt.Date,
		appt.StartTime,
		appt.EndTime,
		appt.Duration,
		appt.Type,
		appt.Specialty,
		domain.AppointmentStatusScheduled,
		appt.Notes,
		now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN users u ON a.professional_id = u.id
		WHERE a.id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	appt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}

	return appt, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appt domain.Appointment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := conflictCount(ctx, tx, appt)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrTimeConflict
	}

	query := `
		UPDATE appointments
		SET date = $1, start_time = $2, end_time = $3, duration = $4, type = $5,
		    specialty = $6, notes = $7, updated_at = $8
		WHERE id = $9
	`

	tag, err := tx.Exec(ctx, query,
		appt.Date,
		appt.StartTime,
		appt.EndTime,
		appt.Duration,
		appt.Type,
		appt.Specialty,
		appt.Notes,
		time.Now(),
		appt.ID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, cancelReason string) error {
	query := `
		UPDATE appointments
		SET status = $1, cancel_reason = $2, updated_at = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, status, cancelReason, time.Now(), id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do agendamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir agendamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	conditions, args := buildAppointmentFilter(filter)

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN users u ON a.professional_id = u.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date, a.start_time"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler agendamento: %w", err)
		}
		appointments = append(appointments, *appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer agendamentos: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	conditions, args := buildAppointmentFilter(filter)

	query := `SELECT COUNT(*) FROM appointments a`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar agendamentos: %w", err)
	}

	return count, nil
}

func (r *AppointmentRepo) ListByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]domain.Appointment, error) {
	filter := domain.AppointmentFilter{
		ProfessionalID: &professionalID,
		StartDate:      &date,
		EndDate:        &date,
	}
	return r.List(ctx, filter)
}

func buildAppointmentFilter(filter domain.AppointmentFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		conditions = append(conditions, fmt.Sprintf("a.patient_id = $%d", len(args)))
	}
	if filter.ProfessionalID != nil {
		args = append(args, *filter.ProfessionalID)
		conditions = append(conditions, fmt.Sprintf("a.professional_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.ExcludeStatus != nil {
		args = append(args, *filter.ExcludeStatus)
		conditions = append(conditions, fmt.Sprintf("a.status != $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	return conditions, args
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.ProfessionalID,
		&appt.Date,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Duration,
		&appt.Type,
		&appt.Specialty,
		&appt.Status,
		&appt.Notes,
		&appt.CancelReason,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&appt.PatientName,
		&appt.ProfessionalName,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}
