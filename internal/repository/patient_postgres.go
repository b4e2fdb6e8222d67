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

type PatientRepo struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) *PatientRepo {
	return &PatientRepo{
		db: db,
	}
}

func (r *PatientRepo) Create(ctx context.Context, patient domain.Patient) (int64, error) {
	query := `
		INSERT INTO patients (name, cpf, birth_date, phone, email, address, notes, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		patient.Name,
		patient.CPF,
		patient.BirthDate,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.Notes,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao cadastrar paciente: %w", err)
	}

	return id, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	query := `
		SELECT id, name, cpf, birth_date, phone, email, address, notes, is_active, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	patient, err := scanPatient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar paciente: %w", err)
	}

	return patient, nil
}

func (r *PatientRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Patient, error) {
	query := `
		SELECT id, name, cpf, birth_date, phone, email, address, notes, is_active, created_at, updated_at
		FROM patients
		WHERE cpf = $1
	`

	patient, err := scanPatient(r.db.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar paciente por CPF: %w", err)
	}

	return patient, nil
}

func (r *PatientRepo) Update(ctx context.Context, patient domain.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, birth_date = $2, phone = $3, email = $4, address = $5,
		    notes = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		patient.Name,
		patient.BirthDate,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.Notes,
		patient.IsActive,
		time.Now(),
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar paciente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PatientRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir paciente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PatientRepo) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	var conditions []string
	var args []interface{}

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.CPF != nil {
		args = append(args, *filter.CPF)
		conditions = append(conditions, fmt.Sprintf("cpf = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM patients"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar pacientes: %w", err)
	}

	query := `
		SELECT id, name, cpf, birth_date, phone, email, address, notes, is_active, created_at, updated_at
		FROM patients
	` + where + " ORDER BY name"

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
		return nil, 0, fmt.Errorf("erro ao listar pacientes: %w", err)
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler paciente: %w", err)
		}
		patients = append(patients, *patient)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro ao percorrer pacientes: %w", err)
	}

	return patients, total, nil
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var patient domain.Patient
	err := row.Scan(
		&patient.ID,
		&patient.Name,
		&patient.CPF,
		&patient.BirthDate,
		&patient.Phone,
		&patient.Email,
		&patient.Address,
		&patient.Notes,
		&patient.IsActive,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
