package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type EvolutionRepo struct {
	db *pgxpool.Pool
}

func NewEvolutionRepository(db *pgxpool.Pool) *EvolutionRepo {
	return &EvolutionRepo{
		db: db,
	}
}

func (r *EvolutionRepo) Create(ctx context.Context, evolution domain.Evolution) (int64, error) {
	query := `
		INSERT INTO evolutions (patient_id, professional_id, appointment_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		evolution.PatientID,
		evolution.ProfessionalID,
		evolution.AppointmentID,
		evolution.Content,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar evolução: %w", err)
	}

	return id, nil
}

func (r *EvolutionRepo) GetByID(ctx context.Context, id int64) (*domain.Evolution, error) {
	query := `
		SELECT e.id, e.patient_id, e.professional_id, e.appointment_id, e.content,
		       e.created_at, e.updated_at, u.name AS professional_name
		FROM evolutions e
		JOIN users u ON e.professional_id = u.id
		WHERE e.id = $1
	`

	evolution, err := scanEvolution(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar evolução: %w", err)
	}

	return evolution, nil
}

func (r *EvolutionRepo) Update(ctx context.Context, id int64, content string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE evolutions SET content = $1, updated_at = $2 WHERE id = $3`,
		content, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar evolução: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *EvolutionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM evolutions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir evolução: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *EvolutionRepo) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]domain.Evolution, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM evolutions WHERE patient_id = $1`, patientID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar evoluções: %w", err)
	}

	query := `
		SELECT e.id, e.patient_id, e.professional_id, e.appointment_id, e.content,
		       e.created_at, e.updated_at, u.name AS professional_name
		FROM evolutions e
		JOIN users u ON e.professional_id = u.id
		WHERE e.patient_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, patientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar evoluções: %w", err)
	}
	defer rows.Close()

	var evolutions []domain.Evolution
	for rows.Next() {
		evolution, err := scanEvolution(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler evolução: %w", err)
		}
		evolutions = append(evolutions, *evolution)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro ao percorrer evoluções: %w", err)
	}

	return evolutions, total, nil
}

func scanEvolution(row pgx.Row) (*domain.Evolution, error) {
	var evolution domain.Evolution
	err := row.Scan(
		&evolution.ID,
		&evolution.PatientID,
		&evolution.ProfessionalID,
		&evolution.AppointmentID,
		&evolution.Content,
		&evolution.CreatedAt,
		&evolution.UpdatedAt,
		&evolution.ProfessionalName,
	)
	if err != nil {
		return nil, err
	}
	return &evolution, nil
}
