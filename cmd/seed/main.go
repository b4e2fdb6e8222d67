package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"clinica/config"
	"clinica/internal/calendar"
	"clinica/internal/domain"
	"clinica/pkg/auth"
	"clinica/pkg/database"
	"clinica/pkg/validator"
)

// Popula o banco com dados de demonstração: profissionais, pacientes e
// uma agenda de consultas no mês corrente.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("iniciando seed")

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("erro ao carregar configuração: %v", err)
	}

	pool, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatalf("erro ao conectar ao banco: %v", err)
	}
	defer pool.Close()

	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	professionalIDs, err := seedUsers(ctx, pool, 8)
	if err != nil {
		log.Fatalf("erro ao criar usuários: %v", err)
	}

	patientIDs, err := seedPatients(ctx, pool, 60)
	if err != nil {
		log.Fatalf("erro ao criar pacientes: %v", err)
	}

	if err := seedAppointments(ctx, pool, professionalIDs, patientIDs, 200); err != nil {
		log.Fatalf("erro ao criar agendamentos: %v", err)
	}

	log.Println("seed concluído")
}

var specialties = []string{
	"Fisioterapia",
	"Psicologia",
	"Fonoaudiologia",
	"Nutrição",
	"Terapia Ocupacional",
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, count int) ([]int64, error) {
	log.Printf("criando %d profissionais", count)

	hash, err := auth.HashPassword("senha123")
	if err != nil {
		return nil, err
	}

	var adminID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, password_hash, role, specialty)
		VALUES ($1, $2, $3, $4, 'admin', '')
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id
	`, "Administrador", "admin@clinica.local", "+5511999990000", hash).Scan(&adminID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("prof%d@clinica.local", i+1)
		specialty := specialties[gofakeit.Number(0, len(specialties)-1)]

		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO users (name, email, phone, password_hash, role, specialty)
			VALUES ($1, $2, $3, $4, 'professional', $5)
			ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
			RETURNING id
		`, name, email, validator.FormatPhone(gofakeit.Phone()), hash, specialty).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func seedPatients(ctx context.Context, pool *pgxpool.Pool, count int) ([]int64, error) {
	log.Printf("criando %d pacientes", count)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		birth := gofakeit.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC),
		)

		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO patients (name, cpf, birth_date, phone, email, address)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (cpf) DO UPDATE SET updated_at = NOW()
			RETURNING id
		`,
			gofakeit.Name(),
			randomCPF(),
			birth,
			validator.FormatPhone(gofakeit.Phone()),
			gofakeit.Email(),
			gofakeit.Street(),
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func seedAppointments(ctx context.Context, pool *pgxpool.Pool, professionalIDs, patientIDs []int64, count int) error {
	log.Printf("criando até %d agendamentos", count)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	types := []domain.AppointmentType{
		domain.AppointmentTypeConsultation,
		domain.AppointmentTypeReturn,
		domain.AppointmentTypeEvaluation,
		domain.AppointmentTypeSession,
	}
	statuses := []domain.AppointmentStatus{
		domain.AppointmentStatusScheduled,
		domain.AppointmentStatusConfirmed,
		domain.AppointmentStatusCompleted,
	}

	created := 0
	for i := 0; i < count; i++ {
		professionalID := professionalIDs[gofakeit.Number(0, len(professionalIDs)-1)]
		patientID := patientIDs[gofakeit.Number(0, len(patientIDs)-1)]
		date := monthStart.AddDate(0, 0, gofakeit.Number(0, daysInMonth-1))

		start := fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 17), 30*gofakeit.Number(0, 1))
		duration := domain.ValidDurations[gofakeit.Number(0, len(domain.ValidDurations)-1)]
		end := calendar.AddMinutes(start, duration)

		// Agendas geradas ao acaso colidem; o horário ocupado é simplesmente pulado.
		var conflicts int
		err := pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM appointments
			WHERE professional_id = $1 AND date = $2 AND status != 'cancelled'
			  AND start_time < $3 AND $4 < end_time
		`, professionalID, date, end, start).Scan(&conflicts)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			continue
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO appointments (patient_id, professional_id, date, start_time, end_time, duration, type, specialty, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			patientID,
			professionalID,
			date,
			start,
			end,
			duration,
			types[gofakeit.Number(0, len(types)-1)],
			specialties[gofakeit.Number(0, len(specialties)-1)],
			statuses[gofakeit.Number(0, len(statuses)-1)],
		)
		if err != nil {
			return err
		}
		created++
	}

	log.Printf("%d agendamentos criados", created)
	return nil
}

// randomCPF gera um CPF válido, com dígitos verificadores corretos.
func randomCPF() string {
	digits := make([]int, 11)
	for i := 0; i < 9; i++ {
		digits[i] = gofakeit.Number(0, 9)
	}

	for _, position := range []int{9, 10} {
		sum := 0
		for i := 0; i < position; i++ {
			sum += digits[i] * (position + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		digits[position] = check
	}

	out := ""
	for _, d := range digits {
		out += fmt.Sprintf("%d", d)
	}
	return validator.FormatCPF(out)
}
