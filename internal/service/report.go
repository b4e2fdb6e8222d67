package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"clinica/internal/calendar"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/storage"
)

const presignedURLExpiry = 1 * time.Hour

type ReportServiceImpl struct {
	repo    repository.AppointmentRepository
	storage storage.FileStorage
	logger  *zap.Logger
}

func NewReportService(
	repo repository.AppointmentRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		repo:    repo,
		storage: fileStorage,
		logger:  logger,
	}
}

func (s *ReportServiceImpl) Appointments(ctx context.Context, from, to time.Time, professionalID *int64) (*domain.AppointmentReport, error) {
	appointments, err := s.load(ctx, from, to, professionalID)
	if err != nil {
		return nil, err
	}

	report := &domain.AppointmentReport{
		From:        from,
		To:          to,
		Total:       len(appointments),
		ByStatus:    map[domain.AppointmentStatus]int{},
		ByType:      map[domain.AppointmentType]int{},
		GeneratedAt: time.Now().UTC(),
	}

	byProfessional := map[int64]*domain.ProfessionalCount{}
	for _, appt := range appointments {
		report.ByStatus[appt.Status]++
		report.ByType[appt.Type]++

		count, ok := byProfessional[appt.ProfessionalID]
		if !ok {
			count = &domain.ProfessionalCount{
				ProfessionalID:   appt.ProfessionalID,
				ProfessionalName: appt.ProfessionalName,
			}
			byProfessional[appt.ProfessionalID] = count
		}
		count.Total++
	}

	report.ByProfessional = make([]domain.ProfessionalCount, 0, len(byProfessional))
	for _, count := range byProfessional {
		report.ByProfessional = append(report.ByProfessional, *count)
	}
	sort.Slice(report.ByProfessional, func(i, j int) bool {
		if report.ByProfessional[i].Total != report.ByProfessional[j].Total {
			return report.ByProfessional[i].Total > report.ByProfessional[j].Total
		}
		return report.ByProfessional[i].ProfessionalName < report.ByProfessional[j].ProfessionalName
	})

	return report, nil
}

// ExportAppointmentsCSV gera o CSV do período e o publica no armazenamento
// de objetos, devolvendo uma URL assinada temporária.
func (s *ReportServiceImpl) ExportAppointmentsCSV(ctx context.Context, from, to time.Time, professionalID *int64) (*domain.ReportExport, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageDisabled
	}

	appointments, err := s.load(ctx, from, to, professionalID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderCSV(appointments)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("agendamentos_%s_%s.csv",
		from.Format(calendar.DateLayout),
		to.Format(calendar.DateLayout),
	)

	objectName, err := s.storage.UploadFile(ctx, data, filename, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("erro ao publicar relatório: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, objectName, presignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar URL do relatório: %w", err)
	}

	s.logger.Info("relatório exportado",
		zap.String("object", objectName),
		zap.Int("appointments", len(appointments)),
	)

	return &domain.ReportExport{
		URL:         url,
		ContentType: "text/csv",
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *ReportServiceImpl) load(ctx context.Context, from, to time.Time, professionalID *int64) ([]domain.Appointment, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidDate
	}

	filter := domain.AppointmentFilter{
		ProfessionalID: professionalID,
		StartDate:      &from,
		EndDate:        &to,
		Limit:          10000,
	}

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar agendamentos do período: %w", err)
	}
	return appointments, nil
}

func (s *ReportServiceImpl) renderCSV(appointments []domain.Appointment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "data", "inicio", "fim", "duracao", "tipo", "status", "paciente", "profissional", "especialidade"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
	}

	for _, appt := range appointments {
		record := []string{
			strconv.FormatInt(appt.ID, 10),
			appt.Date.Format(calendar.DateLayout),
			appt.StartTime,
			appt.EndTime,
			strconv.Itoa(appt.Duration),
			string(appt.Type),
			string(appt.Status),
			appt.PatientName,
			appt.ProfessionalName,
			appt.Specialty,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
	}

	return buf.Bytes(), nil
}
