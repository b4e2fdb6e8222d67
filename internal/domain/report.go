package domain

import (
	"time"
)

type ProfessionalCount struct {
	ProfessionalID   int64  `json:"professional_id"`
	ProfessionalName string `json:"professional_name"`
	Total            int    `json:"total"`
}

// AppointmentReport agrega os agendamentos de um período para a tela de
// relatórios e para a exportação.
type AppointmentReport struct {
	From           time.Time                 `json:"from"`
	To             time.Time                 `json:"to"`
	Total          int                       `json:"total"`
	ByStatus       map[AppointmentStatus]int `json:"by_status"`
	ByType         map[AppointmentType]int   `json:"by_type"`
	ByProfessional []ProfessionalCount       `json:"by_professional"`
	GeneratedAt    time.Time                 `json:"generated_at"`
}

type ReportExport struct {
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	GeneratedAt time.Time `json:"generated_at"`
}
