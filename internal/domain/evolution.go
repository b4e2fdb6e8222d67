package domain

import (
	"time"
)

// Evolution é uma nota de evolução clínica do paciente, escrita por um
// profissional, normalmente vinculada a um atendimento.
type Evolution struct {
	ID               int64     `json:"id"`
	PatientID        int64     `json:"patient_id"`
	ProfessionalID   int64     `json:"professional_id"`
	AppointmentID    *int64    `json:"appointment_id,omitempty"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	ProfessionalName string    `json:"professional_name,omitempty"`
}

type CreateEvolutionDTO struct {
	PatientID     int64  `json:"patient_id" binding:"required"`
	AppointmentID *int64 `json:"appointment_id"`
	Content       string `json:"content" binding:"required"`
}

type UpdateEvolutionDTO struct {
	Content string `json:"content" binding:"required"`
}
