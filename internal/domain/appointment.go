package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeReturn       AppointmentType = "return"
	AppointmentTypeEvaluation   AppointmentType = "evaluation"
	AppointmentTypeSession      AppointmentType = "session"
	AppointmentTypeEmergency    AppointmentType = "emergency"
	AppointmentTypeOther        AppointmentType = "other"
)

// Durações de consulta aceitas, em minutos.
var ValidDurations = []int{30, 45, 60, 90, 120}

func IsValidDuration(minutes int) bool {
	for _, d := range ValidDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID               int64             `json:"id"`
	PatientID        int64             `json:"patient_id"`
	ProfessionalID   int64             `json:"professional_id"`
	Date             time.Time         `json:"date"`
	StartTime        string            `json:"start_time"`
	EndTime          string            `json:"end_time"`
	Duration         int               `json:"duration"`
	Type             AppointmentType   `json:"type"`
	Specialty        string            `json:"specialty,omitempty"`
	Status           AppointmentStatus `json:"status"`
	Notes            string            `json:"notes,omitempty"`
	CancelReason     string            `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	PatientName      string            `json:"patient_name,omitempty"`
	ProfessionalName string            `json:"professional_name,omitempty"`
}

type CreateAppointmentDTO struct {
	PatientID      int64           `json:"patient_id" binding:"required"`
	ProfessionalID int64           `json:"professional_id" binding:"required"`
	Date           string          `json:"date" binding:"required"`
	StartTime      string          `json:"start_time" binding:"required"`
	Duration       int             `json:"duration" binding:"required"`
	Type           AppointmentType `json:"type" binding:"required,oneof=consultation return evaluation session emergency other"`
	Specialty      string          `json:"specialty"`
	Notes          string          `json:"notes"`
}

type UpdateAppointmentDTO struct {
	Date      *string          `json:"date"`
	StartTime *string          `json:"start_time"`
	Duration  *int             `json:"duration"`
	Type      *AppointmentType `json:"type" binding:"omitempty,oneof=consultation return evaluation session emergency other"`
	Specialty *string          `json:"specialty"`
	Notes     *string          `json:"notes"`
}

type CancelAppointmentDTO struct {
	Reason string `json:"reason" binding:"required"`
}

type AppointmentFilter struct {
	PatientID      *int64             `json:"patient_id"`
	ProfessionalID *int64             `json:"professional_id"`
	Status         *AppointmentStatus `json:"status"`
	ExcludeStatus  *AppointmentStatus `json:"exclude_status"`
	StartDate      *time.Time         `json:"start_date"`
	EndDate        *time.Time         `json:"end_date"`
	Limit          int                `json:"limit"`
	Offset         int                `json:"offset"`
}

type AppointmentAction string

const (
	ActionConfirm  AppointmentAction = "confirm"
	ActionCancel   AppointmentAction = "cancel"
	ActionComplete AppointmentAction = "complete"
	ActionNoShow   AppointmentAction = "no_show"
	ActionDelete   AppointmentAction = "delete"
)

// transitions descreve o ciclo de vida do agendamento. O cancelamento é
// aceito a partir de qualquer status não cancelado; as demais transições
// seguem a tabela estrita.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCancelled, AppointmentStatusCompleted, AppointmentStatusNoShow},
	AppointmentStatusCompleted: {AppointmentStatusCancelled},
	AppointmentStatusNoShow:    {AppointmentStatusCancelled},
	AppointmentStatusCancelled: {},
}

func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedActions devolve as ações oferecidas ao usuário para um agendamento
// no status atual. A exclusão é sempre oferecida: é uma remoção destrutiva,
// não uma transição de status.
func AllowedActions(status AppointmentStatus) []AppointmentAction {
	actions := make([]AppointmentAction, 0, 4)
	if status == AppointmentStatusScheduled {
		actions = append(actions, ActionConfirm)
	}
	if status == AppointmentStatusConfirmed {
		actions = append(actions, ActionComplete, ActionNoShow)
	}
	if status != AppointmentStatusCancelled {
		actions = append(actions, ActionCancel)
	}
	actions = append(actions, ActionDelete)
	return actions
}

// Availability é o resultado da verificação de disponibilidade. Unknown
// indica que a verificação não pôde ser concluída (falha de infraestrutura),
// distinto de "verificado e livre".
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityUnknown     Availability = "unknown"
)
