package calendar

import (
	"testing"

	"clinica/internal/domain"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"contido", "09:00", "10:00", "09:15", "09:45", true},
		{"sobreposição parcial", "09:00", "10:00", "09:30", "10:30", true},
		{"mesmo intervalo", "09:00", "10:00", "09:00", "10:00", true},
		{"um minuto em comum", "09:00", "10:00", "09:59", "10:59", true},
		{"consecutivos não colidem", "09:00", "10:00", "10:00", "11:00", false},
		{"antes", "09:00", "10:00", "07:00", "08:00", false},
		{"depois", "09:00", "10:00", "11:00", "12:00", false},
	}

	for _, tt := range tests {
		if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Errorf("%s: Overlaps = %v, esperado %v", tt.name, got, tt.want)
		}
	}
}

func TestHasConflict(t *testing.T) {
	existing := []domain.Appointment{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.AppointmentStatusScheduled},
		{ID: 2, StartTime: "14:00", EndTime: "15:00", Status: domain.AppointmentStatusCancelled},
	}

	if !HasConflict(existing, "09:30", "10:30", 0) {
		t.Errorf("intervalo sobreposto deveria conflitar")
	}
	if HasConflict(existing, "10:00", "11:00", 0) {
		t.Errorf("horários consecutivos não deveriam conflitar")
	}
	// Agendamento cancelado nunca bloqueia o horário.
	if HasConflict(existing, "14:00", "15:00", 0) {
		t.Errorf("agendamento cancelado não deveria bloquear")
	}
	// O agendamento em edição não bloqueia o próprio horário.
	if HasConflict(existing, "09:00", "10:00", 1) {
		t.Errorf("agendamento excluído da verificação não deveria bloquear")
	}
	if !HasConflict(existing, "08:30", "09:01", 0) {
		t.Errorf("um minuto de interseção já conflita")
	}
}

func TestParseTimeAndDerivedEnd(t *testing.T) {
	if _, err := ParseTime("25:00"); err == nil {
		t.Errorf("horário inválido deveria falhar")
	}
	if _, err := ParseTime("9h30"); err == nil {
		t.Errorf("formato inválido deveria falhar")
	}

	start, err := ParseTime("09:30")
	if err != nil {
		t.Fatalf("horário válido rejeitado: %v", err)
	}
	if got := AddMinutes(start, 90); got != "11:00" {
		t.Errorf("AddMinutes(09:30, 90) = %s, esperado 11:00", got)
	}
	if got := MinutesOf("09:30"); got != 570 {
		t.Errorf("MinutesOf(09:30) = %d, esperado 570", got)
	}
}

func TestEndOfDayBoundary(t *testing.T) {
	// O término à meia-noite é 24:00, nunca 00:00: o intervalo precisa
	// continuar comparável como string.
	if got := AddMinutes("23:00", 60); got != "24:00" {
		t.Errorf("AddMinutes(23:00, 60) = %s, esperado 24:00", got)
	}

	if !FitsInDay("23:00", 60) {
		t.Errorf("23:00+60 termina exatamente à meia-noite e cabe no dia")
	}
	if FitsInDay("23:30", 60) {
		t.Errorf("23:30+60 atravessa a meia-noite e não cabe no dia")
	}

	// Conflito no fim da noite: 23:00-24:00 bloqueia 23:30-24:00.
	existing := []domain.Appointment{
		{ID: 1, StartTime: "23:00", EndTime: "24:00", Status: domain.AppointmentStatusScheduled},
	}
	if !HasConflict(existing, "23:30", "24:00", 0) {
		t.Errorf("intervalo sobreposto no fim do dia deveria conflitar")
	}
	if HasConflict(existing, "22:00", "23:00", 0) {
		t.Errorf("intervalo que termina no início do outro não deveria conflitar")
	}
}
