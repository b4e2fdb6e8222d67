package calendar

import (
	"fmt"
	"time"

	"clinica/internal/domain"
)

// TimeLayout é o formato de horário (24h) usado em todo o sistema.
const TimeLayout = "15:04"

// ParseTime valida e normaliza um horário HH:MM.
func ParseTime(value string) (string, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return "", domain.ErrInvalidTime
	}
	return t.Format(TimeLayout), nil
}

// AddMinutes soma minutos a um horário HH:MM já normalizado. A soma nunca
// dá a volta no dia: um atendimento que termina à meia-noite vira "24:00",
// preservando a comparação lexicográfica dos intervalos.
func AddMinutes(value string, minutes int) string {
	total := MinutesOf(value) + minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FitsInDay informa se o intervalo [start, start+duration) cabe no dia.
// Agendamentos nunca atravessam a meia-noite.
func FitsInDay(start string, duration int) bool {
	return MinutesOf(start)+duration <= 24*60
}

// MinutesOf converte HH:MM em minutos desde a meia-noite.
func MinutesOf(value string) int {
	var h, m int
	fmt.Sscanf(value, "%d:%d", &h, &m)
	return h*60 + m
}

// Overlaps aplica o teste de interseção de intervalos semiabertos
// [aStart, aEnd) e [bStart, bEnd). Horários normalizados em HH:MM comparam
// corretamente como strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasConflict verifica se o intervalo candidato [start, end) colide com
// algum agendamento existente não cancelado. O agendamento em edição
// (excludeID) nunca bloqueia o próprio horário.
func HasConflict(existing []domain.Appointment, start, end string, excludeID int64) bool {
	for _, appt := range existing {
		if appt.Status == domain.AppointmentStatusCancelled {
			continue
		}
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}
		if Overlaps(appt.StartTime, appt.EndTime, start, end) {
			return true
		}
	}
	return false
}
