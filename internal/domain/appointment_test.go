package domain

import (
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{AppointmentStatusScheduled, AppointmentStatusNoShow, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusNoShow, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, true},
		{AppointmentStatusNoShow, AppointmentStatusCancelled, true},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, esperado %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func hasAction(actions []AppointmentAction, target AppointmentAction) bool {
	for _, a := range actions {
		if a == target {
			return true
		}
	}
	return false
}

func TestAllowedActionsConfirmOnlyWhenScheduled(t *testing.T) {
	if !hasAction(AllowedActions(AppointmentStatusScheduled), ActionConfirm) {
		t.Errorf("confirmar deveria ser oferecido para agendamento em scheduled")
	}

	for _, status := range []AppointmentStatus{
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	} {
		if hasAction(AllowedActions(status), ActionConfirm) {
			t.Errorf("confirmar não deveria ser oferecido no status %s", status)
		}
	}
}

func TestAllowedActionsCancelAndDelete(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusNoShow,
	} {
		if !hasAction(AllowedActions(status), ActionCancel) {
			t.Errorf("cancelar deveria ser oferecido no status %s", status)
		}
	}
	if hasAction(AllowedActions(AppointmentStatusCancelled), ActionCancel) {
		t.Errorf("cancelar não deveria ser oferecido para agendamento já cancelado")
	}

	// Excluir é uma ação destrutiva à parte, sempre disponível.
	for _, status := range []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	} {
		if !hasAction(AllowedActions(status), ActionDelete) {
			t.Errorf("excluir deveria ser sempre oferecido (status %s)", status)
		}
	}
}

func TestAllowedActionsTerminalSpecifics(t *testing.T) {
	confirmed := AllowedActions(AppointmentStatusConfirmed)
	if !hasAction(confirmed, ActionComplete) || !hasAction(confirmed, ActionNoShow) {
		t.Errorf("concluir e falta deveriam ser oferecidos para agendamento confirmado")
	}

	scheduled := AllowedActions(AppointmentStatusScheduled)
	if hasAction(scheduled, ActionComplete) || hasAction(scheduled, ActionNoShow) {
		t.Errorf("concluir e falta não deveriam ser oferecidos antes da confirmação")
	}
}

func TestIsValidDuration(t *testing.T) {
	for _, d := range ValidDurations {
		if !IsValidDuration(d) {
			t.Errorf("duração %d deveria ser válida", d)
		}
	}
	for _, d := range []int{0, 15, 50, 121, -30} {
		if IsValidDuration(d) {
			t.Errorf("duração %d não deveria ser válida", d)
		}
	}
}
