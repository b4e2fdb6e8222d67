package calendar

import (
	"testing"
	"time"

	"clinica/internal/domain"
)

func TestIndexByDate(t *testing.T) {
	day1 := date(2024, time.March, 15)
	day2 := date(2024, time.March, 16)

	list := []domain.Appointment{
		{ID: 1, Date: day1, StartTime: "14:00", EndTime: "15:00"},
		{ID: 2, Date: day2, StartTime: "08:00", EndTime: "08:30"},
		{ID: 3, Date: day1, StartTime: "09:00", EndTime: "10:00"},
		{ID: 4, Date: day1, StartTime: "11:30", EndTime: "12:00"},
	}

	idx := IndexByDate(list)

	got := idx.On(day1)
	if len(got) != 3 {
		t.Fatalf("esperado 3 agendamentos no dia 15, obtido %d", len(got))
	}
	// Ordenados por horário de início.
	wantOrder := []int64{3, 4, 1}
	for i, appt := range got {
		if appt.ID != wantOrder[i] {
			t.Errorf("posição %d: esperado id %d, obtido %d", i, wantOrder[i], appt.ID)
		}
	}

	if len(idx.On(day2)) != 1 {
		t.Errorf("esperado 1 agendamento no dia 16")
	}
	if got := idx.On(date(2024, time.March, 17)); len(got) != 0 {
		t.Errorf("dia sem agendamentos deveria devolver lista vazia, obtido %d", len(got))
	}

	// A união dos grupos preserva a lista original: nada some, nada duplica.
	total := 0
	seen := map[int64]bool{}
	for key := range idx {
		day, err := time.Parse(DateLayout, key)
		if err != nil {
			t.Fatalf("chave de índice inválida: %s", key)
		}
		for _, appt := range idx.On(day) {
			total++
			if seen[appt.ID] {
				t.Errorf("agendamento %d duplicado no índice", appt.ID)
			}
			seen[appt.ID] = true
		}
	}
	if total != len(list) {
		t.Errorf("esperado %d agendamentos no índice, obtido %d", len(list), total)
	}
}
