package calendar

import (
	"testing"
	"time"

	"clinica/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthShape(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		weeks   int
		leading int
		days    int
	}{
		// Fev/2024 começa numa quinta: 4 dias do mês anterior, 29 dias.
		{2024, time.February, 5, 4, 29},
		// Set/2024 começa num domingo: sem dias do mês anterior.
		{2024, time.September, 5, 0, 30},
		// Mar/2025 começa num sábado: 6 dias do mês anterior.
		{2025, time.March, 6, 6, 31},
		{2024, time.December, 5, 0, 31},
	}

	for _, tt := range tests {
		m := BuildMonth(tt.year, tt.month, date(2020, time.January, 1), Index{})
		if len(m.Weeks) != tt.weeks {
			t.Errorf("%s/%d: esperado %d semanas, obtido %d", tt.month, tt.year, tt.weeks, len(m.Weeks))
		}

		var leading, current, trailing int
		for _, week := range m.Weeks {
			if len(week) != 7 {
				t.Fatalf("%s/%d: semana com %d células", tt.month, tt.year, len(week))
			}
			for _, cell := range week {
				switch {
				case cell == nil:
					trailing++
				case cell.IsCurrentMonth:
					current++
				default:
					leading++
				}
			}
		}

		if leading != tt.leading {
			t.Errorf("%s/%d: esperado %d células do mês anterior, obtido %d", tt.month, tt.year, tt.leading, leading)
		}
		if current != tt.days {
			t.Errorf("%s/%d: esperado %d dias, obtido %d", tt.month, tt.year, tt.days, current)
		}
		if leading+current+trailing != tt.weeks*7 {
			t.Errorf("%s/%d: grade não é múltipla de 7", tt.month, tt.year)
		}
	}
}

func TestBuildMonthDaysInOrder(t *testing.T) {
	m := BuildMonth(2024, time.March, date(2020, time.January, 1), Index{})

	expected := 1
	for _, week := range m.Weeks {
		for _, cell := range week {
			if cell == nil || !cell.IsCurrentMonth {
				continue
			}
			if cell.Date.Day() != expected {
				t.Fatalf("dia fora de ordem: esperado %d, obtido %d", expected, cell.Date.Day())
			}
			if cell.Date.Month() != time.March {
				t.Fatalf("célula do mês corrente com mês errado: %s", cell.Date.Format(DateLayout))
			}
			expected++
		}
	}
	if expected != 32 {
		t.Fatalf("março deveria ter 31 dias na grade, obtido %d", expected-1)
	}
}

func TestBuildMonthNeverShowsNextMonth(t *testing.T) {
	m := BuildMonth(2024, time.April, date(2020, time.January, 1), Index{})

	for _, week := range m.Weeks {
		for _, cell := range week {
			if cell == nil {
				continue
			}
			if cell.Date.After(date(2024, time.April, 30)) {
				t.Fatalf("dia do mês seguinte materializado: %s", cell.Date.Format(DateLayout))
			}
		}
	}

	// As células iniciais são dias reais do mês anterior.
	first := m.Weeks[0][0]
	if first == nil || first.IsCurrentMonth || first.Date.Month() != time.March {
		t.Fatalf("primeira célula deveria ser dia de março")
	}
}

func TestBuildMonthFlags(t *testing.T) {
	today := date(2024, time.November, 15)
	appointments := []domain.Appointment{
		{ID: 1, Date: date(2024, time.November, 15), StartTime: "09:00", EndTime: "10:00"},
	}
	m := BuildMonth(2024, time.November, today, IndexByDate(appointments))

	var found *Day
	for _, week := range m.Weeks {
		for _, cell := range week {
			if cell != nil && cell.IsCurrentMonth && cell.Date.Day() == 15 {
				found = cell
			}
		}
	}

	if found == nil {
		t.Fatal("dia 15 ausente da grade")
	}
	if !found.IsToday {
		t.Errorf("15/11/2024 deveria estar marcado como hoje")
	}
	// 15 de novembro é a Proclamação da República.
	if !found.IsHoliday {
		t.Errorf("15/11/2024 deveria estar marcado como feriado")
	}
	if len(found.Appointments) != 1 || found.Appointments[0].ID != 1 {
		t.Errorf("agendamentos do dia não anexados à célula")
	}
}

func TestFirstVisibleDate(t *testing.T) {
	// Fev/2024 começa quinta: grade abre no domingo 28/01.
	got := FirstVisibleDate(2024, time.February)
	if !got.Equal(date(2024, time.January, 28)) {
		t.Errorf("esperado 2024-01-28, obtido %s", got.Format(DateLayout))
	}

	// Set/2024 começa domingo: grade abre no próprio dia 1.
	got = FirstVisibleDate(2024, time.September)
	if !got.Equal(date(2024, time.September, 1)) {
		t.Errorf("esperado 2024-09-01, obtido %s", got.Format(DateLayout))
	}
}
