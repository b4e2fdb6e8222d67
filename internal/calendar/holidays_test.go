package calendar

import (
	"testing"
	"time"
)

func TestEasterKnownYears(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2008, time.March, 23},
		{2023, time.April, 9},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2030, time.April, 21},
	}

	for _, tt := range tests {
		got := Easter(tt.year)
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("Easter(%d) = %s, esperado %s %d", tt.year, got.Format(DateLayout), tt.month, tt.day)
		}
	}
}

func TestHolidaysForYearMoveable(t *testing.T) {
	// Páscoa 2024 = 31/03: Carnaval = -47d, Sexta Santa = -2d, Corpus = +60d.
	set := HolidaysForYear(2024)

	moveable := map[string]string{
		"2024-02-13": "Carnaval",
		"2024-03-29": "Sexta-feira Santa",
		"2024-05-30": "Corpus Christi",
	}
	for date, name := range moveable {
		if set[date] != name {
			t.Errorf("esperado %q em %s, obtido %q", name, date, set[date])
		}
	}
}

func TestHolidaysForYearFixed(t *testing.T) {
	set := HolidaysForYear(2025)

	fixed := []string{
		"2025-01-01", "2025-04-21", "2025-05-01", "2025-09-07",
		"2025-10-12", "2025-11-02", "2025-11-15", "2025-12-25",
	}
	for _, date := range fixed {
		if _, ok := set[date]; !ok {
			t.Errorf("feriado fixo %s ausente", date)
		}
	}
}

func TestHolidaysForYearCount(t *testing.T) {
	// 8 fixos + 3 móveis. Em anos raros uma data móvel coincide com uma
	// fixa (Sexta Santa de 2000 caiu em 21/04) e o conjunto encolhe.
	for _, year := range []int{2023, 2024, 2025, 2026} {
		set := HolidaysForYear(year)
		if len(set) != 11 {
			t.Errorf("ano %d: esperado 11 feriados, obtido %d", year, len(set))
		}
		for date := range set {
			parsed, err := time.Parse(DateLayout, date)
			if err != nil {
				t.Fatalf("data inválida no conjunto: %s", date)
			}
			if parsed.Year() != year {
				t.Errorf("feriado %s fora do ano %d", date, year)
			}
		}
	}

	set2000 := HolidaysForYear(2000)
	if len(set2000) != 10 {
		t.Errorf("em 2000 a Sexta Santa coincide com Tiradentes: esperado 10, obtido %d", len(set2000))
	}
}

func TestHolidaysForYearCached(t *testing.T) {
	a := HolidaysForYear(2031)
	b := HolidaysForYear(2031)
	if len(a) != len(b) {
		t.Fatalf("resultados divergentes para o mesmo ano")
	}
	if !a.Contains(time.Date(2031, time.December, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Contains deveria reconhecer o Natal")
	}
}
