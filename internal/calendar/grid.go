package calendar

import (
	"time"

	"clinica/internal/domain"
)

// Day é uma célula da grade mensal. Células de preenchimento ao final da
// última semana são representadas por ponteiros nulos na grade: dias do mês
// seguinte nunca são materializados.
type Day struct {
	Date           time.Time            `json:"date"`
	IsCurrentMonth bool                 `json:"is_current_month"`
	IsToday        bool                 `json:"is_today"`
	IsHoliday      bool                 `json:"is_holiday"`
	HolidayName    string               `json:"holiday_name,omitempty"`
	Appointments   []domain.Appointment `json:"appointments"`
}

// Month é a grade de um mês: semanas de sete células começando no domingo.
// As células iniciais são dias reais do mês anterior; as finais, nulas.
type Month struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Weeks [][]*Day `json:"weeks"`
}

// FirstVisibleDate devolve o primeiro dia exibido na grade do mês: o
// domingo anterior ou igual ao dia 1. Meses são sempre 1-based.
func FirstVisibleDate(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// BuildMonth monta a grade do mês. O índice fornece os agendamentos de cada
// dia já ordenados; today marca a célula do dia corrente por igualdade
// exata de data.
func BuildMonth(year int, month time.Month, today time.Time, idx Index) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	todayKey := today.Format(DateLayout)

	var cells []*Day

	// Dias do mês anterior até completar a primeira semana.
	for cursor := FirstVisibleDate(year, month); cursor.Before(first); cursor = cursor.AddDate(0, 0, 1) {
		cells = append(cells, newDay(cursor, false, todayKey, idx))
	}

	for cursor := first; cursor.Month() == month; cursor = cursor.AddDate(0, 0, 1) {
		cells = append(cells, newDay(cursor, true, todayKey, idx))
	}

	// Preenchimento nulo até fechar a última semana.
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return Month{
		Year:  year,
		Month: int(month),
		Weeks: weeks,
	}
}

func newDay(date time.Time, currentMonth bool, todayKey string, idx Index) *Day {
	holidays := HolidaysForYear(date.Year())
	key := date.Format(DateLayout)
	name, isHoliday := holidays[key]

	appointments := idx.On(date)
	if appointments == nil {
		appointments = []domain.Appointment{}
	}

	return &Day{
		Date:           date,
		IsCurrentMonth: currentMonth,
		IsToday:        key == todayKey,
		IsHoliday:      isHoliday,
		HolidayName:    name,
		Appointments:   appointments,
	}
}
