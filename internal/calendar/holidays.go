package calendar

import (
	"sync"
	"time"
)

// DateLayout é o formato de data usado em todo o sistema.
const DateLayout = "2006-01-02"

// Easter calcula o domingo de Páscoa de um ano pelo algoritmo
// eclesiástico de Gauss/Meeus.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// HolidaySet mapeia datas (DateLayout) para o nome do feriado.
type HolidaySet map[string]string

func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[date.Format(DateLayout)]
	return ok
}

var (
	holidayCacheMu sync.Mutex
	holidayCache   = map[int]HolidaySet{}
)

// HolidaysForYear devolve os feriados nacionais do ano: oito datas fixas e
// três derivadas da Páscoa (Carnaval, Sexta-feira Santa e Corpus Christi).
// O resultado é função pura do ano, então é memoizado por ano.
func HolidaysForYear(year int) HolidaySet {
	holidayCacheMu.Lock()
	defer holidayCacheMu.Unlock()

	if set, ok := holidayCache[year]; ok {
		return set
	}

	set := HolidaySet{}
	fixed := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "Confraternização Universal"},
		{time.April, 21, "Tiradentes"},
		{time.May, 1, "Dia do Trabalho"},
		{time.September, 7, "Independência do Brasil"},
		{time.October, 12, "Nossa Senhora Aparecida"},
		{time.November, 2, "Finados"},
		{time.November, 15, "Proclamação da República"},
		{time.December, 25, "Natal"},
	}
	for _, f := range fixed {
		date := time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC)
		set[date.Format(DateLayout)] = f.name
	}

	easter := Easter(year)
	set[easter.AddDate(0, 0, -47).Format(DateLayout)] = "Carnaval"
	set[easter.AddDate(0, 0, -2).Format(DateLayout)] = "Sexta-feira Santa"
	set[easter.AddDate(0, 0, 60).Format(DateLayout)] = "Corpus Christi"

	holidayCache[year] = set
	return set
}
