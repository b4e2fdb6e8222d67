package calendar

import (
	"sort"
	"time"

	"clinica/internal/domain"
)

// Index agrupa agendamentos por data para consulta O(1) por célula do
// calendário. É reconstruído por completo a cada mudança na lista; o volume
// de um mês de clínica não justifica atualização incremental.
type Index map[string][]domain.Appointment

func IndexByDate(appointments []domain.Appointment) Index {
	idx := Index{}
	for _, appt := range appointments {
		key := appt.Date.Format(DateLayout)
		idx[key] = append(idx[key], appt)
	}
	for key := range idx {
		list := idx[key]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].StartTime < list[j].StartTime
		})
		idx[key] = list
	}
	return idx
}

// On devolve os agendamentos da data, ordenados por horário de início.
func (idx Index) On(date time.Time) []domain.Appointment {
	return idx[date.Format(DateLayout)]
}
