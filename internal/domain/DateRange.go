package domain

import (
	"fmt"
	"time"
)

// DateRange é um intervalo de datas (somente data, sem hora) usado nas
// consultas de insights. As pontas são inclusivas.
type DateRange struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
	}
}

// LastNDays cria o intervalo dos últimos n dias terminando em now
func LastNDays(now time.Time, n int) DateRange {
	return NewDateRange(now.AddDate(0, 0, -n), now)
}

// Today cria o intervalo de um único dia
func Today(now time.Time) DateRange {
	return NewDateRange(now, now)
}

// ThisMonth cria o intervalo do primeiro dia do mês até now
func ThisMonth(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return NewDateRange(start, now)
}

// LastMonth cria o intervalo do mês calendário anterior completo
func LastMonth(now time.Time) DateRange {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastOfPrev := firstOfThisMonth.AddDate(0, 0, -1)
	firstOfPrev := time.Date(lastOfPrev.Year(), lastOfPrev.Month(), 1, 0, 0, 0, 0, now.Location())
	return NewDateRange(firstOfPrev, lastOfPrev)
}

// YearToDate cria o intervalo de 1º de janeiro até now
func YearToDate(now time.Time) DateRange {
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	return NewDateRange(start, now)
}

// ComparisonPeriod devolve o período de mesma duração imediatamente
// anterior a este intervalo
func (r DateRange) ComparisonPeriod() DateRange {
	start, errStart := time.Parse(time.DateOnly, r.StartDate)
	end, errEnd := time.Parse(time.DateOnly, r.EndDate)
	if errStart != nil || errEnd != nil {
		return r
	}

	duration := int(end.Sub(start).Hours() / 24)
	compEnd := start.AddDate(0, 0, -1)
	compStart := compEnd.AddDate(0, 0, -duration)

	return NewDateRange(compStart, compEnd)
}

// DurationDays devolve o número de dias do intervalo, pontas inclusivas
func (r DateRange) DurationDays() int {
	start, errStart := time.Parse(time.DateOnly, r.StartDate)
	end, errEnd := time.Parse(time.DateOnly, r.EndDate)
	if errStart != nil || errEnd != nil {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}

// ToMetaTimeRange serializa no formato time_range da Graph API
func (r DateRange) ToMetaTimeRange() string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", r.StartDate, r.EndDate)
}
