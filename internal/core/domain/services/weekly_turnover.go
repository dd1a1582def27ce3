package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeekDays is the length of the trailing turnover window.
const WeekDays = 7

// ArchivedTotal is the total of one archived order and when it was archived.
type ArchivedTotal struct {
	UpdatedOn time.Time
	Total     decimal.Decimal
}

// DayTurnover is the turnover of one calendar day.
type DayTurnover struct {
	Day   time.Time       `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// WeekWindow returns the borders of the trailing week ending today: from the
// start of today minus six days to the last millisecond of today.
func WeekWindow(now time.Time) TimeBorders {
	today := startOfDay(now)
	return TimeBorders{
		From: today.AddDate(0, 0, -(WeekDays - 1)),
		To:   today.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// WeeklyTurnover buckets totals by the day they were archived and returns
// exactly seven entries, oldest first, with empty days set to zero.
// Totals outside the window are ignored.
func WeeklyTurnover(totals []ArchivedTotal, now time.Time) []DayTurnover {
	window := WeekWindow(now)

	days := make([]DayTurnover, WeekDays)
	for i := range days {
		days[i] = DayTurnover{Day: window.From.AddDate(0, 0, i), Total: decimal.Zero}
	}

	for _, t := range totals {
		updated := t.UpdatedOn.In(now.Location())
		if !window.Contains(updated) {
			continue
		}
		i := daysBetween(window.From, startOfDay(updated))
		days[i].Total = days[i].Total.Add(t.Total)
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, so DST shifts do not skew the index.
func daysBetween(from, to time.Time) int {
	n := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
