package services

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/pkg/errs"
)

// DateLayout is the calendar date format accepted by the reports.
const DateLayout = "2006-01-02"

// legacyDateLayout is the day-first format older clients still send.
const legacyDateLayout = "02/01/2006"

// TimeBorders is an inclusive reporting window.
type TimeBorders struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies inside the window, borders included.
func (b TimeBorders) Contains(t time.Time) bool {
	return !t.Before(b.From) && !t.After(b.To)
}

// ResolveTimeBorders builds the reporting window from optional calendar dates.
//
// A missing from falls back to earliest, the timestamp of the first relevant
// order, or to now when there is none. A missing to falls back to now.
// Supplied dates are read in now's location; from starts at 00:00:00 and to
// ends at 23:59:59.999 of its day. A malformed date or a supplied from after
// to yields an InvalidDateRangeError. When from is absent and its fallback
// lands after to, the window collapses to the single instant to, which
// matches no archived order.
func ResolveTimeBorders(from, to *string, earliest *time.Time, now time.Time) (TimeBorders, error) {
	fromRaw, toRaw := deref(from), deref(to)
	loc := now.Location()

	var borders TimeBorders

	switch {
	case fromRaw != "":
		day, err := parseDate(fromRaw, loc)
		if err != nil {
			return TimeBorders{}, errs.NewInvalidDateRangeErrorWithCause(fromRaw, toRaw, err)
		}
		borders.From = day
	case earliest != nil:
		borders.From = earliest.In(loc)
	default:
		borders.From = now
	}

	if toRaw != "" {
		day, err := parseDate(toRaw, loc)
		if err != nil {
			return TimeBorders{}, errs.NewInvalidDateRangeErrorWithCause(fromRaw, toRaw, err)
		}
		borders.To = day.AddDate(0, 0, 1).Add(-time.Millisecond)
	} else {
		borders.To = now
	}

	if borders.From.After(borders.To) {
		if fromRaw == "" {
			borders.From = borders.To
			return borders, nil
		}
		return TimeBorders{}, errs.NewInvalidDateRangeErrorWithCause(
			borders.From.Format(time.RFC3339), borders.To.Format(time.RFC3339),
			errors.New("from is after to"),
		)
	}

	return borders, nil
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	layout := DateLayout
	if strings.Contains(raw, "/") {
		layout = legacyDateLayout
	}
	return time.ParseInLocation(layout, raw, loc)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
