package queries

import "strings"

// period is the optional calendar window of a report as the caller sent it.
// Empty strings mean "not given".
type period struct {
	from *string
	to   *string
}

func newPeriod(from, to string) period {
	return period{from: optional(from), to: optional(to)}
}

func (p period) From() *string {
	return p.from
}

func (p period) To() *string {
	return p.to
}

// key identifies the raw window inside a cache key.
func (p period) key() string {
	return value(p.from) + ".." + value(p.to)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
