package utils

import (
	"strings"
	"time"
)

type DateRange string

const (
	RangeAll       DateRange = "all"
	RangeToday     DateRange = "today"
	RangeThisWeek  DateRange = "this_week"
	RangeThisMonth DateRange = "this_month"
)

// ParseDateRange treats an empty value as RangeAll.
func ParseDateRange(value string) (DateRange, bool) {
	switch r := DateRange(strings.ToLower(strings.TrimSpace(value))); r {
	case "", RangeAll:
		return RangeAll, true
	case RangeToday, RangeThisWeek, RangeThisMonth:
		return r, true
	default:
		return RangeAll, false
	}
}

// Bounds returns the half-open interval [from, to) in now's location.
// ok is false for RangeAll.
func (r DateRange) Bounds(now time.Time, weekStart time.Weekday) (from, to time.Time, ok bool) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch r {
	case RangeToday:
		return today, today.AddDate(0, 0, 1), true
	case RangeThisWeek:
		offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), true
	case RangeThisMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func (r DateRange) Contains(t, now time.Time, weekStart time.Weekday) bool {
	from, to, ok := r.Bounds(now, weekStart)
	if !ok {
		return true
	}
	t = t.In(now.Location())
	return !t.Before(from) && t.Before(to)
}
