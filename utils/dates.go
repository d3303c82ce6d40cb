// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DaysOverdue returns how many whole days past due an invoice is as of now;
// zero or negative means not yet due.
func DaysOverdue(dueDate, now time.Time) int {
	return DaysBetween(dueDate, now)
}
