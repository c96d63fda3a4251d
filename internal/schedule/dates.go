// Package schedule implements the debt installment projection engine and the
// date arithmetic it depends on. Everything here is pure computation over
// already-loaded records; persistence lives in the services layer.
package schedule

import "time"

// AddMonths adds a signed number of whole calendar months to a date, clamping
// the day to the target month's length: one month after Jan 31 is Feb 28 (or
// Feb 29 in a leap year), never an overflow into March. time.Time.AddDate
// normalizes overflow days forward, which is exactly the behavior we do not
// want here.
func AddMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	month := time.Month(total%12 + 1)
	if total < 0 {
		// Go's integer division truncates toward zero; shift negative
		// remainders back into the January..December range.
		if total%12 != 0 {
			year--
			month += 12
		}
	}

	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
