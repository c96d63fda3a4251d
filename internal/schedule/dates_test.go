package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	t.Run("zero_is_identity", func(t *testing.T) {
		dates := []time.Time{
			date(2026, time.January, 1),
			date(2026, time.January, 31),
			date(2024, time.February, 29),
			date(1999, time.December, 15),
		}
		for _, d := range dates {
			if got := AddMonths(d, 0); !got.Equal(d) {
				t.Errorf("AddMonths(%v, 0) = %v, want unchanged", d, got)
			}
		}
	})

	t.Run("clamps_to_shorter_month", func(t *testing.T) {
		if got := AddMonths(date(2026, time.January, 31), 1); !got.Equal(date(2026, time.February, 28)) {
			t.Errorf("Jan 31 2026 + 1 month = %v, want Feb 28 2026", got)
		}
		if got := AddMonths(date(2024, time.January, 31), 1); !got.Equal(date(2024, time.February, 29)) {
			t.Errorf("Jan 31 2024 + 1 month = %v, want Feb 29 2024 (leap year)", got)
		}
		if got := AddMonths(date(2026, time.March, 31), 1); !got.Equal(date(2026, time.April, 30)) {
			t.Errorf("Mar 31 + 1 month = %v, want Apr 30", got)
		}
	})

	t.Run("crosses_year_boundary", func(t *testing.T) {
		if got := AddMonths(date(2026, time.November, 15), 3); !got.Equal(date(2027, time.February, 15)) {
			t.Errorf("Nov 15 2026 + 3 months = %v, want Feb 15 2027", got)
		}
		if got := AddMonths(date(2026, time.June, 10), 18); !got.Equal(date(2027, time.December, 10)) {
			t.Errorf("Jun 10 2026 + 18 months = %v, want Dec 10 2027", got)
		}
	})

	t.Run("negative_months", func(t *testing.T) {
		if got := AddMonths(date(2026, time.January, 15), -1); !got.Equal(date(2025, time.December, 15)) {
			t.Errorf("Jan 15 2026 - 1 month = %v, want Dec 15 2025", got)
		}
		if got := AddMonths(date(2026, time.March, 31), -1); !got.Equal(date(2026, time.February, 28)) {
			t.Errorf("Mar 31 2026 - 1 month = %v, want Feb 28 2026", got)
		}
		if got := AddMonths(date(2026, time.June, 1), -18); !got.Equal(date(2024, time.December, 1)) {
			t.Errorf("Jun 1 2026 - 18 months = %v, want Dec 1 2024", got)
		}
	})

	t.Run("round_trip_when_day_needs_no_clamp", func(t *testing.T) {
		// Days <= 28 exist in every month, so adding and subtracting the
		// same month count must return the original date.
		base := date(2026, time.May, 28)
		for _, n := range []int{1, 5, 12, 13, 25, -7} {
			if got := AddMonths(AddMonths(base, n), -n); !got.Equal(base) {
				t.Errorf("round trip with n=%d: got %v, want %v", n, got, base)
			}
		}
	})
}
