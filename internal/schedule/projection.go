package schedule

import "time"

// Payment is one installment payment recorded against a debt. Number is the
// installment it pays; Final marks an early payoff credited against the tail
// of the schedule instead of the natural next slot.
type Payment struct {
	Number int
	Final  bool
	Date   time.Time
}

// Projection holds the derived progress of a debt's installment schedule.
//
// Pointer fields are nil when the debt's contractual installment total is
// unknown; the raw counters are always reported. Remaining is deliberately
// not clamped at zero: a negative value means the front counter overran the
// adjusted total (usually a data entry error) and should stay visible.
type Projection struct {
	CurrentInstallment     int  `json:"current_installment"`
	RegisteredInstallments int  `json:"registered_installments"`
	EarlyPayoffs           int  `json:"early_payoffs"`
	AdjustedTotal          *int `json:"adjusted_total_installments"`
	Remaining              *int `json:"remaining_installments"`
	NextInstallment        *int `json:"next_installment"`

	// ProjectedEndFromStart is the contractual completion date under the
	// adjusted schedule: start date plus adjusted total minus one months.
	ProjectedEndFromStart *time.Time `json:"projected_end_from_start"`
	// ProjectedEndFromReference is a rolling estimate assuming payments
	// continue monthly from the most recent one (or from now when none
	// has been recorded yet).
	ProjectedEndFromReference *time.Time `json:"projected_end_from_reference"`
}

// Project computes a debt's installment projection from its contractual
// installment total, optional start date, and the payments recorded against
// it. now supplies the reference date when no payment exists yet.
//
// Payments split into two independent counters: "front" payments advance the
// current-installment counter in natural order, while "final" payments are
// credited against the tail of the schedule and shrink the effective total.
// The two only combine at the adjusted-total step, so paying ahead on the
// last installments never corrupts the sequential count of regular ones.
func Project(totalInstallments *int, startDate *time.Time, payments []Payment, now time.Time) Projection {
	front := make(map[int]struct{})
	end := make(map[int]struct{})
	for _, p := range payments {
		if p.Final {
			end[p.Number] = struct{}{}
		} else {
			front[p.Number] = struct{}{}
		}
	}

	var proj Projection
	proj.RegisteredInstallments = len(front) + len(end)
	proj.EarlyPayoffs = len(end)
	for n := range front {
		if n > proj.CurrentInstallment {
			proj.CurrentInstallment = n
		}
	}

	if totalInstallments == nil {
		// Unknown contractual total: every derived field degrades to
		// unknown, only the raw counters above are meaningful.
		return proj
	}

	adjusted := *totalInstallments - len(end)
	proj.AdjustedTotal = &adjusted

	remaining := adjusted - proj.CurrentInstallment
	proj.Remaining = &remaining

	next := adjusted
	if proj.CurrentInstallment < adjusted {
		next = min(proj.CurrentInstallment+1, adjusted)
	}
	proj.NextInstallment = &next

	if startDate != nil {
		d := AddMonths(*startDate, max(adjusted-1, 0))
		proj.ProjectedEndFromStart = &d
	}

	ref := referenceDate(payments, now)
	est := AddMonths(ref, max(remaining-1, 0))
	proj.ProjectedEndFromReference = &est

	return proj
}

// referenceDate returns the date of the most recently dated payment, or now
// when no payment exists.
func referenceDate(payments []Payment, now time.Time) time.Time {
	ref := time.Time{}
	for _, p := range payments {
		if p.Date.After(ref) {
			ref = p.Date
		}
	}
	if ref.IsZero() {
		return now
	}
	return ref
}
