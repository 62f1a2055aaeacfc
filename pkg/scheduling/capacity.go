package scheduling

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// dayLedger tracks the remaining base and overtime hours for one
// inspector/date pair. Overtime is a separate pool consumed only after the
// base pool is exhausted.
type dayLedger struct {
	base     decimal.Decimal
	overtime decimal.Decimal
}

// CapacityTracker maintains remaining daily capacity per inspector per date.
// State lives for a single scheduling run; each run must construct its own
// tracker. The tracker is mutated only by the assignment engine's single
// thread of control, so it carries no locking.
type CapacityTracker struct {
	ledgers map[string]*dayLedger
}

// NewCapacityTracker creates an empty capacity tracker
func NewCapacityTracker() *CapacityTracker {
	return &CapacityTracker{ledgers: make(map[string]*dayLedger)}
}

func (t *CapacityTracker) ledger(inspector *entities.Inspector, date time.Time) *dayLedger {
	key := string(inspector.ID) + "@" + dateKey(date)
	l, ok := t.ledgers[key]
	if !ok {
		l = &dayLedger{
			base:     inspector.DailyHours(),
			overtime: inspector.OvertimeBudgetHours,
		}
		t.ledgers[key] = l
	}
	return l
}

// Remaining returns the unreserved hours for the inspector on the date,
// base pool plus overtime pool.
func (t *CapacityTracker) Remaining(inspector *entities.Inspector, date time.Time) decimal.Decimal {
	l := t.ledger(inspector, date)
	return l.base.Add(l.overtime)
}

// BaseRemaining returns the unreserved base hours for the inspector on the date
func (t *CapacityTracker) BaseRemaining(inspector *entities.Inspector, date time.Time) decimal.Decimal {
	return t.ledger(inspector, date).base
}

// OvertimeRemaining returns the unreserved overtime hours for the inspector on the date
func (t *CapacityTracker) OvertimeRemaining(inspector *entities.Inspector, date time.Time) decimal.Decimal {
	return t.ledger(inspector, date).overtime
}

// Reserve books hours against the inspector's capacity on the date. It fails
// with ErrInsufficientCapacity when the requested hours exceed the combined
// remaining pools, leaving the ledger untouched. Base hours are consumed
// before overtime.
func (t *CapacityTracker) Reserve(inspector *entities.Inspector, date time.Time, hours decimal.Decimal) error {
	if hours.IsNegative() {
		return ErrInsufficientCapacity
	}

	l := t.ledger(inspector, date)
	if hours.GreaterThan(l.base.Add(l.overtime)) {
		return ErrInsufficientCapacity
	}

	fromBase := decimal.Min(hours, l.base)
	l.base = l.base.Sub(fromBase)
	l.overtime = l.overtime.Sub(hours.Sub(fromBase))
	return nil
}
