package scheduling

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
	"github.com/Araiseimitsu/auto-arrenge/pkg/logger"
)

// DefaultHorizonDays bounds the forward date search of a scheduling run
const DefaultHorizonDays = 30

// defaultNewProductUnitHours is the per-piece time assumed for unregistered
// products when none is configured
var defaultNewProductUnitHours = decimal.NewFromFloat(0.5)

// Config holds the engine's run parameters. ReferenceDate and the urgency
// threshold are explicit configuration, never hidden globals.
type Config struct {
	// ReferenceDate is "today" for urgency classification and the first
	// candidate start date. Zero value means the current date.
	ReferenceDate time.Time
	// ThresholdDays is the urgency classification threshold (default 3)
	ThresholdDays int
	// HorizonDays is the number of look-ahead days beyond the reference
	// date searched for a feasible slot (default 30)
	HorizonDays int
	// NewProductUnitHours is the per-piece inspection time assumed for
	// product codes absent from the master
	NewProductUnitHours decimal.Decimal
}

// DefaultConfig returns the engine defaults for a reference date
func DefaultConfig(referenceDate time.Time) Config {
	return Config{
		ReferenceDate:       referenceDate,
		ThresholdDays:       DefaultThresholdDays,
		HorizonDays:         DefaultHorizonDays,
		NewProductUnitHours: defaultNewProductUnitHours,
	}
}

// Result contains the complete output of one scheduling run. Both lists are
// in processing order: new-product items first, then registered items, each
// sorted by urgency, due date, and input order.
type Result struct {
	Assignments []entities.AssignmentResult
	Unscheduled []entities.UnscheduledItem
}

// Engine produces a full assignment table from classified work items using a
// greedy earliest-feasible-slot policy. It is deterministic: identical inputs
// and reference date yield identical output ordering and assignments.
type Engine struct {
	roster   []*entities.Inspector
	products ProductIndex
	calendar *Calendar
	config   Config
	log      logger.Logger
}

// NewEngine creates an assignment engine. An empty roster is a structural
// failure and is rejected before any assignment is attempted.
func NewEngine(
	roster []*entities.Inspector,
	products ProductIndex,
	calendar *Calendar,
	config Config,
	log logger.Logger,
) (*Engine, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if config.ReferenceDate.IsZero() {
		config.ReferenceDate = time.Now()
	}
	if config.ThresholdDays <= 0 {
		config.ThresholdDays = DefaultThresholdDays
	}
	if config.HorizonDays <= 0 {
		config.HorizonDays = DefaultHorizonDays
	}
	if !config.NewProductUnitHours.IsPositive() {
		config.NewProductUnitHours = defaultNewProductUnitHours
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Engine{
		roster:   roster,
		products: products,
		calendar: calendar,
		config:   config,
		log:      log,
	}, nil
}

// classifiedItem carries a work item with its derived scheduling fields
type classifiedItem struct {
	item       *entities.WorkItem
	inputIndex int
	urgency    entities.UrgencyLevel
	newProduct bool
	required   decimal.Decimal
}

// Run schedules all work items and returns one assignment record per
// scheduled item plus one unscheduled report per item that could not be
// placed. Per-item failures never abort the run.
func (e *Engine) Run(items []*entities.WorkItem) (*Result, error) {
	tracker := NewCapacityTracker()
	result := &Result{}

	newProductItems, registeredItems := e.classify(items, result)
	sortByPriority(newProductItems)
	sortByPriority(registeredItems)

	newPool := NewProductMembers(e.roster)
	regularPool := RegularMembers(e.roster)

	e.log.Infof("scheduling run started: %d work items, %d inspectors (%d new-product team), reference date %s",
		len(items), len(e.roster), len(newPool), dateKey(e.config.ReferenceDate))

	for _, ci := range newProductItems {
		inspector, date, reason, ok := e.findSlot(newPool, ci.required, tracker)
		if !ok {
			// New-product pool saturated or empty: fall back to the
			// regular team, keeping the new-product flag on the record.
			var fallbackReason entities.UnscheduledReason
			inspector, date, fallbackReason, ok = e.findSlot(regularPool, ci.required, tracker)
			if !ok {
				if fallbackReason == entities.ReasonNoCapacity {
					reason = entities.ReasonNoCapacity
				}
				e.reportUnscheduled(result, ci, reason)
				continue
			}
		}
		e.commit(result, tracker, ci, inspector, date)
	}

	for _, ci := range registeredItems {
		inspector, date, reason, ok := e.findSlot(regularPool, ci.required, tracker)
		if !ok {
			e.reportUnscheduled(result, ci, reason)
			continue
		}
		e.commit(result, tracker, ci, inspector, date)
	}

	e.log.Infof("scheduling run finished: %d assigned, %d unscheduled",
		len(result.Assignments), len(result.Unscheduled))

	return result, nil
}

// classify derives urgency, team routing, and required hours for every item.
// Items that cannot be classified go straight to the unscheduled report.
func (e *Engine) classify(items []*entities.WorkItem, result *Result) (newProduct, registered []classifiedItem) {
	for idx, item := range items {
		urgency, err := Classify(item.DueDate, e.config.ReferenceDate, e.config.ThresholdDays)
		if err != nil {
			e.log.Warnf("work item %s: unparseable due date, excluded from scheduling", item.ProductCode)
			result.Unscheduled = append(result.Unscheduled, entities.UnscheduledItem{
				ProductCode: item.ProductCode,
				DueDate:     item.DueDate,
				Reason:      entities.ReasonInvalidDate,
			})
			continue
		}

		isNew := IsNewProduct(item, e.products)
		unitHours, err := e.unitHours(item, isNew)
		if err != nil {
			e.log.Warnf("work item %s: %v, excluded from scheduling", item.ProductCode, err)
			result.Unscheduled = append(result.Unscheduled, entities.UnscheduledItem{
				ProductCode: item.ProductCode,
				DueDate:     item.DueDate,
				Reason:      entities.ReasonUnresolvedProduct,
			})
			continue
		}

		ci := classifiedItem{
			item:       item,
			inputIndex: idx,
			urgency:    urgency,
			newProduct: isNew,
			required:   unitHours.Mul(decimal.NewFromInt(int64(item.ShortageQuantity))),
		}
		if isNew {
			newProduct = append(newProduct, ci)
		} else {
			registered = append(registered, ci)
		}
	}
	return newProduct, registered
}

// unitHours resolves the per-piece inspection time for an item. Registered
// items must have a positive per-unit time in the master; unregistered items
// use the configured new-product default, never a silent zero.
func (e *Engine) unitHours(item *entities.WorkItem, isNew bool) (decimal.Decimal, error) {
	if isNew {
		return e.config.NewProductUnitHours, nil
	}

	product, err := e.products.GetProduct(item.ProductCode)
	if err != nil {
		return decimal.Zero, ErrUnresolvedProduct
	}
	if !product.UnitInspectionHours.IsPositive() {
		return decimal.Zero, ErrUnresolvedProduct
	}
	return product.UnitInspectionHours, nil
}

// findSlot runs the earliest-feasible-slot search: dates from the reference
// date forward through the horizon, inspectors in roster order within each
// date. The first pair that is a working day with enough remaining capacity
// wins. The returned reason distinguishes a horizon with no working days at
// all from one whose working days were all full.
func (e *Engine) findSlot(
	pool []*entities.Inspector,
	required decimal.Decimal,
	tracker *CapacityTracker,
) (*entities.Inspector, time.Time, entities.UnscheduledReason, bool) {
	if len(pool) == 0 {
		return nil, time.Time{}, entities.ReasonNoCapacity, false
	}

	start := midnight(e.config.ReferenceDate)
	sawWorkingDay := false

	for offset := 0; offset <= e.config.HorizonDays; offset++ {
		date := start.AddDate(0, 0, offset)
		for _, inspector := range pool {
			if !e.calendar.IsWorkingDay(inspector, date) {
				continue
			}
			sawWorkingDay = true
			if tracker.Remaining(inspector, date).GreaterThanOrEqual(required) {
				return inspector, date, 0, true
			}
		}
	}

	if !sawWorkingDay {
		return nil, time.Time{}, entities.ReasonNoWorkingDay, false
	}
	return nil, time.Time{}, entities.ReasonNoCapacity, false
}

// commit reserves the slot and emits the assignment record
func (e *Engine) commit(
	result *Result,
	tracker *CapacityTracker,
	ci classifiedItem,
	inspector *entities.Inspector,
	date time.Time,
) {
	if err := tracker.Reserve(inspector, date, ci.required); err != nil {
		// Remaining was checked during the search; a rejection here means
		// the ledger changed between check and commit, which the
		// single-threaded run model rules out.
		e.log.Errorf("work item %s: reservation rejected for %s on %s: %v",
			ci.item.ProductCode, inspector.ID, dateKey(date), err)
		e.reportUnscheduled(result, ci, entities.ReasonNoCapacity)
		return
	}

	e.log.Debugf("work item %s: assigned to %s on %s (%s h, urgency %s)",
		ci.item.ProductCode, inspector.ID, dateKey(date), ci.required, ci.urgency)

	result.Assignments = append(result.Assignments, entities.AssignmentResult{
		ProductCode:    ci.item.ProductCode,
		InspectorID:    inspector.ID,
		InspectorName:  inspector.Name,
		AllocatedHours: ci.required,
		StartDate:      date,
		Urgency:        ci.urgency,
		NewProduct:     ci.newProduct,
	})
}

func (e *Engine) reportUnscheduled(result *Result, ci classifiedItem, reason entities.UnscheduledReason) {
	e.log.Warnf("work item %s: unscheduled (%s)", ci.item.ProductCode, reason)
	result.Unscheduled = append(result.Unscheduled, entities.UnscheduledItem{
		ProductCode: ci.item.ProductCode,
		DueDate:     ci.item.DueDate,
		Reason:      reason,
	})
}

// sortByPriority orders items by urgency level ascending, then due date
// ascending, then original input order.
func sortByPriority(items []classifiedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].urgency != items[j].urgency {
			return items[i].urgency < items[j].urgency
		}
		if !items[i].item.DueDate.Equal(items[j].item.DueDate) {
			return items[i].item.DueDate.Before(items[j].item.DueDate)
		}
		return items[i].inputIndex < items[j].inputIndex
	})
}
