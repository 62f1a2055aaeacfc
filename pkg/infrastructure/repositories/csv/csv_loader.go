package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// TimeUnit is the unit of the inspection_time column in the product master
type TimeUnit int

const (
	Hours TimeUnit = iota
	Minutes
	Seconds
)

// ParseTimeUnit parses a configured time unit name
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hours", "":
		return Hours, nil
	case "minutes":
		return Minutes, nil
	case "seconds":
		return Seconds, nil
	default:
		return 0, fmt.Errorf("unknown time unit: %s (expected hours, minutes, or seconds)", s)
	}
}

// String method for TimeUnit enum
func (u TimeUnit) String() string {
	switch u {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// Loader handles loading planner data from CSV files. Product master
// inspection times are normalized to hours using the configured unit.
type Loader struct {
	timeUnit TimeUnit
}

// NewLoader creates a new CSV loader
func NewLoader(timeUnit TimeUnit) *Loader {
	return &Loader{timeUnit: timeUnit}
}

// LoadInspectors loads the inspector roster from a CSV file, preserving row order
func (l *Loader) LoadInspectors(filename string) ([]*entities.Inspector, error) {
	records, err := readAll(filename, "inspectors")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "name", "group", "start_time", "end_time", "working_days", "overtime_hours", "new_product_team", "calendar"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("inspectors CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var inspectors []*entities.Inspector
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inspectors CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		inspector, err := parseInspector(record)
		if err != nil {
			return nil, fmt.Errorf("inspectors CSV row %d: %w", i+2, err)
		}

		inspectors = append(inspectors, inspector)
	}

	return inspectors, nil
}

// LoadProducts loads the product master from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	records, err := readAll(filename, "products")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_code", "name", "process_number", "inspection_time", "category"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		product, err := l.parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// LoadShortages loads shortage records from a CSV file. Rows with a zero
// shortage count carry no inspection work and are skipped; negative counts
// are taken as their absolute value. An unparseable due date keeps the row
// with a zero date so the engine can report it instead of dropping it.
func (l *Loader) LoadShortages(filename string) ([]*entities.WorkItem, error) {
	records, err := readAll(filename, "shortages")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_code", "due_date", "shortage_qty", "status"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("shortages CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var items []*entities.WorkItem
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("shortages CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		item, skip, err := parseShortage(record)
		if err != nil {
			return nil, fmt.Errorf("shortages CSV row %d: %w", i+2, err)
		}
		if skip {
			continue
		}

		items = append(items, item)
	}

	return items, nil
}

// LoadCalendar loads the per-alias holiday exception table from a CSV file
func (l *Loader) LoadCalendar(filename string) (map[string][]time.Time, error) {
	records, err := readAll(filename, "calendar")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"calendar", "date"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("calendar CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	holidays := make(map[string][]time.Time)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("calendar CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		alias := strings.TrimSpace(record[0])
		if alias == "" {
			return nil, fmt.Errorf("calendar CSV row %d: calendar alias cannot be empty", i+2)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("calendar CSV row %d: invalid date %s (expected YYYY-MM-DD)", i+2, record[1])
		}

		holidays[alias] = append(holidays[alias], date)
	}

	return holidays, nil
}

// Helper functions for reading and parsing CSV records

func readAll(filename, table string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", table)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func parseWorkingDays(s string) (map[time.Weekday]bool, error) {
	days := make(map[time.Weekday]bool)
	for _, name := range strings.Split(s, "|") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", name)
		}
		days[day] = true
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("working_days cannot be empty")
	}
	return days, nil
}

func parseInspector(record []string) (*entities.Inspector, error) {
	id := entities.InspectorID(strings.TrimSpace(record[0]))
	name := strings.TrimSpace(record[1])
	group := strings.TrimSpace(record[2])

	startTime, err := entities.ParseTimeOfDay(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}

	endTime, err := entities.ParseTimeOfDay(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid end_time: %w", err)
	}

	workingDays, err := parseWorkingDays(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid working_days: %w", err)
	}

	overtime, err := decimal.NewFromString(strings.TrimSpace(record[6]))
	if err != nil {
		return nil, fmt.Errorf("invalid overtime_hours: %s", record[6])
	}

	newProductTeam, err := strconv.ParseBool(strings.TrimSpace(record[7]))
	if err != nil {
		return nil, fmt.Errorf("invalid new_product_team: %s", record[7])
	}

	calendarAlias := strings.TrimSpace(record[8])

	return entities.NewInspector(id, name, group, startTime, endTime, workingDays, overtime, newProductTeam, calendarAlias)
}

func (l *Loader) parseProduct(record []string) (*entities.Product, error) {
	code := entities.ProductCode(strings.TrimSpace(record[0]))
	name := strings.TrimSpace(record[1])

	processNumber := 0
	if s := strings.TrimSpace(record[2]); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid process_number: %s", record[2])
		}
		processNumber = n
	}

	inspectionTime, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid inspection_time: %s", record[3])
	}

	category := strings.TrimSpace(record[4])

	return entities.NewProduct(code, name, processNumber, l.normalizeHours(inspectionTime), category)
}

// normalizeHours converts a master inspection time to hours per the
// configured unit
func (l *Loader) normalizeHours(value decimal.Decimal) decimal.Decimal {
	switch l.timeUnit {
	case Minutes:
		return value.Div(decimal.NewFromInt(60))
	case Seconds:
		return value.Div(decimal.NewFromInt(3600))
	default:
		return value
	}
}

func parseShortage(record []string) (*entities.WorkItem, bool, error) {
	code := entities.ProductCode(strings.TrimSpace(record[0]))
	if code == "" {
		return nil, false, fmt.Errorf("product_code cannot be empty")
	}

	// A blank or malformed due date is preserved as a zero time; the
	// scheduling run reports these items as InvalidDate.
	var dueDate time.Time
	if s := strings.TrimSpace(record[1]); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			dueDate = parsed
		}
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("invalid shortage_qty: %s", record[2])
	}
	if quantity == 0 {
		return nil, true, nil
	}
	if quantity < 0 {
		quantity = -quantity
	}

	status := strings.TrimSpace(record[3])

	item, err := entities.NewWorkItem(code, dueDate, entities.Quantity(quantity), status)
	if err != nil {
		return nil, false, err
	}
	return item, false, nil
}
