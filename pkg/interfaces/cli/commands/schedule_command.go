package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Araiseimitsu/auto-arrenge/pkg/application/services"
	"github.com/Araiseimitsu/auto-arrenge/pkg/config"
	csvrepo "github.com/Araiseimitsu/auto-arrenge/pkg/infrastructure/repositories/csv"
	"github.com/Araiseimitsu/auto-arrenge/pkg/infrastructure/repositories/memory"
	"github.com/Araiseimitsu/auto-arrenge/pkg/interfaces/cli/output"
	"github.com/Araiseimitsu/auto-arrenge/pkg/logger"
	"github.com/Araiseimitsu/auto-arrenge/pkg/scheduling"
)

// Config holds configuration for the schedule command. Non-empty flag
// values override the config file.
type Config struct {
	ConfigFile     string
	DataDir        string
	InspectorsFile string
	ProductsFile   string
	ShortagesFile  string
	CalendarFile   string
	Date           string
	Format         string
	OutputDir      string
	Verbose        bool
	Help           bool
}

// ScheduleCommand handles the main scheduling execution logic
type ScheduleCommand struct {
	config Config
}

// NewScheduleCommand creates a new schedule command with the given configuration
func NewScheduleCommand(config Config) *ScheduleCommand {
	return &ScheduleCommand{config: config}
}

// Execute runs the schedule command
func (c *ScheduleCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	cfg, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	c.applyOverrides(cfg)

	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	referenceDate := time.Now()
	if c.config.Date != "" {
		referenceDate, err = time.Parse("2006-01-02", c.config.Date)
		if err != nil {
			return fmt.Errorf("invalid reference date %s (expected YYYY-MM-DD)", c.config.Date)
		}
	}

	timeUnit, err := csvrepo.ParseTimeUnit(cfg.Data.TimeUnit)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	files := map[string]string{
		"Inspectors": filepath.Join(cfg.Data.Dir, cfg.Data.InspectorsFile),
		"Products":   filepath.Join(cfg.Data.Dir, cfg.Data.ProductsFile),
		"Shortages":  filepath.Join(cfg.Data.Dir, cfg.Data.ShortagesFile),
		"Calendar":   filepath.Join(cfg.Data.Dir, cfg.Data.CalendarFile),
	}

	if c.config.Verbose {
		fmt.Println("📂 Loading data from CSV files...")
	}

	loader := csvrepo.NewLoader(timeUnit)

	inspectors, err := loader.LoadInspectors(files["Inspectors"])
	if err != nil {
		return fmt.Errorf("error loading inspectors: %w", err)
	}

	products, err := loader.LoadProducts(files["Products"])
	if err != nil {
		return fmt.Errorf("error loading products: %w", err)
	}

	items, err := loader.LoadShortages(files["Shortages"])
	if err != nil {
		return fmt.Errorf("error loading shortages: %w", err)
	}

	holidays, err := loader.LoadCalendar(files["Calendar"])
	if err != nil {
		return fmt.Errorf("error loading calendar: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Inspectors: %d\n", len(inspectors))
		fmt.Printf("  Products: %d\n", len(products))
		fmt.Printf("  Shortage Records: %d\n", len(items))
		fmt.Printf("  Holiday Calendars: %d\n", len(holidays))
		fmt.Println()
	}

	inspectorRepo := memory.NewInspectorRepository(len(inspectors))
	if err := inspectorRepo.LoadInspectors(inspectors); err != nil {
		return fmt.Errorf("failed to load inspectors into repository: %w", err)
	}

	productRepo := memory.NewProductRepository(len(products))
	if err := productRepo.LoadProducts(products); err != nil {
		return fmt.Errorf("failed to load products into repository: %w", err)
	}

	calendarRepo := memory.NewCalendarRepository()
	if err := calendarRepo.LoadHolidays(holidays); err != nil {
		return fmt.Errorf("failed to load holidays into repository: %w", err)
	}

	shortageRepo := memory.NewShortageRepository(len(items))
	if err := shortageRepo.LoadWorkItems(items); err != nil {
		return fmt.Errorf("failed to load shortages into repository: %w", err)
	}

	engineConfig := scheduling.Config{
		ReferenceDate:       referenceDate,
		ThresholdDays:       cfg.Scheduling.UrgencyThresholdDays,
		HorizonDays:         cfg.Scheduling.HorizonDays,
		NewProductUnitHours: decimal.NewFromFloat(cfg.Scheduling.NewProductUnitHours),
	}

	if c.config.Verbose {
		fmt.Printf("🗓  Running assignment for reference date %s (horizon %d days)...\n\n",
			referenceDate.Format("2006-01-02"), engineConfig.HorizonDays)
	}

	start := time.Now()
	service := services.NewPlanningService(log)
	result, err := service.Plan(ctx, engineConfig, inspectorRepo, productRepo, calendarRepo, shortageRepo)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("⏱  Scheduling completed in %v\n\n", time.Since(start))
	}

	return output.Generate(result, output.Config{
		Format:    cfg.Output.Format,
		OutputDir: cfg.Output.Dir,
		Verbose:   c.config.Verbose,
	})
}

// applyOverrides lets CLI flags win over config file values
func (c *ScheduleCommand) applyOverrides(cfg *config.Config) {
	if c.config.DataDir != "" {
		cfg.Data.Dir = c.config.DataDir
	}
	if c.config.InspectorsFile != "" {
		cfg.Data.InspectorsFile = c.config.InspectorsFile
	}
	if c.config.ProductsFile != "" {
		cfg.Data.ProductsFile = c.config.ProductsFile
	}
	if c.config.ShortagesFile != "" {
		cfg.Data.ShortagesFile = c.config.ShortagesFile
	}
	if c.config.CalendarFile != "" {
		cfg.Data.CalendarFile = c.config.CalendarFile
	}
	if c.config.Format != "" {
		cfg.Output.Format = c.config.Format
	}
	if c.config.OutputDir != "" {
		cfg.Output.Dir = c.config.OutputDir
	}
}

func (c *ScheduleCommand) showHelp() {
	fmt.Println("auto-arrenge - inspection assignment planner")
	fmt.Println()
	fmt.Println("Assigns pending shortage records to inspectors, honoring daily capacity,")
	fmt.Println("weekday availability, overtime budgets, and per-inspector holiday calendars,")
	fmt.Println("with priority routing of unregistered products to the new-product team.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  auto-arrenge [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -config string      Path to YAML config file")
	fmt.Println("  -data string        Data directory containing the CSV tables")
	fmt.Println("  -inspectors string  Inspector roster CSV file name")
	fmt.Println("  -products string    Product master CSV file name")
	fmt.Println("  -shortages string   Shortage records CSV file name")
	fmt.Println("  -calendar string    Holiday calendar CSV file name")
	fmt.Println("  -date string        Reference date YYYY-MM-DD (default: today)")
	fmt.Println("  -format string      Output format: text, json, csv (default: text)")
	fmt.Println("  -output string      Output directory for results")
	fmt.Println("  -verbose            Enable verbose output")
	fmt.Println("  -help               Show this help message")
}
