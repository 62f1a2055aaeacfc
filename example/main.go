package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Araiseimitsu/auto-arrenge/pkg/application/services"
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
	"github.com/Araiseimitsu/auto-arrenge/pkg/infrastructure/repositories/memory"
	"github.com/Araiseimitsu/auto-arrenge/pkg/scheduling"
)

func main() {
	ctx := context.Background()

	// Create repositories
	inspectorRepo := memory.NewInspectorRepository(3)
	productRepo := memory.NewProductRepository(2)
	calendarRepo := memory.NewCalendarRepository()
	shortageRepo := memory.NewShortageRepository(4)

	// Set up a small inspection line
	setupInspectionLine(inspectorRepo, productRepo, calendarRepo, shortageRepo)

	referenceDate := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC) // Monday
	config := scheduling.Config{
		ReferenceDate:       referenceDate,
		ThresholdDays:       3,
		HorizonDays:         14,
		NewProductUnitHours: decimal.NewFromFloat(0.5),
	}

	fmt.Println("🔍 Running inspection assignment...")
	fmt.Printf("Reference date: %s | Horizon: %d days\n\n",
		referenceDate.Format("2006-01-02"), config.HorizonDays)

	service := services.NewPlanningService(nil)
	result, err := service.Plan(ctx, config, inspectorRepo, productRepo, calendarRepo, shortageRepo)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	// Display results
	fmt.Println("📊 Assignment Results:")
	fmt.Printf("  Work Items: %d\n", result.Summary.TotalItems)
	fmt.Printf("  Assigned: %d\n", result.Summary.AssignedItems)
	fmt.Printf("  Unscheduled: %d\n", result.Summary.UnscheduledItems)
	fmt.Printf("  Total Allocated Hours: %s\n", result.Summary.TotalAllocatedHours)
	fmt.Println()

	if len(result.Assignments) > 0 {
		fmt.Println("📝 Assignments:")
		for _, a := range result.Assignments {
			fmt.Printf("  %s → %s on %s (%s h, %s)\n",
				a.ProductCode, a.InspectorName,
				a.StartDate.Format("2006-01-02"),
				a.AllocatedHours, a.Urgency)
			if a.NewProduct {
				fmt.Printf("    🆕 New product (not in master)\n")
			}
		}
		fmt.Println()
	}

	if len(result.Unscheduled) > 0 {
		fmt.Println("⚠️  Unscheduled:")
		for _, u := range result.Unscheduled {
			fmt.Printf("  %s: %s\n", u.ProductCode, u.Reason)
		}
	}
}

func setupInspectionLine(
	inspectorRepo *memory.InspectorRepository,
	productRepo *memory.ProductRepository,
	calendarRepo *memory.CalendarRepository,
	shortageRepo *memory.ShortageRepository,
) {
	start, _ := entities.ParseTimeOfDay("08:00")
	end, _ := entities.ParseTimeOfDay("16:30")
	weekdays := map[time.Weekday]bool{
		time.Monday: true, time.Tuesday: true, time.Wednesday: true,
		time.Thursday: true, time.Friday: true,
	}

	tanaka, _ := entities.NewInspector("I001", "Tanaka", "QA1",
		start, end, weekdays, decimal.NewFromInt(2), false, "factory")
	suzuki, _ := entities.NewInspector("I002", "Suzuki", "QA1",
		start, end, weekdays, decimal.Zero, true, "factory")
	sato, _ := entities.NewInspector("I003", "Sato", "QA2",
		start, end, weekdays, decimal.Zero, false, "factory")

	inspectorRepo.AddInspector(*tanaka)   //nolint:errcheck
	inspectorRepo.AddInspector(*suzuki)   //nolint:errcheck
	inspectorRepo.AddInspector(*sato)     //nolint:errcheck

	widget, _ := entities.NewProduct("P-100", "Widget", 10, decimal.NewFromFloat(0.25), "standard")
	bracket, _ := entities.NewProduct("P-200", "Bracket", 20, decimal.NewFromFloat(0.5), "standard")
	productRepo.AddProduct(*widget)  //nolint:errcheck
	productRepo.AddProduct(*bracket) //nolint:errcheck

	// Factory closed the first Tuesday
	calendarRepo.AddHoliday("factory", time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC))

	due := func(day int) time.Time {
		return time.Date(2025, 9, day, 0, 0, 0, 0, time.UTC)
	}
	items := []*entities.WorkItem{}
	for _, spec := range []struct {
		code string
		due  time.Time
		qty  int64
	}{
		{"P-100", due(24), 20},
		{"P-200", due(23), 10},
		{"NEW-77", due(26), 8}, // unregistered: routed to the new-product team
		{"P-100", due(30), 40},
	} {
		item, _ := entities.NewWorkItem(entities.ProductCode(spec.code), spec.due, entities.Quantity(spec.qty), "pending")
		items = append(items, item)
	}
	shortageRepo.LoadWorkItems(items) //nolint:errcheck
}
