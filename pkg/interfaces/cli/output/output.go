package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Araiseimitsu/auto-arrenge/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a schedule result in the specified format
func Generate(result *dto.ScheduleResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.ScheduleResult, config Config) error {
	fmt.Printf("📊 Inspection Assignment Summary\n")
	fmt.Printf("================================\n\n")

	fmt.Printf("Work Items: %d\n", result.Summary.TotalItems)
	fmt.Printf("Assigned: %d\n", result.Summary.AssignedItems)
	fmt.Printf("Unscheduled: %d\n", result.Summary.UnscheduledItems)
	fmt.Printf("New-Product Items: %d\n", result.Summary.NewProductItems)
	fmt.Printf("Total Allocated Hours: %s\n\n", result.Summary.TotalAllocatedHours)

	if len(result.Assignments) > 0 {
		fmt.Printf("📋 Assignments:\n")
		fmt.Printf("%-15s %-12s %-12s %-10s %-10s %-12s\n",
			"Product Code", "Inspector", "Start Date", "Hours", "Urgency", "New Product")
		fmt.Printf("%-15s %-12s %-12s %-10s %-10s %-12s\n",
			"---------------", "------------", "------------", "----------", "----------", "------------")

		for _, a := range result.Assignments {
			fmt.Printf("%-15s %-12s %-12s %-10s %-10s %-12t\n",
				a.ProductCode,
				a.InspectorName,
				a.StartDate.Format("2006-01-02"),
				a.AllocatedHours,
				a.Urgency.String(),
				a.NewProduct)
		}
		fmt.Println()
	}

	if len(result.Unscheduled) > 0 {
		fmt.Printf("⚠️  Unscheduled Items:\n")
		fmt.Printf("%-15s %-12s %-20s\n", "Product Code", "Due Date", "Reason")
		fmt.Printf("%-15s %-12s %-20s\n", "---------------", "------------", "--------------------")

		for _, u := range result.Unscheduled {
			dueDate := "-"
			if !u.DueDate.IsZero() {
				dueDate = u.DueDate.Format("2006-01-02")
			}
			fmt.Printf("%-15s %-12s %-20s\n", u.ProductCode, dueDate, u.Reason.String())
		}
		fmt.Println()
	}

	if len(result.Summary.CountsByInspector) > 0 && config.Verbose {
		fmt.Printf("👷 Assignments per Inspector:\n")
		for name, count := range result.Summary.CountsByInspector {
			fmt.Printf("  %s: %d\n", name, count)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.ScheduleResult, config Config) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "schedule_results.json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", filename)
	}

	return nil
}

// generateCSVOutput writes assignments and unscheduled reports as CSV files
func generateCSVOutput(result *dto.ScheduleResult, config Config) error {
	dir := config.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	assignmentsFile := filepath.Join(dir, "assignments.csv")
	if err := writeAssignmentsCSV(assignmentsFile, result); err != nil {
		return err
	}

	unscheduledFile := filepath.Join(dir, "unscheduled.csv")
	if err := writeUnscheduledCSV(unscheduledFile, result); err != nil {
		return err
	}

	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s, %s\n", assignmentsFile, unscheduledFile)
	}

	return nil
}

func writeAssignmentsCSV(filename string, result *dto.ScheduleResult) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create assignments CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"product_code", "inspector_id", "inspector_name", "allocated_hours", "start_date", "urgency", "new_product"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write assignments header: %w", err)
	}

	for _, a := range result.Assignments {
		record := []string{
			string(a.ProductCode),
			string(a.InspectorID),
			a.InspectorName,
			a.AllocatedHours.String(),
			a.StartDate.Format("2006-01-02"),
			a.Urgency.String(),
			fmt.Sprintf("%t", a.NewProduct),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write assignment row: %w", err)
		}
	}

	return nil
}

func writeUnscheduledCSV(filename string, result *dto.ScheduleResult) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create unscheduled CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"product_code", "due_date", "reason"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write unscheduled header: %w", err)
	}

	for _, u := range result.Unscheduled {
		dueDate := ""
		if !u.DueDate.IsZero() {
			dueDate = u.DueDate.Format("2006-01-02")
		}
		record := []string{string(u.ProductCode), dueDate, u.Reason.String()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write unscheduled row: %w", err)
		}
	}

	return nil
}
