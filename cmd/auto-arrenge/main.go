package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Araiseimitsu/auto-arrenge/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "", "Path to YAML config file")
		dataDir    = flag.String("data", "", "Data directory containing the CSV tables")
		inspectors = flag.String("inspectors", "", "Inspector roster CSV file name")
		products   = flag.String("products", "", "Product master CSV file name")
		shortages  = flag.String("shortages", "", "Shortage records CSV file name")
		calendar   = flag.String("calendar", "", "Holiday calendar CSV file name")
		date       = flag.String("date", "", "Reference date YYYY-MM-DD (default: today)")
		format     = flag.String("format", "", "Output format: text, json, csv")
		outputDir  = flag.String("output", "", "Output directory for results")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile:     *configFile,
		DataDir:        *dataDir,
		InspectorsFile: *inspectors,
		ProductsFile:   *products,
		ShortagesFile:  *shortages,
		CalendarFile:   *calendar,
		Date:           *date,
		Format:         *format,
		OutputDir:      *outputDir,
		Verbose:        *verbose,
		Help:           *help,
	}

	// Create and execute command
	cmd := commands.NewScheduleCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
