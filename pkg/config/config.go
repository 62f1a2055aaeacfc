package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the planner's file configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Data       DataConfig       `mapstructure:"data"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
	Output     OutputConfig     `mapstructure:"output"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

// DataConfig locates the input tables
type DataConfig struct {
	Dir            string `mapstructure:"dir"`
	InspectorsFile string `mapstructure:"inspectors_file"`
	ProductsFile   string `mapstructure:"products_file"`
	ShortagesFile  string `mapstructure:"shortages_file"`
	CalendarFile   string `mapstructure:"calendar_file"`
	// TimeUnit is the unit of the product master's inspection_time column:
	// hours, minutes, or seconds
	TimeUnit string `mapstructure:"time_unit"`
}

// SchedulingConfig holds the engine parameters
type SchedulingConfig struct {
	HorizonDays          int     `mapstructure:"horizon_days"`
	UrgencyThresholdDays int     `mapstructure:"urgency_threshold_days"`
	NewProductUnitHours  float64 `mapstructure:"new_product_unit_hours"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "auto-arrenge")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.inspectors_file", "inspectors.csv")
	v.SetDefault("data.products_file", "products.csv")
	v.SetDefault("data.shortages_file", "shortages.csv")
	v.SetDefault("data.calendar_file", "calendar.csv")
	v.SetDefault("data.time_unit", "hours")
	v.SetDefault("scheduling.horizon_days", 30)
	v.SetDefault("scheduling.urgency_threshold_days", 3)
	v.SetDefault("scheduling.new_product_unit_hours", 0.5)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.dir", "")
}

// Load reads a YAML config file. An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return &cfg, nil
}
