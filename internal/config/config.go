package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/careops/wardops/pkg/core/model"
)

// DefaultHorizonDays is the planning window used when the config does not set
// one.
const DefaultHorizonDays = 7

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// DatabaseMaxConns caps the connection pool size. Zero keeps the driver
	// default.
	DatabaseMaxConns int `yaml:"databaseMaxConns,omitempty" validate:"omitempty,min=1"`

	// Departments configures the per-department capacity and urgency bands.
	Departments []model.DepartmentConstraint `yaml:"departments" validate:"required,min=1,dive"`

	// Scheduling configures per-department scheduling constraints.
	Scheduling []model.SchedulingConstraints `yaml:"scheduling" validate:"dive"`

	// ShiftCatalogue overrides the default Morning/Afternoon/Night rotation.
	ShiftCatalogue []model.ShiftType `yaml:"shiftCatalogue,omitempty" validate:"omitempty,min=1,dive"`

	// PlanningRecurrence is an RRULE expanding the planning horizon dates
	// (e.g. "FREQ=DAILY" or "FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR"). Defaults to
	// daily.
	PlanningRecurrence string `yaml:"planningRecurrence,omitempty"`

	// HorizonDays is the number of planning dates to expand. Defaults to 7.
	HorizonDays int `yaml:"horizonDays,omitempty" validate:"omitempty,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from wardops_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks recurrence syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Department constraints must not repeat a department
	seen := make(map[string]bool)
	for _, d := range cfg.Departments {
		if seen[d.Department] {
			return fmt.Errorf("duplicate department constraint for %q", d.Department)
		}
		seen[d.Department] = true
	}

	// Scheduling constraints must reference configured departments
	for _, s := range cfg.Scheduling {
		if !seen[s.Department] {
			return fmt.Errorf("scheduling constraints reference unknown department %q", s.Department)
		}
	}

	// Validate recurrence rule syntax
	if cfg.PlanningRecurrence != "" {
		if _, err := rrule.StrToRRule(cfg.PlanningRecurrence); err != nil {
			return fmt.Errorf("invalid planningRecurrence: %w", err)
		}
	}

	return nil
}

// SchedulingFor returns the scheduling constraints configured for a
// department, or an error if none exist. Department names match
// case-insensitively, like everywhere else department filters apply.
func (c *Config) SchedulingFor(department string) (model.SchedulingConstraints, error) {
	for _, s := range c.Scheduling {
		if strings.EqualFold(s.Department, department) {
			return s, nil
		}
	}
	return model.SchedulingConstraints{}, fmt.Errorf("no scheduling constraints configured for department %q", department)
}

// findConfigFile searches for wardops_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "wardops_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
