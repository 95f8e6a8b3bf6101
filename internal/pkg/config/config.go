package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: none, the engine runs offline with sane defaults
// - default: billing granularity, penalty multiplier, schedule timezone, log format
// A .env file in the working directory is loaded first when present.
// -----------------------------------------------------------------------------

type Config struct {
	Billing  BillingConfig
	Schedule ScheduleConfig
	Log      LogConfig
}

type BillingConfig struct {
	SlotMinutes       int             `envconfig:"BILLING_SLOT_MINUTES" default:"15"`
	PenaltyMultiplier decimal.Decimal `envconfig:"BILLING_PENALTY_MULTIPLIER" default:"2"`
}

type ScheduleConfig struct {
	TimeZone string `envconfig:"SCHEDULE_TIMEZONE" default:"Europe/Paris"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"json"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// Location resolves the zone used to split intervals at local midnight.
func (c ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Billing: BillingConfig{
			SlotMinutes:       15,
			PenaltyMultiplier: decimal.NewFromInt(2),
		},
		Schedule: ScheduleConfig{
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
