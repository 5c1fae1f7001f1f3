package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Competition CompetitionConfig `mapstructure:"competition"`
	Usernames   []string          `mapstructure:"usernames"`
	Problems    []ProblemConfig   `mapstructure:"problems"`
	Scraping    ScrapingConfig    `mapstructure:"scraping"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type CompetitionConfig struct {
	Name      string `mapstructure:"name"`
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
}

type ProblemConfig struct {
	Slug       string `mapstructure:"slug"`
	Title      string `mapstructure:"title"`
	Difficulty string `mapstructure:"difficulty"`
	Points     int    `mapstructure:"points"`
}

type ScrapingConfig struct {
	Headless bool `mapstructure:"headless"`
	Timeout  int  `mapstructure:"timeout"` // milliseconds per request
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type SchedulerConfig struct {
	Cron string `mapstructure:"cron"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Load reads and validates the YAML config. Validation runs before any
// database or scraper side effect; a missing required section is fatal.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.applyDefaults()

	return &config, nil
}

// Validate enforces the required sections: competition, usernames,
// problems and scraping.
func (c *Config) Validate() error {
	if c.Competition.Name == "" {
		return fmt.Errorf("competition section is required")
	}
	if c.Competition.StartDate == "" || c.Competition.EndDate == "" {
		return fmt.Errorf("competition start_date and end_date are required")
	}
	if len(c.Usernames) == 0 {
		return fmt.Errorf("usernames section is required")
	}
	if len(c.Problems) == 0 {
		return fmt.Errorf("problems section is required")
	}
	for i, p := range c.Problems {
		if p.Slug == "" {
			return fmt.Errorf("problems[%d]: slug is required", i)
		}
		if p.Title == "" {
			return fmt.Errorf("problems[%d] (%s): title is required", i, p.Slug)
		}
		if p.Points < 0 {
			return fmt.Errorf("problems[%d] (%s): points must not be negative", i, p.Slug)
		}
	}
	if c.Scraping.Timeout <= 0 {
		return fmt.Errorf("scraping section with a positive timeout is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = "db.sqlite"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Scheduler.Cron == "" {
		c.Scheduler.Cron = "0 8 * * *" // daily at 08:00, same as the suggested crontab entry
	}
}

// ProblemSlugs returns the configured competition problem slugs in order.
func (c *Config) ProblemSlugs() []string {
	slugs := make([]string, len(c.Problems))
	for i, p := range c.Problems {
		slugs[i] = p.Slug
	}
	return slugs
}
