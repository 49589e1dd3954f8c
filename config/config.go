package config

import (
	"github.com/kbukum/arrkit/logger"
	"github.com/kbukum/arrkit/validation"
)

// Config holds every tunable of the toolkit for applications that embed it.
// All fields have working defaults; an application only needs a config file
// or environment variables to override them.
type Config struct {
	Name          string              `yaml:"name" mapstructure:"name" json:"name"`
	Environment   string              `yaml:"environment" mapstructure:"environment" json:"environment" validate:"omitempty,oneof=development staging production"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging" json:"logging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability" json:"observability"`
	Queue         QueueConfig         `yaml:"queue" mapstructure:"queue" json:"queue"`
}

// ObservabilityConfig configures the OTLP exporters.
type ObservabilityConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" json:"sample_rate" validate:"gte=0,lte=1"`
}

// QueueConfig configures bounded queue defaults.
type QueueConfig struct {
	DefaultLimit int `yaml:"default_limit" mapstructure:"default_limit" json:"default_limit" validate:"min=1"`
}

// ApplyDefaults fills in unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "arrkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
		c.Observability.Insecure = true
	}
	if c.Observability.SampleRate == 0 {
		c.Observability.SampleRate = 1.0
	}
	if c.Queue.DefaultLimit == 0 {
		c.Queue.DefaultLimit = 100
	}
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(c)
}
