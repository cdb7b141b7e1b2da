package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the exporter configuration
type Config struct {
	MetricsPath     string
	CollectInterval time.Duration
	SNMP            SNMPConfig
	Compat          CompatConfig
}

// SNMPConfig holds the connection settings for the monitored array
type SNMPConfig struct {
	Target         string
	Port           int
	Community      string
	Version        string
	Timeout        time.Duration
	Retries        int
	MaxOIDs        int
	MaxRepetitions int
	User           UserConfig
}

// UserConfig holds the SNMPv3 credentials
type UserConfig struct {
	Name          string
	SecurityLevel string
	AuthProtocol  string
	AuthPassword  string
	PrivProtocol  string
	PrivPassword  string
}

// CompatConfig toggles the corrected decode behaviors. Both default to
// the legacy behavior.
type CompatConfig struct {
	AggregateChassisBits bool
	SkipInternalDisk     bool
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		MetricsPath:     "/metrics",
		CollectInterval: 60 * time.Second,
		SNMP: SNMPConfig{
			Port:           161,
			Community:      "public",
			Version:        "2c",
			Timeout:        10 * time.Second,
			Retries:        1,
			MaxOIDs:        60,
			MaxRepetitions: 25,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.loadEnv()
	return cfg, nil
}

// Validate reports configuration the exporter cannot start with.
func (c *Config) Validate() error {
	if c.SNMP.Target == "" {
		return errors.New("snmp target is required")
	}
	if c.CollectInterval <= 0 {
		return errors.New("collect interval must be positive")
	}
	return nil
}

type yamlConfig struct {
	MetricsPath     string     `yaml:"metrics_path"`
	CollectInterval string     `yaml:"collect_interval"`
	SNMP            yamlSNMP   `yaml:"snmp"`
	Compat          yamlCompat `yaml:"compat"`
}

type yamlSNMP struct {
	Target         string   `yaml:"target"`
	Port           int      `yaml:"port"`
	Community      string   `yaml:"community"`
	Version        string   `yaml:"version"`
	Timeout        string   `yaml:"timeout"`
	Retries        *int     `yaml:"retries"`
	MaxOIDs        int      `yaml:"max_oids"`
	MaxRepetitions int      `yaml:"max_repetitions"`
	User           yamlUser `yaml:"user"`
}

type yamlUser struct {
	Name          string `yaml:"name"`
	SecurityLevel string `yaml:"security_level"`
	AuthProtocol  string `yaml:"auth_protocol"`
	AuthPassword  string `yaml:"auth_password"`
	PrivProtocol  string `yaml:"priv_protocol"`
	PrivPassword  string `yaml:"priv_password"`
}

type yamlCompat struct {
	AggregateChassisBits bool `yaml:"aggregate_chassis_bits"`
	SkipInternalDisk     bool `yaml:"skip_internal_disk"`
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if raw.MetricsPath != "" {
		c.MetricsPath = raw.MetricsPath
	}
	if raw.CollectInterval != "" {
		d, ok := parseDuration(raw.CollectInterval)
		if !ok {
			return fmt.Errorf("invalid collect_interval %q in %s", raw.CollectInterval, path)
		}
		c.CollectInterval = d
	}

	if raw.SNMP.Target != "" {
		c.SNMP.Target = raw.SNMP.Target
	}
	if raw.SNMP.Port != 0 {
		c.SNMP.Port = raw.SNMP.Port
	}
	if raw.SNMP.Community != "" {
		c.SNMP.Community = raw.SNMP.Community
	}
	if raw.SNMP.Version != "" {
		c.SNMP.Version = raw.SNMP.Version
	}
	if raw.SNMP.Timeout != "" {
		d, ok := parseDuration(raw.SNMP.Timeout)
		if !ok {
			return fmt.Errorf("invalid snmp timeout %q in %s", raw.SNMP.Timeout, path)
		}
		c.SNMP.Timeout = d
	}
	if raw.SNMP.Retries != nil {
		c.SNMP.Retries = *raw.SNMP.Retries
	}
	if raw.SNMP.MaxOIDs != 0 {
		c.SNMP.MaxOIDs = raw.SNMP.MaxOIDs
	}
	if raw.SNMP.MaxRepetitions != 0 {
		c.SNMP.MaxRepetitions = raw.SNMP.MaxRepetitions
	}
	if raw.SNMP.User.Name != "" {
		c.SNMP.User = UserConfig{
			Name:          raw.SNMP.User.Name,
			SecurityLevel: raw.SNMP.User.SecurityLevel,
			AuthProtocol:  raw.SNMP.User.AuthProtocol,
			AuthPassword:  raw.SNMP.User.AuthPassword,
			PrivProtocol:  raw.SNMP.User.PrivProtocol,
			PrivPassword:  raw.SNMP.User.PrivPassword,
		}
	}

	c.Compat.AggregateChassisBits = raw.Compat.AggregateChassisBits
	c.Compat.SkipInternalDisk = raw.Compat.SkipInternalDisk
	return nil
}

func (c *Config) loadEnv() {
	c.MetricsPath = getEnv("METRICS_PATH", c.MetricsPath)
	c.CollectInterval = getEnvDuration("COLLECT_INTERVAL", c.CollectInterval)

	c.SNMP.Target = getEnv("SNMP_TARGET", c.SNMP.Target)
	c.SNMP.Port = getEnvInt("SNMP_PORT", c.SNMP.Port)
	c.SNMP.Community = getEnv("SNMP_COMMUNITY", c.SNMP.Community)
	c.SNMP.Version = getEnv("SNMP_VERSION", c.SNMP.Version)
	c.SNMP.Timeout = getEnvDuration("SNMP_TIMEOUT", c.SNMP.Timeout)
	c.SNMP.Retries = getEnvInt("SNMP_RETRIES", c.SNMP.Retries)
	c.SNMP.MaxOIDs = getEnvInt("SNMP_MAX_OIDS", c.SNMP.MaxOIDs)
	c.SNMP.MaxRepetitions = getEnvInt("SNMP_MAX_REPETITIONS", c.SNMP.MaxRepetitions)

	c.SNMP.User.Name = getEnv("SNMP_USERNAME", c.SNMP.User.Name)
	c.SNMP.User.SecurityLevel = getEnv("SNMP_SECURITY_LEVEL", c.SNMP.User.SecurityLevel)
	c.SNMP.User.AuthProtocol = getEnv("SNMP_AUTH_PROTOCOL", c.SNMP.User.AuthProtocol)
	c.SNMP.User.AuthPassword = getEnv("SNMP_AUTH_PASSWORD", c.SNMP.User.AuthPassword)
	c.SNMP.User.PrivProtocol = getEnv("SNMP_PRIV_PROTOCOL", c.SNMP.User.PrivProtocol)
	c.SNMP.User.PrivPassword = getEnv("SNMP_PRIV_PASSWORD", c.SNMP.User.PrivPassword)

	c.Compat.AggregateChassisBits = getEnvBool("COMPAT_AGGREGATE_CHASSIS_BITS", c.Compat.AggregateChassisBits)
	c.Compat.SkipInternalDisk = getEnvBool("COMPAT_SKIP_INTERNAL_DISK", c.Compat.SkipInternalDisk)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, ok := parseDuration(value); ok {
			return duration
		}
	}
	return defaultValue
}

// parseDuration accepts either a Go duration string or plain seconds.
func parseDuration(value string) (time.Duration, bool) {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration, true
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, true
	}
	return 0, false
}
