package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/findajay/energy-intelligence/internal/storage"
)

// Config holds service settings. Flags override environment variables,
// which override the optional YAML config file.
type Config struct {
	ListenAddr         string             `yaml:"listen"`
	Region             string             `yaml:"region"`
	UtilizationPercent float64            `yaml:"utilizationPercentage"`
	LogLevel           string             `yaml:"logLevel"`
	Storage            storage.BlobConfig `yaml:"storage"`
}

func defaultConfig() *Config {
	return &Config{
		ListenAddr: ":8080",
		Region:     "westeurope",
		LogLevel:   "info",
	}
}

func parseConfig(args []string) (*Config, error) {
	config := defaultConfig()

	fs := flag.NewFlagSet("energy-intelligence", flag.ContinueOnError)
	configFile := fs.String("config", os.Getenv("ENERGY_CONFIG_FILE"), "Path to YAML config file")
	listen := fs.String("listen", "", "Address to listen on")
	region := fs.String("region", "", "Region used for the per-report carbon grid intensity factor")
	utilization := fs.Float64("utilization", 0, "Default utilization percentage (0 derives it heuristically)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(config)

	if *listen != "" {
		config.ListenAddr = *listen
	}
	if *region != "" {
		config.Region = *region
	}
	if *utilization != 0 {
		config.UtilizationPercent = *utilization
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	if config.UtilizationPercent < 0 || config.UtilizationPercent > 100 {
		return nil, fmt.Errorf("utilization must be in [0,100], got %v", config.UtilizationPercent)
	}

	return config, nil
}

func applyEnv(config *Config) {
	if v := os.Getenv("ENERGY_LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("ENERGY_REGION"); v != "" {
		config.Region = v
	}
	if v := os.Getenv("ENERGY_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("ENERGY_STORAGE_ACCOUNT"); v != "" {
		config.Storage.AccountName = v
	}
	if v := os.Getenv("ENERGY_STORAGE_KEY"); v != "" {
		config.Storage.AccountKey = v
	}
	if v := os.Getenv("ENERGY_STORAGE_CONTAINER"); v != "" {
		config.Storage.Container = v
	}
	if v := os.Getenv("ENERGY_STORAGE_PREFIX"); v != "" {
		config.Storage.Prefix = v
	}
}
