package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Frontend FrontendConfig `yaml:"frontend"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// SupabaseConfig holds the connection settings for the managed platform
// (auth, data API and object storage all live under one base URL)
type SupabaseConfig struct {
	URL           string `yaml:"url"`
	AnonKey       string `yaml:"anon_key"`
	StorageBucket string `yaml:"storage_bucket"`
}

// FrontendConfig holds frontend configuration
type FrontendConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the settings every request depends on are present
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("supabase.url is required")
	}
	if c.Supabase.AnonKey == "" {
		return fmt.Errorf("supabase.anon_key is required")
	}
	if c.Supabase.StorageBucket == "" {
		return fmt.Errorf("supabase.storage_bucket is required")
	}
	c.Supabase.URL = strings.TrimRight(c.Supabase.URL, "/")
	return nil
}
