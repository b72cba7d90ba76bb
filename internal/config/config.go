// Package config loads the daemon configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the resolved daemon configuration.
type Config struct {
	Listen        string        `yaml:"listen"`
	DBPath        string        `yaml:"db_path"`
	AdminPassword string        `yaml:"admin_password"`
	Endpoint      *EndpointSeed `yaml:"endpoint"`
}

// EndpointSeed optionally pre-populates the stored endpoint configuration
// on first start, so a deployment can ship fully configured except for
// credentials.
type EndpointSeed struct {
	SSOURL     string `yaml:"sso_url"`
	APIBaseURL string `yaml:"api_base_url"`
	ProjectID  string `yaml:"project_id"`
	Location   string `yaml:"location"`
	ModelID    string `yaml:"model_id"`
}

// Load reads the YAML file at path (a missing file just yields defaults),
// then applies HOST/PORT/SSOKEEPER_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Listen: "127.0.0.1:8086",
		DBPath: "ssokeeper.db",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults apply
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	host, port := "", ""
	if v := os.Getenv("HOST"); v != "" {
		host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port = v
	}
	if host != "" || port != "" {
		if host == "" {
			host = "127.0.0.1"
		}
		if port == "" {
			port = "8086"
		}
		cfg.Listen = host + ":" + port
	}

	if v := os.Getenv("SSOKEEPER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SSOKEEPER_ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}
}
