// Package config loads CLI configuration.
//
// Sources, highest priority first:
//  1. explicit path (--config);
//  2. CLINIC_CONFIG;
//  3. environment variables only.
//
// Environment variables always overlay file values.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/viant/clinic"
)

// PathEnv names the variable holding the configuration file path.
const PathEnv = "CLINIC_CONFIG"

type Config struct {
	Env    string       `yaml:"env" env:"CLINIC_ENV" env-default:"local"`
	Client ClientConfig `yaml:"client"`
	Mock   MockConfig   `yaml:"mock"`
}

// ClientConfig locates the API and the credential store.
type ClientConfig struct {
	BaseURL     string `yaml:"baseURL" env:"CLINIC_BASE_URL" env-default:"https://backend-diagnostic-2.onrender.com/api"`
	RefreshPath string `yaml:"refreshPath" env:"CLINIC_REFRESH_PATH" env-default:"/users/refreshToken"`
	LoginPath   string `yaml:"loginPath" env:"CLINIC_LOGIN_PATH" env-default:"/login"`
	StoreURL    string `yaml:"storeURL" env:"CLINIC_STORE_URL" env-default:"~/.clinic/session.json"`
	SecretKey   string `yaml:"secretKey" env:"CLINIC_SECRET_KEY"`
}

// Options converts the section to client options.
func (c ClientConfig) Options() *clinic.ClientOptions {
	return &clinic.ClientOptions{
		BaseURL:     c.BaseURL,
		RefreshPath: c.RefreshPath,
		LoginPath:   c.LoginPath,
		StoreURL:    c.StoreURL,
		SecretKey:   c.SecretKey,
	}
}

// MockConfig configures the local mock API server.
type MockConfig struct {
	Host      string        `yaml:"host" env:"CLINIC_MOCK_HOST" env-default:"127.0.0.1"`
	Port      string        `yaml:"port" env:"CLINIC_MOCK_PORT" env-default:"8089"`
	AccessTTL time.Duration `yaml:"accessTTL" env:"CLINIC_MOCK_ACCESS_TTL" env-default:"15m"`
}

func (m MockConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// MustLoad panics when configuration cannot be loaded.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	return &cfg, nil
}
