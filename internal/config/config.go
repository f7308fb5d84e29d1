package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Store  StoreConfig  `mapstructure:"store"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type DBConfig struct {
	DSN                    string `mapstructure:"dsn"`
	MaxOpenConns           int    `mapstructure:"maxOpenConns"`
	MaxIdleConns           int    `mapstructure:"maxIdleConns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes"`
}

type StoreConfig struct {
	// Driver selects the storage backend: "mysql" or "memory".
	Driver string `mapstructure:"driver"`
}

// Store drivers
const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.vibecart/")
	v.AddConfigPath("/etc/vibecart/")

	// Enable environment variable override with VIBECART_ prefix
	v.SetEnvPrefix("VIBECART")
	v.AutomaticEnv()

	setDefaults(v)

	// A missing config file is fine, defaults plus env cover local runs
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Store.Driver != DriverMySQL && config.Store.Driver != DriverMemory {
		return nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:5173"})
	v.SetDefault("db.dsn", "vibecart:vibecart@tcp(localhost:3306)/vibecart?parseTime=true")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("db.maxIdleConns", 5)
	v.SetDefault("db.connMaxLifetimeMinutes", 30)
	v.SetDefault("store.driver", DriverMySQL)
}
