package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Storage  *StorageConfig  `mapstructure:"storage"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// StorageConfig selects the persistence backend. Driver is "sqlite" for the
// embedded local store or "postgres" for the remote managed store.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Load reads the YAML config at path, with environment variable overrides
// under the STANDBOARD prefix (e.g. STANDBOARD_STORAGE_DRIVER).
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("STANDBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if err := validate(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// Watch logs config file changes so a restart can pick them up. Store and
// server settings are read once at startup and are not hot-swapped.
func Watch() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name))
	})
	viper.WatchConfig()
}

func validate(conf *AppConfig) error {
	if conf.API == nil || conf.Gin == nil || conf.Storage == nil {
		return fmt.Errorf("config is missing required sections (api, gin, storage)")
	}

	switch conf.Storage.Driver {
	case StorageDriverSQLite:
		if conf.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required when storage.driver is %q", StorageDriverSQLite)
		}
	case StorageDriverPostgres:
		if conf.Postgres == nil {
			return fmt.Errorf("postgres section is required when storage.driver is %q", StorageDriverPostgres)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}

	return nil
}
