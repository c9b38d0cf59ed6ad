package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/idilsaglam/trip/internal/logger"
	"github.com/idilsaglam/trip/internal/model"
)

const (
	AppName    = "trip"
	EnvPrefix  = "TRIP"
	DBFileName = "trip.db"
	LogName    = "trip.log"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds everything the binary reads from flags, env and file.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logger  logger.Config `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"data_dir"`
	Key     string `mapstructure:"key"`
}

type UIConfig struct {
	// Theme forces "light" or "dark" for this run without touching the stored
	// preference. Empty follows the stored isDark flag.
	Theme string `mapstructure:"theme"`
}

// DBPath is the sqlite file inside the data dir.
func (s StorageConfig) DBPath() string { return filepath.Join(s.DataDir, DBFileName) }

// New returns a viper instance with defaults and env bindings applied.
// A .env file in the working directory is loaded first when present.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindEnvVars(v)
	return v
}

func setDefaults(v *viper.Viper) {
	dir := DataDir(AppName)
	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.data_dir", dir)
	v.SetDefault("storage.key", model.StorageKey)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.theme", "")
}

// Short env names: TRIP_DATA_DIR rather than TRIP_STORAGE_DATA_DIR.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("storage.backend", EnvPrefix+"_BACKEND")
	_ = v.BindEnv("storage.data_dir", EnvPrefix+"_DATA_DIR")
	_ = v.BindEnv("storage.key", EnvPrefix+"_STORAGE_KEY")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("log.file", EnvPrefix+"_LOG_FILE")
	_ = v.BindEnv("ui.theme", EnvPrefix+"_THEME")
}

// Load reads the optional config file and unmarshals v.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Logger.File == "" {
		cfg.Logger.File = filepath.Join(cfg.Storage.DataDir, LogName)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage backend %q (want json|sqlite|memory)", cfg.Storage.Backend)
	}
	if strings.TrimSpace(cfg.Storage.DataDir) == "" && cfg.Storage.Backend != BackendMemory {
		return errors.New("storage data dir is empty")
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		return errors.New("storage key is empty")
	}
	switch cfg.UI.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("ui theme %q (want light|dark)", cfg.UI.Theme)
	}
	return nil
}

// DataDir follows XDG_DATA_HOME, falling back to ~/.local/share/<app> and
// finally ./<app>.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}
