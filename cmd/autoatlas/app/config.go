package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/autoatlas/autoatlas/pkg/assets"
	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// Config file
	ConfigFile string

	// Data locations
	DataRoot    string
	RecordsPath string
	ImageRoot   string
	LogoRoot    string
	TierCount   int

	// Public asset URLs
	AssetMode    string
	AssetBaseURL string

	// HTTP listener
	HTTPHost string
	HTTPPort int
	AdminKey string

	// Logging configuration
	LogFormat string
	LogOutput string
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"data_root":      "AUTOATLAS_DATA_ROOT",
	"records_path":   "AUTOATLAS_RECORDS_PATH",
	"image_root":     "AUTOATLAS_IMAGE_ROOT",
	"logo_root":      "AUTOATLAS_LOGO_ROOT",
	"tier_count":     "AUTOATLAS_TIER_COUNT",
	"admin_key":      "AUTOATLAS_ADMIN_KEY",
	"asset_mode":     "ASSET_MODE",
	"asset_base_url": "ASSET_BASE_URL",
	"http_host":      "HTTP_HOST",
	"http_port":      "HTTP_PORT",
	"log_level":      "LOG_LEVEL",
	"log_format":     "LOG_FORMAT",
	"log_output":     "LOG_OUTPUT",
}

// LoadConfig loads configuration in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (explicit, or .autoatlas.yaml in the working or home directory)
//  5. Defaults
func LoadConfig(fs afero.Fs, configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetFs(fs)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.NewConfigError("env", "binding "+env, err)
		}
	}

	v.SetDefault("data_root", constants.DefaultDataRoot)
	v.SetDefault("tier_count", constants.DefaultTierCount)
	v.SetDefault("asset_mode", string(assets.ModeLocal))
	v.SetDefault("http_host", constants.DefaultHost)
	v.SetDefault("http_port", constants.DefaultPort)
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".autoatlas")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "reading "+describeConfig(configFile), err)
		}
	}

	return &Config{
		ConfigFile:   v.ConfigFileUsed(),
		DataRoot:     v.GetString("data_root"),
		RecordsPath:  v.GetString("records_path"),
		ImageRoot:    v.GetString("image_root"),
		LogoRoot:     v.GetString("logo_root"),
		TierCount:    v.GetInt("tier_count"),
		AdminKey:     v.GetString("admin_key"),
		AssetMode:    v.GetString("asset_mode"),
		AssetBaseURL: v.GetString("asset_base_url"),
		HTTPHost:     v.GetString("http_host"),
		HTTPPort:     v.GetInt("http_port"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
		LogOutput:    v.GetString("log_output"),
	}, nil
}

func describeConfig(configFile string) string {
	if configFile == "" {
		return ".autoatlas.yaml"
	}
	return filepath.Base(configFile)
}

// Assets returns the asset configuration. An unknown mode falls back to
// local and is reported as an error alongside the usable config.
func (c *Config) Assets() (assets.Config, error) {
	mode, err := assets.ParseMode(c.AssetMode)
	if err != nil {
		return assets.Config{Mode: assets.ModeLocal, BaseURL: c.AssetBaseURL}, err
	}
	return assets.Config{Mode: mode, BaseURL: c.AssetBaseURL}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, dataRoot string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if dataRoot != "" {
		c.DataRoot = dataRoot
	}
}

// loadEnvFiles loads .env then .env.local. Existing variables are not
// overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
