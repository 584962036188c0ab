// Config loading for the partsdesk CLI.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/partsdesk/internal/logger"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix scopes environment overrides, e.g. PARTSDESK_BACKEND.
	envPrefix = "PARTSDESK"

	cfgKeyBackend     = "backend"
	cfgKeySeed        = "seed"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"
	cfgKeyDepartments = "catalog.departments"
	cfgKeyItemCodes   = "catalog.item_codes"
	cfgKeyCategories  = "catalog.categories"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# partsdesk configuration

# Store backend: memory or sqlite. Both keep data in memory only.
backend: memory

# Load the sample part on startup.
seed: true

# Logging: debug, info, warn, error; console or json.
log_level: warn
log_format: console

# Option lists offered when filling in a part.
catalog:
  departments: [Cashier, ConnecticutF, IT Support, Management]
  item_codes: [ConnecticutF, MassachusettsG, NewYorkH]
  categories: [CPU, GPU, RAM, Storage, Motherboard]
`

// Settings is the resolved CLI configuration.
type Settings struct {
	Store   types.Config
	Catalog types.Catalog
	Log     logger.Config
}

// loadDotEnv exports variables from envFile into the process environment.
// A missing file is not an error.
func loadDotEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return nil
}

// loadConfig reads config.yaml from configDir using Viper, with
// PARTSDESK_* environment overrides. It creates the directory and a default
// config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	catalog := types.DefaultCatalog()
	logCfg := logger.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendMemory)
	v.SetDefault(cfgKeySeed, true)
	v.SetDefault(cfgKeyLogLevel, logCfg.Level)
	v.SetDefault(cfgKeyLogFormat, logCfg.Format)
	v.SetDefault(cfgKeyDepartments, catalog.Departments)
	v.SetDefault(cfgKeyItemCodes, catalog.ItemCodes)
	v.SetDefault(cfgKeyCategories, catalog.Categories)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// settingsFrom extracts and validates Settings from a loaded Viper instance.
func settingsFrom(v *viper.Viper) (Settings, error) {
	s := Settings{
		Store: types.Config{
			Backend: v.GetString(cfgKeyBackend),
			Seed:    v.GetBool(cfgKeySeed),
		},
		Catalog: types.Catalog{
			Departments: stringList(v, cfgKeyDepartments),
			ItemCodes:   stringList(v, cfgKeyItemCodes),
			Categories:  stringList(v, cfgKeyCategories),
		},
		Log: logger.Config{
			Level:  v.GetString(cfgKeyLogLevel),
			Format: v.GetString(cfgKeyLogFormat),
		},
	}
	if err := s.Store.Validate(); err != nil {
		return Settings{}, fmt.Errorf("backend %q: %w", s.Store.Backend, err)
	}
	return s, nil
}

// stringList reads a list key. Lists from config.yaml arrive as sequences;
// environment overrides arrive as one string and are split on commas, so
// entries such as "IT Support" keep their spaces.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// loadSettings runs the full chain: .env, config.yaml, environment.
func loadSettings(configDir, envFile string) (Settings, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Settings{}, err
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return Settings{}, err
	}
	return settingsFrom(v)
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
