package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/mbti/errors"
	"github.com/teranos/mbti/logger"
)

// configMu guards the cached config, the viper instance and the explicit
// config path. The config watcher reloads from its own goroutine.
var (
	configMu           sync.Mutex
	globalConfig       *Config
	viperInstance      *viper.Viper
	explicitConfigPath string
)

// Load reads the configuration cascade using Viper. The result is cached
// until Reset.
func Load() (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	return loadLocked()
}

// Reload drops the cache and reads the cascade again in one step.
func Reload() (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	resetLocked()
	return loadLocked()
}

func loadLocked() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	configMu.Lock()
	defer configMu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads defaults plus a single config file, ignoring the cascade
// and environment.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", configPath)
	}
	return config, nil
}

// SetConfigFile adds an explicit config file (from --config) merged above
// the project file. It clears any cached config.
func SetConfigFile(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	explicitConfigPath = path
	resetLocked()
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	configMu.Lock()
	defer configMu.Unlock()
	resetLocked()
}

func resetLocked() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold configMu.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v, configPaths())

	viperInstance = v
	return v
}

// ConfigPaths returns the files of the cascade in precedence order, lowest
// first: system, user, project, then the --config file. Files that do not
// exist are skipped at merge time.
func ConfigPaths() []string {
	configMu.Lock()
	defer configMu.Unlock()
	return configPaths()
}

func configPaths() []string {
	paths := []string{SystemConfig}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, UserConfigDir, ConfigFileName))
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	if explicitConfigPath != "" {
		paths = append(paths, explicitConfigPath)
	}
	return paths
}

// ActiveConfigPath returns the highest-precedence config file that exists,
// or "" when only defaults and environment apply.
func ActiveConfigPath() string {
	paths := ConfigPaths()
	for i := len(paths) - 1; i >= 0; i-- {
		if _, err := os.Stat(paths[i]); err == nil {
			return paths[i]
		}
	}
	return ""
}

// findProjectConfig searches for am.toml by walking up the directory tree
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges each existing file into the config layer, so
// environment variables still take precedence over every file.
func mergeConfigFiles(v *viper.Viper, paths []string) {
	for _, configPath := range paths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file", logger.FieldConfigPath, configPath, logger.FieldError, err)
			continue
		}
		_ = v.MergeConfigMap(tempViper.AllSettings())
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return GetViper().GetString(key)
}
