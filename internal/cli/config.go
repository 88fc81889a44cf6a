package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "CONTACTS"

	// Config keys; environment variables are CONTACTS_<KEY>.
	cfgKeyBackend   = "backend"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	flagBackend   = "backend"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// settings is the resolved configuration of one invocation.
type settings struct {
	ConfigDir  string
	ConfigFile string // empty when no config.yaml was read
	Backend    string
	LogLevel   string
	LogFormat  string
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend   string `yaml:"backend"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// loadSettings resolves configuration with precedence flag > environment >
// config.yaml > defaults. A .env file in the working directory is loaded into
// the environment first; a missing .env or config.yaml is not an error.
func loadSettings(configDirFlag string, flags *pflag.FlagSet) (settings, error) {
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendMemory)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, logger.FormatJSON)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		cfgKeyBackend:   flagBackend,
		cfgKeyLogLevel:  flagLogLevel,
		cfgKeyLogFormat: flagLogFormat,
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return settings{
		ConfigDir:  configDir,
		ConfigFile: v.ConfigFileUsed(),
		Backend:    v.GetString(cfgKeyBackend),
		LogLevel:   v.GetString(cfgKeyLogLevel),
		LogFormat:  v.GetString(cfgKeyLogFormat),
	}, nil
}

// writeConfigIfMissing creates config.yaml from s if the file does not exist.
// It reports whether the file was written.
func writeConfigIfMissing(dir string, s settings) (string, bool, error) {
	path := filepath.Join(dir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return path, false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Backend:   s.Backend,
		LogLevel:  s.LogLevel,
		LogFormat: s.LogFormat,
	})
	if err != nil {
		return path, false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}
