package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/timescale/examplecheck/internal/examplecheck/folders"
	"github.com/timescale/examplecheck/internal/examplecheck/util"
)

type Config struct {
	Prefix       string       `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Delimiter    string       `mapstructure:"delimiter" json:"delimiter" yaml:"delimiter"`
	FileNameList string       `mapstructure:"file_name_list" json:"file_name_list" yaml:"file_name_list"`
	Output       OutputFormat `mapstructure:"output" json:"output" yaml:"output"`
	Filename     string       `mapstructure:"filename" json:"filename" yaml:"filename"`
	Message      string       `mapstructure:"message" json:"message" yaml:"message"`
	Debug        bool         `mapstructure:"debug" json:"debug" yaml:"debug"`
	NoColor      bool         `mapstructure:"no_color" json:"no_color" yaml:"no_color"`
	ConfigDir    string       `mapstructure:"config_dir" json:"config_dir" yaml:"config_dir"`
}

const (
	DefaultOutput   = OutputText
	DefaultFilename = "Siri1"
	DefaultMessage  = ",Welcom to Python World!"
	DefaultDebug    = false
	DefaultNoColor  = false
	ConfigFileName  = "config.yaml"
	EnvPrefix       = "EXAMPLECHECK"
)

var defaultValues = map[string]any{
	"prefix":         folders.DefaultPrefix,
	"delimiter":      folders.DefaultDelimiter,
	"file_name_list": "",
	"output":         string(DefaultOutput),
	"filename":       DefaultFilename,
	"message":        DefaultMessage,
	"debug":          DefaultDebug,
	"no_color":       DefaultNoColor,
}

var ErrEmptyDelimiter = errors.New("delimiter must not be empty")
var ErrEmptyPrefix = errors.New("prefix must not be empty")

func ApplyDefaults(v *viper.Viper) {
	for key, value := range defaultValues {
		v.SetDefault(key, value)
	}
}

func ApplyEnvOverrides(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

func ReadInConfig(v *viper.Viper) error {
	// A missing config file is fine; defaults and env vars still apply.
	if err := v.ReadInConfig(); err != nil &&
		!errors.As(err, &viper.ConfigFileNotFoundError{}) &&
		!errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SetupViper configures the global Viper instance with defaults, env vars
// and the config file found in configDir.
func SetupViper(configDir string) error {
	v := viper.GetViper()

	v.SetConfigFile(GetConfigFile(configDir))
	ApplyEnvOverrides(v)
	ApplyDefaults(v)

	return ReadInConfig(v)
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ConfigDir: filepath.Dir(v.ConfigFileUsed()),
	}

	if err := v.Unmarshal(cfg, viper.DecodeHook(outputFormatHook())); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Load creates a Config from the current global viper state. SetupViper
// must have been called first.
func Load() (*Config, error) {
	v := viper.GetViper()

	if err := ReadInConfig(v); err != nil {
		return nil, err
	}

	return FromViper(v)
}

// Validate checks the settings the folder filter depends on.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return ErrEmptyPrefix
	}
	if c.Delimiter == "" {
		return ErrEmptyDelimiter
	}
	_, err := ParseOutputFormat(string(c.Output))
	return err
}

func GetConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

func GetDefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.config/examplecheck"
	}

	return filepath.Join(homeDir, ".config", "examplecheck")
}

func GetEffectiveConfigDir(configDirFlag *pflag.Flag) string {
	if configDirFlag != nil && configDirFlag.Changed {
		return util.ExpandPath(configDirFlag.Value.String())
	}

	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return util.ExpandPath(dir)
	}

	return GetDefaultConfigDir()
}

// ResetGlobalConfig clears the global viper state between test runs.
func ResetGlobalConfig() {
	viper.Reset()
}
