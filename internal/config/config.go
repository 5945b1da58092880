package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppName names the configuration directory and the environment prefix.
const AppName = "edareport"

// Global configuration structure.
type Global struct {
	Output            string `mapstructure:"output" yaml:"output"`
	ImageDir          string `mapstructure:"image_dir" yaml:"image_dir"`
	DistributionCount int    `mapstructure:"distribution_count" yaml:"distribution_count"`
	ImageWidth        int    `mapstructure:"image_width" yaml:"image_width"`
	HistogramBins     int    `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	MaxCategories     int    `mapstructure:"max_categories" yaml:"max_categories"`

	// Input parsing
	Delimiter     string   `mapstructure:"delimiter" yaml:"delimiter"`
	MissingValues []string `mapstructure:"missing_values" yaml:"missing_values"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{
	"output", "image_dir", "distribution_count", "image_width", "histogram_bins",
	"max_categories", "delimiter", "missing_values", "log_level", "log_format",
}

// Dir returns the directory holding the default config file.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Path resolves cfgFile, falling back to DefaultPath when empty.
func Path(cfgFile string) string {
	if cfgFile != "" {
		return cfgFile
	}
	return DefaultPath()
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to DefaultPath, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := Path(cfgFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDAREPORT")
	v.AutomaticEnv()

	v.SetDefault("output", "analysis_report.html")
	v.SetDefault("image_dir", "")
	v.SetDefault("distribution_count", 6)
	v.SetDefault("image_width", 400)
	v.SetDefault("histogram_bins", 20)
	v.SetDefault("max_categories", 20)
	v.SetDefault("delimiter", "")
	v.SetDefault("missing_values", []string{})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Set assigns a string value to the named key, parsing numbers and lists as needed.
func (c *Global) Set(key, value string) error {
	switch key {
	case "output":
		c.Output = value
	case "image_dir":
		c.ImageDir = value
	case "delimiter":
		c.Delimiter = value
	case "log_level":
		c.LogLevel = value
	case "log_format":
		c.LogFormat = value
	case "missing_values":
		c.MissingValues = splitList(value)
	case "distribution_count":
		return setInt(&c.DistributionCount, key, value)
	case "image_width":
		return setInt(&c.ImageWidth, key, value)
	case "histogram_bins":
		return setInt(&c.HistogramBins, key, value)
	case "max_categories":
		return setInt(&c.MaxCategories, key, value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
