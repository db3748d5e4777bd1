package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the labkit configuration
type Config struct {
	Window WindowConfig `yaml:"window" mapstructure:"window"`
	Quiz   QuizConfig   `yaml:"quiz" mapstructure:"quiz"`
	Solve  SolveConfig  `yaml:"solve" mapstructure:"solve"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// WindowConfig contains tutorial window settings
type WindowConfig struct {
	Title  string `yaml:"title" mapstructure:"title"`
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	TPS    int    `yaml:"tps" mapstructure:"tps"`
	Stage  string `yaml:"stage" mapstructure:"stage"`
	Mesh   string `yaml:"mesh" mapstructure:"mesh"`
}

// QuizConfig contains quiz harness settings
type QuizConfig struct {
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// SolveConfig contains linear-solve settings
type SolveConfig struct {
	MatrixFile string `yaml:"matrix_file" mapstructure:"matrix_file"`
	RHSFile    string `yaml:"rhs_file" mapstructure:"rhs_file"`
}

// OutputConfig controls where run results are persisted
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "OpenGL Tutorial",
			Width:  640,
			Height: 480,
			TPS:    60,
			Stage:  "blank",
		},
		Quiz: QuizConfig{
			Tolerance: 1e-5,
		},
		Output: OutputConfig{
			Dir: filepath.Join(DefaultHome(), "results"),
		},
	}
}

// DefaultHome returns the default labkit home directory.
func DefaultHome() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".labkit")
}

// LoadConfig loads configuration from an explicit config file, or
// from the given home directory when cfgFile is empty, falling back
// to defaults when no config file exists. Environment variables
// prefixed LABKIT_ override file values (dots become underscores, so
// solve.matrix_file reads LABKIT_SOLVE_MATRIX_FILE).
func LoadConfig(home, cfgFile string) (*Config, error) {
	if home == "" {
		home = DefaultHome()
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("LABKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// An explicitly requested file must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to the given home directory.
func SaveConfig(home string, config *Config) error {
	if home == "" {
		home = DefaultHome()
	}
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configFile := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("window.title", def.Window.Title)
	v.SetDefault("window.width", def.Window.Width)
	v.SetDefault("window.height", def.Window.Height)
	v.SetDefault("window.tps", def.Window.TPS)
	v.SetDefault("window.stage", def.Window.Stage)
	v.SetDefault("window.mesh", def.Window.Mesh)
	v.SetDefault("quiz.tolerance", def.Quiz.Tolerance)
	v.SetDefault("solve.matrix_file", def.Solve.MatrixFile)
	v.SetDefault("solve.rhs_file", def.Solve.RHSFile)
	v.SetDefault("output.dir", def.Output.Dir)
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d",
			config.Window.Width, config.Window.Height)
	}
	if config.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", config.Window.TPS)
	}
	if config.Quiz.Tolerance <= 0 {
		return fmt.Errorf("quiz tolerance must be positive, got %g", config.Quiz.Tolerance)
	}
	return nil
}
