package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type (
	Config struct {
		Language string       `json:"language"`
		Gemini   GeminiConfig `json:"gemini"`
		Roast    RoastConfig  `json:"roast"`
		Alibi    AlibiConfig  `json:"alibi"`
		Yeet     YeetConfig   `json:"yeet"`

		PathFile string `json:"-"`
	}

	GeminiConfig struct {
		APIKey string `json:"api_key,omitempty"`
		Model  Model  `json:"model"`
	}

	RoastConfig struct {
		MaxChars      int  `json:"max_chars"`
		MaxFiles      int  `json:"max_files"`
		CacheEnabled  bool `json:"cache_enabled"`
		CacheTTLHours int  `json:"cache_ttl_hours"`
	}

	AlibiConfig struct {
		MarkerDir     string `json:"marker_dir"`
		TemplatesFile string `json:"templates_file,omitempty"`
		StepDelayMs   int    `json:"step_delay_ms"`
	}

	YeetConfig struct {
		MinAnimationMs int      `json:"min_animation_ms"`
		ExtraTargets   []string `json:"extra_targets,omitempty"`
	}
)

const (
	dirName  = ".mischief"
	fileName = "config.json"

	defaultMaxChars       = 15000
	defaultMaxFiles       = 10
	defaultCacheTTLHours  = 24
	defaultMarkerDir      = ".alibi"
	defaultStepDelayMs    = 200
	defaultMinAnimationMs = 3000
)

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Language: LangEN,
		Gemini: GeminiConfig{
			Model: DefaultModel(),
		},
		Roast: RoastConfig{
			MaxChars:      defaultMaxChars,
			MaxFiles:      defaultMaxFiles,
			CacheEnabled:  true,
			CacheTTLHours: defaultCacheTTLHours,
		},
		Alibi: AlibiConfig{
			MarkerDir:   defaultMarkerDir,
			StepDelayMs: defaultStepDelayMs,
		},
		Yeet: YeetConfig{
			MinAnimationMs: defaultMinAnimationMs,
		},
	}
}

// Dir returns the directory that holds the config file and the response cache.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, dirName)
}

// LoadConfig reads the config under homeDir, creating it with defaults when
// missing. A path ending in .json is used as the file itself.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configPath = filepath.Join(Dir(path), fileName)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.PathFile = configPath
	if config.Gemini.Model == "" {
		config.Gemini.Model = DefaultModel()
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	config.PathFile = path

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not defined")
	}

	if err := os.MkdirAll(filepath.Dir(config.PathFile), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	// the file may hold an API key
	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment overrides. lookup is os.LookupEnv outside tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v, ok := lookup(key); ok && v != "" {
			c.Gemini.APIKey = v
			break
		}
	}
	if v, ok := lookup("MISCHIEF_LANG"); ok && v != "" {
		c.Language = NormalizeLanguage(v)
	}
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Roast.CacheTTLHours) * time.Hour
}

func (c *Config) StepDelay() time.Duration {
	return time.Duration(c.Alibi.StepDelayMs) * time.Millisecond
}

func (c *Config) MinAnimation() time.Duration {
	return time.Duration(c.Yeet.MinAnimationMs) * time.Millisecond
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if config.Roast.MaxChars <= 0 {
		return errors.New("roast.max_chars must be greater than 0")
	}
	if config.Roast.MaxFiles <= 0 {
		return errors.New("roast.max_files must be greater than 0")
	}
	if config.Roast.CacheTTLHours < 0 {
		return errors.New("roast.cache_ttl_hours cannot be negative")
	}
	if config.Alibi.MarkerDir == "" || filepath.IsAbs(config.Alibi.MarkerDir) {
		return errors.New("alibi.marker_dir must be a relative path")
	}
	if config.Alibi.StepDelayMs < 0 || config.Yeet.MinAnimationMs < 0 {
		return errors.New("delays cannot be negative")
	}
	return nil
}
