package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the prelint configuration.
type Config struct {
	Checker        string       `json:"checker"`
	Extension      string       `json:"extension"`
	Args           []string     `json:"args"`
	Strict         bool         `json:"strict"`
	LintConfig     string       `json:"lintConfig,omitempty"`
	Jobs           int          `json:"jobs"`
	TimeoutSeconds int          `json:"timeoutSeconds"`
	Ignore         []string     `json:"ignore,omitempty"`
	Report         ReportConfig `json:"report"`
	Cache          CacheConfig  `json:"cache"`
	Log            LogConfig    `json:"log"`
}

// ReportConfig controls how run results are rendered.
type ReportConfig struct {
	Format string `json:"format"`
	Out    string `json:"out,omitempty"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Checker:   "swiftlint",
		Extension: "swift",
		Args:      []string{"lint", "--quiet"},
		Report: ReportConfig{
			Format: "text",
		},
		Cache: CacheConfig{
			Enabled:    false,
			TTLSeconds: 86400,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for prelint.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prelint"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "prelint"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "prelint"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "prelint"), nil
	default:
		return filepath.Join(home, ".config", "prelint"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Checker != "" {
		dst.Checker = src.Checker
	}
	if src.Extension != "" {
		dst.Extension = src.Extension
	}
	if len(src.Args) > 0 {
		dst.Args = src.Args
	}
	if src.LintConfig != "" {
		dst.LintConfig = src.LintConfig
	}
	if src.Jobs > 0 {
		dst.Jobs = src.Jobs
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if len(src.Ignore) > 0 {
		dst.Ignore = src.Ignore
	}
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
	if src.Report.Out != "" {
		dst.Report.Out = src.Report.Out
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
	// JSON's zero value for bool can't distinguish unset from false. Both
	// defaults are false, so a file that sets true wins and anything else
	// leaves the default.
	dst.Strict = src.Strict || dst.Strict
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("PRELINT_CHECKER"); v != "" {
		cfg.Checker = v
	}
	if v := os.Getenv("PRELINT_EXTENSION"); v != "" {
		cfg.Extension = v
	}
	if v := os.Getenv("PRELINT_ARGS"); v != "" {
		cfg.Args = strings.Fields(v)
	}
	if v := os.Getenv("PRELINT_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PRELINT_STRICT must be a boolean: %w", err)
		}
		cfg.Strict = b
	}
	if v := os.Getenv("PRELINT_LINT_CONFIG"); v != "" {
		cfg.LintConfig = v
	}
	if v := os.Getenv("PRELINT_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRELINT_JOBS must be an integer: %w", err)
		}
		cfg.Jobs = n
	}
	if v := os.Getenv("PRELINT_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRELINT_TIMEOUT_SECONDS must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	}
	if v := os.Getenv("PRELINT_FORMAT"); v != "" {
		cfg.Report.Format = v
	}
	if v := os.Getenv("PRELINT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["checker"]; ok && v != "" {
		cfg.Checker = v
	}
	if v, ok := overrides["extension"]; ok && v != "" {
		cfg.Extension = v
	}
	if v, ok := overrides["strict"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}
	if v, ok := overrides["lintConfig"]; ok && v != "" {
		cfg.LintConfig = v
	}
	if v, ok := overrides["jobs"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Jobs = n
		}
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Report.Format = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.Log.Level = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "checker":
		cfg.Checker = value
	case "extension":
		cfg.Extension = value
	case "args":
		cfg.Args = strings.Fields(value)
	case "strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict must be a boolean: %w", err)
		}
		cfg.Strict = b
	case "lintConfig":
		cfg.LintConfig = value
	case "jobs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("jobs must be an integer: %w", err)
		}
		cfg.Jobs = n
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "format":
		cfg.Report.Format = value
	case "logLevel":
		cfg.Log.Level = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// ExtraArgs returns the per-run argument additions implied by the config:
// --strict and --config <path> when set.
func (c Config) ExtraArgs() []string {
	var extra []string
	if c.Strict {
		extra = append(extra, "--strict")
	}
	if c.LintConfig != "" {
		extra = append(extra, "--config", c.LintConfig)
	}
	return extra
}
