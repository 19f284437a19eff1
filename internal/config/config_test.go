package config

import (
	"os"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Checker != "swiftlint" {
		t.Errorf("Default checker = %q, want %q", cfg.Checker, "swiftlint")
	}
	if cfg.Extension != "swift" {
		t.Errorf("Default extension = %q, want %q", cfg.Extension, "swift")
	}
	if !reflect.DeepEqual(cfg.Args, []string{"lint", "--quiet"}) {
		t.Errorf("Default args = %v, want [lint --quiet]", cfg.Args)
	}
	if cfg.Strict {
		t.Error("Default strict should be false")
	}
	if cfg.Jobs != 0 {
		t.Errorf("Default jobs = %d, want 0 (unbounded)", cfg.Jobs)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("Default report format = %q, want %q", cfg.Report.Format, "text")
	}
	if cfg.Cache.Enabled {
		t.Error("Default cache should be disabled")
	}
	if cfg.Cache.TTLSeconds != 86400 {
		t.Errorf("Default cache TTL = %d, want 86400", cfg.Cache.TTLSeconds)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Default log level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestMergeEnv(t *testing.T) {
	// Save and restore env
	orig := map[string]string{}
	envKeys := []string{"PRELINT_CHECKER", "PRELINT_EXTENSION", "PRELINT_ARGS", "PRELINT_JOBS", "PRELINT_FORMAT", "PRELINT_STRICT"}
	for _, k := range envKeys {
		orig[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range orig {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	os.Setenv("PRELINT_CHECKER", "customlint")
	os.Setenv("PRELINT_EXTENSION", "kt")
	os.Setenv("PRELINT_ARGS", "check --fast")
	os.Setenv("PRELINT_JOBS", "8")
	os.Setenv("PRELINT_FORMAT", "json")
	os.Setenv("PRELINT_STRICT", "true")

	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		t.Fatalf("mergeEnv error: %v", err)
	}

	if cfg.Checker != "customlint" {
		t.Errorf("Checker = %q, want %q", cfg.Checker, "customlint")
	}
	if cfg.Extension != "kt" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, "kt")
	}
	if !reflect.DeepEqual(cfg.Args, []string{"check", "--fast"}) {
		t.Errorf("Args = %v, want [check --fast]", cfg.Args)
	}
	if cfg.Jobs != 8 {
		t.Errorf("Jobs = %d, want 8", cfg.Jobs)
	}
	if cfg.Report.Format != "json" {
		t.Errorf("Report.Format = %q, want %q", cfg.Report.Format, "json")
	}
	if !cfg.Strict {
		t.Error("Strict should be true")
	}
}

func TestMergeEnv_InvalidJobs(t *testing.T) {
	orig := os.Getenv("PRELINT_JOBS")
	defer func() {
		if orig == "" {
			os.Unsetenv("PRELINT_JOBS")
		} else {
			os.Setenv("PRELINT_JOBS", orig)
		}
	}()

	os.Setenv("PRELINT_JOBS", "notanumber")

	cfg := Default()
	if err := mergeEnv(&cfg); err == nil {
		t.Error("Expected error for invalid PRELINT_JOBS")
	}
}

func TestMergeEnv_InvalidStrict(t *testing.T) {
	orig := os.Getenv("PRELINT_STRICT")
	defer func() {
		if orig == "" {
			os.Unsetenv("PRELINT_STRICT")
		} else {
			os.Setenv("PRELINT_STRICT", orig)
		}
	}()

	os.Setenv("PRELINT_STRICT", "sometimes")

	cfg := Default()
	if err := mergeEnv(&cfg); err == nil {
		t.Error("Expected error for invalid PRELINT_STRICT")
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	overrides := map[string]string{
		"checker":   "stublint",
		"extension": "m",
		"strict":    "true",
		"jobs":      "4",
		"format":    "markdown",
	}
	mergeOverrides(&cfg, overrides)

	if cfg.Checker != "stublint" {
		t.Errorf("Checker = %q, want %q", cfg.Checker, "stublint")
	}
	if cfg.Extension != "m" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, "m")
	}
	if !cfg.Strict {
		t.Error("Strict should be true")
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Jobs)
	}
	if cfg.Report.Format != "markdown" {
		t.Errorf("Report.Format = %q, want %q", cfg.Report.Format, "markdown")
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg.Checker != "swiftlint" {
		t.Errorf("Checker changed with nil overrides")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key   string
		value string
	}{
		{"checker", "customlint"},
		{"extension", "kt"},
		{"args", "check --fast"},
		{"strict", "true"},
		{"lintConfig", ".swiftlint.yml"},
		{"jobs", "2"},
		{"timeoutSeconds", "90"},
		{"format", "json"},
		{"logLevel", "debug"},
	}

	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Errorf("SetField(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}

	if cfg.Checker != "customlint" {
		t.Errorf("Checker = %q, want %q", cfg.Checker, "customlint")
	}
	if !reflect.DeepEqual(cfg.Args, []string{"check", "--fast"}) {
		t.Errorf("Args = %v, want [check --fast]", cfg.Args)
	}
	if cfg.TimeoutSeconds != 90 {
		t.Errorf("TimeoutSeconds = %d, want 90", cfg.TimeoutSeconds)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nonexistent", "value"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestSetField_InvalidInt(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "jobs", "notanumber"); err == nil {
		t.Error("Expected error for non-integer value")
	}
}

func TestConfigPrecedence(t *testing.T) {
	// Overrides > env > defaults
	orig := os.Getenv("PRELINT_CHECKER")
	defer func() {
		if orig == "" {
			os.Unsetenv("PRELINT_CHECKER")
		} else {
			os.Setenv("PRELINT_CHECKER", orig)
		}
	}()

	os.Setenv("PRELINT_CHECKER", "envlint")

	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		t.Fatalf("mergeEnv error: %v", err)
	}
	if cfg.Checker != "envlint" {
		t.Errorf("After env merge, Checker = %q, want %q", cfg.Checker, "envlint")
	}

	mergeOverrides(&cfg, map[string]string{"checker": "flaglint"})
	if cfg.Checker != "flaglint" {
		t.Errorf("After override, Checker = %q, want %q", cfg.Checker, "flaglint")
	}
}

func TestMergeFile_BoolFields(t *testing.T) {
	dst := Default()
	src := Config{
		Strict: true,
		Cache:  CacheConfig{Enabled: true},
	}
	mergeFile(&dst, src)

	if !dst.Strict {
		t.Error("Strict should be true when file sets it")
	}
	if !dst.Cache.Enabled {
		t.Error("Cache.Enabled should be true when file sets it")
	}
}

func TestMergeFile_EmptyFile(t *testing.T) {
	dst := Default()
	mergeFile(&dst, Config{})

	if dst.Checker != "swiftlint" {
		t.Errorf("Checker = %q, want default preserved", dst.Checker)
	}
	if dst.Strict {
		t.Error("Strict should remain false for an empty file")
	}
	if dst.Cache.Enabled {
		t.Error("Cache.Enabled should remain false for an empty file")
	}
}

func TestMergeFile_AllFields(t *testing.T) {
	dst := Default()
	src := Config{
		Checker:        "customlint",
		Extension:      "kt",
		Args:           []string{"check"},
		LintConfig:     "rules.yml",
		Jobs:           6,
		TimeoutSeconds: 120,
		Ignore:         []string{"Generated"},
		Report:         ReportConfig{Format: "json", Out: "out.json"},
		Cache:          CacheConfig{Dir: "/tmp/cache", TTLSeconds: 3600},
		Log:            LogConfig{Level: "debug", Format: "json"},
	}
	mergeFile(&dst, src)

	if dst.Checker != "customlint" {
		t.Errorf("Checker = %q, want %q", dst.Checker, "customlint")
	}
	if dst.Extension != "kt" {
		t.Errorf("Extension = %q, want %q", dst.Extension, "kt")
	}
	if !reflect.DeepEqual(dst.Args, []string{"check"}) {
		t.Errorf("Args = %v, want [check]", dst.Args)
	}
	if dst.LintConfig != "rules.yml" {
		t.Errorf("LintConfig = %q, want %q", dst.LintConfig, "rules.yml")
	}
	if dst.Jobs != 6 {
		t.Errorf("Jobs = %d, want 6", dst.Jobs)
	}
	if dst.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %d, want 120", dst.TimeoutSeconds)
	}
	if len(dst.Ignore) != 1 || dst.Ignore[0] != "Generated" {
		t.Errorf("Ignore = %v, want [Generated]", dst.Ignore)
	}
	if dst.Report.Format != "json" || dst.Report.Out != "out.json" {
		t.Errorf("Report = %+v, want json/out.json", dst.Report)
	}
	if dst.Cache.Dir != "/tmp/cache" || dst.Cache.TTLSeconds != 3600 {
		t.Errorf("Cache = %+v, want /tmp/cache with TTL 3600", dst.Cache)
	}
	if dst.Log.Level != "debug" || dst.Log.Format != "json" {
		t.Errorf("Log = %+v, want debug/json", dst.Log)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()

	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg-test/prelint" {
		t.Errorf("ConfigDir = %q, want %q", dir, "/tmp/xdg-test/prelint")
	}
}

func TestConfigPath(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()

	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if path != "/tmp/xdg-test/prelint/config.json" {
		t.Errorf("ConfigPath = %q, want %q", path, "/tmp/xdg-test/prelint/config.json")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.Checker = "customlint"
	cfg.Jobs = 3

	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Checker != "customlint" {
		t.Errorf("Checker = %q, want %q", loaded.Checker, "customlint")
	}
	if loaded.Jobs != 3 {
		t.Errorf("Jobs = %d, want 3", loaded.Jobs)
	}
}

func TestLoadFile_NoFile(t *testing.T) {
	tmpDir := t.TempDir()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	// Should return zero config, not defaults
	if cfg.Checker != "" {
		t.Errorf("Checker should be empty for missing file, got %q", cfg.Checker)
	}
}

func TestLoad_Integration(t *testing.T) {
	tmpDir := t.TempDir()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	// No config file — should get defaults + overrides
	cfg, err := Load(map[string]string{"checker": "stublint"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Checker != "stublint" {
		t.Errorf("Checker = %q, want %q", cfg.Checker, "stublint")
	}
	// Defaults should be preserved for unset fields
	if cfg.Extension != "swift" {
		t.Errorf("Extension = %q, want %q (default)", cfg.Extension, "swift")
	}
}

func TestExtraArgs(t *testing.T) {
	cfg := Default()
	if got := cfg.ExtraArgs(); len(got) != 0 {
		t.Errorf("ExtraArgs = %v, want none by default", got)
	}

	cfg.Strict = true
	cfg.LintConfig = ".swiftlint.yml"
	want := []string{"--strict", "--config", ".swiftlint.yml"}
	if got := cfg.ExtraArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtraArgs = %v, want %v", got, want)
	}
}
