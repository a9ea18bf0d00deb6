package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, body string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "ui: plain\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if BaseDirFromConfigPath(got) != root {
		t.Fatalf("expected base dir %s, got %s", root, BaseDirFromConfigPath(got))
	}
}

func TestFindConfigPathMissing(t *testing.T) {
	_, err := FindConfigPath(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIAuto || cfg.Seed != 0 || cfg.Bank != "" || cfg.Source != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.File != "" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadDiscoveredFileResolvesPaths(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `bank: banks/revision.yml
ui: Plain
seed: 42
no_color: true
report: out/results.html
log:
  file: logs/quiz.log
  level: debug
`)
	cfg, err := Load("", root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIPlain || cfg.Seed != 42 || !cfg.NoColor {
		t.Fatalf("unexpected settings %+v", cfg)
	}
	if cfg.Bank != filepath.Join(root, "banks", "revision.yml") {
		t.Fatalf("expected bank resolved against root, got %s", cfg.Bank)
	}
	if cfg.Report != filepath.Join(root, "out", "results.html") {
		t.Fatalf("expected report resolved against root, got %s", cfg.Report)
	}
	if cfg.Log.File != filepath.Join(root, "logs", "quiz.log") || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	opts := cfg.LoggingOptions()
	if opts.File != cfg.Log.File || opts.MaxBackups != 3 {
		t.Fatalf("unexpected logging options %+v", opts)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "ui: live\nseed: 1\n")
	t.Setenv("STUDYQUIZ_UI", "plain")
	t.Setenv("STUDYQUIZ_SEED", "9")
	t.Setenv("STUDYQUIZ_LOG_LEVEL", "warn")
	cfg, err := Load("", root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIPlain || cfg.Seed != 9 || cfg.Log.Level != "warn" {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), "")
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "ui", mutate: func(cfg *Config) { cfg.UI = "web" }},
		{name: "level", mutate: func(cfg *Config) { cfg.Log.Level = "loud" }},
		{name: "rotation", mutate: func(cfg *Config) { cfg.Log.MaxBackups = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "ui: web\n")
	if _, err := Load("", root); err == nil {
		t.Fatalf("expected invalid ui error")
	}
}
