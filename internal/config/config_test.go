package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvRules, EnvLLDBInit, EnvHome, EnvHistory, EnvLLDB, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	want := Config{
		LLDBInitFile: filepath.Join(home, ".lldbinit"),
		HomeDir:      filepath.Join(home, ".dbgalias"),
		LLDBPath:     "lldb",
		LogLevel:     "warn",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
	if files := cfg.RuleFiles(); len(files) != 0 {
		t.Errorf("RuleFiles() = %v, want none", files)
	}
}

func TestLoad_Overrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)
	t.Setenv(EnvRules, "~/rules/HMSimpleCommands.h")
	t.Setenv(EnvLLDBInit, "/etc/lldbinit")
	t.Setenv(EnvHome, "~")
	t.Setenv(EnvHistory, "/tmp/hist")
	t.Setenv(EnvLLDB, "/usr/bin/lldb-17")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	want := Config{
		RulesFile:    filepath.Join(home, "rules", "HMSimpleCommands.h"),
		LLDBInitFile: "/etc/lldbinit",
		HomeDir:      home,
		HistoryFile:  "/tmp/hist",
		LLDBPath:     "/usr/bin/lldb-17",
		LogLevel:     "debug",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
	if got := FormatOf(cfg.RulesFile); got != RulesDirectives {
		t.Errorf("FormatOf(%q) = %v, want RulesDirectives", cfg.RulesFile, got)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)
	t.Setenv(EnvLogLevel, "chatty")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), EnvLogLevel) {
		t.Errorf("Load() error = %v, want it to name %s", err, EnvLogLevel)
	}
}

func TestLoad_RulesList(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)
	sep := string(os.PathListSeparator)
	t.Setenv(EnvRules, "builtin"+sep+" ~/extra.lldb"+sep+sep+"/etc/rules.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	want := []string{"builtin", filepath.Join(home, "extra.lldb"), "/etc/rules.yaml"}
	if got := cfg.RuleFiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("RuleFiles() = %v, want %v", got, want)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		file string
		want RulesFormat
	}{
		{"", RulesEmbedded},
		{"builtin", RulesEmbedded},
		{"rules.yaml", RulesYAML},
		{"rules.YML", RulesYAML},
		{"/home/me/.lldbinit", RulesDirectives},
		{"HMSimpleCommands.h", RulesDirectives},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if got := FormatOf(tt.file); got != tt.want {
				t.Errorf("FormatOf(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}
