/*
Package config loads dbgalias settings from the environment. Command-line
flags override these values in the CLI layer.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvRules    = "DBGALIAS_RULES"
	EnvLLDBInit = "DBGALIAS_LLDBINIT"
	EnvHome     = "DBGALIAS_HOME"
	EnvHistory  = "DBGALIAS_HISTORY"
	EnvLLDB     = "DBGALIAS_LLDB"
	EnvLogLevel = "DBGALIAS_LOG_LEVEL"
)

// BuiltinRules names the embedded shortcut table in a rules list.
const BuiltinRules = "builtin"

// RulesFormat selects the rule source for a rules file.
type RulesFormat int

const (
	// RulesEmbedded uses the built-in shortcut table.
	RulesEmbedded RulesFormat = iota
	// RulesYAML reads a YAML list of definitions.
	RulesYAML
	// RulesDirectives reads "command alias"/"command regex" lines.
	RulesDirectives
)

// Config holds the resolved settings.
type Config struct {
	RulesFile    string // Path list of rule files. Empty means the embedded defaults.
	LLDBInitFile string
	HomeDir      string // Directory for generated shortcut files.
	HistoryFile  string // Empty means autodetect.
	LLDBPath     string
	LogLevel     string
}

// Load reads the configuration from the environment, filling in defaults
// relative to the user's home directory.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to determine home directory: %w", err)
	}

	cfg := Config{
		RulesFile:    expandHomeList(os.Getenv(EnvRules), home),
		LLDBInitFile: expandHome(getEnv(EnvLLDBInit, filepath.Join(home, ".lldbinit")), home),
		HomeDir:      expandHome(getEnv(EnvHome, filepath.Join(home, ".dbgalias")), home),
		HistoryFile:  expandHome(os.Getenv(EnvHistory), home),
		LLDBPath:     getEnv(EnvLLDB, "lldb"),
		LogLevel:     getEnv(EnvLogLevel, "warn"),
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}
	return cfg, nil
}

// RuleFiles splits RulesFile on the OS path-list separator. Later files are
// registered after earlier ones.
func (c Config) RuleFiles() []string {
	var files []string
	for _, f := range filepath.SplitList(c.RulesFile) {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

// FormatOf reports which rule source a rules file needs.
func FormatOf(path string) RulesFormat {
	if path == "" || path == BuiltinRules {
		return RulesEmbedded
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return RulesYAML
	default:
		return RulesDirectives
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func expandHomeList(list, home string) string {
	if list == "" {
		return ""
	}
	parts := filepath.SplitList(list)
	for i, p := range parts {
		parts[i] = expandHome(strings.TrimSpace(p), home)
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// expandHome replaces a leading "~" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
