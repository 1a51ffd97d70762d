package history

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/core/testutil"
)

func TestNewHistoryProvider(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	histFile := filepath.Join(home, ".lldb", "lldb-widehistory")

	tests := []struct {
		name                 string
		fileFinder           ports.HistoryFileFinder
		setup                func(t *testing.T)
		wantErr              bool
		wantHistoryFile      string
		wantSourceIdentifier string
	}{
		{
			name:    "nil finder",
			wantErr: true,
		},
		{
			name: "history file found by mock",
			fileFinder: &testutil.MockHistoryFileFinder{
				FindFunc: func() (string, error) { return histFile, nil },
			},
			wantHistoryFile:      histFile,
			wantSourceIdentifier: "File: ~/.lldb/lldb-widehistory",
		},
		{
			name: "history file not found by mock",
			fileFinder: &testutil.MockHistoryFileFinder{
				FindFunc: func() (string, error) { return "", errors.New("mock: no history file found") },
			},
			wantSourceIdentifier: "LLDB history (file not found or configured)",
		},
		{
			name:       "default finder with override",
			fileFinder: NewDefaultHistoryFileFinder(filepath.Join(home, "custom_hist")),
			setup: func(t *testing.T) {
				manageTestFile(t, filepath.Join(home, "custom_hist"), []byte("bt\n"))
			},
			wantHistoryFile:      filepath.Join(home, "custom_hist"),
			wantSourceIdentifier: "File: ~/custom_hist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup(t)
			}
			provider, err := NewHistoryProvider(tt.fileFinder)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewHistoryProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			hp, ok := provider.(*HistoryProvider)
			if !ok {
				t.Fatalf("NewHistoryProvider() did not return a *HistoryProvider")
			}
			if hp.GetHistoryFilePath() != tt.wantHistoryFile {
				t.Errorf("HistoryFile = %q, want %q", hp.GetHistoryFilePath(), tt.wantHistoryFile)
			}
			if hp.GetSourceIdentifier() != tt.wantSourceIdentifier {
				t.Errorf("GetSourceIdentifier() = %q, want %q", hp.GetSourceIdentifier(), tt.wantSourceIdentifier)
			}
		})
	}
}

func TestHistoryProvider_GetSourceIdentifier(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	absPath := filepath.Join(home, ".lldb", "lldb-widehistory")

	tests := []struct {
		name           string
		provider       *HistoryProvider
		wantIdentifier string
	}{
		{
			name:           "identifier set during creation",
			provider:       &HistoryProvider{HistoryFile: absPath, sourceIdentifier: "File: custom"},
			wantIdentifier: "File: custom",
		},
		{
			name:           "fallback: sourceIdentifier empty, HistoryFile set",
			provider:       &HistoryProvider{HistoryFile: absPath},
			wantIdentifier: fmt.Sprintf("File: %s", filepath.Join("~", ".lldb", "lldb-widehistory")),
		},
		{
			name:           "fallback: both empty",
			provider:       &HistoryProvider{},
			wantIdentifier: "LLDB history (file path unknown)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.GetSourceIdentifier(); got != tt.wantIdentifier {
				t.Errorf("GetSourceIdentifier() = %q, want %q", got, tt.wantIdentifier)
			}
		})
	}
}

func TestHistoryProvider_GetCommandFrequencies(t *testing.T) {
	dir := t.TempDir()
	historyFilePath := filepath.Join(dir, "lldb-widehistory")
	manageTestFile(t, historyFilePath, []byte("_HiStOrY_V2_\npo\\040self\nbt\npo\\040self\n"))

	tests := []struct {
		name              string
		provider          ports.HistoryProvider
		wantFreqs         []history.CommandFrequency
		wantErr           bool
		wantErrorContains string
	}{
		{
			name:              "HistoryFile not set on provider",
			provider:          &HistoryProvider{},
			wantErr:           true,
			wantErrorContains: "history file not found or configured",
		},
		{
			name:     "successful fetch",
			provider: &HistoryProvider{HistoryFile: historyFilePath},
			wantFreqs: []history.CommandFrequency{
				{Command: "po self", Count: 2},
				{Command: "bt", Count: 1},
			},
		},
		{
			name:              "history file vanished",
			provider:          &HistoryProvider{HistoryFile: filepath.Join(dir, "gone")},
			wantErr:           true,
			wantErrorContains: "history file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freqs, err := tt.provider.GetCommandFrequencies(100, 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCommandFrequencies() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Errorf("GetCommandFrequencies() error = %q, want to contain %q", err.Error(), tt.wantErrorContains)
				}
				return
			}
			if !reflect.DeepEqual(freqs, tt.wantFreqs) {
				t.Errorf("GetCommandFrequencies() = %v, want %v", freqs, tt.wantFreqs)
			}
		})
	}
}
