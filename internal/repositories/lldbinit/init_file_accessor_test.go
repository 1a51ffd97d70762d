package lldbinit

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// manageTestFile creates a file at the given path, creating parent directories.
func manageTestFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

func newTestAccessor(t *testing.T) (*InitFileAccessor, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	acc, err := NewInitFileAccessor(filepath.Join(home, ".lldbinit"), filepath.Join(home, ".dbgalias"))
	if err != nil {
		t.Fatalf("NewInitFileAccessor() unexpected error = %v", err)
	}
	return acc.(*InitFileAccessor), home
}

func TestNewInitFileAccessor(t *testing.T) {
	if _, err := NewInitFileAccessor("", "/tmp/x"); err == nil {
		t.Errorf("NewInitFileAccessor() with empty init path expected an error")
	}
	if _, err := NewInitFileAccessor("/tmp/.lldbinit", ""); err == nil {
		t.Errorf("NewInitFileAccessor() with empty shortcut dir expected an error")
	}
}

func TestInitFileAccessor_GetExistingShortcuts(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, home string)
		want       map[string]string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:  "nothing exists",
			setup: func(t *testing.T, home string) {},
			want:  map[string]string{},
		},
		{
			name: "init file only",
			setup: func(t *testing.T, home string) {
				manageTestFile(t, filepath.Join(home, ".lldbinit"),
					"command alias bt thread backtrace\ncommand script import ~/x.py\ncommand alias broken\n")
			},
			want: map[string]string{"bt": "thread backtrace"},
		},
		{
			name: "init file and generated files, later wins",
			setup: func(t *testing.T, home string) {
				manageTestFile(t, filepath.Join(home, ".lldbinit"), "command alias bt thread backtrace\n")
				manageTestFile(t, filepath.Join(home, ".dbgalias", "a.lldb"), "command alias bt thread backtrace all\n")
				manageTestFile(t, filepath.Join(home, ".dbgalias", "b.lldb"), "command regex fv 's/(.+)/frame variable %1/'\n")
				if err := os.Mkdir(filepath.Join(home, ".dbgalias", "subdir"), 0o755); err != nil {
					t.Fatalf("failed to create subdir: %v", err)
				}
			},
			want: map[string]string{"bt": "thread backtrace all", "fv": "s/(.+)/frame variable %1/"},
		},
		{
			name: "shortcut directory is a file",
			setup: func(t *testing.T, home string) {
				manageTestFile(t, filepath.Join(home, ".dbgalias"), "not a directory")
			},
			wantErr:    true,
			wantErrMsg: "failed to read shortcut directory",
		},
		{
			name: "init file is a directory",
			setup: func(t *testing.T, home string) {
				if err := os.Mkdir(filepath.Join(home, ".lldbinit"), 0o755); err != nil {
					t.Fatalf("failed to create dir: %v", err)
				}
			},
			wantErr:    true,
			wantErrMsg: "error scanning",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, home := newTestAccessor(t)
			tt.setup(t, home)

			got, err := acc.GetExistingShortcuts()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetExistingShortcuts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("GetExistingShortcuts() error = %q, want to contain %q", err.Error(), tt.wantErrMsg)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetExistingShortcuts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitFileAccessor_WriteShortcutFile(t *testing.T) {
	acc, home := newTestAccessor(t)

	content := "command alias -- bt thread backtrace\n"
	path, err := acc.WriteShortcutFile(content)
	if err != nil {
		t.Fatalf("WriteShortcutFile() unexpected error = %v", err)
	}
	if want := filepath.Join(home, ".dbgalias", ShortcutFilename); path != want {
		t.Errorf("WriteShortcutFile() path = %q, want %q", path, want)
	}

	// A second write replaces the file.
	if _, err := acc.WriteShortcutFile("command alias -- fr frame select\n"); err != nil {
		t.Fatalf("WriteShortcutFile() second call unexpected error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read shortcut file: %v", err)
	}
	if string(data) != "command alias -- fr frame select\n" {
		t.Errorf("shortcut file content = %q", string(data))
	}
}

func TestInitFileAccessor_EnsureSourced(t *testing.T) {
	tests := []struct {
		name        string
		initial     *string
		wantAdded   bool
		wantContent string
	}{
		{
			name:        "init file does not exist",
			initial:     nil,
			wantAdded:   true,
			wantContent: "command source ~/.dbgalias/shortcuts.lldb\n",
		},
		{
			name:        "init file without trailing newline",
			initial:     stringp("settings set target.x86-disassembly-flavor intel"),
			wantAdded:   true,
			wantContent: "settings set target.x86-disassembly-flavor intel\ncommand source ~/.dbgalias/shortcuts.lldb\n",
		},
		{
			name:        "already sourced",
			initial:     stringp("command source ~/.dbgalias/shortcuts.lldb\n"),
			wantAdded:   false,
			wantContent: "command source ~/.dbgalias/shortcuts.lldb\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, home := newTestAccessor(t)
			if tt.initial != nil {
				manageTestFile(t, acc.GetInitFilePath(), *tt.initial)
			}
			path := filepath.Join(home, ".dbgalias", ShortcutFilename)

			added, err := acc.EnsureSourced(path)
			if err != nil {
				t.Fatalf("EnsureSourced() unexpected error = %v", err)
			}
			if added != tt.wantAdded {
				t.Errorf("EnsureSourced() added = %v, want %v", added, tt.wantAdded)
			}
			data, err := os.ReadFile(acc.GetInitFilePath())
			if err != nil {
				t.Fatalf("failed to read init file: %v", err)
			}
			if string(data) != tt.wantContent {
				t.Errorf("init file content = %q, want %q", string(data), tt.wantContent)
			}

			again, err := acc.EnsureSourced(path)
			if err != nil || again {
				t.Errorf("EnsureSourced() second call = %v, %v; want false, nil", again, err)
			}
		})
	}
}

func stringp(s string) *string {
	return &s
}
