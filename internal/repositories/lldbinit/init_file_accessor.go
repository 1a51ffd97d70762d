package lldbinit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// ShortcutFilename is the generated file inside the dbgalias home directory.
const ShortcutFilename = "shortcuts.lldb"

// InitFileAccessor provides access to ~/.lldbinit and the generated shortcut
// files via the file system.
type InitFileAccessor struct {
	initFilePath string
	shortcutDir  string
}

// NewInitFileAccessor creates a new InitFileAccessor. shortcutDir holds the
// generated shortcut file; every regular file in it is scanned for names.
func NewInitFileAccessor(initFilePath, shortcutDir string) (ports.InitFileAccessor, error) {
	if initFilePath == "" {
		return nil, fmt.Errorf("init file path cannot be empty")
	}
	if shortcutDir == "" {
		return nil, fmt.Errorf("shortcut directory cannot be empty")
	}
	return &InitFileAccessor{initFilePath: initFilePath, shortcutDir: shortcutDir}, nil
}

// GetExistingShortcuts implements the ports.InitFileAccessor interface.
// The init file is read first, then the files of the shortcut directory in
// name order; later definitions of a name replace earlier ones.
func (a *InitFileAccessor) GetExistingShortcuts() (map[string]string, error) {
	shortcuts, err := getShortcutsFromFile(a.initFilePath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(a.shortcutDir); os.IsNotExist(err) {
		return shortcuts, nil
	}
	dirEntries, err := os.ReadDir(a.shortcutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read shortcut directory %s: %w", toUserFriendlyPath(a.shortcutDir), err)
	}
	sort.Slice(dirEntries, func(i, j int) bool { return dirEntries[i].Name() < dirEntries[j].Name() })

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		filePath := filepath.Join(a.shortcutDir, entry.Name())
		fileShortcuts, err := getShortcutsFromFile(filePath)
		if err != nil {
			log.WithError(err).Warnf("could not read shortcuts from %s", toUserFriendlyPath(filePath))
			continue
		}
		for name, value := range fileShortcuts {
			if _, exists := shortcuts[name]; exists {
				log.WithField("name", name).Warnf("shortcut defined more than once, using the definition from %s", toUserFriendlyPath(filePath))
			}
			shortcuts[name] = value
		}
	}
	return shortcuts, nil
}

// WriteShortcutFile implements the ports.InitFileAccessor interface.
func (a *InitFileAccessor) WriteShortcutFile(content string) (string, error) {
	if err := os.MkdirAll(a.shortcutDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", toUserFriendlyPath(a.shortcutDir), err)
	}
	path := filepath.Join(a.shortcutDir, ShortcutFilename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write shortcut file %s: %w", toUserFriendlyPath(path), err)
	}
	log.WithField("path", path).Info("shortcut file written")
	return path, nil
}

// EnsureSourced implements the ports.InitFileAccessor interface.
func (a *InitFileAccessor) EnsureSourced(path string) (bool, error) {
	data, err := os.ReadFile(a.initFilePath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read init file %s: %w", toUserFriendlyPath(a.initFilePath), err)
	}
	if sourcesPath(string(data), path) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(a.initFilePath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", toUserFriendlyPath(a.initFilePath), err)
	}
	file, err := os.OpenFile(a.initFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open init file %s for appending: %w", toUserFriendlyPath(a.initFilePath), err)
	}
	defer file.Close()

	if _, err := file.WriteString(sourceLine(string(data), path)); err != nil {
		return false, fmt.Errorf("failed to append to init file %s: %w", toUserFriendlyPath(a.initFilePath), err)
	}
	return true, nil
}

func (a *InitFileAccessor) GetInitFilePath() string {
	return a.initFilePath
}
