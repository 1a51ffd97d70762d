package history

import "github.com/AntonioJCosta/dbgalias/internal/core/ports"

// DefaultHistoryFileFinder locates the LLDB history file, preferring an
// explicitly configured path.
type DefaultHistoryFileFinder struct {
	override string
}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile(d.override)
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder. override
// may be empty, in which case only the standard LLDB locations are checked.
func NewDefaultHistoryFileFinder(override string) ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{override: override}
}
