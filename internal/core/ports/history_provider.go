package ports

import "github.com/AntonioJCosta/dbgalias/internal/core/domain/history"

/*
HistoryProvider reads the debugger's command history. This is a driven port
implemented by a repository that decodes LLDB's editline history file.
*/
type HistoryProvider interface {
	// GetCommandFrequencies counts the last scanLimit entries and returns at
	// most outputLimit commands, most frequent first.
	GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetHistoryFilePath() string
	// GetSourceIdentifier describes the history source for display.
	GetSourceIdentifier() string
}
