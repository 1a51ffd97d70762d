package history

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

/*
HistoryProvider provides access to the debugger command history stored by
editline under ~/.lldb. It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	HistoryFile      string // Stores the absolute path
	sourceIdentifier string // Stores the user-friendly source identifier
}

func (hp *HistoryProvider) GetSourceIdentifier() string {
	if hp.sourceIdentifier != "" {
		return hp.sourceIdentifier
	}
	if hp.HistoryFile != "" {
		return fmt.Sprintf("File: %s", toUserFriendlyPath(hp.HistoryFile))
	}
	return "LLDB history (file path unknown)"
}

// NewHistoryProvider creates a new HistoryProvider. A history file that
// cannot be found is not an error; GetCommandFrequencies reports it later.
func NewHistoryProvider(fileFinder ports.HistoryFileFinder) (ports.HistoryProvider, error) {
	if fileFinder == nil {
		return nil, fmt.Errorf("history file finder cannot be nil")
	}

	histFilePath, err := fileFinder.Find()
	if err != nil {
		log.WithError(err).Info("could not find an LLDB history file, history-based suggestions are unavailable")
		return &HistoryProvider{
			sourceIdentifier: "LLDB history (file not found or configured)",
		}, nil
	}

	return &HistoryProvider{
		HistoryFile:      histFilePath,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(histFilePath)),
	}, nil
}

// GetCommandFrequencies implements the ports.HistoryProvider interface.
func (hp *HistoryProvider) GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	if hp.HistoryFile == "" {
		return nil, fmt.Errorf("LLDB history file not found or configured. Cannot fetch command frequencies")
	}
	return hp.getHistoryFrequencies(scanLimit, outputLimit)
}

func (hp *HistoryProvider) GetHistoryFilePath() string {
	return hp.HistoryFile
}
