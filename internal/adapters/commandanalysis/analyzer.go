package commandanalysis

import (
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/command"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// BasicAnalyzer splits LLDB command lines into name, options and the raw
// expression that follows "--".
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.CommandAnalyzer {
	return &BasicAnalyzer{}
}

// Analyze breaks down a command string into its components.
func (a *BasicAnalyzer) Analyze(commandStr string) command.AnalyzedCommand {
	trimmedCommandStr := strings.TrimSpace(commandStr)
	if trimmedCommandStr == "" {
		return command.AnalyzedCommand{
			Original: commandStr,
			Options:  []string{},
		}
	}

	head, expression, terminated := splitAtTerminator(trimmedCommandStr)
	args := a.parseArguments(head)

	var cmdName string
	var options []string
	if len(args) > 0 {
		cmdName = args[0]
		if len(args) > 1 {
			options = args[1:]
		}
	}

	prefix := strings.Join(strings.Fields(head), " ")
	if terminated {
		prefix += " --"
	}

	return command.AnalyzedCommand{
		Original:    commandStr,
		CommandName: cmdName,
		Options:     options,
		Terminated:  terminated,
		Expression:  expression,
		Prefix:      prefix,
		IsComplex:   a.determineComplexity(head, args),
	}
}
