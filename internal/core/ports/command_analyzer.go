package ports

import "github.com/AntonioJCosta/dbgalias/internal/core/domain/command"

/*
CommandAnalyzer defines the contract for a service that analyzes a debugger
command line. This is a driven port, representing a domain capability.
*/
type CommandAnalyzer interface {
	Analyze(commandStr string) command.AnalyzedCommand
}
