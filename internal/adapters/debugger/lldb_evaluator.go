package debugger

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// DefaultLLDBPath is used when no debugger binary is configured.
const DefaultLLDBPath = "lldb"

// LLDBEvaluator implements the Evaluator interface by running the command
// in a batch-mode lldb process.
type LLDBEvaluator struct {
	lldbPath       string
	commandContext func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewLLDBEvaluator creates a new LLDBEvaluator. An empty lldbPath falls back
// to DefaultLLDBPath resolved through PATH.
func NewLLDBEvaluator(lldbPath string) ports.Evaluator {
	if lldbPath == "" {
		lldbPath = DefaultLLDBPath
	}
	return &LLDBEvaluator{lldbPath: lldbPath, commandContext: exec.CommandContext}
}

// Evaluate starts lldb against the session's target or process, selects the
// requested frame and runs command. stdout and stderr are captured into the
// Result even when lldb fails.
func (e *LLDBEvaluator) Evaluate(ctx context.Context, command string, session evaluation.Session) (evaluation.Result, error) {
	result := evaluation.Result{Command: command}
	if strings.TrimSpace(command) == "" {
		return result, fmt.Errorf("cannot evaluate an empty command")
	}

	args := batchArgs(command, session)
	cmd := e.commandContext(ctx, e.lldbPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	log.WithFields(log.Fields{
		"lldb":    e.lldbPath,
		"command": command,
		"pid":     session.PID,
		"target":  session.Target,
	}).Debug("evaluating command")

	err := cmd.Run()
	result.Output = outBuf.String()
	result.Errors = errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return result, fmt.Errorf("running %s: %w. Stderr: %s", e.lldbPath, err, strings.TrimSpace(result.Errors))
	}
	return result, nil
}

// batchArgs builds the lldb command line for one evaluation.
func batchArgs(command string, session evaluation.Session) []string {
	args := []string{"--batch"}
	switch {
	case session.PID > 0:
		args = append(args, "--attach-pid", strconv.Itoa(session.PID))
	case session.ProcessName != "":
		args = append(args, "--attach-name", session.ProcessName)
	case session.Target != "":
		args = append(args, session.Target)
		if session.CoreFile != "" {
			args = append(args, "--core", session.CoreFile)
		}
	}
	if session.Frame > 0 {
		args = append(args, "-o", "frame select "+strconv.Itoa(session.Frame))
	}
	return append(args, "-o", command)
}
