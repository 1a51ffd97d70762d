package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

const (
	defaultMinFrequency = 3
	defaultScanLimit    = 500
	defaultOutputLimit  = 10
)

type suggestionFlags struct {
	minFrequency int
	scanLimit    int
	outputLimit  int
}

func addSuggestionFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("min-frequency", "f", 0, "Minimum frequency for a command to be considered for a shortcut (default 3).")
	cmd.Flags().IntP("scan-limit", "s", 0, "Number of recent history entries to scan (default 500).")
	cmd.Flags().IntP("output-limit", "o", 0, "Maximum number of suggestions to show (default 10).")
}

func parseSuggestionFlags(cmd *cobra.Command) suggestionFlags {
	minFreq, _ := cmd.Flags().GetInt("min-frequency")
	scanLim, _ := cmd.Flags().GetInt("scan-limit")
	outLim, _ := cmd.Flags().GetInt("output-limit")

	// Default values if not provided or zero
	if minFreq <= 0 {
		minFreq = defaultMinFrequency
	}
	if scanLim <= 0 {
		scanLim = defaultScanLimit
	}
	if outLim <= 0 {
		outLim = defaultOutputLimit
	}

	return suggestionFlags{
		minFrequency: minFreq,
		scanLimit:    scanLim,
		outputLimit:  outLim,
	}
}

// suggestionLine is the single-line form shown in pickers and listings.
func suggestionLine(d rule.Definition) string {
	return fmt.Sprintf("command alias %s %s", d.Name, d.Expansion)
}

func selectViaFZF(suggestions []rule.Definition, errOut io.Writer) ([]rule.Definition, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}

	if len(suggestions) == 0 {
		return []rule.Definition{}, nil
	}

	var inputBuffer bytes.Buffer
	suggestionMap := make(map[string]rule.Definition)

	for _, s := range suggestions {
		// Feed raw directive lines to fzf for reliable mapping of selections.
		rawLine := suggestionLine(s)
		suggestionMap[rawLine] = s
		inputBuffer.WriteString(rawLine + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--prompt", ui.PromptColor("Select shortcuts (TAB to multi-select, Enter to confirm) > "))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	err = fzfCmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// Exit code 1 with no output often means no selection was made.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []rule.Definition{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	selectedLinesStr := strings.TrimSpace(outBuffer.String())
	if selectedLinesStr == "" {
		return []rule.Definition{}, nil
	}

	var chosen []rule.Definition
	for _, line := range strings.Split(selectedLinesStr, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if selected, ok := suggestionMap[trimmedLine]; ok {
			chosen = append(chosen, selected)
		} else if trimmedLine != "" {
			fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("Warning: fzf selected an unknown line: %s", trimmedLine)))
		}
	}

	return chosen, nil
}

func displaySuggestionsForNumericSelection(out io.Writer, suggestions []rule.Definition) {
	fmt.Fprintln(out, ui.PromptColor("Select shortcuts to install (e.g., 1,3-5, or 'all', 'none'):"))
	for i, s := range suggestions {
		fmt.Fprintf(out, "%d. %s %s %s\n",
			i+1,
			ui.RuleKeywordColor("command alias"),
			ui.RuleNameColor(s.Name),
			ui.RuleCmdColor(s.Expansion))
	}
}

func parseNumericSelectionInput(input string, suggestionCount int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, suggestionCount)
		for i := 0; i < suggestionCount; i++ {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > suggestionCount {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", suggestionCount, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1) // Convert to 0-based index
			}
		} else {
			num, err := strconv.Atoi(part)
			if err != nil || num <= 0 || num > suggestionCount {
				return nil, fmt.Errorf("invalid number (max %d): %s", suggestionCount, part)
			}
			selections = append(selections, num-1) // Convert to 0-based index
		}
	}

	// Ensure unique selections
	seen := make(map[int]bool)
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

func selectNumerically(in io.Reader, out io.Writer, suggestions []rule.Definition) ([]rule.Definition, error) {
	if len(suggestions) == 0 {
		return []rule.Definition{}, nil
	}

	displaySuggestionsForNumericSelection(out, suggestions)
	fmt.Fprint(out, ui.PromptColor("Your choice: "))
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	selectedIndices, err := parseNumericSelectionInput(input, len(suggestions))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	chosen := make([]rule.Definition, 0, len(selectedIndices))
	for _, idx := range selectedIndices {
		chosen = append(chosen, suggestions[idx])
	}
	return chosen, nil
}
