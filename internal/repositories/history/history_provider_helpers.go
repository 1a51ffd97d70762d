package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
)

// historyHeader is the first line editline writes to a history file.
const historyHeader = "_HiStOrY_V2_"

const (
	defaultScanCount   = 500
	defaultOutputLimit = 10
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return absPath
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// findUserHistoryFile returns override when it names an existing file,
// otherwise the first LLDB history file found under the home directory.
func findUserHistoryFile(override string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if override != "" {
		pathToCheck := override
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	// Newer LLDB builds use the wide-character history file.
	potentialPaths := []string{
		filepath.Join(homeDir, ".lldb", "lldb-widehistory"),
		filepath.Join(homeDir, ".lldb", "lldb-history"),
	}
	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not find an LLDB history file. Expected ~/.lldb/lldb-widehistory or ~/.lldb/lldb-history; set DBGALIAS_HISTORY to use another file")
}

// decodeHistoryLine undoes the vis(3) encoding editline applies to each
// entry: "\ooo" octal escapes and "\\".
func decodeHistoryLine(line string) string {
	if !strings.Contains(line, `\`) {
		return line
	}
	out := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '\\' || i+1 >= len(line) {
			out = append(out, c)
			continue
		}
		if i+3 < len(line) && isOctal(line[i+1]) && isOctal(line[i+2]) && isOctal(line[i+3]) {
			out = append(out, (line[i+1]-'0')<<6|(line[i+2]-'0')<<3|(line[i+3]-'0'))
			i += 3
			continue
		}
		out = append(out, line[i+1])
		i++
	}
	return string(out)
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

// readHistoryEntries returns the decoded, non-empty entries of the history
// file, oldest first.
func readHistoryEntries(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("history file does not exist: %s", toUserFriendlyPath(path))
		}
		return nil, fmt.Errorf("opening history file %s: %w", toUserFriendlyPath(path), err)
	}
	defer file.Close()

	entries := []string{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == historyHeader {
				continue
			}
		}
		entry := strings.TrimRightFunc(decodeHistoryLine(line), isTrailingSpace)
		if strings.TrimSpace(entry) == "" {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file %s: %w", toUserFriendlyPath(path), err)
	}
	return entries, nil
}

func isTrailingSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// countFrequencies counts the last scanCount entries and returns the
// outputLimit most frequent, highest count first. Ties are ordered by command.
func countFrequencies(entries []string, scanCount, outputLimit int) []history.CommandFrequency {
	if scanCount <= 0 {
		scanCount = defaultScanCount
	}
	if outputLimit <= 0 {
		outputLimit = defaultOutputLimit
	}
	if len(entries) > scanCount {
		entries = entries[len(entries)-scanCount:]
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e]++
	}
	frequencies := make([]history.CommandFrequency, 0, len(counts))
	for cmd, n := range counts {
		frequencies = append(frequencies, history.CommandFrequency{Command: cmd, Count: n})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Command < frequencies[j].Command
	})
	if len(frequencies) > outputLimit {
		frequencies = frequencies[:outputLimit]
	}
	return frequencies
}

func (p *HistoryProvider) getHistoryFrequencies(scanLimit, outputLimit int) ([]history.CommandFrequency, error) {
	if p.HistoryFile == "" {
		return nil, fmt.Errorf("history file path is not set in HistoryProvider")
	}
	entries, err := readHistoryEntries(p.HistoryFile)
	if err != nil {
		return nil, err
	}
	return countFrequencies(entries, scanLimit, outputLimit), nil
}
