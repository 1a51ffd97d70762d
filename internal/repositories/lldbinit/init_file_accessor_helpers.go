package lldbinit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/adapters/rulesource"
)

// getShortcutsFromFile collects the names defined by "command alias" and
// "command regex" lines. Malformed directives are skipped with a warning.
func getShortcutsFromFile(filePath string) (map[string]string, error) {
	shortcuts := make(map[string]string)
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return shortcuts, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name, value, ok, err := parseShortcutLine(scanner.Text())
		if err != nil {
			log.WithFields(log.Fields{"file": toUserFriendlyPath(filePath), "line": lineNo}).
				WithError(err).Warn("ignoring malformed shortcut directive")
			continue
		}
		if ok {
			shortcuts[name] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", filePath, err)
	}
	return shortcuts, nil
}

// parseShortcutLine returns the name and value of a shortcut directive. The
// value is the alias expansion, or "s/<regex>/<subst>/" for a regex command.
func parseShortcutLine(line string) (name, value string, ok bool, err error) {
	defs, err := rulesource.ParseDirectives(strings.NewReader(line))
	if err != nil {
		return "", "", false, err
	}
	if len(defs) == 0 {
		return "", "", false, nil
	}
	def := defs[0]
	if def.Pattern != "" {
		return def.Name, "s/" + def.Pattern + "/" + def.Template + "/", true, nil
	}
	return def.Name, def.Expansion, true, nil
}

// sourcesPath reports whether content already has a "command source" line
// for path, written either absolute or relative to the home directory.
func sourcesPath(content, path string) bool {
	candidates := map[string]bool{path: true, toUserFriendlyPath(path): true}
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != "command" || fields[1] != "source" {
			continue
		}
		if candidates[strings.Trim(fields[2], `'"`)] {
			return true
		}
	}
	return false
}

// sourceLine is the text appended to an init file holding existing.
func sourceLine(existing, path string) string {
	line := "command source " + toUserFriendlyPath(path) + "\n"
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		return "\n" + line
	}
	return line
}

func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
