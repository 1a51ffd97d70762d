package shortcutgeneration

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

const (
	// minCommandEffectiveLength is the minimum number of non-space characters
	// a command needs before a shortcut is worth proposing.
	minCommandEffectiveLength = 4
	maxNameInitials           = 4
	maxCollisionSuffix        = 9
)

// builtinCommands are LLDB top-level commands and default aliases. A shortcut
// with one of these names would shadow the builtin.
var builtinCommands = map[string]bool{
	"apropos": true, "breakpoint": true, "bugreport": true, "command": true, "disassemble": true,
	"dwim-print": true, "expression": true, "frame": true, "gui": true, "help": true, "language": true,
	"log": true, "memory": true, "platform": true, "plugin": true, "process": true, "quit": true,
	"register": true, "script": true, "session": true, "settings": true, "source": true,
	"statistics": true, "target": true, "thread": true, "trace": true, "type": true, "version": true,
	"watchpoint": true,
	"b": true, "bt": true, "c": true, "call": true, "continue": true, "detach": true, "di": true,
	"dis": true, "display": true, "down": true, "env": true, "exit": true, "f": true, "file": true,
	"finish": true, "image": true, "j": true, "jump": true, "kdp": true, "l": true, "list": true,
	"n": true, "next": true, "nexti": true, "ni": true, "p": true, "parray": true, "po": true,
	"poarray": true, "q": true, "r": true, "rbreak": true, "re": true, "repl": true, "run": true,
	"s": true, "shell": true, "si": true, "sif": true, "step": true, "stepi": true, "t": true,
	"tbreak": true, "undisplay": true, "up": true, "v": true, "var": true, "vo": true, "x": true,
}

func isBuiltinCommand(name string) bool {
	return builtinCommands[strings.ToLower(name)]
}

// generatedNameRegex is stricter than validShortcutNameRegex: generated names
// are lowercase alphanumerics only.
var generatedNameRegex = regexp.MustCompile(`^[a-z0-9]+$`)

/*
isProposedNameValid checks common validation rules for a proposed name.

It verifies that the name is at least two characters, is not the command it
abbreviates, was not already generated in this run, is not taken and is not
an LLDB builtin.
*/
func (g *ShortcutGenerator) isProposedNameValid(
	proposedName string,
	originalCommandName string,
	takenNames map[string]string,
	generatedNamesInThisRun map[string]bool,
) bool {
	if len(proposedName) < 2 || !generatedNameRegex.MatchString(proposedName) {
		return false
	}
	if proposedName == originalCommandName {
		return false
	}
	if generatedNamesInThisRun[proposedName] {
		return false
	}
	if _, exists := takenNames[proposedName]; exists {
		return false
	}
	return !isBuiltinCommand(proposedName)
}

// pickName returns base, or base with a numeric suffix, whichever is first valid.
func (g *ShortcutGenerator) pickName(
	base string,
	originalCommandName string,
	takenNames map[string]string,
	generatedNamesInThisRun map[string]bool,
) (string, bool) {
	if g.isProposedNameValid(base, originalCommandName, takenNames, generatedNamesInThisRun) {
		return base, true
	}
	if base == "" {
		return "", false
	}
	for i := 2; i <= maxCollisionSuffix; i++ {
		candidate := base + strconv.Itoa(i)
		if g.isProposedNameValid(candidate, originalCommandName, takenNames, generatedNamesInThisRun) {
			return candidate, true
		}
	}
	return "", false
}

/*
generateShortcutName builds a name from the initials of the command name and
its options, e.g. "expression -l objc -O --" -> "eloo" and
"thread backtrace all" -> "tba". Leading dashes are ignored and the "--"
terminator contributes nothing.
*/
func generateShortcutName(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if b.Len() >= maxNameInitials {
			break
		}
		trimmed := strings.TrimLeft(tok, "-")
		for _, r := range trimmed {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteRune(unicode.ToLower(r))
				break
			}
		}
	}
	if b.Len() == 1 && len(tokens) > 0 {
		// A lone initial is too short; fall back to the first two letters of the command.
		name := strings.ToLower(tokens[0])
		if len(name) >= 2 && generatedNameRegex.MatchString(name[:2]) {
			return name[:2]
		}
	}
	return b.String()
}

func effectiveLength(s string) int {
	return len(strings.Join(strings.Fields(s), ""))
}

type prefixCount struct {
	prefix      string
	commandName string
	count       int
}

// aggregatePrefixes sums history counts by "command options --" prefix for
// lines that carry an expression after the terminator.
func (g *ShortcutGenerator) aggregatePrefixes(commands []history.CommandFrequency) []prefixCount {
	byPrefix := make(map[string]*prefixCount)
	for _, cmdFreq := range commands {
		analyzed := g.analyzer.Analyze(cmdFreq.Command)
		if !analyzed.Terminated || analyzed.IsComplex || analyzed.Expression == "" || analyzed.CommandName == "" {
			continue
		}
		if effectiveLength(analyzed.Prefix) < minCommandEffectiveLength {
			continue
		}
		pc, ok := byPrefix[analyzed.Prefix]
		if !ok {
			pc = &prefixCount{prefix: analyzed.Prefix, commandName: analyzed.CommandName}
			byPrefix[analyzed.Prefix] = pc
		}
		pc.count += cmdFreq.Count
	}

	out := make([]prefixCount, 0, len(byPrefix))
	for _, pc := range byPrefix {
		out = append(out, *pc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].prefix < out[j].prefix
	})
	return out
}

func (g *ShortcutGenerator) generatePrefixAliases(
	prefixes []prefixCount,
	minFrequency int,
	takenNames map[string]string,
	generatedNamesInThisRun map[string]bool, // Modifies this map
	generatedExpansions map[string]bool, // Modifies this map
) []rule.Definition {
	suggestions := []rule.Definition{}
	for _, pc := range prefixes {
		if pc.count < minFrequency || generatedExpansions[pc.prefix] {
			continue
		}
		tokens := strings.Fields(pc.prefix)
		name, ok := g.pickName(generateShortcutName(tokens), pc.commandName, takenNames, generatedNamesInThisRun)
		if !ok {
			continue
		}
		suggestions = append(suggestions, rule.AliasDefinition(name, aliasHelp(pc.prefix), tokens...))
		generatedNamesInThisRun[name] = true
		generatedExpansions[pc.prefix] = true
	}
	return suggestions
}

func (g *ShortcutGenerator) generateExactCommandAliases(
	commands []history.CommandFrequency,
	minFrequency int,
	takenNames map[string]string,
	generatedNamesInThisRun map[string]bool, // Modifies this map
	generatedExpansions map[string]bool, // Modifies this map
) []rule.Definition {
	suggestions := []rule.Definition{}
	for _, cmdFreq := range commands {
		if cmdFreq.Count < minFrequency {
			continue
		}
		analyzed := g.analyzer.Analyze(cmdFreq.Command)
		if analyzed.IsComplex || analyzed.CommandName == "" || analyzed.Expression != "" {
			continue
		}
		// A single word is already as short as an alias would make it.
		if len(analyzed.Options) == 0 {
			continue
		}
		if effectiveLength(analyzed.Prefix) < minCommandEffectiveLength || generatedExpansions[analyzed.Prefix] {
			continue
		}
		tokens := strings.Fields(analyzed.Prefix)
		name, ok := g.pickName(generateShortcutName(tokens), analyzed.CommandName, takenNames, generatedNamesInThisRun)
		if !ok {
			continue
		}
		suggestions = append(suggestions, rule.AliasDefinition(name, aliasHelp(analyzed.Prefix), tokens...))
		generatedNamesInThisRun[name] = true
		generatedExpansions[analyzed.Prefix] = true
	}
	return suggestions
}

func aliasHelp(expansion string) string {
	return fmt.Sprintf("Alias for '%s'", expansion)
}
