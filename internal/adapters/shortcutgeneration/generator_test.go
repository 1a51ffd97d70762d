package shortcutgeneration

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/dbgalias/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/command"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/testutil"
)

// newRecordingAnalyzer wraps the real analyzer in a mock so tests can see
// which lines were analyzed.
func newRecordingAnalyzer() *testutil.MockCommandAnalyzer {
	basic := commandanalysis.NewBasicAnalyzer()
	mock := testutil.NewMockCommandAnalyzer()
	mock.AnalyzeFunc = func(commandStr string) command.AnalyzedCommand {
		return basic.Analyze(commandStr)
	}
	return mock
}

func TestNewShortcutGenerator(t *testing.T) {
	if _, ok := NewShortcutGenerator(newRecordingAnalyzer()).(*ShortcutGenerator); !ok {
		t.Errorf("NewShortcutGenerator() did not return a *ShortcutGenerator")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewShortcutGenerator(nil) did not panic")
		}
	}()
	NewShortcutGenerator(nil)
}

func TestShortcutGenerator_GenerateSuggestions(t *testing.T) {
	tests := []struct {
		name         string
		commands     []history.CommandFrequency
		takenNames   map[string]string
		minFrequency int
		want         []rule.Definition
	}{
		{
			name: "prefix aggregation and exact command",
			commands: []history.CommandFrequency{
				{Command: "bt", Count: 20},
				{Command: "thread backtrace all", Count: 12},
				{Command: "expression -l objc -O -- self", Count: 6},
				{Command: "expression -l objc -O -- [UIView new]", Count: 5},
				{Command: "frame variable", Count: 3},
			},
			minFrequency: 10,
			want: []rule.Definition{
				rule.AliasDefinition("eloo", "Alias for 'expression -l objc -O --'", "expression", "-l", "objc", "-O", "--"),
				rule.AliasDefinition("tba", "Alias for 'thread backtrace all'", "thread", "backtrace", "all"),
			},
		},
		{
			name: "taken name gets a numeric suffix",
			commands: []history.CommandFrequency{
				{Command: "thread backtrace all", Count: 12},
			},
			takenNames:   map[string]string{"tba": "thread backtrace all"},
			minFrequency: 10,
			want: []rule.Definition{
				rule.AliasDefinition("tba2", "Alias for 'thread backtrace all'", "thread", "backtrace", "all"),
			},
		},
		{
			name: "builtin name gets a numeric suffix",
			commands: []history.CommandFrequency{
				{Command: "source info", Count: 4},
			},
			minFrequency: 2,
			want: []rule.Definition{
				rule.AliasDefinition("si2", "Alias for 'source info'", "source", "info"),
			},
		},
		{
			name: "complex commands are skipped",
			commands: []history.CommandFrequency{
				{Command: `breakpoint set -n "-[UIView layoutSubviews]"`, Count: 50},
				{Command: `breakpoint set -n 'foo' -- x`, Count: 50},
			},
			minFrequency: 1,
			want:         []rule.Definition{},
		},
		{
			name: "exact strategy does not repeat a prefix expansion",
			commands: []history.CommandFrequency{
				{Command: "expression -O -- self.view", Count: 10},
				{Command: "expression -O --", Count: 10},
			},
			minFrequency: 5,
			want: []rule.Definition{
				rule.AliasDefinition("eo", "Alias for 'expression -O --'", "expression", "-O", "--"),
			},
		},
		{
			name: "lone initial falls back to the first two letters",
			commands: []history.CommandFrequency{
				{Command: "expression -- a", Count: 3},
				{Command: "expression -- b", Count: 3},
			},
			minFrequency: 5,
			want: []rule.Definition{
				rule.AliasDefinition("ex", "Alias for 'expression --'", "expression", "--"),
			},
		},
		{
			name: "below minimum frequency",
			commands: []history.CommandFrequency{
				{Command: "thread backtrace all", Count: 2},
				{Command: "expression -l swift -- self", Count: 2},
			},
			minFrequency: 3,
			want:         []rule.Definition{},
		},
		{
			name:         "empty history",
			commands:     nil,
			minFrequency: 1,
			want:         []rule.Definition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := newRecordingAnalyzer()
			gen := NewShortcutGenerator(analyzer)
			taken := tt.takenNames
			if taken == nil {
				taken = map[string]string{}
			}

			got := gen.GenerateSuggestions(tt.commands, taken, tt.minFrequency)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateSuggestions() =\n%#v\nwant\n%#v", got, tt.want)
			}
			if len(tt.commands) > 0 && len(analyzer.AnalyzeCalls) == 0 {
				t.Errorf("GenerateSuggestions() never analyzed a command")
			}
			for _, def := range got {
				if _, err := def.Compile(); err != nil {
					t.Errorf("suggested definition %q does not compile: %v", def.Name, err)
				}
			}
		})
	}
}

func TestShortcutGenerator_IsValidShortcutName(t *testing.T) {
	gen := NewShortcutGenerator(newRecordingAnalyzer())
	taken := map[string]string{"cpo": "expression -l objc -O --"}

	tests := []struct {
		name string
		want bool
	}{
		{"reload_lldbinit", true},
		{"tba", true},
		{"cpo", false},
		{"bt", false},
		{"BT", false},
		{"expression", false},
		{"my-alias", false},
		{"has space", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.IsValidShortcutName(tt.name, taken); got != tt.want {
				t.Errorf("IsValidShortcutName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
