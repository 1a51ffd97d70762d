package rulesource

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/registry"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("rules.yaml")
	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}

	if _, err := NewYAMLProvider(""); err == nil {
		t.Errorf("NewYAMLProvider(\"\") expected an error, got nil")
	}
}

func TestYAMLProvider_GetDefinitions(t *testing.T) {
	validRulesYAML := `
- kind: alias
  name: cp
  help: "Alias for 'expression -l objc --'"
  expansion: expression -l objc --
- name: ivars
  usage: ivars <Instance>
  pattern: '(.+)'
  template: "expression -l objc -O -- [%1 _ivarDescription]"
`
	expectedValidRules := []rule.Definition{
		{Kind: "alias", Name: "cp", Help: "Alias for 'expression -l objc --'", Expansion: "expression -l objc --"},
		{Name: "ivars", Usage: "ivars <Instance>", Pattern: "(.+)", Template: "expression -l objc -O -- [%1 _ivarDescription]"},
	}

	unknownFieldYAML := `
- name: cp
  expansion: expression --
  shortcut: "typo field should cause an error with KnownFields(true)"
`
	notAListYAML := `name: cp expansion: expression`

	tests := []struct {
		name                string
		content             *string // nil means the file does not exist
		wantDefinitions     []rule.Definition
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{name: "file does not exist", content: nil, wantDefinitions: []rule.Definition{}},
		{name: "empty file", content: ptr(""), wantDefinitions: []rule.Definition{}},
		{name: "empty list", content: ptr("[]"), wantDefinitions: []rule.Definition{}},
		{name: "valid rules", content: ptr(validRulesYAML), wantDefinitions: expectedValidRules},
		{name: "unknown field", content: ptr(unknownFieldYAML), wantErr: true, wantErrorMsgSnippet: "failed to unmarshal rules"},
		{name: "not a list", content: ptr(notAListYAML), wantErr: true, wantErrorMsgSnippet: "failed to unmarshal rules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}
			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			defs, err := provider.GetDefinitions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetDefinitions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetDefinitions() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if defs != nil {
					t.Errorf("GetDefinitions() expected nil definitions on error, got %#v", defs)
				}
				return
			}
			if !reflect.DeepEqual(defs, tt.wantDefinitions) {
				t.Errorf("GetDefinitions() = %#v, want %#v", defs, tt.wantDefinitions)
			}
		})
	}
}

func TestEmbeddedProvider_DefaultsBuild(t *testing.T) {
	defs, err := NewEmbeddedProvider().GetDefinitions()
	if err != nil {
		t.Fatalf("GetDefinitions() unexpected error = %v", err)
	}
	reg, err := registry.Build(defs)
	if err != nil {
		t.Fatalf("registry.Build() of embedded defaults failed: %v", err)
	}

	cases := map[string]string{
		"cp [UIView new]":    "expression -l objc -- [UIView new]",
		"cpo self":           "expression -l objc -O -- self",
		"spo self":           "expression -l swift -O -- self",
		"caflush":            "expression -l objc -- (void)[CATransaction flush]",
		"reload_lldbinit":    "command source ~/.lldbinit",
		"ivars [UIView new]": "expression -l objc -O -- [[UIView new] _ivarDescription]",
		"methods UIView":     "expression -l objc -O -- [UIView _methodDescription]",
	}
	for line, want := range cases {
		got, err := reg.Dispatch(line)
		if err != nil {
			t.Errorf("Dispatch(%q) unexpected error = %v", line, err)
			continue
		}
		if got.Command != want {
			t.Errorf("Dispatch(%q) = %q, want %q", line, got.Command, want)
		}
	}
}

func TestEmbeddedProvider_BrokenEmbed(t *testing.T) {
	original := embeddedDefaultRules
	t.Cleanup(func() { embeddedDefaultRules = original })

	embeddedDefaultRules = []byte("- name: x\n  bogus: y\n")
	if _, err := NewEmbeddedProvider().GetDefinitions(); err == nil || !strings.Contains(err.Error(), "embedded default rules") {
		t.Errorf("GetDefinitions() error = %v, want embedded decode error", err)
	}

	embeddedDefaultRules = nil
	defs, err := NewEmbeddedProvider().GetDefinitions()
	if err != nil || len(defs) != 0 {
		t.Errorf("GetDefinitions() with empty embed = %v, %v; want no definitions", defs, err)
	}
}

func ptr(s string) *string {
	return &s
}
