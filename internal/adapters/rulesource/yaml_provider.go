package rulesource

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var embeddedDefaultRules []byte

// YAMLProvider implements the RuleSource interface by reading definitions
// from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the rule definitions.
func NewYAMLProvider(filePath string) (ports.RuleSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetDefinitions reads and parses definitions from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) GetDefinitions() ([]rule.Definition, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing rules file means no rules, not a failure.
			return []rule.Definition{}, nil
		}
		return nil, fmt.Errorf("failed to read rules file %s: %w", p.filePath, err)
	}
	defs, err := decodeDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules from %s: %w", p.filePath, err)
	}
	return defs, nil
}

func (p *YAMLProvider) Describe() string {
	return fmt.Sprintf("YAML file: %s", p.filePath)
}

// EmbeddedProvider serves the default rule table compiled into the binary.
type EmbeddedProvider struct{}

// NewEmbeddedProvider creates a provider for the built-in shortcuts.
func NewEmbeddedProvider() ports.RuleSource {
	return &EmbeddedProvider{}
}

func (p *EmbeddedProvider) GetDefinitions() ([]rule.Definition, error) {
	defs, err := decodeDefinitions(embeddedDefaultRules)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedded default rules: %w", err)
	}
	return defs, nil
}

func (p *EmbeddedProvider) Describe() string {
	return "built-in shortcuts"
}

// decodeDefinitions decodes a YAML list of definitions. Unknown fields are
// rejected so typos in a rules file surface at load time.
func decodeDefinitions(data []byte) ([]rule.Definition, error) {
	defs := []rule.Definition{}
	if len(bytes.TrimSpace(data)) == 0 {
		return defs, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&defs); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return []rule.Definition{}, nil
		}
		return nil, err
	}
	return defs, nil
}
