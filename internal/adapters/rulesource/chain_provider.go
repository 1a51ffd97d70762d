package rulesource

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// ChainProvider concatenates the definitions of several sources in order.
// Name collisions between sources are left to the registry to reject.
type ChainProvider struct {
	sources []ports.RuleSource
}

// NewChainProvider creates a provider over sources. Nil sources are ignored.
func NewChainProvider(sources ...ports.RuleSource) ports.RuleSource {
	c := &ChainProvider{}
	for _, s := range sources {
		if s != nil {
			c.sources = append(c.sources, s)
		}
	}
	return c
}

func (c *ChainProvider) GetDefinitions() ([]rule.Definition, error) {
	all := []rule.Definition{}
	for _, s := range c.sources {
		defs, err := s.GetDefinitions()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Describe(), err)
		}
		all = append(all, defs...)
	}
	return all, nil
}

func (c *ChainProvider) Describe() string {
	parts := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		parts = append(parts, s.Describe())
	}
	return strings.Join(parts, " + ")
}
