package dispatch

import (
	"context"
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/core/registry"
)

type service struct {
	source    ports.RuleSource
	evaluator ports.Evaluator
	active    atomic.Pointer[registry.Registry]
}

// NewService creates a new dispatch service. The service holds no rules until
// Load succeeds.
// It panics if the rule source or the evaluator is nil.
func NewService(src ports.RuleSource, ev ports.Evaluator) ports.DispatchService {
	if src == nil {
		panic("ruleSource cannot be nil")
	}
	if ev == nil {
		panic("evaluator cannot be nil")
	}
	return &service{source: src, evaluator: ev}
}

// Load builds a fresh registry from the rule source and swaps it in. A
// failed load leaves the previously active registry untouched.
func (s *service) Load() error {
	defs, err := s.source.GetDefinitions()
	if err != nil {
		return fmt.Errorf("failed to read rules from %s: %w", s.source.Describe(), err)
	}
	reg, err := registry.Build(defs)
	if err != nil {
		log.WithFields(log.Fields{"source": s.source.Describe()}).WithError(err).Warn("rule set rejected")
		return fmt.Errorf("failed to load rules from %s: %w", s.source.Describe(), err)
	}

	previous := s.active.Swap(reg)
	fields := log.Fields{"source": s.source.Describe(), "rules": reg.Len()}
	if previous != nil {
		fields["previous_rules"] = previous.Len()
		log.WithFields(fields).Info("rule set reloaded")
	} else {
		log.WithFields(fields).Info("rule set loaded")
	}
	return nil
}

func (s *service) Expand(line string) (rule.Expansion, error) {
	reg := s.active.Load()
	if reg == nil {
		return rule.Expansion{}, rule.ErrNotLoaded
	}
	exp, err := reg.Dispatch(line)
	if err != nil {
		log.WithField("line", line).WithError(err).Debug("dispatch failed")
		return rule.Expansion{}, err
	}
	log.WithFields(log.Fields{"rule": exp.Name, "kind": exp.Kind.String(), "command": exp.Command}).Debug("line expanded")
	return exp, nil
}

// Run expands line and forwards the command to the evaluator. Dispatch
// errors are returned without contacting the evaluator.
func (s *service) Run(ctx context.Context, line string, session evaluation.Session) (evaluation.Result, error) {
	exp, err := s.Expand(line)
	if err != nil {
		return evaluation.Result{}, err
	}
	res, err := s.evaluator.Evaluate(ctx, exp.Command, session)
	if err != nil {
		return res, fmt.Errorf("failed to evaluate %q: %w", exp.Command, err)
	}
	return res, nil
}

func (s *service) Describe(name string) (rule.Help, error) {
	reg := s.active.Load()
	if reg == nil {
		return rule.Help{}, rule.ErrNotLoaded
	}
	return reg.Describe(name)
}

func (s *service) Rules() ([]rule.Rule, error) {
	reg := s.active.Load()
	if reg == nil {
		return nil, rule.ErrNotLoaded
	}
	return reg.Rules(), nil
}

func (s *service) SourceDetails() string {
	return s.source.Describe()
}
