package schema

import (
	"fmt"

	"github.com/flexprice/shipdiscount/internal/domain/rule"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
)

const (
	keyName   = "name"
	keyParams = "params"
)

// RuleSchema is the declarative description of one rule instance
type RuleSchema struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// DecodeRuleSchemas checks the shape of raw rule entries. Each entry holds
// exactly a non-empty string name and a params mapping.
func DecodeRuleSchemas(raw []map[string]any) ([]RuleSchema, error) {
	out := make([]RuleSchema, 0, len(raw))
	for i, entry := range raw {
		s, err := decodeRuleSchema(entry)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessagef("rule schema %d", i).
				Mark(ierr.ErrInvalidSchema)
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeRuleSchema(entry map[string]any) (RuleSchema, error) {
	_, hasName := entry[keyName]
	_, hasParams := entry[keyParams]
	if len(entry) != 2 || !hasName || !hasParams {
		return RuleSchema{}, ierr.NewErrorf("expected keys %q and %q, got %d keys", keyName, keyParams, len(entry)).
			WithHint("Rule schema must contain exactly a name and params").
			Mark(ierr.ErrInvalidSchema)
	}

	name, ok := entry[keyName].(string)
	if !ok || name == "" {
		return RuleSchema{}, ierr.NewErrorf("rule name must be a non-empty string, got %v", entry[keyName]).
			WithHint("Rule schema name must be a non-empty string").
			Mark(ierr.ErrInvalidSchema)
	}

	params, err := toStringMap(entry[keyParams])
	if err != nil {
		return RuleSchema{}, ierr.WithError(err).
			WithHintf("Params of rule %s must be a mapping", name).
			Mark(ierr.ErrInvalidSchema)
	}

	return RuleSchema{Name: name, Params: params}, nil
}

// toStringMap normalizes the mappings produced by the yaml and json decoders
func toStringMap(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("parameter key must be a string, got %T", k)
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", raw)
	}
}

// RuleSet is an ordered collection of rule instances keyed by rule name.
// Order is the position at which a name first appeared.
type RuleSet[T any] struct {
	names []string
	rules map[string]T
}

func newRuleSet[T any]() *RuleSet[T] {
	return &RuleSet[T]{rules: make(map[string]T)}
}

// put stores r under name, reporting whether it replaced an earlier instance
func (s *RuleSet[T]) put(name string, r T) bool {
	_, exists := s.rules[name]
	if !exists {
		s.names = append(s.names, name)
	}
	s.rules[name] = r
	return exists
}

// Get returns the instance stored under name
func (s *RuleSet[T]) Get(name string) (T, bool) {
	r, ok := s.rules[name]
	return r, ok
}

// Names returns the rule names in evaluation order
func (s *RuleSet[T]) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Rules returns the instances in evaluation order
func (s *RuleSet[T]) Rules() []T {
	out := make([]T, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.rules[name])
	}
	return out
}

func (s *RuleSet[T]) Len() int {
	return len(s.names)
}

// InitRules instantiates every schema against the registry. Construction is
// all or nothing: the first failing schema aborts with no partial set.
func InitRules[T any](registry *rule.Registry[T], schemas []RuleSchema, paramTypes ParamTypes, log *logger.Logger) (*RuleSet[T], error) {
	if log == nil {
		log = logger.NewNopLogger()
	}
	schemaLog := log.Named("schema")

	set := newRuleSet[T]()
	for _, s := range schemas {
		ctor, ok := registry.Get(s.Name)
		if !ok {
			return nil, ierr.NewErrorf("unknown rule %q", s.Name).
				WithHintf("Rule %s is not registered", s.Name).
				WithReportableDetails(map[string]any{
					"rule":      s.Name,
					"available": registry.Names(),
				}).
				Mark(ierr.ErrUnknownRule)
		}

		params, err := paramTypes.CoerceAll(s.Params)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessagef("rule %s", s.Name).
				Mark(ierr.ErrInvalidSchema)
		}

		instance, err := ctor(rule.Params(params), log)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessagef("failed to construct rule %s", s.Name).
				Mark(ierr.ErrRuleConstruction)
		}

		if replaced := set.put(s.Name, instance); replaced {
			schemaLog.Warnw("rule declared more than once, keeping the last declaration",
				"rule", s.Name,
			)
		}
		schemaLog.Debugw("rule instantiated", "rule", s.Name, "params", s.Params)
	}

	return set, nil
}
