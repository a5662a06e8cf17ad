// Package policy holds per-table overrides of the widget chosen for a field.
//
// A rule matches tables through an expression over the variable `table` (the
// table name) and remaps input kinds for every field of matching tables:
//
//	rules:
//	  - name: training-register-free-text
//	    match: CONTAINS_ALL(table, "training", "competency")
//	    remap:
//	      select: text
//	      multiselect: text
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexuscrm/formbridge/pkg/expression"
	"github.com/nexuscrm/formbridge/pkg/fieldtypes"
)

// Rule is a single table rendering override
type Rule struct {
	Name  string                                       `yaml:"name"`
	Match string                                       `yaml:"match"`
	Remap map[fieldtypes.InputKind]fieldtypes.InputKind `yaml:"remap"`
}

// File is the on-disk policy document
type File struct {
	// Replace drops the built-in rules instead of appending to them.
	Replace bool   `yaml:"replace"`
	Rules   []Rule `yaml:"rules"`
}

// Set is an ordered list of compiled rules. The first matching rule that
// remaps a kind wins.
type Set struct {
	rules  []Rule
	engine *expression.Engine
}

// DefaultRules keeps the training register's select fields as free text
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "training-competency-free-text",
			Match: `CONTAINS_ALL(table, "training", "competency")`,
			Remap: map[fieldtypes.InputKind]fieldtypes.InputKind{
				fieldtypes.InputSelect:      fieldtypes.InputText,
				fieldtypes.InputMultiSelect: fieldtypes.InputText,
			},
		},
	}
}

// Default returns the built-in policy set
func Default() *Set {
	s, err := New(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("policy: built-in rules do not compile: %v", err))
	}
	return s
}

// New compiles rules into a Set. Every match expression must compile.
func New(rules []Rule) (*Set, error) {
	s := &Set{rules: rules, engine: expression.NewEngine()}
	for i, r := range rules {
		if r.Match == "" {
			return nil, fmt.Errorf("rule %d (%s): match is required", i, r.Name)
		}
		if err := s.engine.Validate(r.Match, env("")); err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Name, err)
		}
	}
	return s, nil
}

// LoadFile reads a YAML policy file. Its rules follow the built-in ones
// unless the file sets replace: true.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Set from a YAML policy document
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	rules := f.Rules
	if !f.Replace {
		rules = append(DefaultRules(), f.Rules...)
	}
	return New(rules)
}

// Rules returns a copy of the rule list
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Apply returns the kind a field of the given table should render as.
// A rule whose expression fails at runtime is treated as not matching.
func (s *Set) Apply(table string, kind fieldtypes.InputKind) fieldtypes.InputKind {
	if s == nil {
		return kind
	}
	for _, r := range s.rules {
		to, ok := r.Remap[kind]
		if !ok {
			continue
		}
		matched, err := s.engine.EvaluateBool(r.Match, env(table))
		if err != nil || !matched {
			continue
		}
		return to
	}
	return kind
}

func env(table string) map[string]interface{} {
	return map[string]interface{}{"table": table}
}
