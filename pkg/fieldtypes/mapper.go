package fieldtypes

import (
	"strings"

	"github.com/nexuscrm/formbridge/pkg/models"
)

// autoIdentifierNames are column names the backend fills in itself
var autoIdentifierNames = map[string]struct{}{
	"record id":          {},
	"id":                 {},
	"created time":       {},
	"modified time":      {},
	"last modified time": {},
}

// Remapper overrides the widget chosen for a field of the named table
type Remapper interface {
	Apply(table string, kind InputKind) InputKind
}

// Input is the widget specification for one editable field
type Input struct {
	Kind    InputKind
	ID      string
	Name    string
	Step    string
	Rows    int
	Options []string
}

// Mapper turns field descriptors into Input specs
type Mapper struct {
	registry *Registry
	policies Remapper
}

// NewMapper creates a Mapper over the default registry. policies may be nil.
func NewMapper(policies Remapper) *Mapper {
	return &Mapper{registry: GetRegistry(), policies: policies}
}

// Map returns the input for field f of table, or nil when the field is not
// writable through a form.
func (m *Mapper) Map(table string, f models.Field) *Input {
	typeName := string(f.Type)
	if m.registry.IsComputed(typeName) || IsAutoIdentifier(f.Name) {
		return nil
	}

	kind := m.registry.InputKind(typeName)
	if m.policies != nil {
		kind = m.policies.Apply(table, kind)
	}

	in := &Input{
		Kind: kind,
		ID:   FieldID(f.Name),
		Name: f.Name,
	}

	switch {
	case kind == InputNumber:
		in.Step = m.registry.Step(typeName)
	case kind == InputTextarea:
		in.Rows = 4
	case kind.IsSelect():
		in.Options = []string{}
		for _, c := range models.ChoicesOf(f.Options) {
			in.Options = append(in.Options, c.Name)
		}
	}
	return in
}

// IsAutoIdentifier reports whether name is one of the backend-managed
// identifier columns. Matching is case-insensitive on the trimmed name.
func IsAutoIdentifier(name string) bool {
	_, ok := autoIdentifierNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

var fieldIDReplacer = strings.NewReplacer(" ", "_", "(", "", ")", "", "&", "")

// FieldID is the DOM id of the widget for a field name
func FieldID(name string) string {
	return "field_" + fieldIDReplacer.Replace(name)
}
