package fieldtypes

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed fieldTypes.json
var fieldTypesFS embed.FS

// InputKind is the HTML widget used to edit a field
type InputKind string

const (
	InputText        InputKind = "text"
	InputEmail       InputKind = "email"
	InputURL         InputKind = "url"
	InputTextarea    InputKind = "textarea"
	InputNumber      InputKind = "number"
	InputDate        InputKind = "date"
	InputDateTime    InputKind = "datetime-local"
	InputTel         InputKind = "tel"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multiselect"
	InputCheckbox    InputKind = "checkbox"
)

// IsSelect reports whether k renders as a selection widget
func (k InputKind) IsSelect() bool {
	return k == InputSelect || k == InputMultiSelect
}

// FieldTypeDefinition represents a field type configuration
type FieldTypeDefinition struct {
	Label      string    `json:"label"`
	InputKind  InputKind `json:"inputKind"`
	IsComputed bool      `json:"isComputed,omitempty"`
	Step       *string   `json:"step,omitempty"`
}

// Registry holds field type definitions
type Registry struct {
	types map[string]FieldTypeDefinition
	mu    sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// GetRegistry returns the singleton field types registry
func GetRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = &Registry{
			types: make(map[string]FieldTypeDefinition),
		}
		if err := defaultRegistry.loadFromEmbedded(); err != nil {
			panic(fmt.Sprintf("fieldtypes: embedded registry is invalid: %v", err))
		}
	})
	return defaultRegistry
}

// loadFromEmbedded loads field types from the embedded JSON file
func (r *Registry) loadFromEmbedded() error {
	data, err := fieldTypesFS.ReadFile("fieldTypes.json")
	if err != nil {
		return err
	}

	var types map[string]FieldTypeDefinition
	if err := json.Unmarshal(data, &types); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = types
	return nil
}

// Get returns a field type definition by name
func (r *Registry) Get(typeName string) (FieldTypeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.types[typeName]
	return def, ok
}

// InputKind returns the widget for a field type; unknown types edit as text
func (r *Registry) InputKind(typeName string) InputKind {
	def, ok := r.Get(typeName)
	if !ok || def.InputKind == "" {
		return InputText
	}
	return def.InputKind
}

// IsComputed returns whether a field type is derived by the backend (not writable)
func (r *Registry) IsComputed(typeName string) bool {
	def, ok := r.Get(typeName)
	if !ok {
		return false
	}
	return def.IsComputed
}

// Step returns the numeric step for a field type, "1" unless the type declares one
func (r *Registry) Step(typeName string) string {
	def, ok := r.Get(typeName)
	if !ok || def.Step == nil {
		return "1"
	}
	return *def.Step
}

// GetAll returns all registered field types
func (r *Registry) GetAll() map[string]FieldTypeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]FieldTypeDefinition, len(r.types))
	for k, v := range r.types {
		result[k] = v
	}
	return result
}

// FieldTypeWithName includes the name in the field type definition
type FieldTypeWithName struct {
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	InputKind  InputKind `json:"inputKind"`
	IsComputed bool      `json:"isComputed"`
	Step       string    `json:"step,omitempty"`
}

// GetAllFieldTypes returns all built-in field types sorted by name
func GetAllFieldTypes() []FieldTypeWithName {
	registry := GetRegistry()
	allTypes := registry.GetAll()
	result := make([]FieldTypeWithName, 0, len(allTypes))

	for name, def := range allTypes {
		step := ""
		if def.Step != nil {
			step = *def.Step
		}
		result = append(result, FieldTypeWithName{
			Name:       name,
			Label:      def.Label,
			InputKind:  def.InputKind,
			IsComputed: def.IsComputed,
			Step:       step,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
