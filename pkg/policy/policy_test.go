package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscrm/formbridge/pkg/fieldtypes"
)

func TestDefault_TrainingRegister(t *testing.T) {
	s := Default()

	assert.Equal(t, fieldtypes.InputText, s.Apply("Training & Competency Register", fieldtypes.InputSelect))
	assert.Equal(t, fieldtypes.InputText, s.Apply("COMPETENCY / TRAINING", fieldtypes.InputMultiSelect))
	// Only select kinds are remapped
	assert.Equal(t, fieldtypes.InputNumber, s.Apply("Training & Competency Register", fieldtypes.InputNumber))
	// Both words are required
	assert.Equal(t, fieldtypes.InputSelect, s.Apply("Training Sessions", fieldtypes.InputSelect))
	assert.Equal(t, fieldtypes.InputSelect, s.Apply("Incidents", fieldtypes.InputSelect))
}

func TestParse_AppendsToDefaults(t *testing.T) {
	s, err := Parse([]byte(`
rules:
  - name: incidents-plain-dates
    match: table == "Incidents"
    remap:
      datetime-local: date
`))
	require.NoError(t, err)
	require.Len(t, s.Rules(), 2)

	assert.Equal(t, fieldtypes.InputDate, s.Apply("Incidents", fieldtypes.InputDateTime))
	assert.Equal(t, fieldtypes.InputDateTime, s.Apply("Audits", fieldtypes.InputDateTime))
	assert.Equal(t, fieldtypes.InputText, s.Apply("Training & Competency Register", fieldtypes.InputSelect))
}

func TestParse_Replace(t *testing.T) {
	s, err := Parse([]byte(`
replace: true
rules:
  - name: everything-text
    match: "true"
    remap:
      checkbox: text
`))
	require.NoError(t, err)
	require.Len(t, s.Rules(), 1)

	assert.Equal(t, fieldtypes.InputSelect, s.Apply("Training & Competency Register", fieldtypes.InputSelect))
	assert.Equal(t, fieldtypes.InputText, s.Apply("Anything", fieldtypes.InputCheckbox))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("rules: ["))
	assert.Error(t, err)

	_, err = Parse([]byte(`
rules:
  - name: broken
    match: CONTAINS(table,
    remap: {select: text}
`))
	assert.Error(t, err)

	_, err = Parse([]byte(`
rules:
  - name: no-match
    remap: {select: text}
`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("replace: true\nrules: []\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, s.Rules())
	assert.Equal(t, fieldtypes.InputSelect, s.Apply("Training & Competency Register", fieldtypes.InputSelect))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.Equal(t, fieldtypes.InputSelect, s.Apply("Training & Competency Register", fieldtypes.InputSelect))
}
