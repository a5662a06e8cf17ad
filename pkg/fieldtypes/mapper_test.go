package fieldtypes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscrm/formbridge/pkg/fieldtypes"
	"github.com/nexuscrm/formbridge/pkg/models"
	"github.com/nexuscrm/formbridge/pkg/policy"
)

func TestMapper_ExcludesComputedKinds(t *testing.T) {
	m := fieldtypes.NewMapper(policy.Default())

	computed := []models.FieldType{
		models.FieldTypeFormula,
		models.FieldTypeRollup,
		models.FieldTypeLookup,
		models.FieldTypeMultipleLookupValues,
		models.FieldTypeCount,
		models.FieldTypeCreatedTime,
		models.FieldTypeLastModifiedTime,
		models.FieldTypeCreatedBy,
		models.FieldTypeLastModifiedBy,
		models.FieldTypeAutoNumber,
	}
	for _, ft := range computed {
		t.Run(string(ft), func(t *testing.T) {
			assert.Nil(t, m.Map("Incidents", models.Field{Name: "Derived", Type: ft}))
		})
	}
}

func TestMapper_ExcludesAutoIdentifiers(t *testing.T) {
	m := fieldtypes.NewMapper(policy.Default())

	for _, name := range []string{"ID", "id", "Record ID", " record id ", "Created Time", "Modified Time"} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, m.Map("Incidents", models.Field{Name: name, Type: models.FieldTypeSingleLineText}))
		})
	}

	// Names that merely contain "id" are regular fields
	in := m.Map("Incidents", models.Field{Name: "Paid", Type: models.FieldTypeCheckbox})
	require.NotNil(t, in)
	assert.Equal(t, fieldtypes.InputCheckbox, in.Kind)
}

func TestMapper_InputKinds(t *testing.T) {
	m := fieldtypes.NewMapper(nil)

	tests := []struct {
		fieldType models.FieldType
		want      fieldtypes.InputKind
	}{
		{models.FieldTypeSingleLineText, fieldtypes.InputText},
		{models.FieldTypeEmail, fieldtypes.InputEmail},
		{models.FieldTypeURL, fieldtypes.InputURL},
		{models.FieldTypeMultilineText, fieldtypes.InputTextarea},
		{models.FieldTypeRichText, fieldtypes.InputTextarea},
		{models.FieldTypeNumber, fieldtypes.InputNumber},
		{models.FieldTypeRating, fieldtypes.InputNumber},
		{models.FieldTypeDate, fieldtypes.InputDate},
		{models.FieldTypeDateTime, fieldtypes.InputDateTime},
		{models.FieldTypePhoneNumber, fieldtypes.InputTel},
		{models.FieldTypeSingleSelect, fieldtypes.InputSelect},
		{models.FieldTypeMultipleSelects, fieldtypes.InputMultiSelect},
		{models.FieldTypeCheckbox, fieldtypes.InputCheckbox},
		{models.FieldType("somethingNew"), fieldtypes.InputText},
	}
	for _, tt := range tests {
		t.Run(string(tt.fieldType), func(t *testing.T) {
			in := m.Map("Incidents", models.Field{Name: "Value", Type: tt.fieldType})
			require.NotNil(t, in)
			assert.Equal(t, tt.want, in.Kind)
			assert.Equal(t, "field_Value", in.ID)
			assert.Equal(t, "Value", in.Name)
		})
	}
}

func TestMapper_NumericStep(t *testing.T) {
	m := fieldtypes.NewMapper(nil)

	assert.Equal(t, "0.01", m.Map("Costs", models.Field{Name: "Cost", Type: models.FieldTypeCurrency}).Step)
	assert.Equal(t, "0.01", m.Map("Costs", models.Field{Name: "Share", Type: models.FieldTypePercent}).Step)
	assert.Equal(t, "1", m.Map("Costs", models.Field{Name: "Count", Type: models.FieldTypeNumber}).Step)
	assert.Equal(t, "1", m.Map("Costs", models.Field{Name: "Stars", Type: models.FieldTypeRating}).Step)
}

func TestMapper_TrainingTableSelectsAsText(t *testing.T) {
	m := fieldtypes.NewMapper(policy.Default())
	field := models.Field{
		Name:    "Status",
		Type:    models.FieldTypeSingleSelect,
		Options: models.ChoiceOptions{Kind: models.OptionsKindChoices, Choices: []models.Choice{{Name: "Valid"}}},
	}

	in := m.Map("Training & Competency Register", field)
	require.NotNil(t, in)
	assert.Equal(t, fieldtypes.InputText, in.Kind)
	assert.Nil(t, in.Options)

	multi := m.Map("Training & Competency Register", models.Field{Name: "Courses", Type: models.FieldTypeMultipleSelects})
	require.NotNil(t, multi)
	assert.Equal(t, fieldtypes.InputText, multi.Kind)

	other := m.Map("Incidents", field)
	require.NotNil(t, other)
	assert.Equal(t, fieldtypes.InputSelect, other.Kind)
	assert.Equal(t, []string{"Valid"}, other.Options)
}

func TestMapper_SelectOptionsDegrade(t *testing.T) {
	m := fieldtypes.NewMapper(nil)

	var malformed models.Field
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Severity","type":"singleSelect","options":{"choices":42}}`), &malformed))

	for _, f := range []models.Field{
		{Name: "Severity", Type: models.FieldTypeSingleSelect},
		malformed,
	} {
		in := m.Map("Incidents", f)
		require.NotNil(t, in)
		assert.Equal(t, fieldtypes.InputSelect, in.Kind)
		assert.NotNil(t, in.Options)
		assert.Empty(t, in.Options)
	}
}

func TestFieldID(t *testing.T) {
	assert.Equal(t, "field_Date_of_Incident", fieldtypes.FieldID("Date of Incident"))
	assert.Equal(t, "field_Cost_GBP", fieldtypes.FieldID("Cost (GBP)"))
	assert.Equal(t, "field_Health__Safety", fieldtypes.FieldID("Health & Safety"))
}
