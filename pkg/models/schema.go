package models

import (
	"encoding/json"
)

// SchemaVersion tags the options shapes served by the schema endpoints.
const SchemaVersion = "v1"

// FieldType is the backend's declared kind of a column
type FieldType string

const (
	FieldTypeSingleLineText        FieldType = "singleLineText"
	FieldTypeEmail                 FieldType = "email"
	FieldTypeURL                   FieldType = "url"
	FieldTypeMultilineText         FieldType = "multilineText"
	FieldTypeNumber                FieldType = "number"
	FieldTypeCurrency              FieldType = "currency"
	FieldTypePercent               FieldType = "percent"
	FieldTypeDuration              FieldType = "duration"
	FieldTypeDate                  FieldType = "date"
	FieldTypeDateTime              FieldType = "dateTime"
	FieldTypePhoneNumber           FieldType = "phoneNumber"
	FieldTypeSingleSelect          FieldType = "singleSelect"
	FieldTypeMultipleSelects       FieldType = "multipleSelects"
	FieldTypeCheckbox              FieldType = "checkbox"
	FieldTypeRating                FieldType = "rating"
	FieldTypeRichText              FieldType = "richText"
	FieldTypeMultipleRecordLinks   FieldType = "multipleRecordLinks"
	FieldTypeMultipleAttachments   FieldType = "multipleAttachments"
	FieldTypeBarcode               FieldType = "barcode"
	FieldTypeButton                FieldType = "button"
	FieldTypeSingleCollaborator    FieldType = "singleCollaborator"
	FieldTypeMultipleCollaborators FieldType = "multipleCollaborators"
	FieldTypeFormula               FieldType = "formula"
	FieldTypeRollup                FieldType = "rollup"
	FieldTypeLookup                FieldType = "lookup"
	FieldTypeMultipleLookupValues  FieldType = "multipleLookupValues"
	FieldTypeCount                 FieldType = "count"
	FieldTypeCreatedTime           FieldType = "createdTime"
	FieldTypeLastModifiedTime      FieldType = "lastModifiedTime"
	FieldTypeCreatedBy             FieldType = "createdBy"
	FieldTypeLastModifiedBy        FieldType = "lastModifiedBy"
	FieldTypeAutoNumber            FieldType = "autoNumber"
	FieldTypeExternalSyncSource    FieldType = "externalSyncSource"
	FieldTypeAIText                FieldType = "aiText"
)

// Table is one table of a base, with its ordered field list
type Table struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PrimaryFieldID string  `json:"primaryFieldId,omitempty"`
	Description    string  `json:"description,omitempty"`
	Fields         []Field `json:"fields"`
}

// Field describes a single column
type Field struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Type        FieldType    `json:"type"`
	Description string       `json:"description,omitempty"`
	Options     FieldOptions `json:"options"`
}

// UnmarshalJSON decodes the options payload into the variant matching Type.
func (f *Field) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Type        FieldType       `json:"type"`
		Description string          `json:"description"`
		Options     json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.ID = aux.ID
	f.Name = aux.Name
	f.Type = aux.Type
	f.Description = aux.Description
	f.Options = DecodeOptions(aux.Type, aux.Options)
	return nil
}

// Record is a row created in (or read from) the backend
type Record struct {
	ID          string                 `json:"id"`
	CreatedTime string                 `json:"createdTime,omitempty"`
	Fields      map[string]interface{} `json:"fields"`
}

// TableRef is the {id, name} pair listed by /api/tables
type TableRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FieldSummary is the client-facing view of a field
type FieldSummary struct {
	Name    string       `json:"name"`
	Type    FieldType    `json:"type"`
	Options FieldOptions `json:"options"`
}

// TableSchema is the client-facing view of a table's fields
type TableSchema struct {
	Name   string         `json:"name"`
	Fields []FieldSummary `json:"fields"`
}

// Schema builds the client-facing view of t
func (t Table) Schema() TableSchema {
	fields := make([]FieldSummary, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, FieldSummary{Name: f.Name, Type: f.Type, Options: f.Options})
	}
	return TableSchema{Name: t.Name, Fields: fields}
}
