package models

import (
	"bytes"
	"encoding/json"
)

// Options kinds, serialized as the "kind" tag of every options payload
const (
	OptionsKindChoices  = "choices"
	OptionsKindNumber   = "number"
	OptionsKindCurrency = "currency"
	OptionsKindDate     = "date"
	OptionsKindDateTime = "dateTime"
	OptionsKindRating   = "rating"
	OptionsKindCheckbox = "checkbox"
	OptionsKindRaw      = "raw"
)

// FieldOptions is the type-dependent metadata attached to a field.
// Each implementation is one explicit shape; anything else is kept as RawOptions.
type FieldOptions interface {
	OptionsKind() string
}

// Choice is one entry of a select field
type Choice struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// UnmarshalJSON accepts both {"id","name","color"} objects and bare strings.
func (c *Choice) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Choice{Name: name}
		return nil
	}
	type plain Choice
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Choice(p)
	return nil
}

// ChoiceOptions belongs to singleSelect and multipleSelects
type ChoiceOptions struct {
	Kind    string   `json:"kind"`
	Choices []Choice `json:"choices"`
}

func (ChoiceOptions) OptionsKind() string { return OptionsKindChoices }

// NumberOptions belongs to number and percent
type NumberOptions struct {
	Kind      string `json:"kind"`
	Precision int    `json:"precision"`
}

func (NumberOptions) OptionsKind() string { return OptionsKindNumber }

// CurrencyOptions belongs to currency
type CurrencyOptions struct {
	Kind      string `json:"kind"`
	Precision int    `json:"precision"`
	Symbol    string `json:"symbol"`
}

func (CurrencyOptions) OptionsKind() string { return OptionsKindCurrency }

// Format is a named display format, e.g. {"name":"iso","format":"YYYY-MM-DD"}
type Format struct {
	Name   string `json:"name"`
	Format string `json:"format,omitempty"`
}

// DateOptions belongs to date
type DateOptions struct {
	Kind       string `json:"kind"`
	DateFormat Format `json:"dateFormat"`
}

func (DateOptions) OptionsKind() string { return OptionsKindDate }

// DateTimeOptions belongs to dateTime
type DateTimeOptions struct {
	Kind       string `json:"kind"`
	DateFormat Format `json:"dateFormat"`
	TimeFormat Format `json:"timeFormat"`
	TimeZone   string `json:"timeZone,omitempty"`
}

func (DateTimeOptions) OptionsKind() string { return OptionsKindDateTime }

// RatingOptions belongs to rating
type RatingOptions struct {
	Kind  string `json:"kind"`
	Max   int    `json:"max"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func (RatingOptions) OptionsKind() string { return OptionsKindRating }

// CheckboxOptions belongs to checkbox
type CheckboxOptions struct {
	Kind  string `json:"kind"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func (CheckboxOptions) OptionsKind() string { return OptionsKindCheckbox }

// RawOptions keeps options with no explicit shape verbatim
type RawOptions struct {
	Kind string          `json:"kind"`
	Raw  json.RawMessage `json:"raw"`
}

func (RawOptions) OptionsKind() string { return OptionsKindRaw }

// DecodeOptions maps the raw options of a field of type t onto its explicit
// shape. Null or absent options yield nil; payloads that don't fit the
// expected shape are preserved as RawOptions.
func DecodeOptions(t FieldType, raw json.RawMessage) FieldOptions {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var (
		opts FieldOptions
		err  error
	)
	switch t {
	case FieldTypeSingleSelect, FieldTypeMultipleSelects:
		var o ChoiceOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindChoices
		opts = o
	case FieldTypeNumber, FieldTypePercent:
		var o NumberOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindNumber
		opts = o
	case FieldTypeCurrency:
		var o CurrencyOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindCurrency
		opts = o
	case FieldTypeDate:
		var o DateOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindDate
		opts = o
	case FieldTypeDateTime:
		var o DateTimeOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindDateTime
		opts = o
	case FieldTypeRating:
		var o RatingOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindRating
		opts = o
	case FieldTypeCheckbox:
		var o CheckboxOptions
		err = json.Unmarshal(trimmed, &o)
		o.Kind = OptionsKindCheckbox
		opts = o
	default:
		return rawOptions(trimmed)
	}
	if err != nil {
		return rawOptions(trimmed)
	}
	return opts
}

func rawOptions(raw []byte) RawOptions {
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	return RawOptions{Kind: OptionsKindRaw, Raw: cp}
}

// ChoicesOf returns the select choices carried by opts, or nil when opts is
// not a choice list.
func ChoicesOf(opts FieldOptions) []Choice {
	switch o := opts.(type) {
	case ChoiceOptions:
		return o.Choices
	case *ChoiceOptions:
		if o != nil {
			return o.Choices
		}
	}
	return nil
}
