// Package formbuilder renders a table's writable fields as HTML form markup.
package formbuilder

import (
	"html"
	"strconv"
	"strings"

	"github.com/nexuscrm/formbridge/pkg/fieldtypes"
	"github.com/nexuscrm/formbridge/pkg/models"
)

// Placeholder is the blank first option of every select widget
const Placeholder = "-- Select an option --"

// Builder renders forms using a field mapper
type Builder struct {
	mapper *fieldtypes.Mapper
}

// New creates a Builder
func New(mapper *fieldtypes.Mapper) *Builder {
	return &Builder{mapper: mapper}
}

// Render returns the concatenated markup of every writable field of the table
func (b *Builder) Render(table string, fields []models.Field) string {
	var sb strings.Builder
	for _, f := range fields {
		in := b.mapper.Map(table, f)
		if in == nil {
			continue
		}
		writeGroup(&sb, in)
	}
	return sb.String()
}

// Fragment renders a single input; empty for a nil input
func Fragment(in *fieldtypes.Input) string {
	if in == nil {
		return ""
	}
	var sb strings.Builder
	writeGroup(&sb, in)
	return sb.String()
}

func writeGroup(sb *strings.Builder, in *fieldtypes.Input) {
	id := html.EscapeString(in.ID)
	name := html.EscapeString(in.Name)

	sb.WriteString(`<div class="form-group">`)
	sb.WriteString(`<label for="` + id + `">` + name + `</label>`)

	switch in.Kind {
	case fieldtypes.InputTextarea:
		rows := in.Rows
		if rows <= 0 {
			rows = 4
		}
		sb.WriteString(`<textarea id="` + id + `" name="` + name + `" rows="` + strconv.Itoa(rows) + `"></textarea>`)
	case fieldtypes.InputSelect, fieldtypes.InputMultiSelect:
		sb.WriteString(`<select id="` + id + `" name="` + name + `"`)
		if in.Kind == fieldtypes.InputMultiSelect {
			sb.WriteString(` multiple`)
		}
		sb.WriteString(`>`)
		sb.WriteString(`<option value="">` + Placeholder + `</option>`)
		for _, opt := range in.Options {
			o := html.EscapeString(opt)
			sb.WriteString(`<option value="` + o + `">` + o + `</option>`)
		}
		sb.WriteString(`</select>`)
	case fieldtypes.InputCheckbox:
		sb.WriteString(`<input type="checkbox" id="` + id + `" name="` + name + `" value="true">`)
	case fieldtypes.InputNumber:
		step := in.Step
		if step == "" {
			step = "1"
		}
		sb.WriteString(`<input type="number" id="` + id + `" name="` + name + `" step="` + html.EscapeString(step) + `">`)
	default:
		sb.WriteString(`<input type="` + html.EscapeString(string(in.Kind)) + `" id="` + id + `" name="` + name + `">`)
	}

	sb.WriteString(`</div>`)
}
