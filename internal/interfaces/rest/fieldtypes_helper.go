package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/nexuscrm/formbridge/pkg/constants"
	"github.com/nexuscrm/formbridge/pkg/fieldtypes"
)

// FieldTypeInfo represents field type information for API response
type FieldTypeInfo struct {
	Name      string               `json:"name"`
	Label     string               `json:"label"`
	InputKind fieldtypes.InputKind `json:"inputKind"`
	Step      string               `json:"step,omitempty"`
	Writable  bool                 `json:"writable"`
}

// GetAllFieldTypes returns every known backend field type and the widget it edits with
func GetAllFieldTypes() []FieldTypeInfo {
	builtinTypes := fieldtypes.GetAllFieldTypes()
	result := make([]FieldTypeInfo, 0, len(builtinTypes))
	for _, ft := range builtinTypes {
		info := FieldTypeInfo{
			Name:      ft.Name,
			Label:     ft.Label,
			InputKind: ft.InputKind,
			Writable:  !ft.IsComputed,
		}
		if ft.InputKind == fieldtypes.InputNumber {
			info.Step = ft.Step
		}
		result = append(result, info)
	}
	return result
}

// GetFieldTypes handles GET /api/fieldtypes
func (h *FormHandler) GetFieldTypes(c *gin.Context) {
	RespondSuccess(c, gin.H{constants.ResponseFieldTypes: GetAllFieldTypes()})
}
