package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexuscrm/formbridge/internal/application/services"
	"github.com/nexuscrm/formbridge/pkg/constants"
	appErrors "github.com/nexuscrm/formbridge/pkg/errors"
	"github.com/nexuscrm/formbridge/pkg/models"
)

// FormService defines the interface for dashboard operations
type FormService interface {
	Health() services.Credentials
	ListTables(ctx context.Context) (*services.TablesResult, error)
	TableSchema(ctx context.Context, tableID string) (*models.TableSchema, error)
	RenderForm(ctx context.Context, tableID string) (string, error)
	Submit(ctx context.Context, tableID string, payload map[string]interface{}) (*models.Record, error)
}

// FormHandler handles the dashboard API endpoints
type FormHandler struct {
	svc FormService
	log *zap.Logger
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(svc FormService, log *zap.Logger) *FormHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FormHandler{svc: svc, log: log}
}

// Test handles GET /api/test
func (h *FormHandler) Test(c *gin.Context) {
	creds := h.svc.Health()
	RespondSuccess(c, gin.H{
		constants.ResponseMessage:   constants.MsgAPIWorking,
		constants.ResponseTokenSet:  creds.TokenSet,
		constants.ResponseBaseIDSet: creds.BaseIDSet,
	})
}

// ListTables handles GET /api/tables
func (h *FormHandler) ListTables(c *gin.Context) {
	result, err := h.svc.ListTables(c.Request.Context())
	if err != nil {
		RespondAppError(c, h.log, err)
		return
	}
	RespondSuccess(c, gin.H{
		constants.ResponseTables:  result.Tables,
		constants.ResponseSchemas: result.Schemas,
		constants.ResponseVersion: models.SchemaVersion,
	})
}

// GetSchema handles GET /api/tables/:table_id/schema
func (h *FormHandler) GetSchema(c *gin.Context) {
	tableID := c.Param(constants.ParamTableID)
	HandleGetEnvelope(c, h.log, constants.ResponseSchema, func() (interface{}, error) {
		return h.svc.TableSchema(c.Request.Context(), tableID)
	})
}

// GetForm handles GET /api/form/:table_id
func (h *FormHandler) GetForm(c *gin.Context) {
	tableID := c.Param(constants.ParamTableID)
	HandleGetEnvelope(c, h.log, constants.ResponseForm, func() (interface{}, error) {
		return h.svc.RenderForm(c.Request.Context(), tableID)
	})
}

// Submit handles POST /api/submit/:table_id
func (h *FormHandler) Submit(c *gin.Context) {
	tableID := c.Param(constants.ParamTableID)

	var payload map[string]interface{}
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		RespondAppError(c, h.log, appErrors.NewValidationError("", constants.MsgInvalidPayload))
		return
	}

	record, err := h.svc.Submit(c.Request.Context(), tableID, payload)
	if err != nil {
		RespondAppError(c, h.log, err)
		return
	}
	RespondSuccess(c, gin.H{
		constants.ResponseRecordID: record.ID,
		constants.ResponseMessage:  constants.MsgRecordCreated,
	})
}

// Health handles GET /health
func (h *FormHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		constants.ResponseStatus: constants.ResponseStatusOK,
	})
}
