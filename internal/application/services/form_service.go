package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/nexuscrm/formbridge/pkg/constants"
	appErrors "github.com/nexuscrm/formbridge/pkg/errors"
	"github.com/nexuscrm/formbridge/pkg/formbuilder"
	"github.com/nexuscrm/formbridge/pkg/models"
)

// Backend is the tabular-data service the dashboard fronts
type Backend interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	GetTable(ctx context.Context, tableIDOrName string) (*models.Table, error)
	CreateRecord(ctx context.Context, tableIDOrName string, fields map[string]interface{}) (*models.Record, error)
}

// Credentials reports which backend credentials are configured
type Credentials struct {
	TokenSet  bool
	BaseIDSet bool
}

// TablesResult is the table listing plus each table's schema keyed by table ID
type TablesResult struct {
	Tables  []models.TableRef             `json:"tables"`
	Schemas map[string]models.TableSchema `json:"schemas"`
}

// FormService lists tables, renders forms and submits records
type FormService struct {
	backend     Backend
	builder     *formbuilder.Builder
	credentials Credentials
	log         *zap.Logger
}

// NewFormService creates a new FormService
func NewFormService(backend Backend, builder *formbuilder.Builder, creds Credentials, log *zap.Logger) *FormService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FormService{
		backend:     backend,
		builder:     builder,
		credentials: creds,
		log:         log,
	}
}

// Health reports configured credentials; it never calls the backend
func (s *FormService) Health() Credentials {
	return s.credentials
}

// ListTables enumerates tables with their field schemas
func (s *FormService) ListTables(ctx context.Context) (*TablesResult, error) {
	tables, err := s.backend.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	result := &TablesResult{
		Tables:  make([]models.TableRef, 0, len(tables)),
		Schemas: make(map[string]models.TableSchema, len(tables)),
	}
	for _, t := range tables {
		result.Tables = append(result.Tables, models.TableRef{ID: t.ID, Name: t.Name})
		result.Schemas[t.ID] = t.Schema()
	}
	return result, nil
}

// TableSchema returns the schema of a single table
func (s *FormService) TableSchema(ctx context.Context, tableID string) (*models.TableSchema, error) {
	table, err := s.backend.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	schema := table.Schema()
	return &schema, nil
}

// RenderForm returns the form markup for a table's writable fields
func (s *FormService) RenderForm(ctx context.Context, tableID string) (string, error) {
	table, err := s.backend.GetTable(ctx, tableID)
	if err != nil {
		return "", err
	}
	return s.builder.Render(table.Name, table.Fields), nil
}

// Submit cleans the payload and creates a record in the table.
// A payload with nothing left after cleaning never reaches the backend.
func (s *FormService) Submit(ctx context.Context, tableID string, payload map[string]interface{}) (*models.Record, error) {
	clean := CleanSubmission(payload)
	if len(clean) == 0 {
		return nil, appErrors.NewValidationError("", constants.MsgNoValidData)
	}

	record, err := s.backend.CreateRecord(ctx, tableID, clean)
	if err != nil {
		return nil, err
	}
	s.log.Info("record created",
		zap.String("table_id", tableID),
		zap.String("record_id", record.ID),
		zap.Int("fields", len(clean)),
	)
	return record, nil
}
