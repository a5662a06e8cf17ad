package airtable

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/nexuscrm/formbridge/pkg/constants"
	appErrors "github.com/nexuscrm/formbridge/pkg/errors"
	"github.com/nexuscrm/formbridge/pkg/models"
)

// DefaultTimeout bounds every backend round-trip
const DefaultTimeout = 30 * time.Second

// Config configures a Client
type Config struct {
	Token       string
	BaseID      string
	EndpointURL string
	Timeout     time.Duration
	// VerifyTLS disables certificate verification for this client only when false.
	VerifyTLS bool
	// CABundle is an optional PEM file added to the system roots.
	CABundle string
}

// Client talks to the Airtable REST API for a single base
type Client struct {
	BaseURL    string
	BaseID     string
	HTTPClient *http.Client
	token      string
}

// NewClient creates a client. TLS settings apply to this client's transport only.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, appErrors.NewConfigError(constants.EnvAirtableToken, "is required")
	}
	if cfg.BaseID == "" {
		return nil, appErrors.NewConfigError(constants.EnvAirtableBaseID, "is required")
	}

	endpoint := strings.TrimRight(cfg.EndpointURL, "/")
	if endpoint == "" {
		endpoint = constants.DefaultAirtableURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tlsConfig, err := buildTLSConfig(cfg.VerifyTLS, cfg.CABundle)
	if err != nil {
		return nil, err
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &Client{
		BaseURL: endpoint,
		BaseID:  cfg.BaseID,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		token: cfg.Token,
	}, nil
}

func buildTLSConfig(verify bool, caBundle string) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if !verify {
		cfg.InsecureSkipVerify = true
	}
	if caBundle == "" {
		return cfg, nil
	}

	pem, err := os.ReadFile(caBundle)
	if err != nil {
		return nil, appErrors.NewConfigError(constants.EnvAirtableCABundle, fmt.Sprintf("cannot be read: %v", err))
	}
	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, appErrors.NewConfigError(constants.EnvAirtableCABundle, "contains no PEM certificates")
	}
	cfg.RootCAs = pool
	return cfg, nil
}

// errorBody covers both {"error":{"type","message"}} and {"error":"TYPE"}
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

func decodeError(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && len(eb.Error) > 0 {
		var detail struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(eb.Error, &detail); err == nil {
			return appErrors.NewUpstreamError(status, detail.Type, detail.Message)
		}
		var code string
		if err := json.Unmarshal(eb.Error, &code); err == nil {
			return appErrors.NewUpstreamError(status, code, "")
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return appErrors.NewUpstreamError(status, "", msg)
}

// Helper to execute requests
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	fullURL := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+c.token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return appErrors.WrapUpstreamError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return decodeError(resp.StatusCode, respBytes)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return appErrors.WrapUpstreamError(fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return nil
}

// API Methods

// ListTables returns every table of the base with its field schema
func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	// GET /v0/meta/bases/:baseId/tables
	var resp struct {
		Tables []models.Table `json:"tables"`
	}
	path := fmt.Sprintf("/v0/meta/bases/%s/tables", url.PathEscape(c.BaseID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Tables == nil {
		return []models.Table{}, nil
	}
	return resp.Tables, nil
}

// GetTable returns the schema of one table, matched by ID or exact name
func (c *Client) GetTable(ctx context.Context, tableIDOrName string) (*models.Table, error) {
	tables, err := c.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tables {
		if tables[i].ID == tableIDOrName {
			return &tables[i], nil
		}
	}
	for i := range tables {
		if tables[i].Name == tableIDOrName {
			return &tables[i], nil
		}
	}
	return nil, appErrors.NewNotFoundError("table", tableIDOrName)
}

// CreateRecord inserts one record. typecast lets the backend coerce string
// values into the column's type.
func (c *Client) CreateRecord(ctx context.Context, tableIDOrName string, fields map[string]interface{}) (*models.Record, error) {
	// POST /v0/:baseId/:table
	body := map[string]interface{}{
		"fields":   fields,
		"typecast": true,
	}
	var record models.Record
	path := fmt.Sprintf("/v0/%s/%s", url.PathEscape(c.BaseID), url.PathEscape(tableIDOrName))
	if err := c.doRequest(ctx, http.MethodPost, path, body, &record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		return nil, appErrors.NewUpstreamError(0, "", "created record missing ID")
	}
	return &record, nil
}
