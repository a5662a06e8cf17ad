package constants

// HTTP and API constants
const (
	// Content types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Auth
	BearerPrefix = "Bearer "

	// Response Keys
	ResponseError       = "error"
	ResponseSuccess     = "success"
	ResponseMessage     = "message"
	ResponseTables      = "tables"
	ResponseSchemas     = "schemas"
	ResponseSchema      = "schema"
	ResponseForm        = "form"
	ResponseRecordID    = "record_id"
	ResponseFieldTypes  = "field_types"
	ResponseVersion     = "schema_version"
	ResponseTokenSet    = "token_set"
	ResponseBaseIDSet   = "base_id_set"
	ResponseStatus      = "status"
	ResponseStatusOK    = "ok"
	ResponseNotFound    = "Not found"
	ResponseServerError = "Internal server error"
)

// Route parameters
const (
	ParamTableID = "table_id"
)

// Context Keys
const (
	ContextKeyRequestID = "request_id"
)

// User-facing messages
const (
	MsgAPIWorking     = "API is working!"
	MsgRecordCreated  = "Record created successfully"
	MsgNoValidData    = "No valid data provided"
	MsgInvalidPayload = "Request body must be a JSON object"
)
