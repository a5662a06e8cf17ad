package constants

// Environment variable names
const (
	EnvAirtableToken       = "AIRTABLE_TOKEN"
	EnvAirtableBaseID      = "AIRTABLE_BASE_ID"
	EnvAirtableEndpointURL = "AIRTABLE_ENDPOINT_URL"
	EnvAirtableTimeout     = "AIRTABLE_TIMEOUT"
	EnvAirtableVerifySSL   = "AIRTABLE_VERIFY_SSL"
	EnvAirtableCABundle    = "AIRTABLE_CA_BUNDLE"
	EnvFormPolicyFile      = "FORM_POLICY_FILE"
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFile             = "LOG_FILE"
)

// Defaults
const (
	DefaultPort            = 10000
	DefaultBindHost        = "0.0.0.0"
	DefaultAirtableURL     = "https://api.airtable.com"
	DefaultLogLevel        = "info"
	DefaultShutdownSeconds = 5
)
