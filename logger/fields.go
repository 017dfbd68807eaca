package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldCode      = "code"
	FieldDominant  = "dominant"

	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldRemote     = "remote"
	FieldDurationMS = "duration_ms"

	FieldConfigPath = "config_path"
	FieldError      = "error"
)
