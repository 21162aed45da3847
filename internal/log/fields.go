package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldEntity     = "entity"
	FieldEntityID   = "entity_id"
	FieldOperation  = "operation"
	FieldStatusCode = "status_code"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldToastKind  = "toast_kind"
	FieldGeneration = "generation"
)

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentAPI      = "api"
	ComponentNotify   = "notify"
	ComponentPages    = "pages"
	ComponentForms    = "forms"
	ComponentSnapshot = "snapshot"
	ComponentEvents   = "events"
	ComponentReport   = "report"
)

// Standard operation names.
const (
	OpBootstrap = "bootstrap"
	OpLoad      = "load"
	OpCreate    = "create"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpExport    = "export"
	OpPublish   = "publish"
	OpRestore   = "restore"
)
