package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Search
	FieldQuery        = "query"
	FieldPage         = "page"
	FieldEnhancement  = "use_enhancement"
	FieldHits         = "hits"
	FieldBackendTotal = "backend_total"
	FieldEndpoint     = "endpoint"
)
