package request

// AuditRequest is the body of POST /api/seo-audit.
type AuditRequest struct {
	URL string `json:"url"`
}
