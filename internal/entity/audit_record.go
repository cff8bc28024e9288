package entity

import "time"

// AuditRecord is one entry of audit history. Exactly one of Report and
// FetchError is set.
type AuditRecord struct {
	URL        string       `json:"url"`
	Report     *AuditReport `json:"report,omitempty"`
	FetchError string       `json:"fetchError,omitempty"`
	AuditedAt  time.Time    `json:"auditedAt"`
}
