package domain

import "time"

// AuditEntry records a security-relevant action for the audit trail.
type AuditEntry struct {
	Actor     string
	Action    string
	Target    string
	Success   bool
	Timestamp time.Time
}
