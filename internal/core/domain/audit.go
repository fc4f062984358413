package domain

import "time"

// AuditAction names an operator action against the remote resource.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// AuditEntry records one submit or delete attempt made by an operator.
type AuditEntry struct {
	Action         AuditAction `json:"action"          bson:"action"`
	TrackingNumber string      `json:"tracking_number" bson:"tracking_number"`
	Username       string      `json:"username"        bson:"username"`
	Outcome        string      `json:"outcome"         bson:"outcome"`
	Error          string      `json:"error,omitempty" bson:"error,omitempty"`
	At             time.Time   `json:"at"              bson:"at"`
}
