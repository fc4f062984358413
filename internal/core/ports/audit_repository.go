package ports

import (
	"context"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// AuditRepository records every mutation attempt made against the remote
// shipment resource.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
