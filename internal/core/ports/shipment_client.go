package ports

import (
	"context"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// ShipmentClient talks to the remote shipment resource. It is the only
// component that performs network I/O for shipments.
type ShipmentClient interface {
	// ListShipments returns every remote record. On failure the slice is
	// empty, never nil, and the error says why.
	ListShipments(ctx context.Context) ([]domain.WireRecord, error)
	// UpsertShipment creates rec, or fully replaces the record keyed by
	// rec.TrackingNumber when isUpdate is true.
	UpsertShipment(ctx context.Context, rec domain.WireRecord, isUpdate bool) error
	DeleteShipment(ctx context.Context, trackingNumber string) error
}
