package ports

import (
	"context"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// ShipmentService defines the dashboard use cases for shipments. Every
// mutating call is made on behalf of an authenticated session.
type ShipmentService interface {
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	CreateShipment(ctx context.Context, session *domain.Session, form domain.ShipmentForm) (*domain.Shipment, error)
	// UpdateShipment fully replaces the record keyed by trackingNumber. The
	// form's tracking number must match it.
	UpdateShipment(ctx context.Context, session *domain.Session, trackingNumber string, form domain.ShipmentForm) (*domain.Shipment, error)
	DeleteShipment(ctx context.Context, session *domain.Session, trackingNumber string) error
}
