package handler

import (
	"github.com/samber/lo"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// --- Service result → HTTP response ---

func toShipmentResponse(s domain.Shipment) shipmentResponse {
	return s.Wire()
}

func toListResponse(items []domain.Shipment) listShipmentsResponse {
	return listShipmentsResponse{
		Items: lo.Map(items, func(s domain.Shipment, _ int) shipmentResponse {
			return toShipmentResponse(s)
		}),
		Total: len(items),
	}
}

// --- Shipment → dashboard view ---

// shipmentRow is one line of the dashboard table.
type shipmentRow struct {
	TrackingNumber      string
	Status              string
	Origin              string
	Destination         string
	ExpectedArrivalDate string
	CurrentLocation     string
	Selected            bool
}

func toRows(items []domain.Shipment, selected string) []shipmentRow {
	return lo.Map(items, func(s domain.Shipment, _ int) shipmentRow {
		return shipmentRow{
			TrackingNumber:      s.TrackingNumber,
			Status:              string(s.Status),
			Origin:              s.PortOfLoading,
			Destination:         s.PortOfDischarge,
			ExpectedArrivalDate: lo.FromPtr(domain.FormatDate(s.ExpectedArrivalDate)),
			CurrentLocation:     s.CurrentLocation,
			Selected:            s.TrackingNumber == selected,
		}
	})
}
