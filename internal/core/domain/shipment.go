package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "pending"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusCanceled  ShipmentStatus = "canceled"
)

// Statuses lists every status in display order.
var Statuses = []ShipmentStatus{StatusPending, StatusInTransit, StatusDelivered, StatusCanceled}

const (
	DefaultQuantity = "1"
	DefaultWeight   = "0"
)

// ParseStatus maps s onto the enum; unknown or empty values become pending.
func ParseStatus(s string) ShipmentStatus {
	st := ShipmentStatus(strings.TrimSpace(s))
	if lo.Contains(Statuses, st) {
		return st
	}
	return StatusPending
}

// Shipment is the editable view of a remote shipment record.
type Shipment struct {
	TrackingNumber string

	SenderName    string
	SenderEmail   string
	SenderNumber  string
	SenderAddress string

	ReceiverName    string
	ReceiverEmail   string
	ReceiverNumber  string
	ReceiverAddress string

	ProductDescription string
	Quantity           string
	Weight             string

	PortOfLoading   string
	PortOfDischarge string
	ShippingMode    string
	Voyage          string
	Carrier         string
	Vessel          string

	Status              ShipmentStatus
	DepartureDate       *time.Time
	ExpectedArrivalDate *time.Time
	RegistrationDate    *time.Time

	CurrentLocation  string
	LatestStatusDate *time.Time
	LatestStatusTime *time.Time
	NextTransitPort  string

	CurrentLocationCoords Coordinates
	DestinationCoords     Coordinates
}

// Text is a free-text wire field that also tolerates JSON numbers, since the
// remote API is not consistent about how it encodes quantity, weight and phone
// numbers. Booleans, objects and arrays read as blank.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""
	switch {
	case len(b) == 0:
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*t = Text(s)
		}
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err == nil {
			*t = Text(n.String())
		}
	}
	return nil
}

// WireRecord is the JSON representation exchanged with the remote resource.
// Decoding never fails on a field of the wrong type; see UnmarshalJSON.
type WireRecord struct {
	TrackingNumber string `json:"tracking_number"`

	SenderName    string `json:"sender_name"`
	SenderEmail   string `json:"sender_email"`
	SenderNumber  string `json:"sender_number"`
	SenderAddress string `json:"sender_address"`

	ReceiverName    string `json:"receiver_name"`
	ReceiverEmail   string `json:"receiver_email"`
	ReceiverNumber  string `json:"receiver_number"`
	ReceiverAddress string `json:"receiver_address"`

	ProductDescription string `json:"product_description"`
	Quantity           Text   `json:"quantity"`
	Weight             Text   `json:"weight"`

	PortOfLoading   string `json:"port_of_loading"`
	PortOfDischarge string `json:"port_of_discharge"`
	ShippingMode    string `json:"shipping_mode"`
	Voyage          string `json:"voyage"`
	Carrier         string `json:"carrier"`
	Vessel          string `json:"vessel"`

	Status              string  `json:"status"`
	DepartureDate       *string `json:"departure_date"`
	ExpectedArrivalDate *string `json:"expected_arrival_date"`
	RegistrationDate    *string `json:"registration_date"`

	CurrentLocation  string  `json:"current_location"`
	LatestStatusDate *string `json:"latest_status_date"`
	LatestStatusTime *string `json:"latest_status_time"`
	NextTransitPort  string  `json:"next_transit_port"`

	CurrentLocationCoords Coordinates `json:"current_location_coords"`
	DestinationCoords     Coordinates `json:"destination_coords"`
}

// FromWireRecord is the lenient read path: unparsable dates and times become
// absent, unknown statuses become pending, and half-populated coordinate
// pairs are dropped.
func FromWireRecord(r WireRecord) Shipment {
	return Shipment{
		TrackingNumber:        r.TrackingNumber,
		SenderName:            r.SenderName,
		SenderEmail:           r.SenderEmail,
		SenderNumber:          r.SenderNumber,
		SenderAddress:         r.SenderAddress,
		ReceiverName:          r.ReceiverName,
		ReceiverEmail:         r.ReceiverEmail,
		ReceiverNumber:        r.ReceiverNumber,
		ReceiverAddress:       r.ReceiverAddress,
		ProductDescription:    r.ProductDescription,
		Quantity:              string(r.Quantity),
		Weight:                string(r.Weight),
		PortOfLoading:         r.PortOfLoading,
		PortOfDischarge:       r.PortOfDischarge,
		ShippingMode:          r.ShippingMode,
		Voyage:                r.Voyage,
		Carrier:               r.Carrier,
		Vessel:                r.Vessel,
		Status:                ParseStatus(r.Status),
		DepartureDate:         ParseDate(deref(r.DepartureDate)),
		ExpectedArrivalDate:   ParseDate(deref(r.ExpectedArrivalDate)),
		RegistrationDate:      ParseDate(deref(r.RegistrationDate)),
		CurrentLocation:       r.CurrentLocation,
		LatestStatusDate:      ParseDate(deref(r.LatestStatusDate)),
		LatestStatusTime:      ParseTime(deref(r.LatestStatusTime)),
		NextTransitPort:       r.NextTransitPort,
		CurrentLocationCoords: readCoordinates(r.CurrentLocationCoords),
		DestinationCoords:     readCoordinates(r.DestinationCoords),
	}
}

func readCoordinates(c Coordinates) Coordinates {
	if c.Complete() {
		return c
	}
	return Coordinates{}
}

// ToWireFormat serializes s into the exact field set the remote resource
// expects. It refuses records that would violate the tracking-number or
// coordinate-pair invariants.
func ToWireFormat(s *Shipment) (WireRecord, error) {
	if s == nil || strings.TrimSpace(s.TrackingNumber) == "" {
		return WireRecord{}, &ValidationError{Field: "tracking_number", Err: ErrTrackingNumberRequired}
	}
	if err := checkPair("current_location_coords", s.CurrentLocationCoords); err != nil {
		return WireRecord{}, err
	}
	if err := checkPair("destination_coords", s.DestinationCoords); err != nil {
		return WireRecord{}, err
	}
	return s.Wire(), nil
}

// Wire encodes s without checking it. Use ToWireFormat for anything sent to
// the remote resource.
func (s Shipment) Wire() WireRecord {
	return WireRecord{
		TrackingNumber:        s.TrackingNumber,
		SenderName:            s.SenderName,
		SenderEmail:           s.SenderEmail,
		SenderNumber:          s.SenderNumber,
		SenderAddress:         s.SenderAddress,
		ReceiverName:          s.ReceiverName,
		ReceiverEmail:         s.ReceiverEmail,
		ReceiverNumber:        s.ReceiverNumber,
		ReceiverAddress:       s.ReceiverAddress,
		ProductDescription:    s.ProductDescription,
		Quantity:              Text(s.Quantity),
		Weight:                Text(s.Weight),
		PortOfLoading:         s.PortOfLoading,
		PortOfDischarge:       s.PortOfDischarge,
		ShippingMode:          s.ShippingMode,
		Voyage:                s.Voyage,
		Carrier:               s.Carrier,
		Vessel:                s.Vessel,
		Status:                string(ParseStatus(string(s.Status))),
		DepartureDate:         FormatDate(s.DepartureDate),
		ExpectedArrivalDate:   FormatDate(s.ExpectedArrivalDate),
		RegistrationDate:      FormatDate(s.RegistrationDate),
		CurrentLocation:       s.CurrentLocation,
		LatestStatusDate:      FormatDate(s.LatestStatusDate),
		LatestStatusTime:      FormatTime(s.LatestStatusTime),
		NextTransitPort:       s.NextTransitPort,
		CurrentLocationCoords: s.CurrentLocationCoords,
		DestinationCoords:     s.DestinationCoords,
	}
}

func checkPair(field string, c Coordinates) error {
	if c.Complete() || c.Empty() {
		return nil
	}
	return &ValidationError{
		Field: field,
		Err:   fmt.Errorf("%w: latitude and longitude must both be set or both be blank", ErrInvalidCoordinates),
	}
}
