package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ShipmentForm carries the human-editable text of every shipment field, as
// submitted by the dashboard forms, the JSON API, or the CLI.
type ShipmentForm struct {
	TrackingNumber string `form:"tracking_number" json:"tracking_number" validate:"required"`

	SenderName    string `form:"sender_name"    json:"sender_name"`
	SenderEmail   string `form:"sender_email"   json:"sender_email"`
	SenderNumber  string `form:"sender_number"  json:"sender_number"`
	SenderAddress string `form:"sender_address" json:"sender_address"`

	ReceiverName    string `form:"receiver_name"    json:"receiver_name"`
	ReceiverEmail   string `form:"receiver_email"   json:"receiver_email"`
	ReceiverNumber  string `form:"receiver_number"  json:"receiver_number"`
	ReceiverAddress string `form:"receiver_address" json:"receiver_address"`

	ProductDescription string `form:"product_description" json:"product_description"`
	Quantity           string `form:"quantity"            json:"quantity"`
	Weight             string `form:"weight"              json:"weight"`

	PortOfLoading   string `form:"port_of_loading"   json:"port_of_loading"`
	PortOfDischarge string `form:"port_of_discharge" json:"port_of_discharge"`
	ShippingMode    string `form:"shipping_mode"     json:"shipping_mode"`
	Voyage          string `form:"voyage"            json:"voyage"`
	Carrier         string `form:"carrier"           json:"carrier"`
	Vessel          string `form:"vessel"            json:"vessel"`

	Status              string `form:"status"                json:"status"`
	DepartureDate       string `form:"departure_date"        json:"departure_date"`
	ExpectedArrivalDate string `form:"expected_arrival_date" json:"expected_arrival_date"`
	RegistrationDate    string `form:"registration_date"     json:"registration_date"`

	CurrentLocation  string `form:"current_location"   json:"current_location"`
	LatestStatusDate string `form:"latest_status_date" json:"latest_status_date"`
	LatestStatusTime string `form:"latest_status_time" json:"latest_status_time"`
	NextTransitPort  string `form:"next_transit_port"  json:"next_transit_port"`

	CurrentLocationLat string `form:"current_location_lat" json:"current_location_lat"`
	CurrentLocationLng string `form:"current_location_lng" json:"current_location_lng"`
	DestinationLat     string `form:"destination_lat"      json:"destination_lat"`
	DestinationLng     string `form:"destination_lng"      json:"destination_lng"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateForCreate checks a new shipment and applies the create defaults
// (status pending, quantity 1, weight 0) to fields left blank.
func ValidateForCreate(f ShipmentForm) (*Shipment, error) {
	s, err := f.toShipment()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Quantity) == "" {
		s.Quantity = DefaultQuantity
	}
	if strings.TrimSpace(s.Weight) == "" {
		s.Weight = DefaultWeight
	}
	return s, nil
}

// ValidateForUpdate checks a full-replace update. Besides the tracking number,
// each coordinate pair must be either blank or two valid numbers.
func ValidateForUpdate(f ShipmentForm) (*Shipment, error) {
	return f.toShipment()
}

func (f ShipmentForm) toShipment() (*Shipment, error) {
	f.TrackingNumber = strings.TrimSpace(f.TrackingNumber)
	if err := validate.Struct(f); err != nil {
		return nil, translate(err)
	}

	current, err := parseCoordinateFields("current_location_coords", f.CurrentLocationLat, f.CurrentLocationLng)
	if err != nil {
		return nil, err
	}
	destination, err := parseCoordinateFields("destination_coords", f.DestinationLat, f.DestinationLng)
	if err != nil {
		return nil, err
	}

	return &Shipment{
		TrackingNumber:        f.TrackingNumber,
		SenderName:            f.SenderName,
		SenderEmail:           f.SenderEmail,
		SenderNumber:          f.SenderNumber,
		SenderAddress:         f.SenderAddress,
		ReceiverName:          f.ReceiverName,
		ReceiverEmail:         f.ReceiverEmail,
		ReceiverNumber:        f.ReceiverNumber,
		ReceiverAddress:       f.ReceiverAddress,
		ProductDescription:    f.ProductDescription,
		Quantity:              f.Quantity,
		Weight:                f.Weight,
		PortOfLoading:         f.PortOfLoading,
		PortOfDischarge:       f.PortOfDischarge,
		ShippingMode:          f.ShippingMode,
		Voyage:                f.Voyage,
		Carrier:               f.Carrier,
		Vessel:                f.Vessel,
		Status:                ParseStatus(f.Status),
		DepartureDate:         ParseDate(strings.TrimSpace(f.DepartureDate)),
		ExpectedArrivalDate:   ParseDate(strings.TrimSpace(f.ExpectedArrivalDate)),
		RegistrationDate:      ParseDate(strings.TrimSpace(f.RegistrationDate)),
		CurrentLocation:       f.CurrentLocation,
		LatestStatusDate:      ParseDate(strings.TrimSpace(f.LatestStatusDate)),
		LatestStatusTime:      ParseTime(strings.TrimSpace(f.LatestStatusTime)),
		NextTransitPort:       f.NextTransitPort,
		CurrentLocationCoords: current,
		DestinationCoords:     destination,
	}, nil
}

func parseCoordinateFields(field, latText, lngText string) (Coordinates, error) {
	lat, err := ParseSingleCoordinate(latText)
	if err != nil {
		return Coordinates{}, &ValidationError{Field: field + ".latitude", Err: err}
	}
	lng, err := ParseSingleCoordinate(lngText)
	if err != nil {
		return Coordinates{}, &ValidationError{Field: field + ".longitude", Err: err}
	}
	c := Coordinates{Latitude: lat, Longitude: lng}
	if err := checkPair(field, c); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

func translate(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}
	fe := ve[0]
	if fe.Field() == "tracking_number" {
		return &ValidationError{Field: "tracking_number", Err: ErrTrackingNumberRequired}
	}
	return &ValidationError{Field: fe.Field(), Err: errors.New("failed validation (" + fe.Tag() + ")")}
}

// FormFromShipment renders s back into editable text.
func FormFromShipment(s Shipment) ShipmentForm {
	f := ShipmentForm{
		TrackingNumber:      s.TrackingNumber,
		SenderName:          s.SenderName,
		SenderEmail:         s.SenderEmail,
		SenderNumber:        s.SenderNumber,
		SenderAddress:       s.SenderAddress,
		ReceiverName:        s.ReceiverName,
		ReceiverEmail:       s.ReceiverEmail,
		ReceiverNumber:      s.ReceiverNumber,
		ReceiverAddress:     s.ReceiverAddress,
		ProductDescription:  s.ProductDescription,
		Quantity:            s.Quantity,
		Weight:              s.Weight,
		PortOfLoading:       s.PortOfLoading,
		PortOfDischarge:     s.PortOfDischarge,
		ShippingMode:        s.ShippingMode,
		Voyage:              s.Voyage,
		Carrier:             s.Carrier,
		Vessel:              s.Vessel,
		Status:              string(ParseStatus(string(s.Status))),
		DepartureDate:       deref(FormatDate(s.DepartureDate)),
		ExpectedArrivalDate: deref(FormatDate(s.ExpectedArrivalDate)),
		RegistrationDate:    deref(FormatDate(s.RegistrationDate)),
		CurrentLocation:     s.CurrentLocation,
		LatestStatusDate:    deref(FormatDate(s.LatestStatusDate)),
		LatestStatusTime:    deref(FormatTime(s.LatestStatusTime)),
		NextTransitPort:     s.NextTransitPort,
	}
	if c := s.CurrentLocationCoords; c.Complete() {
		f.CurrentLocationLat = formatFloat(*c.Latitude)
		f.CurrentLocationLng = formatFloat(*c.Longitude)
	}
	if c := s.DestinationCoords; c.Complete() {
		f.DestinationLat = formatFloat(*c.Latitude)
		f.DestinationLng = formatFloat(*c.Longitude)
	}
	return f
}
