package domain

import (
	"encoding/json"
	"strings"
)

// wireIn mirrors WireRecord with field types that accept whatever the remote
// resource sends. Anything of the wrong shape reads as blank or absent.
type wireIn struct {
	TrackingNumber Text `json:"tracking_number"`

	SenderName    Text `json:"sender_name"`
	SenderEmail   Text `json:"sender_email"`
	SenderNumber  Text `json:"sender_number"`
	SenderAddress Text `json:"sender_address"`

	ReceiverName    Text `json:"receiver_name"`
	ReceiverEmail   Text `json:"receiver_email"`
	ReceiverNumber  Text `json:"receiver_number"`
	ReceiverAddress Text `json:"receiver_address"`

	ProductDescription Text `json:"product_description"`
	Quantity           Text `json:"quantity"`
	Weight             Text `json:"weight"`

	PortOfLoading   Text `json:"port_of_loading"`
	PortOfDischarge Text `json:"port_of_discharge"`
	ShippingMode    Text `json:"shipping_mode"`
	Voyage          Text `json:"voyage"`
	Carrier         Text `json:"carrier"`
	Vessel          Text `json:"vessel"`

	Status              Text         `json:"status"`
	DepartureDate       optionalText `json:"departure_date"`
	ExpectedArrivalDate optionalText `json:"expected_arrival_date"`
	RegistrationDate    optionalText `json:"registration_date"`

	CurrentLocation  Text         `json:"current_location"`
	LatestStatusDate optionalText `json:"latest_status_date"`
	LatestStatusTime optionalText `json:"latest_status_time"`
	NextTransitPort  Text         `json:"next_transit_port"`

	CurrentLocationCoords Coordinates `json:"current_location_coords"`
	DestinationCoords     Coordinates `json:"destination_coords"`
}

// UnmarshalJSON decodes one remote record. Only a value that is not a JSON
// object is an error.
func (r *WireRecord) UnmarshalJSON(b []byte) error {
	var in wireIn
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*r = WireRecord{
		TrackingNumber:        string(in.TrackingNumber),
		SenderName:            string(in.SenderName),
		SenderEmail:           string(in.SenderEmail),
		SenderNumber:          string(in.SenderNumber),
		SenderAddress:         string(in.SenderAddress),
		ReceiverName:          string(in.ReceiverName),
		ReceiverEmail:         string(in.ReceiverEmail),
		ReceiverNumber:        string(in.ReceiverNumber),
		ReceiverAddress:       string(in.ReceiverAddress),
		ProductDescription:    string(in.ProductDescription),
		Quantity:              in.Quantity,
		Weight:                in.Weight,
		PortOfLoading:         string(in.PortOfLoading),
		PortOfDischarge:       string(in.PortOfDischarge),
		ShippingMode:          string(in.ShippingMode),
		Voyage:                string(in.Voyage),
		Carrier:               string(in.Carrier),
		Vessel:                string(in.Vessel),
		Status:                string(in.Status),
		DepartureDate:         in.DepartureDate.s,
		ExpectedArrivalDate:   in.ExpectedArrivalDate.s,
		RegistrationDate:      in.RegistrationDate.s,
		CurrentLocation:       string(in.CurrentLocation),
		LatestStatusDate:      in.LatestStatusDate.s,
		LatestStatusTime:      in.LatestStatusTime.s,
		NextTransitPort:       string(in.NextTransitPort),
		CurrentLocationCoords: in.CurrentLocationCoords,
		DestinationCoords:     in.DestinationCoords,
	}
	return nil
}

// optionalText is a nullable string on the wire; any non-string reads as nil.
type optionalText struct {
	s *string
}

func (o *optionalText) UnmarshalJSON(b []byte) error {
	o.s = nil
	if len(b) == 0 || b[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		o.s = &s
	}
	return nil
}

// UnmarshalJSON accepts the structured {"latitude", "longitude"} form as well
// as a "lat,lng" string. Members that are not numbers read as absent and an
// unparsable string reads as an empty pair.
func (c *Coordinates) UnmarshalJSON(b []byte) error {
	*c = Coordinates{}
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return nil
		}
		if pair := ParseCoordinatePair(text); pair != nil {
			*c = *pair
		}
	case '{':
		var raw struct {
			Latitude  json.RawMessage `json:"latitude"`
			Longitude json.RawMessage `json:"longitude"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
		c.Latitude = readMember(raw.Latitude)
		c.Longitude = readMember(raw.Longitude)
	}
	return nil
}

// readMember reads one coordinate member given as a JSON number or a numeric
// string.
func readMember(b json.RawMessage) *float64 {
	text := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, ok := parseFloat(text)
	if !ok {
		return nil
	}
	return &v
}
