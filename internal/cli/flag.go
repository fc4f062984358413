package cli

import (
	"time"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// Flags holds every value the trackctl commands read from the command line.
type Flags struct {
	APIURL  string
	Timeout time.Duration

	Status string

	Form              domain.ShipmentForm
	CurrentCoords     string
	DestinationCoords string
}

type FlagSet[T any] struct {
	Name  string
	Usage string
	Value T
}

type FlagMap struct {
	APIURL            FlagSet[string]
	Timeout           FlagSet[time.Duration]
	Status            FlagSet[string]
	CurrentCoords     FlagSet[string]
	DestinationCoords FlagSet[string]
}

var flagMap = FlagMap{
	APIURL: FlagSet[string]{
		Name:  "api-url",
		Usage: "Base URL of the shipment API. Defaults to $TRACKING_API_URL.",
	},
	Timeout: FlagSet[time.Duration]{
		Name:  "timeout",
		Usage: "Per-request timeout for the shipment API.",
		Value: 30 * time.Second,
	},
	Status: FlagSet[string]{
		Name:  "status",
		Usage: "Only list shipments in this status (pending, in_transit, delivered, canceled).",
	},
	CurrentCoords: FlagSet[string]{
		Name:  "current-coords",
		Usage: `Current position as "lat,lng". An empty value clears it.`,
	},
	DestinationCoords: FlagSet[string]{
		Name:  "destination-coords",
		Usage: `Destination as "lat,lng". An empty value clears it.`,
	},
}

// formFlag binds one free-text shipment field to a command-line flag.
type formFlag struct {
	Name   string
	Usage  string
	Target *string
}

// formFlags lists the editable shipment fields in the order they are shown by
// --help. The order is stable so two lists built over different forms line up.
func formFlags(f *domain.ShipmentForm) []formFlag {
	return []formFlag{
		{"tracking-number", "Tracking number, e.g. TN1234567890.", &f.TrackingNumber},
		{"sender-name", "Sender name.", &f.SenderName},
		{"sender-email", "Sender email.", &f.SenderEmail},
		{"sender-number", "Sender phone number.", &f.SenderNumber},
		{"sender-address", "Sender address.", &f.SenderAddress},
		{"receiver-name", "Receiver name.", &f.ReceiverName},
		{"receiver-email", "Receiver email.", &f.ReceiverEmail},
		{"receiver-number", "Receiver phone number.", &f.ReceiverNumber},
		{"receiver-address", "Receiver address.", &f.ReceiverAddress},
		{"product-description", "Product description.", &f.ProductDescription},
		{"quantity", "Quantity (defaults to 1 on add).", &f.Quantity},
		{"weight", "Weight (defaults to 0 on add).", &f.Weight},
		{"port-of-loading", "Port of loading (origin).", &f.PortOfLoading},
		{"port-of-discharge", "Port of discharge (destination).", &f.PortOfDischarge},
		{"shipping-mode", "Shipping mode.", &f.ShippingMode},
		{"voyage", "Voyage.", &f.Voyage},
		{"carrier", "Carrier.", &f.Carrier},
		{"vessel", "Vessel.", &f.Vessel},
		{"status", "Status: pending, in_transit, delivered or canceled.", &f.Status},
		{"departure-date", "Departure date, YYYY-MM-DD.", &f.DepartureDate},
		{"expected-arrival-date", "Expected arrival date, YYYY-MM-DD.", &f.ExpectedArrivalDate},
		{"registration-date", "Registration date, YYYY-MM-DD.", &f.RegistrationDate},
		{"current-location", "Current location.", &f.CurrentLocation},
		{"latest-status-date", "Latest status date, YYYY-MM-DD.", &f.LatestStatusDate},
		{"latest-status-time", "Latest status time, HH:MM[:SS].", &f.LatestStatusTime},
		{"next-transit-port", "Next transit port.", &f.NextTransitPort},
	}
}
