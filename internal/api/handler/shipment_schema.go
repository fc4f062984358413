package handler

import (
	"time"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=128"`
	Password string `json:"password" form:"password" validate:"required,max=256"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// shipmentRequest is the editable text of a shipment, as in the dashboard form.
type shipmentRequest = domain.ShipmentForm

// shipmentResponse is the shipment in the remote wire format.
type shipmentResponse = domain.WireRecord

type listShipmentsResponse struct {
	Items []shipmentResponse `json:"items"`
	Total int                `json:"total"`
}
