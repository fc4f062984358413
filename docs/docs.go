// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/dashboard/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/shipments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "List shipments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listShipmentsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Create a shipment",
                "parameters": [
                    {
                        "description": "Shipment fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.ShipmentForm"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.WireRecord"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/shipments/{tracking_number}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Get a shipment by tracking number",
                "parameters": [
                    {"type": "string", "description": "Tracking number (e.g. TN1234567890)", "name": "tracking_number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WireRecord"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Replace a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking number", "name": "tracking_number", "in": "path", "required": true},
                    {
                        "description": "Full set of shipment fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.ShipmentForm"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WireRecord"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["shipments"],
                "summary": "Delete a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking number", "name": "tracking_number", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Coordinates": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "domain.ShipmentForm": {
            "type": "object",
            "required": ["tracking_number"],
            "properties": {
                "tracking_number": {"type": "string"},
                "sender_name": {"type": "string"},
                "sender_email": {"type": "string"},
                "sender_number": {"type": "string"},
                "sender_address": {"type": "string"},
                "receiver_name": {"type": "string"},
                "receiver_email": {"type": "string"},
                "receiver_number": {"type": "string"},
                "receiver_address": {"type": "string"},
                "product_description": {"type": "string"},
                "quantity": {"type": "string"},
                "weight": {"type": "string"},
                "port_of_loading": {"type": "string"},
                "port_of_discharge": {"type": "string"},
                "shipping_mode": {"type": "string"},
                "voyage": {"type": "string"},
                "carrier": {"type": "string"},
                "vessel": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "in_transit", "delivered", "canceled"]},
                "departure_date": {"type": "string"},
                "expected_arrival_date": {"type": "string"},
                "registration_date": {"type": "string"},
                "current_location": {"type": "string"},
                "latest_status_date": {"type": "string"},
                "latest_status_time": {"type": "string"},
                "next_transit_port": {"type": "string"},
                "current_location_lat": {"type": "string"},
                "current_location_lng": {"type": "string"},
                "destination_lat": {"type": "string"},
                "destination_lng": {"type": "string"}
            }
        },
        "domain.WireRecord": {
            "type": "object",
            "properties": {
                "tracking_number": {"type": "string"},
                "sender_name": {"type": "string"},
                "sender_email": {"type": "string"},
                "sender_number": {"type": "string"},
                "sender_address": {"type": "string"},
                "receiver_name": {"type": "string"},
                "receiver_email": {"type": "string"},
                "receiver_number": {"type": "string"},
                "receiver_address": {"type": "string"},
                "product_description": {"type": "string"},
                "quantity": {"type": "string"},
                "weight": {"type": "string"},
                "port_of_loading": {"type": "string"},
                "port_of_discharge": {"type": "string"},
                "shipping_mode": {"type": "string"},
                "voyage": {"type": "string"},
                "carrier": {"type": "string"},
                "vessel": {"type": "string"},
                "status": {"type": "string"},
                "departure_date": {"type": "string"},
                "expected_arrival_date": {"type": "string"},
                "registration_date": {"type": "string"},
                "current_location": {"type": "string"},
                "latest_status_date": {"type": "string"},
                "latest_status_time": {"type": "string"},
                "next_transit_port": {"type": "string"},
                "current_location_coords": {"$ref": "#/definitions/domain.Coordinates"},
                "destination_coords": {"$ref": "#/definitions/domain.Coordinates"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.listShipmentsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.WireRecord"}},
                "total": {"type": "integer"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "username": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TrackNest Admin API",
	Description:      "Operator API for listing, creating, updating and deleting TrackNest shipments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
