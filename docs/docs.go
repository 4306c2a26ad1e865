// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g internal/api/router.go
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
        "/auth/signup": {
            "post": {"tags": ["auth"], "summary": "Register a new user", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Login", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/auth/password-reset": {
            "post": {"tags": ["auth"], "summary": "Request a password reset", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/auth/password-reset/{token}": {
            "post": {"tags": ["auth"], "summary": "Reset password", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "token", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/users/{username}": {
            "get": {"tags": ["users"], "summary": "User profile", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/v1/dashboard": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Dashboard", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/v1/addresses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["addresses"], "summary": "List saved ship-from addresses", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["addresses"], "summary": "Save a ship-from address", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/v1/addresses/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["addresses"], "summary": "Delete a saved address",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/shipments": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["shipments"], "summary": "Create a shipment", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/labels": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["shipments"], "summary": "Purchase a label", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/rates": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["rates"], "summary": "Quote rates for a shipment", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/labels/rates/{rate_id}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["rates"], "summary": "Purchase a label from a quoted rate", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "rate_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}}
        },
        "/webhooks/shipengine": {
            "post": {"tags": ["webhooks"], "summary": "Receive a ShipEngine webhook", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"202": {"description": "Accepted"}, "503": {"description": "Service Unavailable"}}}
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "csv-shipper API",
	Description:      "Builds validated ShipEngine shipments, labels and rate quotes for registered users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
