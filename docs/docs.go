// Package docs registers the OpenAPI description of the gateway with swag.
// Regenerate with: swag init -g main.go
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/accommodations": {
            "get": {
                "tags": ["accommodations"],
                "summary": "Search accommodations",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "integer", "name": "guests", "in": "query"},
                    {"type": "string", "name": "start_date", "in": "query"},
                    {"type": "string", "name": "end_date", "in": "query"},
                    {"type": "boolean", "name": "tv", "in": "query"},
                    {"type": "boolean", "name": "wifi", "in": "query"},
                    {"type": "boolean", "name": "ac", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"type": "boolean", "name": "refine", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/reservations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservations"],
                "summary": "Book an accommodation",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReservationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/reservations/availability/{accId}": {
            "post": {
                "tags": ["reservations"],
                "summary": "Are the dates free",
                "parameters": [
                    {"type": "string", "name": "accId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DateRangeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/hosts/{hostId}/featured/recompute": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["hosts"],
                "summary": "Re-evaluate the featured status of a host",
                "parameters": [
                    {"type": "string", "name": "hostId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginInput": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.ReservationRequest": {
            "type": "object",
            "required": ["accommodation_id", "check_in_date", "check_out_date"],
            "properties": {
                "accommodation_id": {"type": "string"},
                "check_in_date": {"type": "string"},
                "check_out_date": {"type": "string"},
                "check_in_time": {"type": "integer"},
                "number_of_guests": {"type": "integer"}
            }
        },
        "dto.DateRangeRequest": {
            "type": "object",
            "required": ["check_in_date", "check_out_date"],
            "properties": {
                "check_in_date": {"type": "string"},
                "check_out_date": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Gobnb booking gateway",
	Description:      "Gateway in front of the Gobnb accommodation, reservation, profile and rating services.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
