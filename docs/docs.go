// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/bookings": {
            "get": {"tags": ["Bookings"], "summary": "List the caller's bookings", "parameters": [{"$ref": "#/parameters/user"}, {"$ref": "#/parameters/state"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["Bookings"], "summary": "Request a booking", "parameters": [{"$ref": "#/parameters/user"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/bookingCreate"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/bookings/owner": {
            "get": {"tags": ["Bookings"], "summary": "List bookings of the caller's items", "parameters": [{"$ref": "#/parameters/user"}, {"$ref": "#/parameters/state"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/bookings/{bookingId}": {
            "get": {"tags": ["Bookings"], "summary": "Get a booking", "parameters": [{"$ref": "#/parameters/user"}, {"in": "path", "name": "bookingId", "type": "integer", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Bookings"], "summary": "Approve or reject a booking", "parameters": [{"$ref": "#/parameters/user"}, {"in": "path", "name": "bookingId", "type": "integer", "required": true}, {"in": "query", "name": "approved", "type": "boolean", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/items": {
            "get": {"tags": ["Items"], "summary": "List the caller's items", "parameters": [{"$ref": "#/parameters/user"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Items"], "summary": "List an item", "parameters": [{"$ref": "#/parameters/user"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itemCreate"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/items/search": {
            "get": {"tags": ["Items"], "summary": "Search available items", "parameters": [{"$ref": "#/parameters/user"}, {"in": "query", "name": "text", "type": "string"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK"}}}
        },
        "/items/{itemId}": {
            "get": {"tags": ["Items"], "summary": "Get an item", "parameters": [{"$ref": "#/parameters/user"}, {"in": "path", "name": "itemId", "type": "integer", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Items"], "summary": "Update an item", "parameters": [{"$ref": "#/parameters/user"}, {"in": "path", "name": "itemId", "type": "integer", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itemCreate"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/items/{itemId}/comment": {
            "post": {"tags": ["Items"], "summary": "Comment on an item", "parameters": [{"$ref": "#/parameters/user"}, {"in": "path", "name": "itemId", "type": "integer", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"text": {"type": "string"}}}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/requests": {
            "get": {"tags": ["Requests"], "summary": "List the caller's item requests", "parameters": [{"$ref": "#/parameters/user"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Requests"], "summary": "Publish an item request", "parameters": [{"$ref": "#/parameters/user"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"description": {"type": "string"}}}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/requests/all": {
            "get": {"tags": ["Requests"], "summary": "List other users' item requests", "parameters": [{"$ref": "#/parameters/user"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK"}}}
        },
        "/requests/{requestId}": {
            "get": {"tags": ["Requests"], "summary": "Get an item request", "parameters": [{"$ref": "#/parameters/user"}, {"in": "path", "name": "requestId", "type": "integer", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/users": {
            "get": {"tags": ["Users"], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Users"], "summary": "Create a user", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/users/{userId}": {
            "get": {"tags": ["Users"], "summary": "Get a user", "parameters": [{"in": "path", "name": "userId", "type": "integer", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Users"], "summary": "Update a user", "parameters": [{"in": "path", "name": "userId", "type": "integer", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user"}}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "delete": {"tags": ["Users"], "summary": "Delete a user", "parameters": [{"in": "path", "name": "userId", "type": "integer", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "parameters": {
        "user": {"in": "header", "name": "X-Sharer-User-Id", "type": "integer", "required": true},
        "state": {"in": "query", "name": "state", "type": "string", "default": "ALL", "enum": ["ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"]},
        "from": {"in": "query", "name": "from", "type": "integer"},
        "size": {"in": "query", "name": "size", "type": "integer"}
    },
    "definitions": {
        "bookingCreate": {"type": "object", "properties": {"itemId": {"type": "integer"}, "start": {"type": "string", "example": "2030-01-01T10:00:00"}, "end": {"type": "string", "example": "2030-01-02T10:00:00"}}},
        "itemCreate": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "available": {"type": "boolean"}, "requestId": {"type": "integer"}}},
        "user": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "ShareIt API",
	Description:      "Peer-to-peer item sharing: users, items, item requests and bookings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
