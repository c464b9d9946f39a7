// Package docs holds the OpenAPI document served under /swagger when the
// server is built with -tags=swagger. Regenerate with:
//
//	swag init -g cmd/linguaspark/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "linguaspark maintainers"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "List translatable language pairs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.LanguagesResponse"}}
                }
            }
        },
        "/models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "List models discovered in the models directory",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelsResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Engine and per-pair status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        },
        "/supported": {
            "get": {
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "Ask the engine whether a direction is loaded",
                "parameters": [
                    {"type": "string", "description": "source language", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "target language", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/translate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["translate"],
                "summary": "Translate text",
                "parameters": [
                    {"description": "translation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.TranslateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TranslateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "error": {"type": "string", "example": "invalid JSON body"}
            }
        },
        "types.InstanceStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "inflight": {"type": "integer", "example": 1},
                "last_used_unix": {"type": "integer", "example": 1700000000},
                "pair": {"type": "string", "example": "en-de"},
                "served": {"type": "integer", "example": 42},
                "state": {"type": "string", "example": "ready"}
            }
        },
        "types.LanguagesResponse": {
            "type": "object",
            "properties": {
                "pairs": {"type": "array", "items": {"type": "string"}, "example": ["en-de", "de-en"]}
            }
        },
        "types.Model": {
            "type": "object",
            "properties": {
                "dir": {"type": "string"},
                "from": {"type": "string", "example": "en"},
                "pair": {"type": "string", "example": "en-de"},
                "to": {"type": "string", "example": "de"}
            }
        },
        "types.ModelsResponse": {
            "type": "object",
            "properties": {
                "models": {"type": "array", "items": {"$ref": "#/definitions/types.Model"}}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "cache_enabled": {"type": "boolean"},
                "cache_hits_total": {"type": "integer", "example": 100},
                "instances": {"type": "array", "items": {"$ref": "#/definitions/types.InstanceStatus"}},
                "last_error": {"type": "string"},
                "loads_total": {"type": "integer", "example": 12},
                "native_available": {"type": "boolean"},
                "server_time_unix": {"type": "integer", "example": 1700000000},
                "state": {"type": "string", "example": "ready"},
                "uptime_seconds": {"type": "integer", "example": 3600},
                "workers": {"type": "integer", "example": 4}
            }
        },
        "types.TranslateRequest": {
            "type": "object",
            "properties": {
                "from": {"type": "string", "example": "en"},
                "text": {"type": "string", "example": "Hello world"},
                "to": {"type": "string", "example": "de"}
            }
        },
        "types.TranslateResponse": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "from": {"type": "string", "example": "en"},
                "text": {"type": "string", "example": "Hallo Welt"},
                "to": {"type": "string", "example": "de"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "linguaspark API",
	Description:      "HTTP API for local neural machine translation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
