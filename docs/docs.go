// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Bosko API Support"
        },
        "license": {
            "name": "MIT License",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/healthz": {
            "get": {"tags": ["health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/categories": {
            "get": {
                "tags": ["catalog"], "summary": "List categories", "produces": ["application/json"],
                "parameters": [{"type": "boolean", "name": "refresh", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/v1/categories/{id}/services": {
            "get": {
                "tags": ["catalog"], "summary": "List a category's services", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "boolean", "name": "refresh", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/v1/services/{id}": {
            "get": {
                "tags": ["catalog"], "summary": "Get a cached service", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/v1/services/{id}/reviews": {
            "get": {
                "tags": ["reviews"], "summary": "List a service's reviews", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "boolean", "name": "refresh", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"], "summary": "Review a purchased service", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/catalog.CreateReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "VALIDATION_ERROR", "schema": {"$ref": "#/definitions/api.Response"}},
                    "403": {"description": "NOT_ELIGIBLE", "schema": {"$ref": "#/definitions/api.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/services/{id}/eligibility": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"], "summary": "Check whether the caller may review a service", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/providers/{id}": {
            "get": {
                "tags": ["providers"], "summary": "Get a provider profile", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/api/v1/providers/{id}/aggregate": {
            "get": {
                "tags": ["providers"], "summary": "Get a provider's rating summary", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "boolean", "name": "hydrate", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/v1/me/services": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["managed"], "summary": "List the caller's services", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["managed"], "summary": "Publish a service", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "service", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ManagedServiceInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "VALIDATION_ERROR"},
                    "403": {"description": "PLAN_LIMIT_REACHED"}
                }
            }
        },
        "/api/v1/me/services/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["managed"], "summary": "Edit one of the caller's services", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "service", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ManagedServiceInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["managed"], "summary": "Remove one of the caller's services", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "api.ErrorInfo": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "details": {}}
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "meta": {},
                "error": {"$ref": "#/definitions/api.ErrorInfo"}
            }
        },
        "catalog.CreateReviewRequest": {
            "type": "object",
            "properties": {"rating": {"type": "integer", "minimum": 1, "maximum": 5}, "comment": {"type": "string", "maxLength": 1000}}
        },
        "models.ManagedServiceInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "categoryId": {"type": "string"},
                "image": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Bosko API",
	Description:      "Backend-for-frontend for the Bosko services marketplace: catalog browsing, reviews and managed listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
