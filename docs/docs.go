// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/register/": {
            "post": {
                "tags": ["auth"],
                "summary": "Register with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {"201": {"description": "Account created"}, "400": {"description": "Validation error"}, "409": {"description": "Email or username taken"}}
            }
        },
        "/login/": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Authentication failed"}}
            }
        },
        "/email-verify/": {
            "get": {
                "tags": ["auth"],
                "summary": "Activate an account",
                "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "token", "type": "string", "required": true}],
                "responses": {"200": {"description": "Successfully activated"}, "400": {"description": "Missing token"}, "401": {"description": "Expired or invalid token"}}
            }
        },
        "/google-auth/": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in with a Google ID token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.GoogleLoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Authentication failed"}, "404": {"description": "Google sign-in not configured"}}
            }
        },
        "/token/refresh/": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange a refresh token for a new token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid refresh token"}}
            }
        },
        "/dashboard/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard counts for the caller",
                "description": "The user is identified by the Bearer access token; no request body is read. Returns username, email, profession and the todo and inventory counts.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/dashboard/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Download the dashboard as an Excel workbook",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get the caller's account",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        }
    },
    "definitions": {
        "handler.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "username": {"type": "string", "example": "alice"},
                "password": {"type": "string", "example": "securepassword123"},
                "phone_number": {"type": "string", "example": "+14155550123"},
                "profession": {"type": "string", "example": "engineer"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "securepassword123"}
            }
        },
        "handler.GoogleLoginRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "phone_number": {"type": "string"},
                "profession": {"type": "string"}
            }
        },
        "handler.RefreshRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
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
	Title:            "Auth API",
	Description:      "Account registration, email and Google sign-in, and per-user dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
