// Package docs holds the swagger template served at /swagger by gin-swagger.
// Keep it in step with the godoc annotations on the controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/pages": {
            "get": {
                "description": "Page names in sidebar order and the page currently shown",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "List pages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/pages/{page}": {
            "get": {
                "description": "Renders the named page and makes it current. Unknown names show the dashboard. Entering chat starts the chat simulator; leaving it stops it.",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Navigate to a page",
                "parameters": [
                    {"type": "string", "description": "Page name", "name": "page", "in": "path", "required": true},
                    {"type": "string", "description": "Marketplace search text", "name": "search", "in": "query"},
                    {"type": "string", "description": "Marketplace category, or all", "name": "category", "in": "query"},
                    {"enum": ["newest", "price-low", "price-high"], "type": "string", "description": "Marketplace order", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/chat/messages": {
            "post": {
                "description": "Posts a message as the current user. Text is trimmed and must not be empty.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"description": "Message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SendMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Could not save", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/chat/messages/{id}/reactions": {
            "post": {
                "description": "Increments a reaction counter. Kind defaults to like. Reacting to an unknown message is a no-op.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "React to a chat message",
                "parameters": [
                    {"type": "string", "description": "Message ID", "name": "id", "in": "path", "required": true},
                    {"description": "Reaction", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.ReactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/marketplace/items": {
            "post": {
                "description": "Lists an item for sale as the current user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["marketplace"],
                "summary": "Create a listing",
                "parameters": [
                    {"description": "Listing", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateListingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/qna/questions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["qna"],
                "summary": "Ask a question",
                "parameters": [
                    {"description": "Question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AskQuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/qna/questions/{id}/answers": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["qna"],
                "summary": "Answer a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostAnswerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/blocks": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["moderation"],
                "summary": "Block a user",
                "parameters": [
                    {"description": "User to block", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BlockUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/blocks/{userId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["moderation"],
                "summary": "Unblock a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/reports": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["moderation"],
                "summary": "Report a user or content",
                "parameters": [
                    {"description": "Report", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/data/export": {
            "get": {
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Download my data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExportDocument"}}
                }
            }
        },
        "/data/clear": {
            "post": {
                "description": "Erases every stored collection and restores the built-in data. Requires {\"confirm\": true}.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Clear all data",
                "parameters": [
                    {"description": "Confirmation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ClearDataRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "412": {"description": "Confirmation required", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "Upgrades to a websocket that pushes chat events and accepts send and react frames",
                "tags": ["chat"],
                "summary": "Live chat",
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create a profile",
                "parameters": [
                    {"description": "Profile details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignUpRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/auth/otp/request": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Request a one-time login code",
                "parameters": [
                    {"description": "Phone", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RequestOTPRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/auth/otp/verify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange a one-time code for a token",
                "parameters": [
                    {"description": "Phone and code", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.VerifyOTPRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profiles/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Get my profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profiles/{id}": {
            "get": {
                "description": "Sensitive fields are masked unless the viewer is an admin",
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Get a profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profiles/me/skills": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Add a skill",
                "parameters": [
                    {"description": "Skill", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddSkillRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profiles/me/achievements": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Add an achievement",
                "parameters": [
                    {"description": "Achievement", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddProfileAchievementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "dto.SendMessageRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string", "maxLength": 2000}}
        },
        "dto.ReactRequest": {
            "type": "object",
            "properties": {"kind": {"type": "string", "example": "like"}}
        },
        "dto.CreateListingRequest": {
            "type": "object",
            "required": ["title", "description", "price", "condition", "category", "location"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "condition": {"type": "string", "enum": ["Like New", "Excellent", "Good", "Fair"]},
                "category": {"type": "string", "enum": ["Electronics", "Books", "Furniture", "Sports", "Appliances"]},
                "location": {"type": "string"},
                "tags": {"type": "string", "example": "bike, cycle"}
            }
        },
        "dto.AskQuestionRequest": {
            "type": "object",
            "required": ["title", "content"],
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "tags": {"type": "string"}
            }
        },
        "dto.PostAnswerRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {"content": {"type": "string"}}
        },
        "dto.BlockUserRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {"userId": {"type": "string"}}
        },
        "dto.ReportRequest": {
            "type": "object",
            "required": ["type", "description"],
            "properties": {
                "type": {"type": "string", "enum": ["user", "content", "spam", "other"]},
                "description": {"type": "string"}
            }
        },
        "dto.ClearDataRequest": {
            "type": "object",
            "properties": {"confirm": {"type": "boolean"}}
        },
        "dto.ExportDocument": {
            "type": "object",
            "properties": {
                "user": {"type": "object"},
                "chatMessages": {"type": "array", "items": {"type": "object"}},
                "marketplaceItems": {"type": "array", "items": {"type": "object"}},
                "qnaPosts": {"type": "array", "items": {"type": "object"}},
                "achievements": {"type": "array", "items": {"type": "object"}},
                "blockedUsers": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.SignUpRequest": {
            "type": "object",
            "required": ["phone", "password", "name"],
            "properties": {
                "phone": {"type": "string", "example": "9876543210"},
                "password": {"type": "string", "minLength": 8},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "rollNo": {"type": "string"},
                "dob": {"type": "string", "example": "2003-05-14"},
                "college": {"type": "string"},
                "year": {"type": "string"},
                "branch": {"type": "string"}
            }
        },
        "dto.RequestOTPRequest": {
            "type": "object",
            "required": ["phone"],
            "properties": {"phone": {"type": "string"}}
        },
        "dto.VerifyOTPRequest": {
            "type": "object",
            "required": ["phone", "code"],
            "properties": {
                "phone": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "dto.AddSkillRequest": {
            "type": "object",
            "required": ["skill"],
            "properties": {"skill": {"type": "string"}}
        },
        "dto.AddProfileAchievementRequest": {
            "type": "object",
            "required": ["achievement"],
            "properties": {"achievement": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "CampusHub API",
	Description:      "API for the CampusHub student community",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
