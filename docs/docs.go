// Package docs registers the Taskboard API description with swag.
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
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.User"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "New user", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/boards/{id}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Create a board administered by a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "New board", "name": "board", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateBoardRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Add a user to a board",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "User to add", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AssignUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}/lists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lists"],
                "summary": "Lists of a board",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ListsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lists"],
                "summary": "Create a list on a board",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "New list", "name": "list", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateListRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ListResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/lists/{id}/users/{user_id}/cards": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Create a card owned by a user",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"description": "New card", "name": "card", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateCardRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CardResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/cards/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Cards of a list with the owner of the first card",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CardsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/cards/{id}/creator": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Name of the user who created a card",
                "parameters": [
                    {"type": "integer", "description": "Card ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CreatorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/cards/{id}/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Add a user to a card",
                "parameters": [
                    {"type": "integer", "description": "Card ID", "name": "id", "in": "path", "required": true},
                    {"description": "User to add", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AssignUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CardUserResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.AssignUserRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {"userId": {"type": "integer"}}
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {"board": {"$ref": "#/definitions/model.Board"}}
        },
        "handler.CardResponse": {
            "type": "object",
            "properties": {"card": {"$ref": "#/definitions/model.Card"}}
        },
        "handler.CardUserResponse": {
            "type": "object",
            "properties": {
                "cardUser": {"$ref": "#/definitions/model.CardUser"},
                "message": {"type": "string"}
            }
        },
        "handler.CardsResponse": {
            "type": "object",
            "properties": {
                "cards": {"type": "array", "items": {"$ref": "#/definitions/model.Card"}},
                "ownerName": {"type": "string"}
            }
        },
        "handler.CreateBoardRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "handler.CreateCardRequest": {
            "type": "object",
            "required": ["description", "due_date", "title"],
            "properties": {
                "description": {"type": "string"},
                "due_date": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.CreateListRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "handler.CreateUserRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.CreatorResponse": {
            "type": "object",
            "properties": {"creatorName": {"type": "string"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "rule": {"type": "string"}
            }
        },
        "handler.ListResponse": {
            "type": "object",
            "properties": {"list": {"$ref": "#/definitions/model.List"}}
        },
        "handler.ListsResponse": {
            "type": "object",
            "properties": {"lists": {"type": "array", "items": {"$ref": "#/definitions/model.List"}}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"$ref": "#/definitions/handler.FieldError"}},
                "error": {"type": "string"}
            }
        },
        "model.Board": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "model.Card": {
            "type": "object",
            "properties": {
                "created_by": {"type": "integer"},
                "description": {"type": "string"},
                "due_date": {"type": "string"},
                "id": {"type": "integer"},
                "list_id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "model.CardUser": {
            "type": "object",
            "properties": {
                "card_id": {"type": "integer"},
                "is_owner": {"type": "boolean"},
                "user_id": {"type": "integer"}
            }
        },
        "model.List": {
            "type": "object",
            "properties": {
                "board_id": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Boards, lists and cards with user memberships.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
