package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Civic Action API",
        "description": "Widget generation and reader response collection for Planet Detroit civic action boxes",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Editor session management"},
        {"name": "Widget", "description": "Civic action box HTML generation"},
        {"name": "Articles", "description": "WordPress article lookup and analysis"},
        {"name": "Drafts", "description": "Builder autosave"},
        {"name": "Catalog", "description": "Meetings, comment periods, officials and organizations"},
        {"name": "Responses", "description": "Reader response collection"},
        {"name": "Exports", "description": "Reader response export jobs"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Open an editor session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid password"}
                }
            }
        },
        "/api/auth/check": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Check session status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Close the editor session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/generate": {
            "post": {
                "tags": ["Widget"],
                "summary": "Generate embed HTML and script for a civic action box",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/articles/fetch": {
            "post": {
                "tags": ["Articles"],
                "summary": "Fetch article title and text by Planet Detroit URL",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FetchArticleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Article not found"}
                }
            }
        },
        "/api/articles/analyze": {
            "post": {
                "tags": ["Articles"],
                "summary": "Proxy an article to the civic analyzer service",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Analyzer disabled"}
                }
            }
        },
        "/api/suggestions/agencies": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Suggest agencies for issue tags",
                "parameters": [
                    {"name": "issues", "in": "query", "type": "string", "description": "comma separated issue tags"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/draft": {
            "get": {
                "tags": ["Drafts"],
                "summary": "Load a saved draft",
                "parameters": [
                    {"name": "key", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Draft not found or expired"}
                }
            },
            "put": {
                "tags": ["Drafts"],
                "summary": "Save a draft",
                "parameters": [
                    {"name": "key", "in": "query", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Drafts"],
                "summary": "Delete a draft",
                "parameters": [
                    {"name": "key", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/meetings": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List upcoming meetings",
                "parameters": [
                    {"name": "agency", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/comment-periods": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List open comment periods",
                "parameters": [
                    {"name": "agency", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/officials": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List elected officials",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/organizations": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List civic organizations",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/civic-responses": {
            "post": {
                "tags": ["Responses"],
                "summary": "Record a reader response",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateResponseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "get": {
                "tags": ["Responses"],
                "summary": "List reader responses",
                "parameters": [
                    {"name": "article_url", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue a reader response export",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Get export job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Job not found"}
                }
            }
        },
        "/api/exports/download": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download an export artifact with a signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "403": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            },
            "required": ["password"]
        },
        "GenerateRequest": {
            "type": "object",
            "properties": {
                "why_it_matters": {"type": "string"},
                "whos_deciding": {"type": "string"},
                "what_to_watch": {"type": "string"},
                "interactive_checkboxes": {"type": "boolean"},
                "meetings": {"type": "array", "items": {"$ref": "#/definitions/Meeting"}},
                "comment_periods": {"type": "array", "items": {"$ref": "#/definitions/CommentPeriod"}},
                "officials": {"type": "array", "items": {"$ref": "#/definitions/Official"}},
                "actions": {"type": "array", "items": {"$ref": "#/definitions/Action"}},
                "organizations": {"type": "array", "items": {"$ref": "#/definitions/Organization"}}
            }
        },
        "Meeting": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "agency": {"type": "string"},
                "start_datetime": {"type": "string"},
                "agenda_url": {"type": "string"},
                "details_url": {"type": "string"},
                "virtual_url": {"type": "string"},
                "location_name": {"type": "string"},
                "location_address": {"type": "string"},
                "location_city": {"type": "string"},
                "public_comment_instructions": {"type": "string"}
            }
        },
        "CommentPeriod": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "agency": {"type": "string"},
                "end_date": {"type": "string"},
                "days_remaining": {"type": "integer"},
                "comment_url": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "Official": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "party": {"type": "string"},
                "office": {"type": "string"},
                "district": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "Action": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "Organization": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "FetchArticleRequest": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "refresh": {"type": "boolean"}
            },
            "required": ["url"]
        },
        "AnalyzeRequest": {
            "type": "object",
            "properties": {
                "article_url": {"type": "string"},
                "article_text": {"type": "string"}
            },
            "required": ["article_text"]
        },
        "SaveDraftRequest": {
            "type": "object",
            "properties": {
                "payload": {"type": "object"}
            },
            "required": ["payload"]
        },
        "CreateResponseRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "article_url": {"type": "string"},
                "article_title": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["message"]
        },
        "CreateExportRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]},
                "article_url": {"type": "string"}
            },
            "required": ["format"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
