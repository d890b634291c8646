// Package swagger holds the OpenAPI description served under /docs.
package swagger

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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service version",
                "responses": {
                    "200": {"description": "Version information", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports service status and search backend reachability",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service healthy", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Search backend unreachable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/search": {
            "get": {
                "description": "Same as POST /api/v1/search with parameters taken from the URL",
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search for games (query string)",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "query", "in": "query"},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "boolean", "description": "Request query enhancement", "name": "enhance", "in": "query"},
                    {"type": "string", "description": "Comma separated genre list", "name": "genres", "in": "query"},
                    {"type": "integer", "description": "Minimum active players", "name": "min_playing_now", "in": "query"},
                    {"type": "integer", "description": "Minimum server capacity", "name": "min_supported_players", "in": "query"},
                    {"type": "integer", "description": "Maximum server capacity", "name": "max_supported_players", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "One page of results", "schema": {"$ref": "#/definitions/types.SearchResponse"}},
                    "400": {"description": "Bad request - invalid parameters", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Runs a paginated game search. Backend failures produce an empty page rather than an error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search for games",
                "parameters": [
                    {"description": "Search parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "One page of results", "schema": {"$ref": "#/definitions/types.SearchResponse"}},
                    "400": {"description": "Bad request - invalid parameters", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/v1/facets": {
            "get": {
                "description": "Genre, creator and player-count buckets derived from the index aggregations",
                "produces": ["application/json"],
                "tags": ["facets"],
                "summary": "Get search facets",
                "responses": {
                    "200": {"description": "Facet buckets", "schema": {"$ref": "#/definitions/types.FacetsResponse"}},
                    "502": {"description": "Search backend failure", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "504": {"description": "Search backend timed out", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "description": "Merges the genre aggregations of the index case-insensitively and returns the largest ones.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get top game categories",
                "parameters": [
                    {"type": "integer", "description": "Number of categories (1-50, default 8)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Categories ordered by game count", "schema": {"$ref": "#/definitions/types.CategoriesResponse"}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Search backend failure", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "504": {"description": "Search backend timed out", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/v1/trending": {
            "get": {
                "description": "Trending hits from the search backend, transformed like search results and de-duplicated by id",
                "produces": ["application/json"],
                "tags": ["trending"],
                "summary": "Get trending games",
                "parameters": [
                    {"type": "integer", "description": "Number of games (1-50, default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Trending games", "schema": {"$ref": "#/definitions/types.GamesResponse"}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Search backend failure", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/v1/home": {
            "get": {
                "description": "Top categories and featured games, fetched in parallel",
                "produces": ["application/json"],
                "tags": ["home"],
                "summary": "Get landing page data",
                "responses": {
                    "200": {"description": "Categories and featured games", "schema": {"$ref": "#/definitions/types.HomeResponse"}},
                    "502": {"description": "Search backend failure", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Bucket": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "Simulation"},
                "count": {"type": "integer", "example": 120}
            }
        },
        "models.RangeBucket": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "1-4"},
                "from": {"type": "number"},
                "to": {"type": "number"},
                "count": {"type": "integer"}
            }
        },
        "models.Creator": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "hasVerifiedBadge": {"type": "boolean"}
            }
        },
        "models.Game": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "rootPlaceId": {"type": "string"},
                "name": {"type": "string"},
                "formattedName": {"type": "string", "description": "Name with highlight markup"},
                "description": {"type": "string"},
                "creator": {"$ref": "#/definitions/models.Creator"},
                "imageUrl": {"type": "string"},
                "playingCount": {"type": "integer"},
                "visitCount": {"type": "integer"},
                "maxPlayers": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "category": {"type": "string"},
                "subCategory1": {"type": "string"},
                "subCategory2": {"type": "string"},
                "favoritedCount": {"type": "integer"},
                "price": {"type": "number"},
                "thumbnailUrl": {"type": "string"}
            }
        },
        "models.Feature": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "models.Analysis": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["plain", "structured"]},
                "text": {"type": "string"},
                "topPick": {"type": "string"},
                "features": {"type": "array", "items": {"$ref": "#/definitions/models.Feature"}},
                "conclusion": {"type": "string"}
            }
        },
        "search.PageMarker": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "ellipsis": {"type": "boolean"},
                "current": {"type": "boolean"}
            }
        },
        "types.SearchFilters": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}, "example": ["Strategy", "Tower Defense"]},
                "minPlayingNow": {"type": "integer", "example": 100},
                "minSupportedPlayers": {"type": "integer", "example": 2},
                "maxSupportedPlayers": {"type": "integer", "example": 50}
            }
        },
        "types.SearchRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "tower defense"},
                "page": {"type": "integer", "example": 1},
                "pageSize": {"type": "integer", "example": 11},
                "maxPages": {"type": "integer", "example": 10},
                "useEnhancement": {"type": "boolean", "example": false},
                "filters": {"$ref": "#/definitions/types.SearchFilters"}
            }
        },
        "types.SearchResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "query": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}},
                "totalCount": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "suggestions": {"type": "array", "items": {"type": "string"}},
                "analysis": {"$ref": "#/definitions/models.Analysis"},
                "pageWindow": {"type": "array", "items": {"$ref": "#/definitions/search.PageMarker"}}
            }
        },
        "types.FacetsResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "genres": {"type": "array", "items": {"$ref": "#/definitions/models.Bucket"}},
                "creators": {"type": "array", "items": {"$ref": "#/definitions/models.Bucket"}},
                "playerRanges": {"type": "array", "items": {"$ref": "#/definitions/models.RangeBucket"}}
            }
        },
        "types.CategoriesResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.Bucket"}},
                "count": {"type": "integer"}
            }
        },
        "types.GamesResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "games": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}},
                "count": {"type": "integer"}
            }
        },
        "types.HomeResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.Bucket"}},
                "featured": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "message": {"type": "string"},
                "error": {"type": "string", "example": "VALIDATION"},
                "details": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RoFind API",
	Description:      "Game search orchestration API: paginated search, facets, categories and trending games.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
