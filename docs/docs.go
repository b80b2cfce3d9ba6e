// Package docs holds the generated swagger spec. Regenerate with:
//
//	swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "OpenFooty"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/competitions": {
            "get": {
                "description": "Returns all reconciled competitions.",
                "produces": ["application/json"],
                "tags": ["competitions"],
                "summary": "List competitions",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/competitions/{competitionID}": {
            "get": {
                "description": "Returns one reconciled competition by its structured-provider ID.",
                "produces": ["application/json"],
                "tags": ["competitions"],
                "summary": "Get competition",
                "parameters": [
                    {"type": "integer", "description": "Competition ID", "name": "competitionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/competitions/{competitionID}/teams": {
            "get": {
                "description": "Returns the reconciled teams of a competition.",
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "List teams",
                "parameters": [
                    {"type": "integer", "description": "Competition ID", "name": "competitionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/competitions/{competitionID}/matches": {
            "get": {
                "description": "Returns the reconciled matches of one gameweek of one season.",
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "List matches",
                "parameters": [
                    {"type": "integer", "description": "Competition ID", "name": "competitionID", "in": "path", "required": true},
                    {"type": "integer", "description": "Gameweek number", "name": "gameweek", "in": "query", "required": true},
                    {"type": "integer", "description": "Season year (defaults to current)", "name": "season", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/teams/{teamID}": {
            "get": {
                "description": "Returns one reconciled team by its structured-provider ID.",
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Get team",
                "parameters": [
                    {"type": "integer", "description": "Team ID", "name": "teamID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/matches/{matchID}": {
            "get": {
                "description": "Returns one reconciled match by its structured-provider ID.",
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Get match",
                "parameters": [
                    {"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/players": {
            "get": {
                "description": "Returns the reconciled players of one fantasy team.",
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "List players",
                "parameters": [
                    {"type": "integer", "description": "Fantasy team ID", "name": "fantasy_team_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/players/{playerID}": {
            "get": {
                "description": "Returns one reconciled player by fantasy ID.",
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Get player",
                "parameters": [
                    {"type": "integer", "description": "Player ID", "name": "playerID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "OpenFooty Data API",
	Description:      "Football data API serving competitions, teams, matches, and players reconciled across multiple upstream providers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
