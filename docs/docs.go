// Package docs registers the generated OpenAPI specification served at
// /swagger/*.
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
        "/api/v1/resources/{kind}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["resources"],
                "summary": "Get a resource collection as GeoJSON",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection"},
                    "400": {"description": "Invalid filter"}
                }
            }
        },
        "/api/v1/nearby": {
            "get": {
                "produces": ["application/json"],
                "tags": ["nearby"],
                "summary": "Search resources within a radius of a point",
                "parameters": [
                    {"type": "number", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "name": "lon", "in": "query", "required": true},
                    {"type": "integer", "name": "radius", "in": "query"},
                    {"type": "string", "name": "type", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection ordered by distance"},
                    "400": {"description": "Invalid filter"}
                }
            }
        },
        "/api/v1/evacuation/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evacuation"],
                "summary": "Analyze evacuation capacity vs. need for selected areas",
                "responses": {
                    "200": {"description": "Evacuation analysis"},
                    "400": {"description": "Invalid filter"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CityStrata API",
	Description:      "City resource classification platform for emergency scenarios. Exposes municipal resource inventories as GeoJSON, proximity search, and evacuation capacity analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
