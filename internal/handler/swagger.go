package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/fintrack/fintrack-backend/docs"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// OpenAPI3Spec represents an OpenAPI 3.0 spec structure
type OpenAPI3Spec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

const (
	swaggerRefPrefix  = "#/definitions/"
	openAPIRefPrefix  = "#/components/schemas/"
	defaultMediaType  = "application/json"
	swaggerFileSchema = "file"
)

// rewriteRefs returns a copy of data with every $ref pointed at components/schemas
func rewriteRefs(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, swaggerRefPrefix, openAPIRefPrefix, 1)
				continue
			}
			result[key] = rewriteRefs(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = rewriteRefs(item)
		}
		return result
	default:
		return data
	}
}

// convertPaths converts every operation under paths to OpenAPI 3.0
func convertPaths(paths map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(paths))
	for path, item := range paths {
		operations, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		converted := make(map[string]interface{}, len(operations))
		for method, op := range operations {
			if operation, ok := op.(map[string]interface{}); ok {
				converted[method] = convertOperation(operation)
			}
		}
		result[path] = converted
	}
	return result
}

// convertOperation moves body parameters into requestBody, wraps parameter
// types in a schema and response schemas in content
func convertOperation(op map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"summary", "description", "tags", "operationId"} {
		if val, ok := op[field]; ok {
			result[field] = val
		}
	}

	consumes := mediaTypes(op["consumes"])
	produces := mediaTypes(op["produces"])

	var params []interface{}
	if raw, ok := op["parameters"].([]interface{}); ok {
		for _, p := range raw {
			param, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			if param["in"] == "body" {
				result["requestBody"] = map[string]interface{}{
					"required": param["required"] == true,
					"content":  contentFor(consumes, rewriteRefs(param["schema"])),
				}
				continue
			}
			params = append(params, convertParameter(param))
		}
	}
	if len(params) > 0 {
		result["parameters"] = params
	}
	if _, hasBody := result["requestBody"]; !hasBody && len(consumes) > 1 {
		result["requestBody"] = map[string]interface{}{
			"content": contentFor(consumes, map[string]interface{}{"type": "string", "format": "binary"}),
		}
	}

	responses := make(map[string]interface{})
	if raw, ok := op["responses"].(map[string]interface{}); ok {
		for code, r := range raw {
			resp, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			out := map[string]interface{}{"description": resp["description"]}
			if schema, ok := resp["schema"].(map[string]interface{}); ok {
				if schema["type"] == swaggerFileSchema {
					schema = map[string]interface{}{"type": "string", "format": "binary"}
				}
				out["content"] = contentFor(produces, rewriteRefs(schema))
			}
			responses[code] = out
		}
	}
	result["responses"] = responses

	return result
}

// convertParameter converts a Swagger 2.0 query or path parameter
func convertParameter(param map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"name", "in", "description", "required"} {
		if val, ok := param[field]; ok {
			result[field] = val
		}
	}

	schema := make(map[string]interface{})
	for _, field := range []string{"type", "format", "enum", "default", "minimum", "maximum", "items"} {
		if val, ok := param[field]; ok {
			schema[field] = rewriteRefs(val)
		}
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}

	return result
}

func mediaTypes(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok || len(raw) == 0 {
		return []string{defaultMediaType}
	}
	types := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			types = append(types, s)
		}
	}
	return types
}

func contentFor(types []string, schema interface{}) map[string]interface{} {
	content := make(map[string]interface{}, len(types))
	for _, t := range types {
		content[t] = map[string]interface{}{"schema": schema}
	}
	return content
}

// ServeOpenAPI3Spec serves the swagger spec converted to OpenAPI 3.0, with the
// requesting host as its server
func ServeOpenAPI3Spec(c echo.Context) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "Failed to read swagger doc")
	}

	var swagger2 map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &swagger2); err != nil {
		return NewInternalError(c, "Failed to parse swagger doc")
	}

	info, _ := swagger2["info"].(map[string]interface{})
	paths, _ := swagger2["paths"].(map[string]interface{})

	components := make(map[string]interface{})
	if definitions, ok := swagger2["definitions"].(map[string]interface{}); ok {
		components["schemas"] = rewriteRefs(definitions)
	}

	return c.JSON(http.StatusOK, OpenAPI3Spec{
		OpenAPI: "3.0.3",
		Info:    info,
		Servers: []Server{
			{
				URL:         c.Scheme() + "://" + c.Request().Host + docs.SwaggerInfo.BasePath,
				Description: "This server",
			},
		},
		Paths:      convertPaths(paths),
		Components: components,
	})
}
