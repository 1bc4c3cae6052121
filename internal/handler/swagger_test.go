package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.mustDo(t, http.MethodGet, "/openapi.json", "", http.StatusOK)

	var spec map[string]interface{}
	decode(t, rec, &spec)

	assert.Equal(t, "3.0.3", spec["openapi"])

	servers, ok := spec["servers"].([]interface{})
	require.True(t, ok)
	require.Len(t, servers, 1)
	assert.Equal(t, "http://example.com/api/v1", servers[0].(map[string]interface{})["url"])

	paths, ok := spec["paths"].(map[string]interface{})
	require.True(t, ok)
	accounts, ok := paths["/accounts"].(map[string]interface{})
	require.True(t, ok)
	post, ok := accounts["post"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, post, "requestBody")

	components, ok := spec["components"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, components["schemas"], "handler.AccountRequest")
}

func TestRewriteRefs(t *testing.T) {
	in := map[string]interface{}{
		"schema": map[string]interface{}{"$ref": "#/definitions/handler.AccountResponse"},
		"items":  []interface{}{map[string]interface{}{"$ref": "#/definitions/domain.WidgetPayload"}},
	}

	out := rewriteRefs(in).(map[string]interface{})

	assert.Equal(t, "#/components/schemas/handler.AccountResponse", out["schema"].(map[string]interface{})["$ref"])
	items := out["items"].([]interface{})
	assert.Equal(t, "#/components/schemas/domain.WidgetPayload", items[0].(map[string]interface{})["$ref"])
	// input is left untouched
	assert.Equal(t, "#/definitions/handler.AccountResponse", in["schema"].(map[string]interface{})["$ref"])
}

func TestConvertOperation_QueryParameter(t *testing.T) {
	op := map[string]interface{}{
		"summary": "List transactions",
		"parameters": []interface{}{
			map[string]interface{}{"name": "limit", "in": "query", "type": "integer"},
		},
		"responses": map[string]interface{}{
			"200": map[string]interface{}{"description": "OK"},
		},
	}

	out := convertOperation(op)

	params := out["parameters"].([]interface{})
	require.Len(t, params, 1)
	param := params[0].(map[string]interface{})
	assert.Equal(t, "limit", param["name"])
	assert.Equal(t, map[string]interface{}{"type": "integer"}, param["schema"])
	assert.NotContains(t, out, "requestBody")
}
