package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/platform/tools"
)

type echoTool struct{}

func (echoTool) Name() string { return "echo" }
func (echoTool) Description() string { return "Echo the input" }
func (echoTool) InputSchema() map[string]interface{} { return map[string]interface{}{"type": "object"} }
func (echoTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	return tools.NewSuccessResult(json.RawMessage(input))
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := tools.NewToolRegistry()
	registry.Register(echoTool{})
	registry.Register(tools.NewSplitSectionsTool())

	router := gin.New()
	NewServer(registry).RegisterRoutes(router.Group("/api"))
	return router
}

func post(t *testing.T, router *gin.Engine, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandleMCP_ToolsList(t *testing.T) {
	_, resp := post(t, newRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Nil(t, resp.Error)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var list ToolsListResult
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Tools, 2)
	assert.Equal(t, "echo", list.Tools[0].Name)
	assert.Equal(t, "split_cv_sections", list.Tools[1].Name)
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	_, resp := post(t, newRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":"a","method":"tools/call","params":{"name":"echo","arguments":{"x":1}}}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "a", resp.ID)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var result ToolCallResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Content, 1)
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"success":true,"data":{"x":1}}`, result.Content[0].Text)
}

func TestHandleMCP_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "bad json", body: `{"jsonrpc":`, code: CodeParseError},
		{name: "missing version", body: `{"id":5,"method":"tools/list"}`, code: CodeInvalidRequest},
		{name: "unknown method", body: `{"jsonrpc":"2.0","id":2,"method":"resources/list"}`, code: CodeMethodNotFound},
		{name: "bad params", body: `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":"nope"}`, code: CodeInvalidParams},
		{name: "unknown tool", body: `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"search_web"}}`, code: CodeInvalidParams},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := post(t, router, "/api/mcp", tt.body)
			assert.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "2.0", resp.JSONRPC)
		})
	}
}

func TestDirectEndpoints(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/mcp/tools/list", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "split_cv_sections")

	w, _ = post(t, router, "/api/mcp/tools/call", `{"name":"split_cv_sections","arguments":{"text":"Skills\nGo"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skills")

	w, _ = post(t, router, "/api/mcp/tools/call", `{"name":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleMCP_Initialize(t *testing.T) {
	router := newRouter()

	_, resp := post(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`)
	require.Nil(t, resp.Error)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var result InitializeResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, ServerName, result.ServerInfo.Name)
	assert.Contains(t, result.Capabilities, "tools")

	_, resp = post(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":2,"method":"ping"}`)
	assert.Nil(t, resp.Error)
}

func TestHandleMCP_Notification(t *testing.T) {
	w, _ := post(t, newRouter(), "/api/mcp", `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, w.Body.String())
}
