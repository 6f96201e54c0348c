package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seywell/daypack/internal/mcp"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	method string
	err    error
}

func (h *testHandler) Handle(_ context.Context, userID, method string, params json.RawMessage) (any, error) {
	h.method = method
	if h.err != nil {
		return nil, h.err
	}
	return map[string]string{"user": userID}, nil
}

type staticResolver struct {
	user string
}

func (r *staticResolver) ResolveUser(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	return r.user, nil
}

func TestHTTPServer_MCP(t *testing.T) {
	handler := &testHandler{}
	resolver := &staticResolver{user: "user1"}
	server := httptest.NewServer(NewServer(handler, AuthMiddleware(resolver)))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_roadmaps","id":1}`)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/mcp", body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "list_roadmaps", handler.method)
}

func TestHTTPServer_MCP_Unauthorized(t *testing.T) {
	handler := &testHandler{}
	resolver := &staticResolver{user: "user1"}
	server := httptest.NewServer(NewServer(handler, AuthMiddleware(resolver)))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_roadmaps","id":1}`)
	resp, err := http.Post(server.URL+"/mcp", "application/json", body)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHTTPServer_MCP_APIError(t *testing.T) {
	handler := &testHandler{err: &mcp.APIError{Code: "ROADMAP_NOT_FOUND", Message: "roadmap not found"}}
	server := httptest.NewServer(NewServer(handler, StaticUserMiddleware("user1")))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"get_roadmap","id":1}`)
	resp, err := http.Post(server.URL+"/mcp", "application/json", body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(payload), "ROADMAP_NOT_FOUND")
}

func TestHTTPServer_Health(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler, nil))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
