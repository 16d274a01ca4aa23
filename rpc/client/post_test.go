package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.Version)
		assert.Equal(t, "vellum_echo", req.Method)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  req.Params,
		})
	}))
	defer server.Close()

	var result []string
	err := RPCPost(&result, server.URL, "vellum_echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, result)
}

func TestRPCPostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`))
	}))
	defer server.Close()

	err := RPCPost(nil, server.URL, "vellum_unknown")
	require.Error(t, err)
	var rpcErr *JSONRPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32601, rpcErr.Code)
}

func TestRPCPostBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	err := RPCPost(nil, server.URL, "vellum_anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong response status")
}
