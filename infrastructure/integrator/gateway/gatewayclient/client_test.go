package gatewayclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

func gatewayConfig(url string) *config.Config {
	return &config.Config{
		Gateway: config.Gateway{
			URL:            url,
			Token:          "token-teste",
			Enabled:        true,
			TimeoutSeconds: 5,
		},
	}
}

func writeToolText(w http.ResponseWriter, text string) {
	resp := map[string]interface{}{
		"jsonrpc": "2.0",
		"result": map[string]interface{}{
			"content": []map[string]string{
				{"type": "text", "text": text},
			},
		},
	}
	json.NewEncoder(w).Encode(resp)
}

func TestCallTool(t *testing.T) {
	var initCalls, notifCalls, toolCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mcp", r.URL.Path)
		require.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))

		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Method {
		case "initialize":
			atomic.AddInt32(&initCalls, 1)
			w.Header().Set("mcp-session-id", "sess-1")
			json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "result": map[string]interface{}{}})
		case "notifications/initialized":
			atomic.AddInt32(&notifCalls, 1)
			require.Equal(t, "sess-1", r.Header.Get("mcp-session-id"))
			w.WriteHeader(http.StatusAccepted)
		case "tools/call":
			atomic.AddInt32(&toolCalls, 1)
			require.Equal(t, "sess-1", r.Header.Get("mcp-session-id"))
			writeToolText(w, `[{"id":"c1","name":"Campanha"}]`)
		default:
			t.Fatalf("método inesperado: %s", req.Method)
		}
	}))
	defer server.Close()

	client := NewClient(gatewayConfig(server.URL))

	raw, err := client.CallTool("meta_campaigns", map[string]interface{}{"accountId": "act_1"})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1","name":"Campanha"}]`, string(raw))
	assert.Equal(t, StateReady, client.State())

	// Segunda chamada reutiliza a sessão, sem novo handshake
	_, err = client.CallTool("meta_campaigns", map[string]interface{}{"accountId": "act_1"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&initCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&notifCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&toolCalls))
}

func TestCallTool_SessionExpiredRetriesOnce(t *testing.T) {
	var initCalls, toolCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Method {
		case "initialize":
			n := atomic.AddInt32(&initCalls, 1)
			w.Header().Set("mcp-session-id", map[int32]string{1: "sess-1", 2: "sess-2"}[n])
			json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "result": map[string]interface{}{}})
		case "notifications/initialized":
			w.WriteHeader(http.StatusAccepted)
		case "tools/call":
			n := atomic.AddInt32(&toolCalls, 1)
			if n == 1 {
				// Primeira tentativa: o gateway invalidou a sessão
				json.NewEncoder(w).Encode(map[string]interface{}{
					"jsonrpc": "2.0",
					"error":   map[string]interface{}{"code": -32000, "message": "Invalid session"},
				})
				return
			}

			require.Equal(t, "sess-2", r.Header.Get("mcp-session-id"))
			writeToolText(w, `[{"id":"ad1"}]`)
		}
	}))
	defer server.Close()

	client := NewClient(gatewayConfig(server.URL))

	raw, err := client.CallTool("meta_ads", map[string]interface{}{"accountId": "act_1"})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"ad1"}]`, string(raw))

	// Exatamente uma re-inicialização e uma repetição
	assert.Equal(t, int32(2), atomic.LoadInt32(&initCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&toolCalls))
	assert.Equal(t, StateReady, client.State())
}

func TestCallTool_SessionExpiredTwiceFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Method {
		case "initialize":
			w.Header().Set("mcp-session-id", "sess-x")
			json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "result": map[string]interface{}{}})
		case "notifications/initialized":
			w.WriteHeader(http.StatusAccepted)
		case "tools/call":
			// Sessão sempre inválida, também no corpo de um não-200
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("Invalid session"))
		}
	}))
	defer server.Close()

	client := NewClient(gatewayConfig(server.URL))

	raw, err := client.CallTool("meta_ads", nil)

	// A repetição é única; a segunda expiração sobe como erro
	assert.Nil(t, raw)
	assert.Error(t, err)
}

func TestCallTool_GatewayErrorBecomesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Method {
		case "initialize":
			w.Header().Set("mcp-session-id", "sess-1")
			json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "result": map[string]interface{}{}})
		case "notifications/initialized":
			w.WriteHeader(http.StatusAccepted)
		case "tools/call":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"jsonrpc": "2.0",
				"error":   map[string]interface{}{"code": -32001, "message": "tool not found"},
			})
		}
	}))
	defer server.Close()

	client := NewClient(gatewayConfig(server.URL))

	raw, err := client.CallTool("ferramenta_inexistente", nil)

	assert.Nil(t, raw)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestCallTool_NotConfigured(t *testing.T) {
	client := NewClient(&config.Config{})

	raw, err := client.CallTool("meta_campaigns", nil)

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
