package gatewayclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

const (
	mcpEndpoint     = "/mcp"
	protocolVersion = "2024-11-05"
	clientName      = "ad-inventory-api"
	clientVersion   = "1.0"
)

// SessionState é o estado explícito da sessão com o gateway
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateReady
	StateExpired
)

func (s SessionState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateExpired:
		return "expired"
	default:
		return "uninitialized"
	}
}

// errSessionExpired sinaliza que o gateway invalidou a sessão atual;
// o chamador re-inicializa e repete a chamada uma única vez
var errSessionExpired = errors.New("sessão do gateway expirada")

// ErrNotConfigured indica ausência do token do gateway na configuração
var ErrNotConfigured = errors.New("token do gateway não configurado")

type Client interface {
	CallTool(toolName string, arguments map[string]interface{}) (json.RawMessage, error)
	State() SessionState
}

// GatewayClient fala JSON-RPC 2.0 com o gateway de ferramentas por
// HTTP. A sessão é estabelecida uma vez e reutilizada; quando expira,
// o cliente re-inicializa sozinho.
type GatewayClient struct {
	cfg        *config.Config
	httpClient *http.Client

	mu        sync.Mutex
	sessionID string
	state     SessionState
	requestID int
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GatewayClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		state:      StateUninitialized,
	}
}

func (c *GatewayClient) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      *int        `json:"id,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type toolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolResult struct {
	Content []toolContent `json:"content"`
}

// CallTool executa uma ferramenta no gateway e devolve o JSON que ela
// produziu. Sessão expirada causa exatamente uma re-inicialização
// seguida de uma repetição da chamada.
func (c *GatewayClient) CallTool(toolName string, arguments map[string]interface{}) (json.RawMessage, error) {
	if c.cfg.Gateway.Token == "" {
		return nil, ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady {
		if err := c.initialize(); err != nil {
			return nil, err
		}
	}

	result, err := c.doCall(toolName, arguments)
	if errors.Is(err, errSessionExpired) {
		logrus.WithField("tool", toolName).Info("gateway: session expired, re-initializing and retrying")
		c.state = StateExpired
		c.sessionID = ""

		if err := c.initialize(); err != nil {
			return nil, err
		}

		result, err = c.doCall(toolName, arguments)
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *GatewayClient) baseHeaders() http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json, text/event-stream")
	headers.Set("Authorization", "Bearer "+c.cfg.Gateway.Token)

	return headers
}

func (c *GatewayClient) nextID() *int {
	c.requestID++
	id := c.requestID

	return &id
}

func (c *GatewayClient) post(payload rpcRequest, withSession bool) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.Gateway.URL+mcpEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header = c.baseHeaders()
	if withSession {
		req.Header.Set("mcp-session-id", c.sessionID)
	}

	return c.httpClient.Do(req)
}

// initialize faz o handshake MCP e guarda o identificador de sessão
func (c *GatewayClient) initialize() error {
	initPayload := rpcRequest{
		JSONRPC: "2.0",
		Method:  "initialize",
		Params: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]interface{}{},
			"clientInfo": map[string]string{
				"name":    clientName,
				"version": clientVersion,
			},
		},
		ID: c.nextID(),
	}

	resp, err := c.post(initPayload, false)
	if err != nil {
		c.state = StateUninitialized
		return &domain.UpstreamError{Endpoint: "gateway:initialize", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.state = StateUninitialized
		body, _ := io.ReadAll(resp.Body)
		return &domain.UpstreamError{
			Endpoint:   "gateway:initialize",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("resposta inesperada do gateway: %s", string(body)),
		}
	}

	sessionID := resp.Header.Get("mcp-session-id")
	if sessionID == "" {
		c.state = StateUninitialized
		return &domain.UpstreamError{
			Endpoint: "gateway:initialize",
			Err:      errors.New("gateway não devolveu mcp-session-id"),
		}
	}

	c.sessionID = sessionID

	// Notificação sem id: o gateway não responde com resultado
	notifPayload := rpcRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	notifResp, err := c.post(notifPayload, true)
	if err != nil {
		c.state = StateUninitialized
		return &domain.UpstreamError{Endpoint: "gateway:initialized", Err: err}
	}
	notifResp.Body.Close()

	c.state = StateReady
	logrus.WithField("session_id", sessionID).Info("gateway: session initialized")

	return nil
}

// doCall executa uma única requisição tools/call
func (c *GatewayClient) doCall(toolName string, arguments map[string]interface{}) (json.RawMessage, error) {
	payload := rpcRequest{
		JSONRPC: "2.0",
		Method:  "tools/call",
		Params: toolCallParams{
			Name:      toolName,
			Arguments: arguments,
		},
		ID: c.nextID(),
	}

	resp, err := c.post(payload, true)
	if err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:" + toolName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:" + toolName, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		if strings.Contains(string(body), "Invalid session") {
			return nil, errSessionExpired
		}

		return nil, &domain.UpstreamError{
			Endpoint:   "gateway:" + toolName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("resposta inesperada do gateway: %s", truncateBody(body)),
		}
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:" + toolName, Err: err}
	}

	if rpcResp.Error != nil {
		if strings.Contains(rpcResp.Error.Message, "Invalid session") {
			return nil, errSessionExpired
		}

		return nil, &domain.UpstreamError{
			Endpoint: "gateway:" + toolName,
			Err:      fmt.Errorf("erro do gateway: %s", rpcResp.Error.Message),
		}
	}

	var result toolResult
	if err := json.Unmarshal(rpcResp.Result, &result); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:" + toolName, Err: err}
	}

	// Ferramentas MCP devolvem o dado como [{type: "text", text: "..."}]
	for _, item := range result.Content {
		if item.Type == "text" {
			return json.RawMessage(item.Text), nil
		}
	}

	return nil, &domain.UpstreamError{
		Endpoint: "gateway:" + toolName,
		Err:      errors.New("resultado da ferramenta sem conteúdo de texto"),
	}
}

func truncateBody(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen])
	}

	return string(body)
}
