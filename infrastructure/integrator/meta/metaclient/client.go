package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

type Client interface {
	GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetAdSetsByAccountID(accountID string) ([]metadomain.AdSet, error)
	GetAdsByAccountID(accountID string, statusFilter string, verification domain.DateRange) ([]metadomain.Ad, error)
	GetAdInsightsByAccountID(accountID string, window domain.DateRange) ([]metadomain.Insight, error)
	GetCampaignInsightsByAccountID(accountID string, window domain.DateRange) ([]metadomain.Insight, error)
	GetAccountInsightsByID(accountID string, window domain.DateRange) (*metadomain.Insight, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}

func (c *MetaClient) requestTimeout() time.Duration {
	seconds := c.Cfg.Inventory.RequestTimeoutSeconds
	if seconds <= 0 {
		seconds = 30
	}

	return time.Duration(seconds) * time.Second
}
