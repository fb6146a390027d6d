package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("effective_status", "[\"ACTIVE\"]")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	campaigns, err := fetchAllPages[metadomain.Campaign](c, "campaigns", accountID, baseURL+"?"+params.Encode())
	if err != nil {
		// Se o token foi renovado durante a chamada, tentar novamente
		if errors.Is(err, errTokenRenewed) {
			return c.GetCampaignsByAccountID(accountID)
		}
		return nil, err
	}

	return campaigns, nil
}
