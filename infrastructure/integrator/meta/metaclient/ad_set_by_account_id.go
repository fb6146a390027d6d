package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdSetsByAccountID(accountID string) ([]metadomain.AdSet, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,campaign_id")
	params.Add("effective_status", "[\"ACTIVE\"]")
	params.Add("limit", "200")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	adSets, err := fetchAllPages[metadomain.AdSet](c, "adsets", accountID, baseURL+"?"+params.Encode())
	if err != nil {
		if errors.Is(err, errTokenRenewed) {
			return c.GetAdSetsByAccountID(accountID)
		}
		return nil, err
	}

	return adSets, nil
}
