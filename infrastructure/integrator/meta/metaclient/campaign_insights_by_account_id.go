package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// GetCampaignInsightsByAccountID busca as métricas da janela consultada
// agregadas no nível de campanha
func (c *MetaClient) GetCampaignInsightsByAccountID(accountID string, window domain.DateRange) ([]metadomain.Insight, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("fields", "campaign_id,campaign_name,spend,impressions,clicks,ctr,cpc,cpm,actions")
	params.Add("time_range", window.ToMetaTimeRange())
	params.Add("limit", "500")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	insights, err := fetchAllPages[metadomain.Insight](c, "campaign_insights", accountID, baseURL+"?"+params.Encode())
	if err != nil {
		if errors.Is(err, errTokenRenewed) {
			return c.GetCampaignInsightsByAccountID(accountID, window)
		}
		return nil, err
	}

	return insights, nil
}
