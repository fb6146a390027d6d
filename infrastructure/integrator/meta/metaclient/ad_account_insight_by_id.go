package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// GetAccountInsightsByID busca o resumo de performance da conta no
// intervalo pedido. Sem dados no período devolve nil sem erro.
func (c *MetaClient) GetAccountInsightsByID(accountID string, window domain.DateRange) (*metadomain.Insight, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "account_id,account_name,spend,impressions,clicks,reach,ctr,cpc,cpm,actions")
	params.Add("time_range", window.ToMetaTimeRange())
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	insights, err := fetchAllPages[metadomain.Insight](c, "account_insights", accountID, baseURL+"?"+params.Encode())
	if err != nil {
		if errors.Is(err, errTokenRenewed) {
			return c.GetAccountInsightsByID(accountID, window)
		}
		return nil, err
	}

	if len(insights) == 0 {
		return nil, nil
	}

	return &insights[0], nil
}
