package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// GetAdsByAccountID busca os anúncios da conta no status pedido, com a
// sub-consulta aninhada de insights da janela de verificação. É essa
// sub-consulta que separa anúncio entregando de anúncio fantasma: o
// campo status da plataforma sozinho não basta.
func (c *MetaClient) GetAdsByAccountID(accountID string, statusFilter string, verification domain.DateRange) ([]metadomain.Ad, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, accountID)

	insightsSubquery := fmt.Sprintf(
		"insights.time_range(%s){impressions,spend}",
		verification.ToMetaTimeRange(),
	)

	params := url.Values{}
	params.Add("fields", "id,name,status,created_time,updated_time,adset_id,campaign_id,"+insightsSubquery)
	params.Add("effective_status", fmt.Sprintf("[\"%s\"]", statusFilter))
	params.Add("limit", "250")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	ads, err := fetchAllPages[metadomain.Ad](c, "ads", accountID, baseURL+"?"+params.Encode())
	if err != nil {
		if errors.Is(err, errTokenRenewed) {
			return c.GetAdsByAccountID(accountID, statusFilter, verification)
		}
		return nil, err
	}

	return ads, nil
}
