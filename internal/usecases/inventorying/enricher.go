package inventorying

import (
	"time"

	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/pkg/utils"
)

// EnrichAds junta cada anúncio entregando com a sua janela de
// performance e a idade calculada. Anúncio sem linha de insights na
// janela ganha métricas zeradas (entregou hoje mas não no período, ou o
// ramo de insights degradou); anúncio sem timestamp legível fica com
// days_running nulo, nunca erro.
func EnrichAds(
	ads []domain.Ad,
	campaigns []domain.Campaign,
	adSets []domain.AdSet,
	insights []domain.AdInsight,
	window domain.DateRange,
	now time.Time,
) []domain.EnrichedAd {
	campaignsByID := make(map[string]domain.Campaign, len(campaigns))
	for _, c := range campaigns {
		campaignsByID[c.ID] = c
	}

	adSetsByID := make(map[string]domain.AdSet, len(adSets))
	for _, as := range adSets {
		adSetsByID[as.ID] = as
	}

	insightsByAdID := make(map[string]domain.AdInsight, len(insights))
	for _, in := range insights {
		insightsByAdID[in.AdID] = in
	}

	enriched := make([]domain.EnrichedAd, 0, len(ads))

	for _, ad := range ads {
		ea := domain.EnrichedAd{
			ID:      ad.ID,
			Name:    ad.Name,
			AdSetID: ad.AdSetID,
			Status:  ad.Status,
			Window: domain.DeliveryWindow{
				AdID:      ad.ID,
				StartDate: window.StartDate,
				EndDate:   window.EndDate,
			},
		}

		insight, hasInsight := insightsByAdID[ad.ID]
		if hasInsight {
			ea.Window = insight.Window
		}

		// Campanha pela lista buscada; a linha de insights serve de
		// reserva quando o ramo de campanhas degradou
		ea.CampaignID = ad.CampaignID
		if campaign, ok := campaignsByID[ad.CampaignID]; ok {
			ea.CampaignName = campaign.Name
			ea.IsTrafficCampaign = campaign.IsTrafficCampaign
		} else if hasInsight {
			ea.CampaignName = insight.CampaignName
			ea.IsTrafficCampaign = IsTrafficCampaignName(insight.CampaignName)
		}

		if adSet, ok := adSetsByID[ad.AdSetID]; ok {
			ea.AdSetName = adSet.Name
		} else if hasInsight {
			ea.AdSetName = insight.AdSetName
		}

		if ad.CreatedTime != nil {
			days := utils.DaysSince(now, *ad.CreatedTime)
			ea.DaysRunning = &days
		}

		// CPL nulo quando não há lead; zero sugeriria conversão grátis
		if ea.Window.Leads > 0 {
			cpl := utils.RoundWithTwoDecimalPlace(ea.Window.Spend / float64(ea.Window.Leads))
			ea.CPL = &cpl
		}

		enriched = append(enriched, ea)
	}

	return enriched
}
