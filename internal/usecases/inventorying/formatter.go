package inventorying

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// Os renderizadores abaixo produzem texto determinístico para consumo
// por uma camada de linguagem natural. Nenhuma regra de negócio aqui:
// o recorte de "hoje" é resolvido rio acima e chega pronto, então a
// mesma entrada sempre rende a mesma saída.

const closeToLimitHeadroom = 20

// HeadroomStatus devolve a linha de situação da conta contra o limite
func HeadroomStatus(totalActive, adCap int) string {
	headroom := adCap - totalActive

	switch {
	case headroom < 0:
		return fmt.Sprintf("OVER LIMIT: %d/%d active ads (%d over)", totalActive, adCap, -headroom)
	case headroom < closeToLimitHeadroom:
		return fmt.Sprintf("CLOSE TO LIMIT: %d/%d active ads (%d remaining)", totalActive, adCap, headroom)
	default:
		return fmt.Sprintf("OK: %d/%d active ads (%d remaining)", totalActive, adCap, headroom)
	}
}

// FormatActiveInventoryReport renderiza a hierarquia verificada como
// texto fixo: linha de situação e depois campanha → conjunto → anúncio
func FormatActiveInventoryReport(resp *domain.ActiveInventoryResponse, adCap int, today string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ACTIVE AD INVENTORY (verified by delivery on %s)\n", today)
	fmt.Fprintf(&b, "%s\n", HeadroomStatus(resp.TotalActiveAds, adCap))
	b.WriteString("\n")

	if len(resp.Campaigns) == 0 {
		b.WriteString("No campaigns with delivering ads.\n")
		return b.String()
	}

	for _, campaign := range resp.Campaigns {
		fmt.Fprintf(&b, "CAMPAIGN: %s (%d delivering ads)\n", campaign.Name, campaign.LeafCount())

		for _, adSet := range campaign.Children {
			fmt.Fprintf(&b, "  AD SET: %s (%d ads)\n", adSet.Name, len(adSet.Children))

			for _, ad := range adSet.Children {
				fmt.Fprintf(&b, "    - %s\n", ad.Name)
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

// FormatPerformanceReport renderiza duas seções: tabela de criativos
// agregados por nome e o detalhamento campanha → conjunto → anúncio
// com as métricas da janela
func FormatPerformanceReport(resp *domain.ActivePerformanceResponse, rollups []domain.CreativeRollup, today string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ACTIVE ADS WITH PERFORMANCE (as of %s)\n", today)
	fmt.Fprintf(&b, "%s\n", HeadroomStatus(resp.TotalActiveAds, resp.Threshold))
	b.WriteString("\n")

	b.WriteString("CREATIVE ROLLUP (grouped by exact ad name)\n")
	if len(rollups) == 0 {
		b.WriteString("  (no delivering ads)\n")
	}

	for _, rollup := range rollups {
		duplicateTag := ""
		if rollup.IsDuplicate() {
			duplicateTag = " [DUPLICATE]"
		}

		fmt.Fprintf(&b, "  %s%s: %d instance(s), spend $%.2f, %d leads, %d impressions, cpl %s\n",
			rollup.Name, duplicateTag, len(rollup.Instances), rollup.TotalSpend,
			rollup.TotalLeads, rollup.TotalImpressions, formatNullableMoney(rollup.TotalCPL))
	}

	b.WriteString("\nBREAKDOWN BY CAMPAIGN\n")
	writeCampaignBreakdown(&b, resp.Ads)

	return b.String()
}

// writeCampaignBreakdown agrupa os anúncios por campanha e conjunto
// preservando a ordem de chegada, para manter a saída estável
func writeCampaignBreakdown(b *strings.Builder, ads []domain.EnrichedAd) {
	if len(ads) == 0 {
		b.WriteString("  (no delivering ads)\n")
		return
	}

	campaignOrder := make([]string, 0)
	adsByCampaign := make(map[string][]domain.EnrichedAd)

	for _, ad := range ads {
		key := ad.CampaignName
		if _, seen := adsByCampaign[key]; !seen {
			campaignOrder = append(campaignOrder, key)
		}
		adsByCampaign[key] = append(adsByCampaign[key], ad)
	}

	for _, campaignName := range campaignOrder {
		campaignAds := adsByCampaign[campaignName]

		objective := "lead-generation"
		if campaignAds[0].IsTrafficCampaign {
			objective = "traffic/engagement"
		}

		fmt.Fprintf(b, "CAMPAIGN: %s [%s]\n", campaignName, objective)

		adSetOrder := make([]string, 0)
		adsByAdSet := make(map[string][]domain.EnrichedAd)
		for _, ad := range campaignAds {
			if _, seen := adsByAdSet[ad.AdSetName]; !seen {
				adSetOrder = append(adSetOrder, ad.AdSetName)
			}
			adsByAdSet[ad.AdSetName] = append(adsByAdSet[ad.AdSetName], ad)
		}

		for _, adSetName := range adSetOrder {
			fmt.Fprintf(b, "  AD SET: %s\n", adSetName)

			for _, ad := range adsByAdSet[adSetName] {
				fmt.Fprintf(b, "    - %s | spend $%.2f | %d impressions | %d clicks | %d leads | cpl %s | running %s\n",
					ad.Name, ad.Window.Spend, ad.Window.Impressions, ad.Window.Clicks,
					ad.Window.Leads, formatNullableMoney(ad.CPL), formatNullableDays(ad.DaysRunning))
			}
		}

		b.WriteString("\n")
	}
}

func formatNullableMoney(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return fmt.Sprintf("$%.2f", *v)
}

func formatNullableDays(v *int) string {
	if v == nil {
		return "n/a"
	}

	return fmt.Sprintf("%d day(s)", *v)
}
