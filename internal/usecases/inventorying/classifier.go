package inventorying

import (
	"strings"

	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// Palavras que marcam uma campanha como tráfego/engajamento. Qualquer
// outro nome cai em geração de leads, sem escalonamento de ambiguidade.
var trafficKeywords = []string{"open house", "visit", "visits"}

// IsTrafficCampaignName informa se o nome indica campanha de tráfego.
// A comparação ignora maiúsculas e minúsculas.
func IsTrafficCampaignName(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range trafficKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}

	return false
}

// ClassifyCampaigns marca o objetivo derivado de cada campanha. A tag
// decide quais métricas mandam rio abaixo: impressões/CTR/CPC para
// tráfego, leads/CPL para geração de leads.
func ClassifyCampaigns(campaigns []domain.Campaign) []domain.Campaign {
	for i := range campaigns {
		campaigns[i].IsTrafficCampaign = IsTrafficCampaignName(campaigns[i].Name)
	}

	return campaigns
}
