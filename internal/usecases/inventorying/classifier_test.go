package inventorying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

func TestIsTrafficCampaignName(t *testing.T) {
	tests := []struct {
		name         string
		campaignName string
		want         bool
	}{
		{"Nome com open house", "Open House Jardins", true},
		{"Maiúsculas são ignoradas", "OPEN HOUSE SÁBADO", true},
		{"Palavra visit embutida", "Agende sua Visita", true},
		{"Plural visits", "Weekend Visits - Unidade 2", true},
		{"Campanha de leads", "Leads Lançamento Casa Verde", false},
		{"Nome vazio", "", false},
		{"Sem palavra-chave cai em leads", "Remarketing Geral", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrafficCampaignName(tt.campaignName))
		})
	}
}

func TestClassifyCampaigns(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "c1", Name: "Open House Centro"},
		{ID: "c2", Name: "Captação de Leads"},
	}

	classified := ClassifyCampaigns(campaigns)

	assert.True(t, classified[0].IsTrafficCampaign)
	assert.False(t, classified[1].IsTrafficCampaign)
}
