package inventorying

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

func TestVerifyDelivery(t *testing.T) {
	tests := []struct {
		name           string
		ads            []domain.Ad
		wantDelivering int
		wantPhantom    int
	}{
		{
			name:           "Lista vazia",
			ads:            []domain.Ad{},
			wantDelivering: 0,
			wantPhantom:    0,
		},
		{
			name: "Todos entregando",
			ads: []domain.Ad{
				{ID: "ad1", Status: domain.StatusActive, TodayImpressions: 10},
				{ID: "ad2", Status: domain.StatusActive, TodayImpressions: 1},
			},
			wantDelivering: 2,
			wantPhantom:    0,
		},
		{
			name: "ACTIVE sem impressão no dia é fantasma",
			ads: []domain.Ad{
				{ID: "ad1", Status: domain.StatusActive, TodayImpressions: 500},
				{ID: "ad2", Status: domain.StatusActive, TodayImpressions: 0},
			},
			wantDelivering: 1,
			wantPhantom:    1,
		},
		{
			name: "PAUSED com impressão não conta como entregando",
			ads: []domain.Ad{
				{ID: "ad1", Status: domain.StatusPaused, TodayImpressions: 42},
			},
			wantDelivering: 0,
			wantPhantom:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delivering, phantom := VerifyDelivery(tt.ads)

			assert.Len(t, delivering, tt.wantDelivering)
			assert.Len(t, phantom, tt.wantPhantom)
		})
	}
}

// Cenário de referência: a plataforma lista 260 ativos mas 15 não
// imprimiram nada no dia, então a contagem real é 245
func TestVerifyDelivery_PhantomActiveScenario(t *testing.T) {
	ads := make([]domain.Ad, 0, 260)
	for i := 0; i < 260; i++ {
		impressions := 100
		if i < 15 {
			impressions = 0
		}

		ads = append(ads, domain.Ad{
			ID:               fmt.Sprintf("ad-%d", i),
			Status:           domain.StatusActive,
			TodayImpressions: impressions,
		})
	}

	delivering, phantom := VerifyDelivery(ads)

	assert.Len(t, delivering, 245)
	assert.Len(t, phantom, 15)
}
