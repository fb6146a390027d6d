package pausing

import (
	"sort"

	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/pkg/utils"
)

// RollupCreatives agrupa os anúncios pelo nome de exibição exato,
// sensível a maiúsculas. O mesmo criativo costuma rodar como várias
// instâncias espalhadas por campanhas e conjuntos; o agregado mostra o
// gasto real daquela peça.
//
// Saída em gasto total decrescente; empates mantêm a ordem de chegada.
func RollupCreatives(ads []domain.EnrichedAd) []domain.CreativeRollup {
	order := make([]string, 0)
	groups := make(map[string]*domain.CreativeRollup)

	for _, ad := range ads {
		rollup, seen := groups[ad.Name]
		if !seen {
			rollup = &domain.CreativeRollup{Name: ad.Name}
			groups[ad.Name] = rollup
			order = append(order, ad.Name)
		}

		rollup.Instances = append(rollup.Instances, ad)
		rollup.TotalSpend += ad.Window.Spend
		rollup.TotalLeads += ad.Window.Leads
		rollup.TotalImpressions += ad.Window.Impressions
	}

	rollups := make([]domain.CreativeRollup, 0, len(order))
	for _, name := range order {
		rollup := groups[name]

		if rollup.TotalLeads > 0 {
			cpl := utils.RoundWithTwoDecimalPlace(rollup.TotalSpend / float64(rollup.TotalLeads))
			rollup.TotalCPL = &cpl
		}

		rollups = append(rollups, *rollup)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalSpend > rollups[j].TotalSpend
	})

	return rollups
}
