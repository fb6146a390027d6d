package inventorying

import (
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// BuildHierarchy monta a árvore campanha → conjunto → anúncio apenas
// com anúncios entregando. Usa índices planos por id do pai em vez de
// referências aninhadas, o que simplifica a poda quando um ramo veio
// vazio de um upstream degradado.
//
// A ordem das campanhas preserva a ordem de busca do upstream; nenhuma
// ordenação extra é garantida nesta camada.
func BuildHierarchy(campaigns []domain.Campaign, adSets []domain.AdSet, delivering []domain.Ad) []domain.HierarchyNode {
	adSetsByCampaign := make(map[string][]domain.AdSet, len(campaigns))
	for _, as := range adSets {
		adSetsByCampaign[as.CampaignID] = append(adSetsByCampaign[as.CampaignID], as)
	}

	adsByAdSet := make(map[string][]domain.Ad, len(adSets))
	for _, ad := range delivering {
		adsByAdSet[ad.AdSetID] = append(adsByAdSet[ad.AdSetID], ad)
	}

	nodes := make([]domain.HierarchyNode, 0, len(campaigns))

	for _, campaign := range campaigns {
		var adSetNodes []domain.HierarchyNode

		for _, as := range adSetsByCampaign[campaign.ID] {
			ads := adsByAdSet[as.ID]
			if len(ads) == 0 {
				// Conjunto sem anúncio entregando não entra
				continue
			}

			adNodes := make([]domain.HierarchyNode, 0, len(ads))
			for _, ad := range ads {
				adNodes = append(adNodes, domain.HierarchyNode{
					ID:     ad.ID,
					Name:   ad.Name,
					Status: ad.Status,
				})
			}

			adSetNodes = append(adSetNodes, domain.HierarchyNode{
				ID:       as.ID,
				Name:     as.Name,
				Status:   as.Status,
				Children: adNodes,
			})
		}

		if len(adSetNodes) == 0 {
			continue
		}

		nodes = append(nodes, domain.HierarchyNode{
			ID:       campaign.ID,
			Name:     campaign.Name,
			Status:   campaign.Status,
			Children: adSetNodes,
		})
	}

	return nodes
}

// TotalLeafAds soma os anúncios (folhas) de todas as campanhas emitidas
func TotalLeafAds(nodes []domain.HierarchyNode) int {
	total := 0
	for _, n := range nodes {
		for _, adSet := range n.Children {
			total += len(adSet.Children)
		}
	}

	return total
}
