package domain

// HierarchyNode é um nó da hierarquia campanha → conjunto → anúncio.
// Só existe se contiver, transitivamente, pelo menos um anúncio
// entregando de verdade.
type HierarchyNode struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
	Children []HierarchyNode `json:"children,omitempty"`
}

// LeafCount conta os anúncios (folhas) sob o nó
func (n HierarchyNode) LeafCount() int {
	if len(n.Children) == 0 {
		return 1
	}

	total := 0
	for _, child := range n.Children {
		total += child.LeafCount()
	}

	return total
}

type ActiveInventoryResponse struct {
	Success        bool            `json:"success"`
	TotalActiveAds int             `json:"total_active_ads"`
	Campaigns      []HierarchyNode `json:"campaigns"`
	Error          string          `json:"error,omitempty"`
}

type ActivePerformanceResponse struct {
	Success        bool         `json:"success"`
	TotalActiveAds int          `json:"total_active_ads"`
	Threshold      int          `json:"threshold"`
	OverBy         int          `json:"over_by"`
	Ads            []EnrichedAd `json:"ads"`
	Error          string       `json:"error,omitempty"`
}

type RecentlyPausedResponse struct {
	Success        bool       `json:"success"`
	TotalPausedAds int        `json:"total_paused_ads"`
	Truncated      bool       `json:"truncated"`
	Ads            []PausedAd `json:"ads"`
	Error          string     `json:"error,omitempty"`
}
