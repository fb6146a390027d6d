package domain

// Tiers de prioridade para recomendações de pausa. Menor = pausar antes.
const (
	TierZeroLeadsHighSpend = iota + 1
	TierZeroLeadsZeroSpend
	TierCPLAboveAverage
	TierDuplicateCreative

	// Campanhas de tráfego/engajamento usam outra régua
	TierZeroImpressions          = 1
	TierCTRBelowAverage          = 2
	TierTrafficDuplicateCreative = 3
)

// PauseRecommendation é uma sugestão ranqueada de desativar um anúncio
// para voltar a ficar abaixo do limite de anúncios ativos da conta.
// A pausa nunca é executada por este serviço, apenas recomendada.
type PauseRecommendation struct {
	AdID        string   `json:"ad_id"`
	Name        string   `json:"name"`
	Campaign    string   `json:"campaign"`
	AdSet       string   `json:"adset"`
	DaysRunning *int     `json:"days_running"`
	Spend30D    float64  `json:"spend_30d"`
	Leads30D    int      `json:"leads_30d"`
	CPL30D      *float64 `json:"cpl_30d"`
	Tier        int      `json:"tier"`
	Reason      string   `json:"reason"`
}

type PauseRecommendationsResponse struct {
	Success         bool                  `json:"success"`
	TotalActiveAds  int                   `json:"total_active_ads"`
	Threshold       int                   `json:"threshold"`
	OverBy          int                   `json:"over_by"`
	Recommendations []PauseRecommendation `json:"recommendations"`
	Error           string                `json:"error,omitempty"`
}

// CreativeRollup agrega todas as instâncias de anúncios que compartilham
// exatamente o mesmo nome de exibição entre campanhas e conjuntos.
type CreativeRollup struct {
	Name             string       `json:"name"`
	Instances        []EnrichedAd `json:"instances"`
	TotalSpend       float64      `json:"total_spend"`
	TotalLeads       int          `json:"total_leads"`
	TotalImpressions int          `json:"total_impressions"`
	TotalCPL         *float64     `json:"total_cpl"`
}

// IsDuplicate informa se o criativo aparece em mais de um lugar
func (r CreativeRollup) IsDuplicate() bool {
	return len(r.Instances) > 1
}
