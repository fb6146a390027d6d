package domain

import "github.com/vfg2006/ad-inventory-api/pkg/utils"

// AccountSnapshot é o resumo de performance da conta em um intervalo
type AccountSnapshot struct {
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Reach       int      `json:"reach"`
	CTR         float64  `json:"ctr"`
	CPC         float64  `json:"cpc"`
	CPM         float64  `json:"cpm"`
	Leads       int      `json:"leads"`
	CPL         *float64 `json:"cpl"`
}

// AccountChanges guarda as variações percentuais contra o período de
// comparação. Zero quando o período anterior também é zero.
type AccountChanges struct {
	Spend       float64 `json:"spend_change"`
	Impressions float64 `json:"impressions_change"`
	Clicks      float64 `json:"clicks_change"`
	CTR         float64 `json:"ctr_change"`
	CPC         float64 `json:"cpc_change"`
	CPM         float64 `json:"cpm_change"`
	Leads       float64 `json:"leads_change"`
}

// AccountOverview junta o período atual, o anterior e as variações
type AccountOverview struct {
	Success         bool             `json:"success"`
	AccountID       string           `json:"account_id"`
	Range           DateRange        `json:"date_range"`
	ComparisonRange DateRange        `json:"comparison_range"`
	Current         *AccountSnapshot `json:"current"`
	Previous        *AccountSnapshot `json:"previous,omitempty"`
	Changes         *AccountChanges  `json:"changes,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// PercentChange calcula a variação percentual; 0 quando prev é 0
func PercentChange(curr, prev float64) float64 {
	if prev == 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(((curr - prev) / prev) * 100)
}

// ComputeChanges deriva as variações entre dois snapshots
func ComputeChanges(current, previous *AccountSnapshot) *AccountChanges {
	if current == nil || previous == nil {
		return nil
	}

	return &AccountChanges{
		Spend:       PercentChange(current.Spend, previous.Spend),
		Impressions: PercentChange(float64(current.Impressions), float64(previous.Impressions)),
		Clicks:      PercentChange(float64(current.Clicks), float64(previous.Clicks)),
		CTR:         PercentChange(current.CTR, previous.CTR),
		CPC:         PercentChange(current.CPC, previous.CPC),
		CPM:         PercentChange(current.CPM, previous.CPM),
		Leads:       PercentChange(float64(current.Leads), float64(previous.Leads)),
	}
}
