package domain

// CampaignInsight é o resumo de performance de uma campanha na janela
// consultada, já com o objetivo derivado do nome
type CampaignInsight struct {
	CampaignID        string   `json:"campaign_id"`
	CampaignName      string   `json:"campaign_name"`
	IsTrafficCampaign bool     `json:"is_traffic_campaign"`
	Spend             float64  `json:"spend"`
	Impressions       int      `json:"impressions"`
	Clicks            int      `json:"clicks"`
	CTR               float64  `json:"ctr"`
	CPC               float64  `json:"cpc"`
	CPM               float64  `json:"cpm"`
	Leads             int      `json:"leads"`
	CPL               *float64 `json:"cpl"`
}

type CampaignInsightsResponse struct {
	Success   bool              `json:"success"`
	AccountID string            `json:"account_id"`
	Range     DateRange         `json:"date_range"`
	Campaigns []CampaignInsight `json:"campaigns"`
	Error     string            `json:"error,omitempty"`
}
