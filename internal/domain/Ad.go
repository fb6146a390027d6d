package domain

import "time"

const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

type AdAccount struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
}

type Campaign struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Status            string `json:"status"`
	IsTrafficCampaign bool   `json:"is_traffic_campaign"`
}

type AdSet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
}

type Ad struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	AdSetID     string     `json:"adset_id"`
	CampaignID  string     `json:"campaign_id"`
	Status      string     `json:"status"`
	CreatedTime *time.Time `json:"created_time,omitempty"`

	// Última alteração de status na plataforma; usada como data de
	// pausa quando o anúncio está PAUSED
	UpdatedTime *time.Time `json:"updated_time,omitempty"`

	// Impressões do dia da verificação; decide se o anúncio está
	// realmente entregando apesar do status "ACTIVE" da plataforma
	TodayImpressions int `json:"today_impressions"`
}

// Delivering informa se o anúncio passou na verificação de entrega.
// O status da plataforma continua "ACTIVE" muito depois do orçamento
// esgotar, então impressões > 0 no dia é o critério que vale.
func (a Ad) Delivering() bool {
	return a.Status == StatusActive && a.TodayImpressions > 0
}

// DeliveryWindow é o recorte imutável de métricas de um anúncio em um
// intervalo de datas. Nunca é cacheado entre requisições.
type DeliveryWindow struct {
	AdID        string  `json:"ad_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Leads       int     `json:"leads"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
}

// AdInsight é uma linha de insights no nível de anúncio, já com os
// nomes de campanha e conjunto que o upstream devolve junto
type AdInsight struct {
	AdID         string         `json:"ad_id"`
	AdName       string         `json:"ad_name"`
	AdSetID      string         `json:"adset_id"`
	AdSetName    string         `json:"adset_name"`
	CampaignID   string         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	Window       DeliveryWindow `json:"window"`
}

// EnrichedAd é um Ad entregando + janela de 30 dias + idade calculada.
// Efêmero: reconstruído a cada requisição.
type EnrichedAd struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	CampaignID        string         `json:"campaign_id"`
	CampaignName      string         `json:"campaign_name"`
	AdSetID           string         `json:"adset_id"`
	AdSetName         string         `json:"adset_name"`
	Status            string         `json:"status"`
	Window            DeliveryWindow `json:"window"`
	DaysRunning       *int           `json:"days_running"`
	IsTrafficCampaign bool           `json:"is_traffic_campaign"`
	CPL               *float64       `json:"cpl"`
}

// PausedAd é um EnrichedAd com a data em que foi pausado
type PausedAd struct {
	EnrichedAd
	PausedDate string `json:"paused_date"`
}
