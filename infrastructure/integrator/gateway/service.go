package gateway

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/gateway/gatewayclient"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/pkg/utils"
)

// GatewayIntegrator expõe as mesmas buscas lógicas do integrador Meta
// direto, mas por trás do gateway de ferramentas. O app escolhe o
// transporte na inicialização via GATEWAY_ENABLED.
type GatewayIntegrator struct {
	cfg    *config.Config
	Client gatewayclient.Client
}

func New(cfg *config.Config, client gatewayclient.Client) *GatewayIntegrator {
	return &GatewayIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// pick devolve o primeiro valor não-vazio. O gateway nem sempre usa os
// mesmos nomes de campo que a Graph API, então decodificamos a chave
// canônica e a alternativa e escolhemos aqui.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func pickFloat(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}

	return 0
}

func pickInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}

	return 0
}

type gatewayCampaign struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Campaign   string `json:"campaign_name"`
	Status     string `json:"status"`
}

type gatewayAdSet struct {
	ID         string `json:"id"`
	AdSetID    string `json:"adset_id"`
	Name       string `json:"name"`
	AdSetName  string `json:"adset_name"`
	CampaignID string `json:"campaign_id"`
	ParentID   string `json:"parent_campaign_id"`
	Status     string `json:"status"`
}

type gatewayAd struct {
	ID               string `json:"id"`
	AdID             string `json:"ad_id"`
	Name             string `json:"name"`
	AdName           string `json:"ad_name"`
	AdSetID          string `json:"adset_id"`
	AdSetIDAlt       string `json:"ad_set_id"`
	CampaignID       string `json:"campaign_id"`
	Status           string `json:"status"`
	CreatedTime      string `json:"created_time"`
	CreatedAt        string `json:"created_at"`
	UpdatedTime      string `json:"updated_time"`
	UpdatedAt        string `json:"updated_at"`
	TodayImpressions int    `json:"today_impressions"`
	ImpressionsToday int    `json:"impressions_today"`
}

type gatewayInsight struct {
	AdID         string  `json:"ad_id"`
	AdName       string  `json:"ad_name"`
	AdSetID      string  `json:"adset_id"`
	AdSetName    string  `json:"adset_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Spend        float64 `json:"spend"`
	AmountSpent  float64 `json:"amount_spent"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	Reach        int     `json:"reach"`
	CTR          float64 `json:"ctr"`
	CPC          float64 `json:"cpc"`
	CPM          float64 `json:"cpm"`
	Leads        int     `json:"leads"`
	Results      int     `json:"results"`
}

// CheckConfiguration valida as credenciais antes de qualquer chamada
// de rede
func (s *GatewayIntegrator) CheckConfiguration() error {
	if s.cfg.Gateway.Token == "" {
		return domain.ErrMissingCredentials
	}

	return nil
}

func (s *GatewayIntegrator) FetchCampaigns(accountID string) ([]domain.Campaign, error) {
	raw, err := s.Client.CallTool("meta_campaigns", map[string]interface{}{
		"accountId": accountID,
		"status":    domain.StatusActive,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to get campaigns from gateway")
		return nil, err
	}

	var rows []gatewayCampaign
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:meta_campaigns", AccountID: accountID, Err: err}
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, r := range rows {
		campaigns = append(campaigns, domain.Campaign{
			ID:     pick(r.ID, r.CampaignID),
			Name:   pick(r.Name, r.Campaign),
			Status: r.Status,
		})
	}

	return campaigns, nil
}

func (s *GatewayIntegrator) FetchAdSets(accountID string) ([]domain.AdSet, error) {
	raw, err := s.Client.CallTool("meta_adsets", map[string]interface{}{
		"accountId": accountID,
		"status":    domain.StatusActive,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to get ad sets from gateway")
		return nil, err
	}

	var rows []gatewayAdSet
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:meta_adsets", AccountID: accountID, Err: err}
	}

	adSets := make([]domain.AdSet, 0, len(rows))
	for _, r := range rows {
		adSets = append(adSets, domain.AdSet{
			ID:         pick(r.ID, r.AdSetID),
			Name:       pick(r.Name, r.AdSetName),
			CampaignID: pick(r.CampaignID, r.ParentID),
			Status:     r.Status,
		})
	}

	return adSets, nil
}

func (s *GatewayIntegrator) FetchActiveAds(accountID string, verification domain.DateRange) ([]domain.Ad, error) {
	return s.fetchAds(accountID, domain.StatusActive, verification)
}

func (s *GatewayIntegrator) FetchPausedAds(accountID string, verification domain.DateRange) ([]domain.Ad, error) {
	return s.fetchAds(accountID, domain.StatusPaused, verification)
}

func (s *GatewayIntegrator) fetchAds(accountID, status string, verification domain.DateRange) ([]domain.Ad, error) {
	raw, err := s.Client.CallTool("meta_ads", map[string]interface{}{
		"accountId": accountID,
		"status":    status,
		"startDate": verification.StartDate,
		"endDate":   verification.EndDate,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"status":     status,
			"error":      err.Error(),
		}).Error("inventory: failed to get ads from gateway")
		return nil, err
	}

	var rows []gatewayAd
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:meta_ads", AccountID: accountID, Err: err}
	}

	ads := make([]domain.Ad, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, domain.Ad{
			ID:               pick(r.ID, r.AdID),
			Name:             pick(r.Name, r.AdName),
			AdSetID:          pick(r.AdSetID, r.AdSetIDAlt),
			CampaignID:       r.CampaignID,
			Status:           status,
			CreatedTime:      parseGatewayTime(pick(r.CreatedTime, r.CreatedAt)),
			UpdatedTime:      parseGatewayTime(pick(r.UpdatedTime, r.UpdatedAt)),
			TodayImpressions: pickInt(r.TodayImpressions, r.ImpressionsToday),
		})
	}

	return ads, nil
}

func (s *GatewayIntegrator) FetchAdInsights(accountID string, window domain.DateRange) ([]domain.AdInsight, error) {
	raw, err := s.Client.CallTool("meta_ad_insights", map[string]interface{}{
		"accountId": accountID,
		"startDate": window.StartDate,
		"endDate":   window.EndDate,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad insights from gateway")
		return nil, err
	}

	var rows []gatewayInsight
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:meta_ad_insights", AccountID: accountID, Err: err}
	}

	insights := make([]domain.AdInsight, 0, len(rows))
	for _, r := range rows {
		insights = append(insights, domain.AdInsight{
			AdID:         r.AdID,
			AdName:       r.AdName,
			AdSetID:      r.AdSetID,
			AdSetName:    r.AdSetName,
			CampaignID:   r.CampaignID,
			CampaignName: r.CampaignName,
			Window: domain.DeliveryWindow{
				AdID:        r.AdID,
				StartDate:   window.StartDate,
				EndDate:     window.EndDate,
				Impressions: r.Impressions,
				Clicks:      r.Clicks,
				Spend:       pickFloat(r.Spend, r.AmountSpent),
				Leads:       pickInt(r.Leads, r.Results),
				CTR:         r.CTR,
				CPC:         r.CPC,
				CPM:         r.CPM,
			},
		})
	}

	return insights, nil
}

func (s *GatewayIntegrator) FetchCampaignInsights(accountID string, window domain.DateRange) ([]domain.CampaignInsight, error) {
	raw, err := s.Client.CallTool("meta_campaign_insights", map[string]interface{}{
		"accountId": accountID,
		"startDate": window.StartDate,
		"endDate":   window.EndDate,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from gateway")
		return nil, err
	}

	var rows []gatewayInsight
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:meta_campaign_insights", AccountID: accountID, Err: err}
	}

	insights := make([]domain.CampaignInsight, 0, len(rows))
	for _, r := range rows {
		ci := domain.CampaignInsight{
			CampaignID:   r.CampaignID,
			CampaignName: r.CampaignName,
			Spend:        pickFloat(r.Spend, r.AmountSpent),
			Impressions:  r.Impressions,
			Clicks:       r.Clicks,
			CTR:          r.CTR,
			CPC:          r.CPC,
			CPM:          r.CPM,
			Leads:        pickInt(r.Leads, r.Results),
		}

		if ci.Leads > 0 {
			cpl := utils.RoundWithTwoDecimalPlace(ci.Spend / float64(ci.Leads))
			ci.CPL = &cpl
		}

		insights = append(insights, ci)
	}

	return insights, nil
}

func (s *GatewayIntegrator) FetchAccountSnapshot(accountID string, window domain.DateRange) (*domain.AccountSnapshot, error) {
	raw, err := s.Client.CallTool("meta_account_insights", map[string]interface{}{
		"accountId": accountID,
		"startDate": window.StartDate,
		"endDate":   window.EndDate,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get account insights from gateway")
		return nil, err
	}

	var row gatewayInsight
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, &domain.UpstreamError{Endpoint: "gateway:meta_account_insights", AccountID: accountID, Err: err}
	}

	snapshot := &domain.AccountSnapshot{
		Spend:       pickFloat(row.Spend, row.AmountSpent),
		Impressions: row.Impressions,
		Clicks:      row.Clicks,
		Reach:       row.Reach,
		CTR:         row.CTR,
		CPC:         row.CPC,
		CPM:         row.CPM,
		Leads:       pickInt(row.Leads, row.Results),
	}

	if snapshot.Leads > 0 {
		cpl := utils.RoundWithTwoDecimalPlace(snapshot.Spend / float64(snapshot.Leads))
		snapshot.CPL = &cpl
	}

	return snapshot, nil
}

func parseGatewayTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	layouts := []string{time.RFC3339, "2006-01-02T15:04:05-0700", time.DateOnly}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	logrus.WithField("value", value).Warn("inventory: error parsing gateway timestamp, age will be omitted")

	return nil
}
