package meta

import (
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/pkg/utils"
)

// Formatos de timestamp que a Graph API usa em created_time/updated_time
var metaTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CheckConfiguration valida as credenciais antes de qualquer chamada
// de rede
func (s *MetaIntegrator) CheckConfiguration() error {
	if s.cfg.Meta.AccessToken == "" && s.cfg.Meta.AppID == "" {
		return domain.ErrMissingCredentials
	}

	return nil
}

// FetchCampaigns obtém as campanhas ativas de uma conta
func (s *MetaIntegrator) FetchCampaigns(accountID string) ([]domain.Campaign, error) {
	raw, err := s.Client.GetCampaignsByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to get campaigns from API")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, c := range raw {
		campaigns = append(campaigns, domain.Campaign{
			ID:     c.ID,
			Name:   c.Name,
			Status: c.Status,
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(campaigns),
	}).Debug("inventory: successfully retrieved campaigns")

	return campaigns, nil
}

// FetchAdSets obtém os conjuntos de anúncios ativos de uma conta
func (s *MetaIntegrator) FetchAdSets(accountID string) ([]domain.AdSet, error) {
	raw, err := s.Client.GetAdSetsByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to get ad sets from API")
		return nil, err
	}

	adSets := make([]domain.AdSet, 0, len(raw))
	for _, a := range raw {
		adSets = append(adSets, domain.AdSet{
			ID:         a.ID,
			Name:       a.Name,
			CampaignID: a.CampaignID,
			Status:     a.Status,
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(adSets),
	}).Debug("inventory: successfully retrieved ad sets")

	return adSets, nil
}

// FetchActiveAds obtém os anúncios ativos de uma conta junto com as
// impressões da janela de verificação de entrega
func (s *MetaIntegrator) FetchActiveAds(accountID string, verification domain.DateRange) ([]domain.Ad, error) {
	raw, err := s.Client.GetAdsByAccountID(accountID, domain.StatusActive, verification)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to get active ads from API")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(raw))
	for _, a := range raw {
		ads = append(ads, convertAd(a, domain.StatusActive))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(ads),
	}).Debug("inventory: successfully retrieved active ads")

	return ads, nil
}

// FetchPausedAds obtém os anúncios pausados de uma conta. A data de
// pausa vem de updated_time; o filtro por recência fica no caso de uso.
func (s *MetaIntegrator) FetchPausedAds(accountID string, verification domain.DateRange) ([]domain.Ad, error) {
	raw, err := s.Client.GetAdsByAccountID(accountID, domain.StatusPaused, verification)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to get paused ads from API")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(raw))
	for _, a := range raw {
		ads = append(ads, convertAd(a, domain.StatusPaused))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(ads),
	}).Debug("inventory: successfully retrieved paused ads")

	return ads, nil
}

// FetchAdInsights obtém as métricas por anúncio de uma conta na janela
// informada
func (s *MetaIntegrator) FetchAdInsights(accountID string, window domain.DateRange) ([]domain.AdInsight, error) {
	raw, err := s.Client.GetAdInsightsByAccountID(accountID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad insights from API")
		return nil, err
	}

	insights := make([]domain.AdInsight, 0, len(raw))
	for _, i := range raw {
		insights = append(insights, domain.AdInsight{
			AdID:         i.AdID,
			AdName:       i.AdName,
			AdSetID:      i.AdsetID,
			AdSetName:    i.AdsetName,
			CampaignID:   i.CampaignID,
			CampaignName: i.CampaignName,
			Window:       convertWindow(i, window),
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(insights),
	}).Debug("insights: successfully retrieved ad insights")

	return insights, nil
}

// FetchCampaignInsights obtém as métricas agregadas por campanha na
// janela informada
func (s *MetaIntegrator) FetchCampaignInsights(accountID string, window domain.DateRange) ([]domain.CampaignInsight, error) {
	raw, err := s.Client.GetCampaignInsightsByAccountID(accountID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	insights := make([]domain.CampaignInsight, 0, len(raw))
	for _, i := range raw {
		ci := domain.CampaignInsight{
			CampaignID:   i.CampaignID,
			CampaignName: i.CampaignName,
			Spend:        i.SpendFloat(),
			Impressions:  i.ImpressionsInt(),
			Clicks:       i.ClicksInt(),
			CTR:          i.CTRFloat(),
			CPC:          i.CPCFloat(),
			CPM:          i.CPMFloat(),
			Leads:        i.LeadCount(),
		}

		if ci.Leads > 0 {
			cpl := utils.RoundWithTwoDecimalPlace(ci.Spend / float64(ci.Leads))
			ci.CPL = &cpl
		}

		insights = append(insights, ci)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(insights),
	}).Debug("insights: successfully retrieved campaign insights")

	return insights, nil
}

// FetchAccountSnapshot obtém o resumo agregado da conta na janela
// informada. Contas sem entrega no período devolvem nil sem erro.
func (s *MetaIntegrator) FetchAccountSnapshot(accountID string, window domain.DateRange) (*domain.AccountSnapshot, error) {
	insight, err := s.Client.GetAccountInsightsByID(accountID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get account insights from API")
		return nil, err
	}

	if insight == nil {
		logrus.WithField("account_id", accountID).Debug("insights: account has no delivery in the period")
		return nil, nil
	}

	snapshot := &domain.AccountSnapshot{
		Spend:       insight.SpendFloat(),
		Impressions: insight.ImpressionsInt(),
		Clicks:      insight.ClicksInt(),
		Reach:       insight.ReachInt(),
		CTR:         insight.CTRFloat(),
		CPC:         insight.CPCFloat(),
		CPM:         insight.CPMFloat(),
		Leads:       insight.LeadCount(),
	}

	if snapshot.Leads > 0 {
		cpl := utils.RoundWithTwoDecimalPlace(snapshot.Spend / float64(snapshot.Leads))
		snapshot.CPL = &cpl
	}

	return snapshot, nil
}

func convertAd(a metadomain.Ad, status string) domain.Ad {
	return domain.Ad{
		ID:               a.ID,
		Name:             a.Name,
		AdSetID:          a.AdsetID,
		CampaignID:       a.CampaignID,
		Status:           status,
		CreatedTime:      parseMetaTime("created_time", a.ID, a.CreatedTime),
		UpdatedTime:      parseMetaTime("updated_time", a.ID, a.UpdatedTime),
		TodayImpressions: a.VerificationImpressions(),
	}
}

func convertWindow(i metadomain.Insight, window domain.DateRange) domain.DeliveryWindow {
	return domain.DeliveryWindow{
		AdID:        i.AdID,
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		Impressions: i.ImpressionsInt(),
		Clicks:      i.ClicksInt(),
		Spend:       i.SpendFloat(),
		Leads:       i.LeadCount(),
		CTR:         i.CTRFloat(),
		CPC:         i.CPCFloat(),
		CPM:         i.CPMFloat(),
	}
}

// parseMetaTime converte um timestamp da Graph API. Valor ilegível
// vira nil, nunca erro: a idade do anúncio é opcional rio abaixo.
func parseMetaTime(field, adID, value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range metaTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	logrus.WithFields(logrus.Fields{
		"field": field,
		"ad_id": adID,
		"value": value,
	}).Warn("inventory: error parsing ad timestamp, age will be omitted")

	return nil
}
