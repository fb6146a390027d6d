package inventorying

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockPlatformFetcher) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)

	cfg := &config.Config{
		Inventory: config.Inventory{
			AdCap:                 250,
			PerformanceWindowDays: 30,
		},
	}

	service := NewService(cfg, fetcher)
	service.now = func() time.Time { return testNow }

	return service, fetcher
}

func TestGetActiveInventory(t *testing.T) {
	service, fetcher := newTestService(t)

	verification := domain.Today(testNow)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return([]domain.Campaign{
		{ID: "c1", Name: "Leads Centro", Status: domain.StatusActive},
	}, nil)
	fetcher.EXPECT().FetchAdSets("act_123").Return([]domain.AdSet{
		{ID: "as1", Name: "Conjunto 1", CampaignID: "c1", Status: domain.StatusActive},
	}, nil)
	fetcher.EXPECT().FetchActiveAds("act_123", verification).Return([]domain.Ad{
		{ID: "ad1", Name: "Criativo X", AdSetID: "as1", Status: domain.StatusActive, TodayImpressions: 12},
		{ID: "ad2", Name: "Criativo Y", AdSetID: "as1", Status: domain.StatusActive, TodayImpressions: 0},
	}, nil)

	resp, err := service.GetActiveInventory("act_123")

	assert.NoError(t, err)
	assert.True(t, resp.Success)

	// O fantasma (zero impressões no dia) sai da contagem e da árvore
	assert.Equal(t, 1, resp.TotalActiveAds)
	assert.Len(t, resp.Campaigns, 1)
	assert.Equal(t, 1, TotalLeafAds(resp.Campaigns))
}

func TestGetActiveInventory_AdsBranchFails(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return([]domain.Campaign{{ID: "c1"}}, nil)
	fetcher.EXPECT().FetchAdSets("act_123").Return([]domain.AdSet{{ID: "as1", CampaignID: "c1"}}, nil)
	fetcher.EXPECT().FetchActiveAds("act_123", gomock.Any()).
		Return(nil, errors.New("boom"))

	resp, err := service.GetActiveInventory("act_123")

	// O ramo de anúncios é essencial: a resposta sai estruturada com
	// success false e mensagem limpa, sem o erro cru do upstream
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "failed to fetch active ads from the ad platform", resp.Error)
	assert.Empty(t, resp.Campaigns)
}

func TestGetActiveInventory_DegradedCampaignsBranch(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return(nil, errors.New("timeout"))
	fetcher.EXPECT().FetchAdSets("act_123").Return([]domain.AdSet{{ID: "as1", CampaignID: "c1"}}, nil)
	fetcher.EXPECT().FetchActiveAds("act_123", gomock.Any()).Return([]domain.Ad{
		{ID: "ad1", AdSetID: "as1", Status: domain.StatusActive, TodayImpressions: 3},
	}, nil)

	resp, err := service.GetActiveInventory("act_123")

	// Campanhas degradadas só esvaziam a árvore; a contagem de
	// entregando continua valendo
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalActiveAds)
	assert.Empty(t, resp.Campaigns)
}

func TestGetActiveInventory_ConfigurationError(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().CheckConfiguration().Return(domain.ErrMissingCredentials)

	resp, err := service.GetActiveInventory("act_123")

	// Erro de configuração é fatal e sobe como erro Go, antes de
	// qualquer chamada de rede
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestGetActiveWithPerformance(t *testing.T) {
	service, fetcher := newTestService(t)

	window := domain.LastNDays(testNow, 30)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return([]domain.Campaign{
		{ID: "c1", Name: "Leads Centro", Status: domain.StatusActive},
	}, nil)
	fetcher.EXPECT().FetchAdSets("act_123").Return([]domain.AdSet{
		{ID: "as1", Name: "Conjunto 1", CampaignID: "c1"},
	}, nil)
	fetcher.EXPECT().FetchActiveAds("act_123", domain.Today(testNow)).Return([]domain.Ad{
		{ID: "ad1", Name: "Barato", AdSetID: "as1", CampaignID: "c1", Status: domain.StatusActive, TodayImpressions: 10},
		{ID: "ad2", Name: "Caro", AdSetID: "as1", CampaignID: "c1", Status: domain.StatusActive, TodayImpressions: 10},
	}, nil)
	fetcher.EXPECT().FetchAdInsights("act_123", window).Return([]domain.AdInsight{
		{AdID: "ad1", Window: domain.DeliveryWindow{AdID: "ad1", Spend: 10.0}},
		{AdID: "ad2", Window: domain.DeliveryWindow{AdID: "ad2", Spend: 900.0}},
	}, nil)

	resp, err := service.GetActiveWithPerformance("act_123")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalActiveAds)
	assert.Equal(t, 250, resp.Threshold)
	assert.Equal(t, 0, resp.OverBy)

	// Maior gasto primeiro
	assert.Equal(t, "ad2", resp.Ads[0].ID)
	assert.Equal(t, "ad1", resp.Ads[1].ID)
}

func TestGetActiveWithPerformance_OverBy(t *testing.T) {
	service, fetcher := newTestService(t)
	service.cfg.Inventory.AdCap = 2

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return(nil, nil)
	fetcher.EXPECT().FetchAdSets("act_123").Return(nil, nil)
	fetcher.EXPECT().FetchActiveAds("act_123", gomock.Any()).Return([]domain.Ad{
		{ID: "ad1", Status: domain.StatusActive, TodayImpressions: 1},
		{ID: "ad2", Status: domain.StatusActive, TodayImpressions: 1},
		{ID: "ad3", Status: domain.StatusActive, TodayImpressions: 1},
	}, nil)
	fetcher.EXPECT().FetchAdInsights("act_123", gomock.Any()).Return(nil, nil)

	resp, err := service.GetActiveWithPerformance("act_123")

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.TotalActiveAds)
	assert.Equal(t, 1, resp.OverBy)
}

func TestGetRecentlyPaused(t *testing.T) {
	service, fetcher := newTestService(t)

	recentPause := testNow.AddDate(0, 0, -2)
	oldPause := testNow.AddDate(0, 0, -30)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return(nil, nil)
	fetcher.EXPECT().FetchAdSets("act_123").Return(nil, nil)
	fetcher.EXPECT().FetchPausedAds("act_123", gomock.Any()).Return([]domain.Ad{
		{ID: "ad1", Name: "Pausado há 2 dias", Status: domain.StatusPaused, UpdatedTime: &recentPause},
		{ID: "ad2", Name: "Pausado há 30 dias", Status: domain.StatusPaused, UpdatedTime: &oldPause},
		{ID: "ad3", Name: "Sem timestamp", Status: domain.StatusPaused},
	}, nil)
	fetcher.EXPECT().FetchAdInsights("act_123", gomock.Any()).Return(nil, nil)

	// Defaults: 7 dias, 50 anúncios
	resp, err := service.GetRecentlyPaused("act_123", 0, 0)

	assert.NoError(t, err)
	assert.True(t, resp.Success)

	// Só o pausado dentro da janela entra; sem updated_time legível não
	// tem como provar recência e fica de fora
	assert.Equal(t, 1, resp.TotalPausedAds)
	assert.False(t, resp.Truncated)
	assert.Len(t, resp.Ads, 1)
	assert.Equal(t, "ad1", resp.Ads[0].ID)
	assert.Equal(t, recentPause.Format(time.DateOnly), resp.Ads[0].PausedDate)
}

func TestGetRecentlyPaused_Truncation(t *testing.T) {
	service, fetcher := newTestService(t)

	newest := testNow.AddDate(0, 0, -1)
	middle := testNow.AddDate(0, 0, -2)
	oldest := testNow.AddDate(0, 0, -3)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaigns("act_123").Return(nil, nil)
	fetcher.EXPECT().FetchAdSets("act_123").Return(nil, nil)
	fetcher.EXPECT().FetchPausedAds("act_123", gomock.Any()).Return([]domain.Ad{
		{ID: "ad-old", Status: domain.StatusPaused, UpdatedTime: &oldest},
		{ID: "ad-new", Status: domain.StatusPaused, UpdatedTime: &newest},
		{ID: "ad-mid", Status: domain.StatusPaused, UpdatedTime: &middle},
	}, nil)
	fetcher.EXPECT().FetchAdInsights("act_123", gomock.Any()).Return(nil, nil)

	resp, err := service.GetRecentlyPaused("act_123", 7, 2)

	assert.NoError(t, err)

	// Total conta antes do corte; a lista sai do mais recente para o
	// mais antigo
	assert.Equal(t, 3, resp.TotalPausedAds)
	assert.True(t, resp.Truncated)
	assert.Len(t, resp.Ads, 2)
	assert.Equal(t, "ad-new", resp.Ads[0].ID)
	assert.Equal(t, "ad-mid", resp.Ads[1].ID)
}

func TestGetAccountOverview(t *testing.T) {
	service, fetcher := newTestService(t)

	dateRange := domain.LastNDays(testNow, 7)
	comparison := dateRange.ComparisonPeriod()

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchAccountSnapshot("act_123", dateRange).Return(&domain.AccountSnapshot{
		Spend: 200.0,
		Leads: 10,
	}, nil)
	fetcher.EXPECT().FetchAccountSnapshot("act_123", comparison).Return(&domain.AccountSnapshot{
		Spend: 100.0,
		Leads: 5,
	}, nil)

	overview, err := service.GetAccountOverview("act_123", dateRange)

	assert.NoError(t, err)
	assert.True(t, overview.Success)
	assert.Equal(t, comparison, overview.ComparisonRange)
	if assert.NotNil(t, overview.Changes) {
		assert.Equal(t, 100.0, overview.Changes.Spend)
		assert.Equal(t, 100.0, overview.Changes.Leads)
	}
}

func TestGetAccountOverview_ComparisonDegrades(t *testing.T) {
	service, fetcher := newTestService(t)

	dateRange := domain.LastNDays(testNow, 7)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchAccountSnapshot("act_123", dateRange).Return(&domain.AccountSnapshot{
		Spend: 200.0,
	}, nil)
	fetcher.EXPECT().FetchAccountSnapshot("act_123", dateRange.ComparisonPeriod()).
		Return(nil, errors.New("rate limited"))

	overview, err := service.GetAccountOverview("act_123", dateRange)

	// O período atual responde; a comparação sai sem números inventados
	assert.NoError(t, err)
	assert.True(t, overview.Success)
	assert.NotNil(t, overview.Current)
	assert.Nil(t, overview.Previous)
	assert.Nil(t, overview.Changes)
}

func TestGetCampaignInsights(t *testing.T) {
	service, fetcher := newTestService(t)

	dateRange := domain.LastNDays(testNow, 30)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaignInsights("act_123", dateRange).Return([]domain.CampaignInsight{
		{CampaignID: "c1", CampaignName: "Open House Centro"},
		{CampaignID: "c2", CampaignName: "Leads Litoral"},
	}, nil)

	resp, err := service.GetCampaignInsights("act_123", dateRange)

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.Campaigns[0].IsTrafficCampaign)
	assert.False(t, resp.Campaigns[1].IsTrafficCampaign)
}

func TestGetCampaignInsights_UpstreamFails(t *testing.T) {
	service, fetcher := newTestService(t)

	dateRange := domain.LastNDays(testNow, 30)

	fetcher.EXPECT().CheckConfiguration().Return(nil)
	fetcher.EXPECT().FetchCampaignInsights("act_123", dateRange).
		Return(nil, &domain.UpstreamError{Endpoint: "insights", AccountID: "act_123"})

	resp, err := service.GetCampaignInsights("act_123", dateRange)

	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Campaigns)
	assert.Equal(t, "failed to fetch campaign insights from the ad platform", resp.Error)
}
