package gateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/gateway/gatewayclient/mocks"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

func newTestIntegrator(t *testing.T) (*GatewayIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		Gateway: config.Gateway{
			URL:     "http://gateway.local/mcp",
			Token:   "token-teste",
			Enabled: true,
		},
	}

	return New(cfg, client), client
}

func TestCheckConfiguration(t *testing.T) {
	integrator, _ := newTestIntegrator(t)

	assert.NoError(t, integrator.CheckConfiguration())

	integrator.cfg.Gateway.Token = ""
	assert.ErrorIs(t, integrator.CheckConfiguration(), domain.ErrMissingCredentials)
}

func TestFetchCampaigns_AlternateFieldNames(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	// Primeira linha com as chaves canônicas, segunda com as alternativas
	payload := json.RawMessage(`[
		{"id":"c1","name":"Campanha Captação","status":"ACTIVE"},
		{"campaign_id":"c2","campaign_name":"Open House Centro","status":"ACTIVE"}
	]`)
	client.EXPECT().
		CallTool("meta_campaigns", gomock.Any()).
		Return(payload, nil)

	campaigns, err := integrator.FetchCampaigns("act_1")

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "Campanha Captação", campaigns[0].Name)
	assert.Equal(t, "c2", campaigns[1].ID)
	assert.Equal(t, "Open House Centro", campaigns[1].Name)
}

func TestFetchActiveAds(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	payload := json.RawMessage(`[
		{"id":"ad1","name":"Anúncio 1","adset_id":"as1","campaign_id":"c1","created_time":"2025-05-01T08:00:00-0300","today_impressions":120},
		{"ad_id":"ad2","ad_name":"Anúncio 2","ad_set_id":"as2","campaign_id":"c1","created_at":"2025-05-10","impressions_today":45},
		{"id":"ad3","name":"Anúncio 3","adset_id":"as1","campaign_id":"c1","created_time":"data inválida"}
	]`)
	client.EXPECT().
		CallTool("meta_ads", map[string]interface{}{
			"accountId": "act_1",
			"status":    domain.StatusActive,
			"startDate": "2025-06-15",
			"endDate":   "2025-06-15",
		}).
		Return(payload, nil)

	verification := domain.DateRange{StartDate: "2025-06-15", EndDate: "2025-06-15"}
	ads, err := integrator.FetchActiveAds("act_1", verification)

	require.NoError(t, err)
	require.Len(t, ads, 3)

	assert.Equal(t, "ad1", ads[0].ID)
	assert.Equal(t, domain.StatusActive, ads[0].Status)
	assert.Equal(t, 120, ads[0].TodayImpressions)
	require.NotNil(t, ads[0].CreatedTime)

	// Chaves alternativas mapeiam para os mesmos campos
	assert.Equal(t, "ad2", ads[1].ID)
	assert.Equal(t, "Anúncio 2", ads[1].Name)
	assert.Equal(t, "as2", ads[1].AdSetID)
	assert.Equal(t, 45, ads[1].TodayImpressions)
	require.NotNil(t, ads[1].CreatedTime)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), *ads[1].CreatedTime)

	// Timestamp que não parseia vira nil, sem derrubar a resposta
	assert.Nil(t, ads[2].CreatedTime)
	assert.Equal(t, 0, ads[2].TodayImpressions)
}

func TestFetchPausedAds_UsesPausedStatus(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	payload := json.RawMessage(`[{"id":"ad1","name":"Anúncio","adset_id":"as1","campaign_id":"c1","updated_time":"2025-06-10T09:30:00Z"}]`)
	client.EXPECT().
		CallTool("meta_ads", gomock.Any()).
		Return(payload, nil)

	ads, err := integrator.FetchPausedAds("act_1", domain.DateRange{StartDate: "2025-06-15", EndDate: "2025-06-15"})

	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, domain.StatusPaused, ads[0].Status)
	require.NotNil(t, ads[0].UpdatedTime)
}

func TestFetchCampaignInsights(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	payload := json.RawMessage(`[
		{"campaign_id":"c1","campaign_name":"Campanha Captação","spend":300.0,"impressions":10000,"clicks":200,"leads":6},
		{"campaign_id":"c2","campaign_name":"Open House Centro","amount_spent":150.0,"impressions":5000,"clicks":90,"results":0}
	]`)
	client.EXPECT().
		CallTool("meta_campaign_insights", gomock.Any()).
		Return(payload, nil)

	insights, err := integrator.FetchCampaignInsights("act_1", domain.DateRange{StartDate: "2025-05-16", EndDate: "2025-06-15"})

	require.NoError(t, err)
	require.Len(t, insights, 2)

	require.NotNil(t, insights[0].CPL)
	assert.InDelta(t, 50.0, *insights[0].CPL, 1e-9)

	// amount_spent é aceito como alternativa de spend; sem leads, CPL fica nulo
	assert.InDelta(t, 150.0, insights[1].Spend, 1e-9)
	assert.Nil(t, insights[1].CPL)
}

func TestFetchAccountSnapshot(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	payload := json.RawMessage(`{"spend":1200.50,"impressions":80000,"clicks":1500,"reach":42000,"ctr":1.87,"leads":24}`)
	client.EXPECT().
		CallTool("meta_account_insights", gomock.Any()).
		Return(payload, nil)

	snapshot, err := integrator.FetchAccountSnapshot("act_1", domain.DateRange{StartDate: "2025-05-16", EndDate: "2025-06-15"})

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.InDelta(t, 1200.50, snapshot.Spend, 1e-9)
	assert.Equal(t, 24, snapshot.Leads)
	// CPL arredondado para duas casas: 1200.50 / 24 = 50.0208...
	require.NotNil(t, snapshot.CPL)
	assert.InDelta(t, 50.02, *snapshot.CPL, 1e-9)
}

func TestFetchAdSets_InvalidPayload(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	client.EXPECT().
		CallTool("meta_adsets", gomock.Any()).
		Return(json.RawMessage(`{"isto":"não é uma lista"}`), nil)

	adSets, err := integrator.FetchAdSets("act_1")

	require.Error(t, err)
	assert.Nil(t, adSets)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestParseGatewayTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{
			name:  "formato RFC3339",
			value: "2025-06-15T12:00:00Z",
			want:  timeRef(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)),
		},
		{
			name:  "formato da Graph API sem dois pontos no fuso",
			value: "2025-06-15T12:00:00-0300",
			want:  timeRef(time.Date(2025, 6, 15, 12, 0, 0, 0, time.FixedZone("", -3*60*60))),
		},
		{
			name:  "apenas data",
			value: "2025-06-15",
			want:  timeRef(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "valor vazio",
			value: "",
			want:  nil,
		},
		{
			name:  "valor inválido",
			value: "ontem",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGatewayTime(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func timeRef(t time.Time) *time.Time {
	return &t
}
