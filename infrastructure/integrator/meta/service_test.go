package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

func newTestIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		Meta: config.Meta{
			AccessToken: "token-teste",
		},
	}

	return New(cfg, client), client
}

func TestCheckConfiguration(t *testing.T) {
	integrator, _ := newTestIntegrator(t)

	assert.NoError(t, integrator.CheckConfiguration())

	integrator.cfg.Meta.AccessToken = ""
	integrator.cfg.Meta.AppID = ""
	assert.ErrorIs(t, integrator.CheckConfiguration(), domain.ErrMissingCredentials)
}

func TestFetchActiveAds(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	verification := domain.DateRange{StartDate: "2025-06-15", EndDate: "2025-06-15"}
	client.EXPECT().
		GetAdsByAccountID("123", domain.StatusActive, verification).
		Return([]metadomain.Ad{
			{
				ID:          "ad1",
				Name:        "Anúncio 1",
				Status:      "ACTIVE",
				AdsetID:     "as1",
				CampaignID:  "c1",
				CreatedTime: "2025-05-01T08:00:00-0300",
				Insights: &metadomain.InsightsEnvelope{
					Data: []metadomain.Insight{{Impressions: "120"}},
				},
			},
			{
				ID:         "ad2",
				Name:       "Anúncio 2",
				Status:     "ACTIVE",
				AdsetID:    "as1",
				CampaignID: "c1",
				// Sem sub-consulta de insights: zero impressões na verificação
			},
		}, nil)

	ads, err := integrator.FetchActiveAds("123", verification)

	require.NoError(t, err)
	require.Len(t, ads, 2)

	assert.Equal(t, "ad1", ads[0].ID)
	assert.Equal(t, domain.StatusActive, ads[0].Status)
	assert.Equal(t, 120, ads[0].TodayImpressions)
	require.NotNil(t, ads[0].CreatedTime)
	expected := time.Date(2025, 5, 1, 8, 0, 0, 0, time.FixedZone("", -3*60*60))
	assert.True(t, expected.Equal(*ads[0].CreatedTime))

	assert.Equal(t, 0, ads[1].TodayImpressions)
	assert.Nil(t, ads[1].CreatedTime)
}

func TestFetchPausedAds_UsesPausedStatus(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	verification := domain.DateRange{StartDate: "2025-06-15", EndDate: "2025-06-15"}
	client.EXPECT().
		GetAdsByAccountID("123", domain.StatusPaused, verification).
		Return([]metadomain.Ad{
			{
				ID:          "ad1",
				Name:        "Anúncio pausado",
				Status:      "PAUSED",
				AdsetID:     "as1",
				CampaignID:  "c1",
				UpdatedTime: "2025-06-10T09:30:00+0000",
			},
		}, nil)

	ads, err := integrator.FetchPausedAds("123", verification)

	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, domain.StatusPaused, ads[0].Status)
	require.NotNil(t, ads[0].UpdatedTime)
}

func TestFetchCampaignInsights(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	window := domain.DateRange{StartDate: "2025-05-16", EndDate: "2025-06-15"}
	client.EXPECT().
		GetCampaignInsightsByAccountID("123", window).
		Return([]metadomain.Insight{
			{
				CampaignID:   "c1",
				CampaignName: "Campanha Captação",
				Spend:        "300.00",
				Impressions:  "10000",
				Clicks:       "200",
				CTR:          "2.0",
				Actions: []metadomain.Action{
					{ActionType: "link_click", Value: "180"},
					{ActionType: "lead", Value: "6"},
					{ActionType: "lead", Value: "99"},
				},
			},
			{
				CampaignID:   "c2",
				CampaignName: "Open House Centro",
				Spend:        "150.00",
				Impressions:  "5000",
				Clicks:       "90",
			},
		}, nil)

	insights, err := integrator.FetchCampaignInsights("123", window)

	require.NoError(t, err)
	require.Len(t, insights, 2)

	// A primeira ação "lead" vale; a segunda é ignorada
	assert.Equal(t, 6, insights[0].Leads)
	require.NotNil(t, insights[0].CPL)
	assert.InDelta(t, 50.0, *insights[0].CPL, 1e-9)

	assert.Equal(t, 0, insights[1].Leads)
	assert.Nil(t, insights[1].CPL)
}

func TestFetchAccountSnapshot_NoDelivery(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	window := domain.DateRange{StartDate: "2025-05-16", EndDate: "2025-06-15"}
	client.EXPECT().
		GetAccountInsightsByID("123", window).
		Return(nil, nil)

	snapshot, err := integrator.FetchAccountSnapshot("123", window)

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestParseMetaTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{
			name:  "formato da Graph API sem dois pontos no fuso",
			value: "2025-06-15T12:00:00-0300",
			want:  timeRef(time.Date(2025, 6, 15, 12, 0, 0, 0, time.FixedZone("", -3*60*60))),
		},
		{
			name:  "formato RFC3339",
			value: "2025-06-15T12:00:00Z",
			want:  timeRef(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)),
		},
		{
			name:  "valor vazio",
			value: "",
			want:  nil,
		},
		{
			name:  "valor ilegível",
			value: "15/06/2025",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMetaTime("created_time", "ad1", tt.value)

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
