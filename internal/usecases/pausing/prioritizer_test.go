package pausing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func leadGenAd(id, name, adSetID string, spend float64, leads, impressions, daysRunning int) domain.EnrichedAd {
	ad := domain.EnrichedAd{
		ID:           id,
		Name:         name,
		CampaignID:   "c-leads",
		CampaignName: "Leads Centro",
		AdSetID:      adSetID,
		AdSetName:    "Conjunto " + adSetID,
		DaysRunning:  intPtr(daysRunning),
		Window: domain.DeliveryWindow{
			AdID:        id,
			Spend:       spend,
			Leads:       leads,
			Impressions: impressions,
		},
	}

	if leads > 0 {
		ad.CPL = floatPtr(spend / float64(leads))
	}

	return ad
}

func trafficAd(id, name, adSetID string, ctr float64, impressions, daysRunning int) domain.EnrichedAd {
	return domain.EnrichedAd{
		ID:                id,
		Name:              name,
		CampaignID:        "c-traffic",
		CampaignName:      "Open House Centro",
		AdSetID:           adSetID,
		AdSetName:         "Conjunto " + adSetID,
		DaysRunning:       intPtr(daysRunning),
		IsTrafficCampaign: true,
		Window: domain.DeliveryWindow{
			AdID:        id,
			CTR:         ctr,
			Impressions: impressions,
		},
	}
}

func TestPrioritize_LeadGenTiers(t *testing.T) {
	ads := []domain.EnrichedAd{
		// Zero leads com gasto alto: tier 1
		leadGenAd("ad-high-spend", "Criativo A", "as1", 180.0, 0, 2000, 40),
		// Zero leads e zero gasto: tier 2
		leadGenAd("ad-zero-zero", "Criativo B", "as2", 0.0, 0, 10, 40),
		// CPL acima da média da campanha: tier 3
		leadGenAd("ad-bad-cpl", "Criativo C", "as3", 300.0, 2, 3000, 40),
		// Segura a média da campanha para baixo
		leadGenAd("ad-good", "Criativo D", "as4", 100.0, 10, 5000, 40),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	assert.Len(t, recs, 3)

	assert.Equal(t, "ad-high-spend", recs[0].AdID)
	assert.Equal(t, domain.TierZeroLeadsHighSpend, recs[0].Tier)
	assert.Contains(t, recs[0].Reason, "zero leads with $180.00 spent")

	assert.Equal(t, "ad-zero-zero", recs[1].AdID)
	assert.Equal(t, domain.TierZeroLeadsZeroSpend, recs[1].Tier)

	assert.Equal(t, "ad-bad-cpl", recs[2].AdID)
	assert.Equal(t, domain.TierCPLAboveAverage, recs[2].Tier)
}

func TestPrioritize_SpendOrderWithinTier(t *testing.T) {
	ads := []domain.EnrichedAd{
		leadGenAd("ad-cheap", "Criativo A", "as1", 150.0, 0, 1000, 40),
		leadGenAd("ad-expensive", "Criativo B", "as2", 900.0, 0, 1000, 40),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	// Mesmo tier: maior gasto primeiro
	assert.Len(t, recs, 2)
	assert.Equal(t, "ad-expensive", recs[0].AdID)
	assert.Equal(t, "ad-cheap", recs[1].AdID)
}

func TestPrioritize_LearningPhaseProtection(t *testing.T) {
	ads := []domain.EnrichedAd{
		// Novo com impressões: protegido mesmo sem lead
		leadGenAd("ad-learning", "Criativo A", "as1", 200.0, 0, 500, 5),
		// Novo com zero impressões: a proteção não vale
		leadGenAd("ad-dead", "Criativo B", "as2", 0.0, 0, 0, 5),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	assert.Len(t, recs, 1)
	assert.Equal(t, "ad-dead", recs[0].AdID)
}

func TestPrioritize_UnknownAgeIsNotProtected(t *testing.T) {
	ad := leadGenAd("ad-no-age", "Criativo A", "as1", 200.0, 0, 500, 0)
	ad.DaysRunning = nil

	recs := Prioritize([]domain.EnrichedAd{ad}, PrioritizerConfig{})

	// Sem idade legível não dá para provar juventude
	assert.Len(t, recs, 1)
	assert.Equal(t, "ad-no-age", recs[0].AdID)
}

func TestPrioritize_TopPerformerProtection(t *testing.T) {
	ads := []domain.EnrichedAd{
		// Os dois disparariam a regra de CPL alto contra a média da
		// campanha (média baixada por ad-best de outro conjunto)
		leadGenAd("ad-best-of-set", "Criativo A", "as1", 300.0, 3, 1000, 40),
		leadGenAd("ad-worst-of-set", "Criativo B", "as1", 280.0, 1, 900, 40),
		leadGenAd("ad-best", "Criativo C", "as2", 50.0, 10, 5000, 40),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.AdID)
	}

	// O melhor do conjunto as1 nunca entra; o pior entra
	assert.NotContains(t, ids, "ad-best-of-set")
	assert.Contains(t, ids, "ad-worst-of-set")
}

func TestPrioritize_SingletonAdSetIsNotProtected(t *testing.T) {
	ads := []domain.EnrichedAd{
		leadGenAd("ad-alone", "Criativo A", "as1", 200.0, 0, 1000, 40),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	// Conjunto de anúncio único não tem irmão de comparação
	assert.Len(t, recs, 1)
	assert.Equal(t, "ad-alone", recs[0].AdID)
}

func TestPrioritize_TrafficTiers(t *testing.T) {
	ads := []domain.EnrichedAd{
		// Zero impressões: tier 1 mesmo sendo novo
		trafficAd("ad-dead", "Criativo A", "as1", 0.0, 0, 3),
		// CTR muito abaixo da média da campanha: tier 2
		trafficAd("ad-low-ctr", "Criativo B", "as2", 0.2, 4000, 40),
		// Segura a média alta
		trafficAd("ad-strong", "Criativo C", "as3", 2.0, 9000, 40),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	assert.Len(t, recs, 2)
	assert.Equal(t, "ad-dead", recs[0].AdID)
	assert.Equal(t, domain.TierZeroImpressions, recs[0].Tier)
	assert.Equal(t, "ad-low-ctr", recs[1].AdID)
	assert.Equal(t, domain.TierCTRBelowAverage, recs[1].Tier)
}

func TestPrioritize_TrafficReasonsNeverCiteLeads(t *testing.T) {
	ads := []domain.EnrichedAd{
		trafficAd("ad-dead", "Criativo A", "as1", 0.0, 0, 40),
		trafficAd("ad-low-ctr", "Criativo B", "as2", 0.1, 5000, 40),
		trafficAd("ad-strong", "Criativo C", "as3", 3.0, 9000, 40),
	}

	recs := Prioritize(ads, PrioritizerConfig{})

	// Em campanha de tráfego leads e CPL não são autoritativos e nunca
	// aparecem como motivo
	for _, rec := range recs {
		lowered := strings.ToLower(rec.Reason)
		assert.NotContains(t, lowered, "lead")
		assert.NotContains(t, lowered, "cpl")
	}
}

func TestPrioritize_DuplicateCreativeInSameAdSet(t *testing.T) {
	better := leadGenAd("ad-better", "Criativo Repetido", "as1", 100.0, 5, 2000, 40)
	// CPL abaixo da média da campanha para a regra de CPL não disparar
	// antes da regra de duplicado
	worse := leadGenAd("ad-worse", "Criativo Repetido", "as1", 100.0, 2, 1800, 40)
	anchor := leadGenAd("ad-anchor", "Criativo Âncora", "as2", 500.0, 2, 1000, 40)

	recs := Prioritize([]domain.EnrichedAd{better, worse, anchor}, PrioritizerConfig{})

	var worseRec *domain.PauseRecommendation
	for i := range recs {
		if recs[i].AdID == "ad-worse" {
			worseRec = &recs[i]
		}
	}

	if assert.NotNil(t, worseRec) {
		assert.Equal(t, domain.TierDuplicateCreative, worseRec.Tier)
		assert.Contains(t, worseRec.Reason, "duplicate creative")
	}
}

func TestPrioritize_Empty(t *testing.T) {
	assert.Empty(t, Prioritize(nil, PrioritizerConfig{}))
}
