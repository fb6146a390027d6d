package pausing

import (
	"fmt"
	"sort"

	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// PrioritizerConfig são os limiares da régua de pausa, vindos da
// configuração em vez de constantes mágicas
type PrioritizerConfig struct {
	LearningPhaseDays      int
	ZeroLeadSpendThreshold float64
	CTRBelowAvgRatio       float64
}

// campaignStats acumula as médias por campanha usadas nas regras de
// CPL e CTR
type campaignStats struct {
	spend   float64
	leads   int
	ctrSum  float64
	adCount int
}

func (c campaignStats) avgCPL() (float64, bool) {
	if c.leads == 0 {
		return 0, false
	}

	return c.spend / float64(c.leads), true
}

func (c campaignStats) avgCTR() float64 {
	if c.adCount == 0 {
		return 0
	}

	return c.ctrSum / float64(c.adCount)
}

// Prioritize ranqueia os anúncios entregando por ordem de pausa. As
// regras são avaliadas dentro do objetivo da campanha do anúncio, e as
// proteções universais entram depois do ranking:
//
//   - fase de aprendizado: anúncio mais novo que o limiar só entra se
//     tiver zero impressões;
//   - melhor do conjunto: o melhor performer entre irmãos do mesmo
//     conjunto nunca é recomendado.
//
// A saída é uma lista plana ordenada por tier e, dentro do tier, por
// gasto de 30 dias decrescente. Agrupar por campanha é papel do
// formatador, não do ranking.
func Prioritize(ads []domain.EnrichedAd, cfg PrioritizerConfig) []domain.PauseRecommendation {
	if cfg.LearningPhaseDays <= 0 {
		cfg.LearningPhaseDays = 14
	}
	if cfg.ZeroLeadSpendThreshold <= 0 {
		cfg.ZeroLeadSpendThreshold = 100.0
	}
	if cfg.CTRBelowAvgRatio <= 0 {
		cfg.CTRBelowAvgRatio = 0.5
	}

	statsByCampaign := make(map[string]*campaignStats)
	for _, ad := range ads {
		key := campaignKey(ad)
		stats, ok := statsByCampaign[key]
		if !ok {
			stats = &campaignStats{}
			statsByCampaign[key] = stats
		}

		stats.spend += ad.Window.Spend
		stats.leads += ad.Window.Leads
		stats.ctrSum += ad.Window.CTR
		stats.adCount++
	}

	adsByAdSet := make(map[string][]domain.EnrichedAd)
	for _, ad := range ads {
		adsByAdSet[ad.AdSetID] = append(adsByAdSet[ad.AdSetID], ad)
	}

	topPerformer := topPerformerByAdSet(adsByAdSet)

	recommendations := make([]domain.PauseRecommendation, 0)

	for _, ad := range ads {
		stats := statsByCampaign[campaignKey(ad)]

		var (
			tier   int
			reason string
			fired  bool
		)

		if ad.IsTrafficCampaign {
			tier, reason, fired = evaluateTraffic(ad, stats, adsByAdSet[ad.AdSetID], cfg)
		} else {
			tier, reason, fired = evaluateLeadGen(ad, stats, adsByAdSet[ad.AdSetID], cfg)
		}

		if !fired {
			continue
		}

		// Proteção de fase de aprendizado: só zero impressões fura
		if ad.DaysRunning != nil && *ad.DaysRunning < cfg.LearningPhaseDays && ad.Window.Impressions > 0 {
			continue
		}

		// Proteção do melhor do conjunto
		if topPerformer[ad.AdSetID] == ad.ID {
			continue
		}

		recommendations = append(recommendations, domain.PauseRecommendation{
			AdID:        ad.ID,
			Name:        ad.Name,
			Campaign:    ad.CampaignName,
			AdSet:       ad.AdSetName,
			DaysRunning: ad.DaysRunning,
			Spend30D:    ad.Window.Spend,
			Leads30D:    ad.Window.Leads,
			CPL30D:      ad.CPL,
			Tier:        tier,
			Reason:      reason,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Tier != recommendations[j].Tier {
			return recommendations[i].Tier < recommendations[j].Tier
		}

		return recommendations[i].Spend30D > recommendations[j].Spend30D
	})

	return recommendations
}

func campaignKey(ad domain.EnrichedAd) string {
	if ad.CampaignID != "" {
		return ad.CampaignID
	}

	return ad.CampaignName
}

// evaluateLeadGen aplica a régua de geração de leads, na ordem de
// prioridade das regras
func evaluateLeadGen(ad domain.EnrichedAd, stats *campaignStats, siblings []domain.EnrichedAd, cfg PrioritizerConfig) (int, string, bool) {
	if ad.Window.Leads == 0 && ad.Window.Spend > cfg.ZeroLeadSpendThreshold {
		return domain.TierZeroLeadsHighSpend,
			fmt.Sprintf("zero leads with $%.2f spent in the window (threshold $%.2f)", ad.Window.Spend, cfg.ZeroLeadSpendThreshold),
			true
	}

	if ad.Window.Leads == 0 && ad.Window.Spend == 0 {
		return domain.TierZeroLeadsZeroSpend,
			"zero leads and zero spend in the window",
			true
	}

	if ad.CPL != nil && stats != nil {
		if avg, ok := stats.avgCPL(); ok && *ad.CPL > avg {
			return domain.TierCPLAboveAverage,
				fmt.Sprintf("CPL $%.2f above campaign average $%.2f", *ad.CPL, avg),
				true
		}
	}

	if hasBetterLeadGenDuplicate(ad, siblings) {
		return domain.TierDuplicateCreative,
			"duplicate creative with a better performer in the same ad set",
			true
	}

	return 0, "", false
}

// evaluateTraffic aplica a régua de tráfego/engajamento. Nunca cita
// leads nem CPL: nessas campanhas essas métricas não são autoritativas.
func evaluateTraffic(ad domain.EnrichedAd, stats *campaignStats, siblings []domain.EnrichedAd, cfg PrioritizerConfig) (int, string, bool) {
	if ad.Window.Impressions == 0 {
		return domain.TierZeroImpressions,
			"zero impressions in the window",
			true
	}

	if stats != nil {
		avg := stats.avgCTR()
		if avg > 0 && ad.Window.CTR < avg*cfg.CTRBelowAvgRatio {
			return domain.TierCTRBelowAverage,
				fmt.Sprintf("CTR %.2f%% materially below campaign average %.2f%%", ad.Window.CTR, avg),
				true
		}
	}

	if hasBetterTrafficDuplicate(ad, siblings) {
		return domain.TierTrafficDuplicateCreative,
			"duplicate creative with a higher-CTR instance in the same ad set",
			true
	}

	return 0, "", false
}

// hasBetterLeadGenDuplicate informa se existe outra instância do mesmo
// criativo no mesmo conjunto performando melhor em leads
func hasBetterLeadGenDuplicate(ad domain.EnrichedAd, siblings []domain.EnrichedAd) bool {
	for _, other := range siblings {
		if other.ID == ad.ID || other.Name != ad.Name {
			continue
		}

		if other.Window.Leads > ad.Window.Leads {
			return true
		}

		if other.Window.Leads == ad.Window.Leads && cplLess(other.CPL, ad.CPL) {
			return true
		}
	}

	return false
}

func hasBetterTrafficDuplicate(ad domain.EnrichedAd, siblings []domain.EnrichedAd) bool {
	for _, other := range siblings {
		if other.ID == ad.ID || other.Name != ad.Name {
			continue
		}

		if other.Window.CTR > ad.Window.CTR {
			return true
		}

		if other.Window.CTR == ad.Window.CTR && other.Window.Impressions > ad.Window.Impressions {
			return true
		}
	}

	return false
}

// cplLess compara CPLs anuláveis; sem CPL (nenhum lead) é sempre pior
func cplLess(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}

	return *a < *b
}

// topPerformerByAdSet escolhe o melhor anúncio de cada conjunto com
// mais de um anúncio entregando. Conjuntos de anúncio único não têm
// irmão de comparação e não ganham proteção.
func topPerformerByAdSet(adsByAdSet map[string][]domain.EnrichedAd) map[string]string {
	best := make(map[string]string, len(adsByAdSet))

	for adSetID, siblings := range adsByAdSet {
		if len(siblings) < 2 {
			continue
		}

		top := siblings[0]
		for _, ad := range siblings[1:] {
			if betterPerformer(ad, top) {
				top = ad
			}
		}

		best[adSetID] = top.ID
	}

	return best
}

// betterPerformer compara dois anúncios do mesmo conjunto na métrica
// que manda no objetivo da campanha deles
func betterPerformer(a, b domain.EnrichedAd) bool {
	if a.IsTrafficCampaign {
		if a.Window.CTR != b.Window.CTR {
			return a.Window.CTR > b.Window.CTR
		}

		return a.Window.Impressions > b.Window.Impressions
	}

	if a.Window.Leads != b.Window.Leads {
		return a.Window.Leads > b.Window.Leads
	}

	if a.CPL != nil || b.CPL != nil {
		return cplLess(a.CPL, b.CPL)
	}

	return a.Window.Impressions > b.Window.Impressions
}
