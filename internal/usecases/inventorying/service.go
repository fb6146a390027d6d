package inventorying

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// Service implementa o motor de inventário: tudo é remontado a cada
// requisição, nada fica cacheado entre chamadas.
type Service struct {
	cfg     *config.Config
	fetcher PlatformFetcher
	now     func() time.Time
}

func NewService(cfg *config.Config, fetcher PlatformFetcher) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		now:     time.Now,
	}
}

func (s *Service) adCap() int {
	if s.cfg.Inventory.AdCap > 0 {
		return s.cfg.Inventory.AdCap
	}

	return 250
}

func (s *Service) performanceWindow(now time.Time) domain.DateRange {
	days := s.cfg.Inventory.PerformanceWindowDays
	if days <= 0 {
		days = 30
	}

	return domain.LastNDays(now, days)
}

// GetActiveInventory monta a hierarquia verificada da conta. O ramo de
// anúncios é essencial; campanhas e conjuntos degradados apenas esvaziam
// a árvore, nunca derrubam a resposta.
func (s *Service) GetActiveInventory(accountID string) (*domain.ActiveInventoryResponse, error) {
	if err := s.fetcher.CheckConfiguration(); err != nil {
		return nil, err
	}

	now := s.now()
	verification := domain.Today(now)

	var (
		campaigns []domain.Campaign
		adSets    []domain.AdSet
		ads       []domain.Ad

		campaignsErr error
		adSetsErr    error
		adsErr       error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		campaigns, campaignsErr = s.fetcher.FetchCampaigns(accountID)
	}()

	go func() {
		defer wg.Done()
		adSets, adSetsErr = s.fetcher.FetchAdSets(accountID)
	}()

	go func() {
		defer wg.Done()
		ads, adsErr = s.fetcher.FetchActiveAds(accountID, verification)
	}()

	wg.Wait()

	if adsErr != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date_range": verification,
			"error":      adsErr.Error(),
		}).Error("inventory: active ads branch failed, aborting inventory")

		return &domain.ActiveInventoryResponse{
			Success:   false,
			Campaigns: []domain.HierarchyNode{},
			Error:     "failed to fetch active ads from the ad platform",
		}, nil
	}

	s.warnDegradedBranch(accountID, "campaigns", campaignsErr)
	s.warnDegradedBranch(accountID, "adsets", adSetsErr)

	delivering, _ := VerifyDelivery(ads)
	nodes := BuildHierarchy(ClassifyCampaigns(campaigns), adSets, delivering)

	return &domain.ActiveInventoryResponse{
		Success:        true,
		TotalActiveAds: len(delivering),
		Campaigns:      nodes,
	}, nil
}

// GetActiveWithPerformance devolve os anúncios entregando junto com a
// janela de performance e a posição da conta contra o limite de
// anúncios ativos
func (s *Service) GetActiveWithPerformance(accountID string) (*domain.ActivePerformanceResponse, error) {
	if err := s.fetcher.CheckConfiguration(); err != nil {
		return nil, err
	}

	now := s.now()
	verification := domain.Today(now)
	window := s.performanceWindow(now)

	var (
		campaigns []domain.Campaign
		adSets    []domain.AdSet
		ads       []domain.Ad
		insights  []domain.AdInsight

		campaignsErr error
		adSetsErr    error
		adsErr       error
		insightsErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		campaigns, campaignsErr = s.fetcher.FetchCampaigns(accountID)
	}()

	go func() {
		defer wg.Done()
		adSets, adSetsErr = s.fetcher.FetchAdSets(accountID)
	}()

	go func() {
		defer wg.Done()
		ads, adsErr = s.fetcher.FetchActiveAds(accountID, verification)
	}()

	go func() {
		defer wg.Done()
		insights, insightsErr = s.fetcher.FetchAdInsights(accountID, window)
	}()

	wg.Wait()

	if adsErr != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date_range": verification,
			"error":      adsErr.Error(),
		}).Error("inventory: active ads branch failed, aborting performance listing")

		return &domain.ActivePerformanceResponse{
			Success:   false,
			Threshold: s.adCap(),
			Ads:       []domain.EnrichedAd{},
			Error:     "failed to fetch active ads from the ad platform",
		}, nil
	}

	s.warnDegradedBranch(accountID, "campaigns", campaignsErr)
	s.warnDegradedBranch(accountID, "adsets", adSetsErr)
	s.warnDegradedBranch(accountID, "ad_insights", insightsErr)

	delivering, _ := VerifyDelivery(ads)
	enriched := EnrichAds(delivering, ClassifyCampaigns(campaigns), adSets, insights, window, now)

	// Maior gasto primeiro; o ranking de pausa tem ordenação própria
	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Window.Spend > enriched[j].Window.Spend
	})

	total := len(delivering)
	threshold := s.adCap()
	overBy := total - threshold
	if overBy < 0 {
		overBy = 0
	}

	return &domain.ActivePerformanceResponse{
		Success:        true,
		TotalActiveAds: total,
		Threshold:      threshold,
		OverBy:         overBy,
		Ads:            enriched,
	}, nil
}

// GetRecentlyPaused lista os anúncios pausados nos últimos daysBack
// dias, do mais recente para o mais antigo, truncando em maxAds
func (s *Service) GetRecentlyPaused(accountID string, daysBack, maxAds int) (*domain.RecentlyPausedResponse, error) {
	if err := s.fetcher.CheckConfiguration(); err != nil {
		return nil, err
	}

	if daysBack <= 0 {
		daysBack = 7
	}
	if maxAds <= 0 {
		maxAds = 50
	}

	now := s.now()
	verification := domain.Today(now)
	window := s.performanceWindow(now)
	cutoff := now.AddDate(0, 0, -daysBack)

	var (
		campaigns []domain.Campaign
		adSets    []domain.AdSet
		ads       []domain.Ad
		insights  []domain.AdInsight

		campaignsErr error
		adSetsErr    error
		adsErr       error
		insightsErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		campaigns, campaignsErr = s.fetcher.FetchCampaigns(accountID)
	}()

	go func() {
		defer wg.Done()
		adSets, adSetsErr = s.fetcher.FetchAdSets(accountID)
	}()

	go func() {
		defer wg.Done()
		ads, adsErr = s.fetcher.FetchPausedAds(accountID, verification)
	}()

	go func() {
		defer wg.Done()
		insights, insightsErr = s.fetcher.FetchAdInsights(accountID, window)
	}()

	wg.Wait()

	if adsErr != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"days_back":  daysBack,
			"error":      adsErr.Error(),
		}).Error("inventory: paused ads branch failed, aborting recently-paused listing")

		return &domain.RecentlyPausedResponse{
			Success: false,
			Ads:     []domain.PausedAd{},
			Error:   "failed to fetch paused ads from the ad platform",
		}, nil
	}

	s.warnDegradedBranch(accountID, "campaigns", campaignsErr)
	s.warnDegradedBranch(accountID, "adsets", adSetsErr)
	s.warnDegradedBranch(accountID, "ad_insights", insightsErr)

	// A data de pausa vem de updated_time; anúncio sem timestamp legível
	// não tem como provar recência e fica de fora
	recent := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.UpdatedTime != nil && !ad.UpdatedTime.Before(cutoff) {
			recent = append(recent, ad)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedTime.After(*recent[j].UpdatedTime)
	})

	total := len(recent)
	truncated := total > maxAds
	if truncated {
		recent = recent[:maxAds]
	}

	enriched := EnrichAds(recent, ClassifyCampaigns(campaigns), adSets, insights, window, now)

	paused := make([]domain.PausedAd, 0, len(enriched))
	for i, ea := range enriched {
		paused = append(paused, domain.PausedAd{
			EnrichedAd: ea,
			PausedDate: recent[i].UpdatedTime.Format(time.DateOnly),
		})
	}

	return &domain.RecentlyPausedResponse{
		Success:        true,
		TotalPausedAds: total,
		Truncated:      truncated,
		Ads:            paused,
	}, nil
}

// GetAccountOverview busca o resumo da conta no intervalo pedido e no
// período de mesma duração imediatamente anterior, em paralelo
func (s *Service) GetAccountOverview(accountID string, dateRange domain.DateRange) (*domain.AccountOverview, error) {
	if err := s.fetcher.CheckConfiguration(); err != nil {
		return nil, err
	}

	comparison := dateRange.ComparisonPeriod()

	var (
		current  *domain.AccountSnapshot
		previous *domain.AccountSnapshot

		currentErr  error
		previousErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = s.fetcher.FetchAccountSnapshot(accountID, dateRange)
	}()

	go func() {
		defer wg.Done()
		previous, previousErr = s.fetcher.FetchAccountSnapshot(accountID, comparison)
	}()

	wg.Wait()

	if currentErr != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date_range": dateRange,
			"error":      currentErr.Error(),
		}).Error("insights: current period branch failed, aborting account overview")

		return &domain.AccountOverview{
			Success:   false,
			AccountID: accountID,
			Range:     dateRange,
			Error:     "failed to fetch account insights from the ad platform",
		}, nil
	}

	// Sem o período anterior a resposta sai sem variações, nunca com
	// números inventados
	s.warnDegradedBranch(accountID, "comparison_period", previousErr)
	if previousErr != nil {
		previous = nil
	}

	return &domain.AccountOverview{
		Success:         true,
		AccountID:       accountID,
		Range:           dateRange,
		ComparisonRange: comparison,
		Current:         current,
		Previous:        previous,
		Changes:         domain.ComputeChanges(current, previous),
	}, nil
}

// GetCampaignInsights lista as métricas por campanha no intervalo, com
// o objetivo derivado do nome de cada campanha
func (s *Service) GetCampaignInsights(accountID string, dateRange domain.DateRange) (*domain.CampaignInsightsResponse, error) {
	if err := s.fetcher.CheckConfiguration(); err != nil {
		return nil, err
	}

	insights, err := s.fetcher.FetchCampaignInsights(accountID, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date_range": dateRange,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights")

		return &domain.CampaignInsightsResponse{
			Success:   false,
			AccountID: accountID,
			Range:     dateRange,
			Campaigns: []domain.CampaignInsight{},
			Error:     "failed to fetch campaign insights from the ad platform",
		}, nil
	}

	for i := range insights {
		insights[i].IsTrafficCampaign = IsTrafficCampaignName(insights[i].CampaignName)
	}

	return &domain.CampaignInsightsResponse{
		Success:   true,
		AccountID: accountID,
		Range:     dateRange,
		Campaigns: insights,
	}, nil
}

func (s *Service) warnDegradedBranch(accountID, branch string, err error) {
	if err == nil {
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"branch":     branch,
		"error":      err.Error(),
	}).Warn("inventory: branch degraded, section omitted from response")
}
