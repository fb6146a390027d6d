package inventorying

import (
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// PlatformFetcher define as buscas lógicas na plataforma de anúncios.
// É implementada tanto pelo integrador Meta direto quanto pelo
// integrador via gateway, então o transporte é decidido na subida.
type PlatformFetcher interface {
	// CheckConfiguration valida as credenciais antes de qualquer chamada de rede
	CheckConfiguration() error

	FetchCampaigns(accountID string) ([]domain.Campaign, error)
	FetchAdSets(accountID string) ([]domain.AdSet, error)

	// FetchActiveAds devolve os anúncios ACTIVE com as impressões da
	// janela de verificação embutidas
	FetchActiveAds(accountID string, verification domain.DateRange) ([]domain.Ad, error)
	FetchPausedAds(accountID string, verification domain.DateRange) ([]domain.Ad, error)

	FetchAdInsights(accountID string, window domain.DateRange) ([]domain.AdInsight, error)
	FetchCampaignInsights(accountID string, window domain.DateRange) ([]domain.CampaignInsight, error)
	FetchAccountSnapshot(accountID string, window domain.DateRange) (*domain.AccountSnapshot, error)
}

// Inventorier é a interface completa do motor de inventário de anúncios
type Inventorier interface {
	// GetActiveInventory monta a hierarquia verificada de campanhas,
	// conjuntos e anúncios realmente entregando
	GetActiveInventory(accountID string) (*domain.ActiveInventoryResponse, error)

	// GetActiveWithPerformance devolve os anúncios entregando
	// enriquecidos com a janela de performance e a folga contra o limite
	GetActiveWithPerformance(accountID string) (*domain.ActivePerformanceResponse, error)

	// GetRecentlyPaused lista os anúncios pausados nos últimos daysBack
	// dias, limitado a maxAds
	GetRecentlyPaused(accountID string, daysBack, maxAds int) (*domain.RecentlyPausedResponse, error)

	// GetAccountOverview devolve o resumo da conta no intervalo mais o
	// período imediatamente anterior, com as variações percentuais
	GetAccountOverview(accountID string, dateRange domain.DateRange) (*domain.AccountOverview, error)

	// GetCampaignInsights lista as métricas por campanha no intervalo
	GetCampaignInsights(accountID string, dateRange domain.DateRange) (*domain.CampaignInsightsResponse, error)
}
