package handler

import (
	"net/http"

	"github.com/vfg2006/ad-inventory-api/internal/api/handler/router"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/scheduler"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/pausing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: Token(service),
		},
	}
}

func Inventory(service inventorying.Inventorier, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/inventory/active",
			Method:  http.MethodGet,
			Handler: GetActiveInventory(service),
		},
		{
			Path:    "/v1/adAccount/:id/inventory/active/report",
			Method:  http.MethodGet,
			Handler: GetActiveInventoryReport(service, cfg),
		},
		{
			Path:    "/v1/adAccount/:id/inventory/performance",
			Method:  http.MethodGet,
			Handler: GetActiveWithPerformance(service),
		},
		{
			Path:    "/v1/adAccount/:id/inventory/performance/report",
			Method:  http.MethodGet,
			Handler: GetPerformanceReport(service),
		},
		{
			Path:    "/v1/adAccount/:id/inventory/recently-paused",
			Method:  http.MethodGet,
			Handler: GetRecentlyPaused(service),
		},
	}
}

func Accounts(service inventorying.Inventorier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/overview",
			Method:  http.MethodGet,
			Handler: GetAccountOverview(service),
		},
		{
			Path:    "/v1/adAccount/:id/insights/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaignInsights(service),
		},
	}
}

func Recommendations(service pausing.Recommender) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/recommendations/pause",
			Method:  http.MethodGet,
			Handler: GetPauseRecommendations(service),
		},
	}
}

func Audit(service *scheduler.InventoryAuditService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audit/run",
			Method:  http.MethodPost,
			Handler: RunInventoryAudit(service),
		},
		{
			Path:    "/v1/audit/status",
			Method:  http.MethodGet,
			Handler: GetAuditStatus(service),
		},
	}
}
