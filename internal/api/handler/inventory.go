package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/pausing"
	"github.com/vfg2006/ad-inventory-api/pkg/log"
)

// GetActiveInventory devolve a hierarquia de campanhas, conjuntos e
// anúncios verificados por entrega real no dia
func GetActiveInventory(service inventorying.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("inventory: fetching active inventory")

		resp, err := service.GetActiveInventory(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to get active inventory")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":       id,
			"success":          resp.Success,
			"total_active_ads": resp.TotalActiveAds,
		}).Info("inventory: active inventory retrieved")

		writeJSON(w, logger, id, resp)
	})
}

// GetActiveInventoryReport devolve o inventário ativo como relatório de texto
func GetActiveInventoryReport(service inventorying.Inventorier, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("inventory: building active inventory report")

		resp, err := service.GetActiveInventory(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to build active inventory report")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		today := time.Now().Format(time.DateOnly)
		report := inventorying.FormatActiveInventoryReport(resp, cfg.Inventory.AdCap, today)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(report)); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to write report response")
		}
	})
}

// GetActiveWithPerformance devolve os anúncios entregando com as
// métricas da janela de performance e a folga contra o limite
func GetActiveWithPerformance(service inventorying.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("inventory: fetching active ads with performance")

		resp, err := service.GetActiveWithPerformance(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to get active ads with performance")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":       id,
			"total_active_ads": resp.TotalActiveAds,
			"over_by":          resp.OverBy,
		}).Info("inventory: active ads with performance retrieved")

		writeJSON(w, logger, id, resp)
	})
}

// GetPerformanceReport devolve o relatório de performance em texto,
// com a consolidação de criativos duplicados no topo
func GetPerformanceReport(service inventorying.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("inventory: building performance report")

		resp, err := service.GetActiveWithPerformance(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to build performance report")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		rollups := pausing.RollupCreatives(resp.Ads)
		today := time.Now().Format(time.DateOnly)
		report := inventorying.FormatPerformanceReport(resp, rollups, today)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(report)); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to write report response")
		}
	})
}

// GetRecentlyPaused lista os anúncios pausados recentemente.
// Aceita days_back e max_ads como query params opcionais.
func GetRecentlyPaused(service inventorying.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		daysBack, err := parseOptionalInt(r.URL.Query().Get("days_back"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"days_back":  r.URL.Query().Get("days_back"),
			}).Warn("inventory: invalid days_back parameter")

			http.Error(w, "days_back must be an integer", http.StatusBadRequest)
			return
		}

		maxAds, err := parseOptionalInt(r.URL.Query().Get("max_ads"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"max_ads":    r.URL.Query().Get("max_ads"),
			}).Warn("inventory: invalid max_ads parameter")

			http.Error(w, "max_ads must be an integer", http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"days_back":  daysBack,
			"max_ads":    maxAds,
		}).Info("inventory: fetching recently paused ads")

		resp, err := service.GetRecentlyPaused(id, daysBack, maxAds)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("inventory: failed to get recently paused ads")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, id, resp)
	})
}

// parseOptionalInt devolve zero quando o parâmetro não veio, deixando
// o serviço aplicar os defaults
func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, accountID string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithFields(log.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
