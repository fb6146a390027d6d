package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying"
	"github.com/vfg2006/ad-inventory-api/pkg/log"
	"github.com/vfg2006/ad-inventory-api/pkg/utils"
)

// GetAccountOverview devolve o resumo da conta no intervalo pedido,
// comparado com o período imediatamente anterior
func GetAccountOverview(service inventorying.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateRange, err := resolveDateRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("overview: invalid date range parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"start_date": dateRange.StartDate,
			"end_date":   dateRange.EndDate,
		}).Info("overview: fetching account overview")

		overview, err := service.GetAccountOverview(id, dateRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("overview: failed to get account overview")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, id, overview)
	})
}

// GetCampaignInsights devolve as métricas por campanha no intervalo
func GetCampaignInsights(service inventorying.Inventorier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateRange, err := resolveDateRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("insights: invalid date range parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"start_date": dateRange.StartDate,
			"end_date":   dateRange.EndDate,
		}).Info("insights: fetching campaign insights")

		resp, err := service.GetCampaignInsights(id, dateRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("insights: failed to get campaign insights")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, id, resp)
	})
}

// resolveDateRange monta o intervalo a partir dos query params.
// Aceita o atalho period (today, this_month, last_month, ytd) ou o par
// start_date/end_date. Sem nada, cai nos últimos 30 dias.
func resolveDateRange(r *http.Request) (domain.DateRange, error) {
	now := time.Now()

	if period := r.URL.Query().Get("period"); period != "" {
		switch period {
		case "today":
			return domain.Today(now), nil
		case "this_month":
			return domain.ThisMonth(now), nil
		case "last_month":
			return domain.LastMonth(now), nil
		case "ytd":
			return domain.YearToDate(now), nil
		default:
			return domain.DateRange{}, fmt.Errorf("unknown period %q", period)
		}
	}

	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	if rawStart == "" && rawEnd == "" {
		return domain.LastNDays(now, 30), nil
	}

	if rawStart == "" || rawEnd == "" {
		return domain.DateRange{}, fmt.Errorf("start_date and end_date must be provided together")
	}

	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid start_date: %w", err)
	}

	endDate, err := utils.ParseDate(rawEnd)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid end_date: %w", err)
	}

	if endDate.Before(*startDate) {
		return domain.DateRange{}, fmt.Errorf("end_date must not be before start_date")
	}

	return domain.NewDateRange(*startDate, *endDate), nil
}
