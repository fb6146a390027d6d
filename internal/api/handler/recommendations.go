package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/pausing"
	"github.com/vfg2006/ad-inventory-api/pkg/log"
)

// GetPauseRecommendations devolve os anúncios candidatos a pausa,
// ordenados por prioridade. Só recomenda, nunca pausa.
func GetPauseRecommendations(service pausing.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("pausing: building pause recommendations")

		resp, err := service.GetPauseRecommendations(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("pausing: failed to build pause recommendations")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":      id,
			"success":         resp.Success,
			"recommendations": len(resp.Recommendations),
			"over_by":         resp.OverBy,
		}).Info("pausing: pause recommendations built")

		writeJSON(w, logger, id, resp)
	})
}
