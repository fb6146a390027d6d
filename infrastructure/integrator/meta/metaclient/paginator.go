package metaclient

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// collectionPage embala uma página de um endpoint de coleção da Graph API
type collectionPage[T any] struct {
	Data   []T               `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// fetchAllPages segue o cursor de próxima página até esgotar ou atingir
// o teto de páginas configurado (proteção contra loop de cursores).
// Qualquer resposta não-2xx vira UpstreamError; páginas parciais nunca
// são devolvidas silenciosamente.
func fetchAllPages[T any](c *MetaClient, endpoint, accountID, firstURL string) ([]T, error) {
	httpClient := &http.Client{Timeout: c.requestTimeout()}

	maxPages := c.Cfg.Inventory.MaxPages
	if maxPages <= 0 {
		maxPages = 50
	}

	all := make([]T, 0)
	nextURL := firstURL

	for page := 0; nextURL != ""; page++ {
		if page >= maxPages {
			logrus.WithFields(logrus.Fields{
				"endpoint":   endpoint,
				"account_id": accountID,
				"max_pages":  maxPages,
			}).Warn("paginator: page ceiling reached, stopping pagination")
			break
		}

		req, err := http.NewRequest(http.MethodGet, nextURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, &domain.UpstreamError{Endpoint: endpoint, AccountID: accountID, Err: err}
		}

		statusCode := resp.StatusCode
		body, err := c.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			// O sentinel de token renovado sobe intacto para o chamador repetir
			if errors.Is(err, errTokenRenewed) {
				return nil, err
			}
			return nil, &domain.UpstreamError{Endpoint: endpoint, AccountID: accountID, StatusCode: statusCode, Err: err}
		}

		var p collectionPage[T]
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, &domain.UpstreamError{Endpoint: endpoint, AccountID: accountID, Err: err}
		}

		all = append(all, p.Data...)

		// Ausência do link next sinaliza a última página
		nextURL = p.Paging.Next
	}

	return all, nil
}
