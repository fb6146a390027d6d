package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/scheduler"
	"github.com/vfg2006/ad-inventory-api/pkg/apiErrors"
)

// RunInventoryAudit dispara manualmente a auditoria de inventário
func RunInventoryAudit(service *scheduler.InventoryAuditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de auditoria não disponível", nil)
			return
		}

		logrus.Info("audit: manual inventory audit requested")
		service.TriggerManualAudit()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
		}); err != nil {
			logrus.WithError(err).Error("audit: failed to encode response")
		}
	}
}

// GetAuditStatus devolve o estado atual do auditor de inventário
func GetAuditStatus(service *scheduler.InventoryAuditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de auditoria não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logrus.WithError(err).Error("audit: failed to encode status response")
		}
	}
}
