package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying"
)

// InventoryAuditConfig representa a configuração do auditor periódico de inventário
type InventoryAuditConfig struct {
	CronSchedule string
	AccountIDs   []string
	Enabled      bool
}

// InventoryAuditService percorre as contas configuradas e verifica se o
// total de anúncios realmente entregando está perto ou acima do limite
// da plataforma. Só lê e loga, não pausa nada sozinho.
type InventoryAuditService struct {
	scheduler            *gocron.Scheduler
	config               InventoryAuditConfig
	appConfig            *config.Config
	inventoryService     inventorying.Inventorier
	auditRunning         bool
	auditMutex           sync.Mutex
	lastAuditStartedAt   time.Time
	lastAuditCompletedAt time.Time
}

// NewInventoryAuditService cria uma nova instância do auditor de inventário
func NewInventoryAuditService(
	inventoryService inventorying.Inventorier,
	appConfig *config.Config,
) *InventoryAuditService {
	auditConfig := InventoryAuditConfig{
		CronSchedule: appConfig.InventoryAudit.CronSchedule,
		AccountIDs:   appConfig.InventoryAudit.AuditAccountIDs(),
		Enabled:      appConfig.InventoryAudit.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"accounts":      len(auditConfig.AccountIDs),
		"enabled":       auditConfig.Enabled,
	}).Info("Configuração do auditor de inventário carregada")

	return &InventoryAuditService{
		scheduler:        scheduler,
		config:           auditConfig,
		appConfig:        appConfig,
		inventoryService: inventoryService,
		auditRunning:     false,
	}
}

// Start inicia o agendador
func (s *InventoryAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Auditoria periódica de inventário desabilitada por configuração")
		return nil
	}

	if len(s.config.AccountIDs) == 0 {
		logrus.Warn("Auditoria de inventário habilitada mas sem contas configuradas")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de auditoria de inventário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.auditAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de inventário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de auditoria de inventário")
		s.scheduler.Stop()
	}()

	return nil
}

// auditAllAccounts roda a auditoria em todas as contas configuradas
func (s *InventoryAuditService) auditAllAccounts() {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		logrus.Info("Auditoria de inventário já em andamento, ignorando")
		return
	}
	s.auditRunning = true
	s.auditMutex.Unlock()

	startTime := time.Now()
	s.lastAuditStartedAt = startTime

	defer func() {
		s.auditMutex.Lock()
		s.auditRunning = false
		s.auditMutex.Unlock()
	}()

	logrus.WithField("accounts", len(s.config.AccountIDs)).Info("Iniciando auditoria de inventário")

	for _, accountID := range s.config.AccountIDs {
		s.auditAccount(accountID)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(s.config.AccountIDs),
	}).Info("Auditoria de inventário concluída")

	s.lastAuditCompletedAt = time.Now()
}

// auditAccount busca o inventário verificado de uma conta e loga a
// situação contra o limite de anúncios ativos da plataforma
func (s *InventoryAuditService) auditAccount(accountID string) {
	resp, err := s.inventoryService.GetActiveInventory(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audit: failed to fetch active inventory for account")
		return
	}

	if !resp.Success {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      resp.Error,
		}).Error("audit: active inventory fetch was not successful")
		return
	}

	adCap := s.appConfig.Inventory.AdCap
	overBy := resp.TotalActiveAds - adCap

	switch {
	case overBy > 0:
		logrus.WithFields(logrus.Fields{
			"account_id":       accountID,
			"total_active_ads": resp.TotalActiveAds,
			"ad_cap":           adCap,
			"over_by":          overBy,
		}).Warn("audit: account is over the active ad limit")
	case adCap-resp.TotalActiveAds <= 20:
		logrus.WithFields(logrus.Fields{
			"account_id":       accountID,
			"total_active_ads": resp.TotalActiveAds,
			"ad_cap":           adCap,
			"remaining":        adCap - resp.TotalActiveAds,
		}).Warn("audit: account is close to the active ad limit")
	default:
		logrus.WithFields(logrus.Fields{
			"account_id":       accountID,
			"total_active_ads": resp.TotalActiveAds,
			"ad_cap":           adCap,
		}).Info("audit: account is within the active ad limit")
	}
}

// TriggerManualAudit inicia manualmente uma auditoria de inventário
func (s *InventoryAuditService) TriggerManualAudit() {
	logrus.Info("Iniciando auditoria manual de inventário")

	go func() {
		s.auditAllAccounts()
	}()
}

// GetStatus retorna o estado atual do auditor
func (s *InventoryAuditService) GetStatus() map[string]any {
	s.auditMutex.Lock()
	defer s.auditMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"running":       s.auditRunning,
		"cron_schedule": s.config.CronSchedule,
		"accounts":      len(s.config.AccountIDs),
	}

	if !s.lastAuditStartedAt.IsZero() {
		status["last_audit_started_at"] = s.lastAuditStartedAt.Format(time.RFC3339)
	}
	if !s.lastAuditCompletedAt.IsZero() {
		status["last_audit_completed_at"] = s.lastAuditCompletedAt.Format(time.RFC3339)
	}

	return status
}
