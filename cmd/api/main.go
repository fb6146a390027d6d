package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/gateway"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/gateway/gatewayclient"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-inventory-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-inventory-api/internal/api"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/scheduler"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/pausing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	// O transporte é decidido na subida: Graph API direta ou gateway MCP
	fetcher := newPlatformFetcher(cfg)

	inventoryService := inventorying.NewService(cfg, fetcher)
	pauseService := pausing.NewService(cfg, inventoryService)

	auditService := scheduler.NewInventoryAuditService(inventoryService, cfg)
	if err := auditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o auditor de inventário")
	} else {
		logrus.Info("Auditor de inventário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		inventoryService,
		pauseService,
		authenticator,
		auditService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newPlatformFetcher escolhe o integrador conforme a configuração.
// Com o gateway habilitado toda chamada lógica passa por ele; caso
// contrário o cliente Meta direto assume, com renovação automática do
// token de longa duração.
func newPlatformFetcher(cfg *config.Config) inventorying.PlatformFetcher {
	if cfg.Gateway.Enabled {
		logrus.WithField("gateway_url", cfg.Gateway.URL).Info("Usando o gateway MCP como transporte")

		gatewayClient := gatewayclient.NewClient(cfg)
		return gateway.New(cfg, gatewayClient)
	}

	logrus.Info("Usando a Graph API do Meta como transporte")

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	return meta.New(cfg, metaClient)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
