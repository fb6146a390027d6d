package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Gateway        Gateway        `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Inventory      Inventory      `mapstructure:",squash"`
	InventoryAudit InventoryAudit `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// Gateway configura o transporte alternativo via MCP Gateway.
// Quando habilitado, as chamadas lógicas ao Meta passam pelo gateway
// em vez da Graph API direta.
type Gateway struct {
	URL            string `mapstructure:"gateway_url"`
	Token          string `mapstructure:"gateway_token"`
	Enabled        bool   `mapstructure:"gateway_enabled"`
	TimeoutSeconds int    `mapstructure:"gateway_timeout_seconds"`
}

type Auth struct {
	Secret           string `mapstructure:"auth_secret"`
	ClientID         string `mapstructure:"auth_client_id"`
	ClientSecretHash string `mapstructure:"auth_client_secret_hash"`
	TokenTTLHours    int    `mapstructure:"auth_token_ttl_hours"`
}

// Inventory agrupa os limites e janelas do motor de inventário de anúncios.
// Eram constantes mágicas no código original (250, 14, 30).
type Inventory struct {
	AdCap                  int     `mapstructure:"inventory_ad_cap"`
	LearningPhaseDays      int     `mapstructure:"inventory_learning_phase_days"`
	PerformanceWindowDays  int     `mapstructure:"inventory_performance_window_days"`
	ZeroLeadSpendThreshold float64 `mapstructure:"inventory_zero_lead_spend_threshold"`
	CTRBelowAvgRatio       float64 `mapstructure:"inventory_ctr_below_avg_ratio"`
	MaxPages               int     `mapstructure:"inventory_max_pages"`
	RequestTimeoutSeconds  int     `mapstructure:"inventory_request_timeout_seconds"`
}

type InventoryAudit struct {
	CronSchedule string `mapstructure:"inventory_audit_cron"`
	Accounts     string `mapstructure:"inventory_audit_accounts"`
	Enabled      bool   `mapstructure:"inventory_audit_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// AuditAccountIDs devolve a lista de contas auditadas periodicamente
func (a InventoryAudit) AuditAccountIDs() []string {
	if strings.TrimSpace(a.Accounts) == "" {
		return nil
	}

	parts := strings.Split(a.Accounts, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v21.0")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "") // ONLY LOCAL

	viper.SetDefault("GATEWAY_URL", "http://localhost:3000")
	viper.SetDefault("GATEWAY_TOKEN", "")
	viper.SetDefault("GATEWAY_ENABLED", false)
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 60)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_CLIENT_ID", "")
	viper.SetDefault("AUTH_CLIENT_SECRET_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 12)

	// Limites do inventário de anúncios
	viper.SetDefault("INVENTORY_AD_CAP", 250)                      // Limite de anúncios ativos imposto pela plataforma
	viper.SetDefault("INVENTORY_LEARNING_PHASE_DAYS", 14)          // Fase de aprendizado: não pausar antes disso
	viper.SetDefault("INVENTORY_PERFORMANCE_WINDOW_DAYS", 30)      // Janela de performance para enriquecimento
	viper.SetDefault("INVENTORY_ZERO_LEAD_SPEND_THRESHOLD", 100.0) // Gasto sem leads acima disso prioriza pausa
	viper.SetDefault("INVENTORY_CTR_BELOW_AVG_RATIO", 0.5)         // CTR abaixo de 50% da média da campanha
	viper.SetDefault("INVENTORY_MAX_PAGES", 50)                    // Proteção contra loop de cursores
	viper.SetDefault("INVENTORY_REQUEST_TIMEOUT_SECONDS", 30)

	// Auditoria periódica de inventário
	viper.SetDefault("INVENTORY_AUDIT_CRON", "0 */4 * * *") // A cada 4 horas
	viper.SetDefault("INVENTORY_AUDIT_ACCOUNTS", "")
	viper.SetDefault("INVENTORY_AUDIT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
