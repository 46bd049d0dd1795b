package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Inventory           Inventory           `mapstructure:",squash"`
	LLM                 LLM                 `mapstructure:",squash"`
	Redis               Redis               `mapstructure:",squash"`
	Notifier            Notifier            `mapstructure:",squash"`
	FinanceCheck        FinanceCheck        `mapstructure:",squash"`
	InventoryAlertCheck InventoryAlertCheck `mapstructure:",squash"`
	Location            *time.Location      `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	OwnerEmail        string        `mapstructure:"owner_email"`
	OwnerName         string        `mapstructure:"owner_name"`
	OwnerPasswordHash string        `mapstructure:"owner_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Inventory struct {
	DefaultMinThreshold float64 `mapstructure:"inventory_default_min_threshold"`
	DefaultUnit         string  `mapstructure:"inventory_default_unit"`
	DefaultCategory     string  `mapstructure:"inventory_default_category"`
	DefaultShelfLife    int     `mapstructure:"inventory_default_shelf_life_days"`
	ExpiryWarningDays   int     `mapstructure:"inventory_expiry_warning_days"`
}

type LLM struct {
	BaseURL           string        `mapstructure:"llm_base_url"`
	APIKey            string        `mapstructure:"llm_api_key"`
	Model             string        `mapstructure:"llm_model"`
	Temperature       float32       `mapstructure:"llm_temperature"`
	RequestsPerMinute int           `mapstructure:"llm_requests_per_minute"`
	MaxRetries        int           `mapstructure:"llm_max_retries"`
	RetryBaseDelay    time.Duration `mapstructure:"llm_retry_base_delay"`
	AdviceCacheTTL    time.Duration `mapstructure:"llm_advice_cache_ttl"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Notifier struct {
	WebhookURL string        `mapstructure:"notifier_webhook_url"`
	Token      string        `mapstructure:"notifier_token"`
	Recipient  string        `mapstructure:"notifier_recipient"`
	Timeout    time.Duration `mapstructure:"notifier_timeout"`
}

type FinanceCheck struct {
	CronSchedule string `mapstructure:"finance_check_cron"`
	Enabled      bool   `mapstructure:"finance_check_enabled"`
}

type InventoryAlertCheck struct {
	CronSchedule string `mapstructure:"inventory_alerts_cron"`
	Enabled      bool   `mapstructure:"inventory_alerts_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bizzgenie?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("OWNER_EMAIL", "owner@bizzgenie.local")
	viper.SetDefault("OWNER_NAME", "Owner")
	viper.SetDefault("OWNER_PASSWORD_HASH", "")

	// Estoque: valores aplicados quando o lote é criado sem o campo
	viper.SetDefault("INVENTORY_DEFAULT_MIN_THRESHOLD", 2)
	viper.SetDefault("INVENTORY_DEFAULT_UNIT", "pcs")
	viper.SetDefault("INVENTORY_DEFAULT_CATEGORY", "general")
	viper.SetDefault("INVENTORY_DEFAULT_SHELF_LIFE_DAYS", 7)
	viper.SetDefault("INVENTORY_EXPIRY_WARNING_DAYS", 3)

	viper.SetDefault("LLM_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "openai/gpt-4.1-mini")
	viper.SetDefault("LLM_TEMPERATURE", 0.1)
	viper.SetDefault("LLM_REQUESTS_PER_MINUTE", 20)
	viper.SetDefault("LLM_MAX_RETRIES", 3)
	viper.SetDefault("LLM_RETRY_BASE_DELAY", "2s")
	viper.SetDefault("LLM_ADVICE_CACHE_TTL", "6h")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("NOTIFIER_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFIER_TOKEN", "")
	viper.SetDefault("NOTIFIER_RECIPIENT", "")
	viper.SetDefault("NOTIFIER_TIMEOUT", "10s")

	viper.SetDefault("FINANCE_CHECK_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("FINANCE_CHECK_ENABLED", false)

	viper.SetDefault("INVENTORY_ALERTS_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("INVENTORY_ALERTS_ENABLED", false)

	viper.SetDefault("APP_TIMEZONE", "Europe/Bucharest")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.App.Timezone, err)
	}
	config.Location = location

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
