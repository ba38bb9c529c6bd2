package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port      int    `yaml:"port"`
	GinMode   string `yaml:"gin_mode"`
	BaseURL   string `yaml:"base_url"`
	UploadDir string `yaml:"upload_dir"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL        string `yaml:"ttl"`
	CookieName string `yaml:"cookie_name"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type StripeConfig struct {
	APIKey     string `yaml:"api_key"`
	SuccessURL string `yaml:"success_url"`
	CancelURL  string `yaml:"cancel_url"`
}

type TwilioConfig struct {
	AccountSID  string `yaml:"account_sid"`
	AuthToken   string `yaml:"auth_token"`
	FromNumber  string `yaml:"from_number"`
	AlertNumber string `yaml:"alert_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	JWT      JWTConfig      `yaml:"jwt"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port              string
	GinMode           string
	BaseURL           string
	UploadDir         string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	SessionTTL        time.Duration
	SessionCookieName string
	JWTSecret         string
	JWTIssuer         string
	AccessTTL         time.Duration
	StripeAPIKey      string
	StripeSuccessURL  string
	StripeCancelURL   string
	TwilioSID         string
	TwilioToken       string
	TwilioFrom        string
	TwilioAlertNumber string
	CasbinModelPath   string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// secrets and connection strings.
func Load() (*Config, error) {
	path := env("RESQNET_CONFIG", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	accessTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	cookieName := configFile.Session.CookieName
	if cookieName == "" {
		cookieName = "resqnet_session"
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		BaseURL:           configFile.App.BaseURL,
		UploadDir:         env("UPLOAD_DIR", configFile.App.UploadDir),
		DSN:               env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:         env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:     env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:           configFile.Redis.DB,
		SessionTTL:        sessionTTL,
		SessionCookieName: cookieName,
		JWTSecret:         env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:         configFile.JWT.Issuer,
		AccessTTL:         accessTTL,
		StripeAPIKey:      env("STRIPE_API_KEY", configFile.Stripe.APIKey),
		StripeSuccessURL:  configFile.Stripe.SuccessURL,
		StripeCancelURL:   configFile.Stripe.CancelURL,
		TwilioSID:         env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:       env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:        configFile.Twilio.FromNumber,
		TwilioAlertNumber: configFile.Twilio.AlertNumber,
		CasbinModelPath:   configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
