package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type RefreshConfig struct {
	TTL            string `yaml:"ttl"`
	RetentionLimit int    `yaml:"retention_limit"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Twilio   TwilioConfig   `yaml:"twilio"`
}

type Config struct {
	Port                  string
	GinMode               string
	DSN                   string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	JWTSecret             string
	JWTIssuer             string
	AccessTTL             time.Duration
	OTPTTL                time.Duration
	OTPLength             int
	RefreshTTL            time.Duration
	RefreshRetentionLimit int
	TwilioSID             string
	TwilioToken           string
	TwilioFrom            string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	// .env is optional; real deployments rely on the config file and environment
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.Refresh.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh TTL: %w", err)
	}

	cfg := &Config{
		Port:                  fmt.Sprintf("%d", configFile.App.Port),
		GinMode:               configFile.App.GinMode,
		DSN:                   env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:             env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:         env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:               configFile.Redis.DB,
		JWTSecret:             env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:             configFile.JWT.Issuer,
		AccessTTL:             accTTL,
		OTPTTL:                otpTTL,
		OTPLength:             configFile.OTP.Length,
		RefreshTTL:            refTTL,
		RefreshRetentionLimit: configFile.Refresh.RetentionLimit,
		TwilioSID:             env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:           env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:            env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
	}

	if cfg.OTPLength <= 0 {
		cfg.OTPLength = 4
	}
	if cfg.RefreshRetentionLimit <= 0 {
		cfg.RefreshRetentionLimit = 2
	}

	return cfg, nil
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
