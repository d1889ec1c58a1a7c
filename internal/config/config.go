package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Bcrypt    BcryptConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Audit     AuditConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	// BaseURL is the externally reachable URL used to build links in emails.
	BaseURL       string
	IsDevelopment bool
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  int64 // seconds
	RefreshExpiry int64 // seconds
	TempExpiry    int64 // seconds, email-verification / password-reset tokens
}

type BcryptConfig struct {
	Cost int
}

type MailConfig struct {
	APIKey string
	From   string
}

type RateLimitConfig struct {
	// RatePerIP like "100-M"; empty disables.
	RatePerIP string
}

type RedisConfig struct {
	URL string
}

type AuditConfig struct {
	WebhookURL string
}

type CORSConfig struct {
	Origins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnvOrDefault("PORT", "8080"),
			BaseURL:       getEnvOrDefault("SERVER_URL", "http://localhost:8080"),
			IsDevelopment: viper.GetBool("DEV_MODE"),
		},
		Mongo: MongoConfig{
			URI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnvOrDefault("MONGO_DB", "projectmanagement"),
		},
		JWT: JWTConfig{
			AccessSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
			RefreshSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
			AccessExpiry:  viper.GetInt64("ACCESS_TOKEN_EXPIRY"),
			RefreshExpiry: viper.GetInt64("REFRESH_TOKEN_EXPIRY"),
			TempExpiry:    viper.GetInt64("TEMP_TOKEN_EXPIRY"),
		},
		Bcrypt: BcryptConfig{
			Cost: viper.GetInt("BCRYPT_COST"),
		},
		Mail: MailConfig{
			APIKey: os.Getenv("MAIL_API_KEY"),
			From:   getEnvOrDefault("MAIL_FROM", "taskmanager@example.com"),
		},
		RateLimit: RateLimitConfig{
			RatePerIP: viper.GetString("RATE_PER_IP"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Audit: AuditConfig{
			WebhookURL: os.Getenv("AUDIT_WEBHOOK_URL"),
		},
		CORS: CORSConfig{
			Origins: viper.GetStringSlice("CORS_ORIGIN"),
		},
	}
	if cfg.JWT.AccessExpiry <= 0 {
		cfg.JWT.AccessExpiry = 900 // 15 min
	}
	if cfg.JWT.RefreshExpiry <= 0 {
		cfg.JWT.RefreshExpiry = 604800 // 7 days
	}
	if cfg.JWT.TempExpiry <= 0 {
		cfg.JWT.TempExpiry = 1200 // 20 min
	}
	if cfg.Bcrypt.Cost <= 0 {
		cfg.Bcrypt.Cost = 10
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
