package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Token    TokenConfig
	Email    EmailConfig
	OTP      OTPConfig
	Bcrypt   BcryptConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// TokenConfig holds the two independent secret+TTL pairs. Rotating a secret
// invalidates every outstanding token of that type.
type TokenConfig struct {
	AccessSecret  string
	AccessExpiry  time.Duration
	RefreshSecret string
	RefreshExpiry time.Duration
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpirySeconds int
	Length        int
}

type BcryptConfig struct {
	Cost int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_MINUTES", 60)
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_HOURS", 240)
	viper.SetDefault("OTP_EXPIRY_SECONDS", 600)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Token: TokenConfig{
			AccessSecret:  viper.GetString("ACCESS_TOKEN_SECRET"),
			AccessExpiry:  time.Duration(viper.GetInt("ACCESS_TOKEN_EXPIRY_MINUTES")) * time.Minute,
			RefreshSecret: viper.GetString("REFRESH_TOKEN_SECRET"),
			RefreshExpiry: time.Duration(viper.GetInt("REFRESH_TOKEN_EXPIRY_HOURS")) * time.Hour,
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpirySeconds: viper.GetInt("OTP_EXPIRY_SECONDS"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Bcrypt: BcryptConfig{
			Cost: viper.GetInt("BCRYPT_COST"),
		},
	}

	return config, nil
}
