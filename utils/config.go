package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

const REVISION = "1.2.0"

type Config struct {
	Env               string `mapstructure:"ENV"`
	ServerPort        int    `mapstructure:"SERVER_PORT"`
	SigningKey        string `mapstructure:"SIGNING_KEY"`
	DBUsername        string `mapstructure:"DB_USERNAME"`
	DBPassword        string `mapstructure:"DB_PASSWORD"`
	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            string `mapstructure:"DB_PORT"`
	DBDriver          string `mapstructure:"DB_DRIVER"`
	DBName            string `mapstructure:"DB_NAME"`
	SSLMode           string `mapstructure:"SSLMODE"`
	RedisHost         string `mapstructure:"REDIS_HOST"`
	RedisPort         string `mapstructure:"REDIS_PORT"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	WalletCurrency    string `mapstructure:"WALLET_CURRENCY"`
	DailyTransferCap  string `mapstructure:"DAILY_TRANSFER_CAP"`
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioKeySid      string `mapstructure:"TWILIO_KEY_SID"`
	TwilioKeySecret   string `mapstructure:"TWILIO_KEY_SECRET"`
	TwilioSenderPhone string `mapstructure:"TWILIO_SENDER_PHONE"`
	AWSRegion         string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID    string `mapstructure:"AWS_ACCESS_KEY"`
	AWSSecretKey      string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	PlunkBaseUrl      string `mapstructure:"PLUNK_BASE_URL"`
	PlunkApiKey       string `mapstructure:"PLUNK_API_KEY"`
}

func LoadConfig(path string) (*Config, error) {
	// Validate that the path is not empty
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	// Disable environment variable prefix
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Configure config file
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	// Create config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ServerPort == 0 {
		return fmt.Errorf("server port must be specified")
	}

	if config.DBUsername == "" || config.DBPassword == "" {
		return fmt.Errorf("database credentials must be provided")
	}

	if config.WalletCurrency == "" {
		config.WalletCurrency = "INR"
	}

	return nil
}

// Redact masks sensitive information for logging
func (c *Config) Redact() Config {
	redacted := *c
	redacted.SigningKey = "****"
	redacted.DBPassword = "****"
	redacted.RedisPassword = "****"
	redacted.TwilioKeySecret = "****"
	redacted.AWSSecretKey = "****"
	redacted.PlunkApiKey = "****"
	return redacted
}
