/**
 * @description
 * This package handles the configuration management for the service. It uses
 * the Viper library to read configuration from environment variables (with
 * optional .env file support), providing a centralized way to manage
 * application settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the agent ledger service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort             string  `mapstructure:"SERVER_PORT"`
	AgentID                string  `mapstructure:"AGENT_ID"`
	OpeningBalance         float64 `mapstructure:"OPENING_BALANCE"`
	Currency               string  `mapstructure:"CURRENCY"`
	SMSSenderLabel         string  `mapstructure:"SMS_SENDER_LABEL"`
	TransactionIDPrefix    string  `mapstructure:"TRANSACTION_ID_PREFIX"`
	RecentTransactionLimit int     `mapstructure:"RECENT_TRANSACTION_LIMIT"`
	RabbitMQURL            string  `mapstructure:"RABBITMQ_URL"`
	SMSEventExchange       string  `mapstructure:"SMS_EVENT_EXCHANGE"`
	SMSEventRoutingKey     string  `mapstructure:"SMS_EVENT_ROUTING_KEY"`
}

const (
	defaultOpeningBalance = 10000.00
	defaultRecentLimit    = 10
)

// LoadConfig reads configuration from environment variables from the given
// path. It uses Viper to automatically bind environment variables to the
// Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AGENT_ID", "MTN_AGENT_001")
	viper.SetDefault("OPENING_BALANCE", defaultOpeningBalance)
	viper.SetDefault("CURRENCY", "GHS")
	viper.SetDefault("SMS_SENDER_LABEL", "MTN MoMo")
	viper.SetDefault("TRANSACTION_ID_PREFIX", "MTN")
	viper.SetDefault("RECENT_TRANSACTION_LIMIT", defaultRecentLimit)
	viper.SetDefault("SMS_EVENT_EXCHANGE", "momo.events")
	viper.SetDefault("SMS_EVENT_ROUTING_KEY", "sms.outbound")

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("AGENT_ID")
	_ = viper.BindEnv("OPENING_BALANCE")
	_ = viper.BindEnv("CURRENCY")
	_ = viper.BindEnv("SMS_SENDER_LABEL")
	_ = viper.BindEnv("TRANSACTION_ID_PREFIX")
	_ = viper.BindEnv("RECENT_TRANSACTION_LIMIT")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("SMS_EVENT_EXCHANGE")
	_ = viper.BindEnv("SMS_EVENT_ROUTING_KEY")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		// If the config file is not found, we can ignore the error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}

	config.AgentID = strings.TrimSpace(config.AgentID)
	if config.AgentID == "" {
		config.AgentID = "MTN_AGENT_001"
	}

	if config.OpeningBalance < 0 {
		log.Printf("level=warn component=config msg=\"negative opening balance configured; using default\" balance=%f", config.OpeningBalance)
		config.OpeningBalance = defaultOpeningBalance
	}

	if config.RecentTransactionLimit <= 0 {
		config.RecentTransactionLimit = defaultRecentLimit
	}

	config.RabbitMQURL = strings.TrimSpace(config.RabbitMQURL)
	if strings.TrimSpace(config.TransactionIDPrefix) == "" {
		config.TransactionIDPrefix = "MTN"
	}

	return
}
