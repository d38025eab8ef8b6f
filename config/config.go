package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	LiqPay
	Kafka
}

type APP struct {
	PORT        string `env:"APP_PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:3000"`
}

type LiqPay struct {
	PublicKey  string `env:"LIQPAY_PUBLIC_KEY"`
	PrivateKey string `env:"LIQPAY_PRIVATE_KEY"`
	Sandbox    bool   `env:"LIQPAY_SANDBOX"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"moderation.submission.received,donations.intent.created"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// IsProduction reports whether this is a production-intended deployment,
// where missing LiqPay keys are a hard configuration error instead of a
// reason to emit unsigned preview payloads.
func (a APP) IsProduction() bool {
	return a.Environment == "production"
}
