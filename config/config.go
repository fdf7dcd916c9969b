package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort         string
	MetricsPort         string
	JWTSecret           string
	MongoDBConfig       MongoDBConfig
	PostgreSQLConfig    PostgreSQLConfig
	ElasticsearchConfig ElasticsearchConfig
	KafkaConfig         KafkaConfig
	PayPalConfig        PayPalConfig
	YapeConfig          YapeConfig
	SMTPConfig          SMTPConfig
	TracingConfig       TracingConfig
	MerchantName        string
	PendingPaymentTTL   int64
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type ElasticsearchConfig struct {
	DBHost string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Environment  string
	ReturnURL    string
	CancelURL    string
	Currency     string
}

type YapeConfig struct {
	MerchantPhone string
}

type SMTPConfig struct {
	Sender   string
	Password string
	Server   string
	Port     int
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	brokerPartition, _ := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	pendingTTL, _ := strconv.ParseInt(os.Getenv("PENDING_PAYMENT_TTL_SECONDS"), 10, 64)
	if pendingTTL == 0 {
		pendingTTL = 3600
	}

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("MONGODB_DB_NAME"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		ElasticsearchConfig: ElasticsearchConfig{
			DBHost: os.Getenv("ELASTICSEARCH_HOST"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     os.Getenv("BROKER_TOPIC"),
			BrokerPartition: brokerPartition,
		},
		PayPalConfig: PayPalConfig{
			ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
			ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
			Environment:  os.Getenv("PAYPAL_ENVIRONMENT"),
			ReturnURL:    os.Getenv("PAYPAL_RETURN_URL"),
			CancelURL:    os.Getenv("PAYPAL_CANCEL_URL"),
			Currency:     os.Getenv("PAYPAL_CURRENCY"),
		},
		YapeConfig: YapeConfig{
			MerchantPhone: os.Getenv("YAPE_MERCHANT_PHONE"),
		},
		SMTPConfig: SMTPConfig{
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Server:   os.Getenv("SMTP_SERVER"),
			Port:     smtpPort,
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		MerchantName:      os.Getenv("MERCHANT_NAME"),
		PendingPaymentTTL: pendingTTL,
	}

	if conf.PayPalConfig.Currency == "" {
		conf.PayPalConfig.Currency = "USD"
	}

	if conf.MerchantName == "" {
		conf.MerchantName = "Ravvisant"
	}

	return &conf
}
