package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime settings read from the environment (and from a
// .env file, loaded by godotenv/autoload in main).
type Config struct {
	Port string

	AWSRegion        string
	DynamoDBEndpoint string
	BookingsTable    string
	PaymentsTable    string

	RabbitMQURL        string
	NotificationsQueue string

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	PortfolioCacheTTL time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	// Location decides which calendar day "today" is for the ledger.
	Location *time.Location
}

const (
	DefaultPort               = "8080"
	DefaultBookingsTable      = "bookings"
	DefaultPaymentsTable      = "payments"
	DefaultNotificationsQueue = "booking.notifications"
	DefaultTimezone           = "Asia/Manila"
)

// Load reads every setting, falling back to defaults that work against a
// local docker-compose stack.
func Load() Config {
	return Config{
		Port:                   getenvDefault("APP_PORT", DefaultPort),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		BookingsTable:          getenvDefault("BOOKINGS_TABLE", DefaultBookingsTable),
		PaymentsTable:          getenvDefault("PAYMENTS_TABLE", DefaultPaymentsTable),
		RabbitMQURL:            firstEnv("RABBITMQ_URL", "AMQP_URL"),
		NotificationsQueue:     getenvDefault("NOTIFICATIONS_QUEUE", DefaultNotificationsQueue),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                atoiDefault("REDIS_DB", 0),
		PortfolioCacheTTL:      durationDefault("PORTFOLIO_CACHE_TTL", 30*time.Second),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     PaymentGatewayMockEnabled(),
		Location:               loadLocation(getenvDefault("LEDGER_TIMEZONE", DefaultTimezone)),
	}
}

// PaymentGatewayMockEnabled reports whether payments should skip Mercado Pago.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func atoiDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("[config] invalid int for %s: %q, using %d", key, s, def)
		return def
	}
	return n
}

func durationDefault(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		log.Printf("[config] invalid duration for %s: %q, using %s", key, s, def)
		return def
	}
	return d
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[config] unknown timezone %q, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
