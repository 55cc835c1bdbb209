package repository

import "os"

const (
	defaultBookingsTableName = "bookings"
	defaultPaymentsTableName = "payments"
)

// tableNameOrDefault prefers the configured name, then the environment.
func tableNameOrDefault(configured, envKey, def string) string {
	if configured != "" {
		return configured
	}
	return getenvDefault(envKey, def)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
