package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RENTAL_PICKUP_GRACE_PERIOD", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Rental.PickupGracePeriod)
	assert.Equal(t, 20, cfg.Rental.LockMaxRetries)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("RENTAL_LOCK_TTL", "3s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 3*time.Second, cfg.Rental.LockTTL)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "app", Password: "secret", Host: "db", Port: 3306, Name: "rental_shop"}}

	assert.Equal(t, "app:secret@tcp(db:3306)/rental_shop?parseTime=true&loc=UTC&time_zone=%27%2B00%3A00%27", cfg.GetDSN())
}
