package database

import (
	"testing"

	"vidstream/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:               "db",
		DBPort:               "5433",
		DBUser:               "app",
		DBPassword:           "secret",
		DBName:               "vidstream",
		DBSSLMode:            "disable",
		DBStatementTimeoutMS: 1500,
	}

	assert.Equal(t,
		"host=db user=app password=secret dbname=vidstream port=5433 sslmode=disable statement_timeout=1500",
		DSN(cfg))

	cfg.DBStatementTimeoutMS = 0
	assert.NotContains(t, DSN(cfg), "statement_timeout")
}
