package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("EVENTS_ENABLED", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.EventsEnabled)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MAX_DB_CONNS", "4")
	t.Setenv("EVENTS_ENABLED", "false")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, int32(4), cfg.MaxDBConns)
	assert.False(t, cfg.EventsEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "many")

	assert.Equal(t, 16, getEnvInt("MAX_DB_CONNS", 16))
}

func TestChannelKey(t *testing.T) {
	assert.Equal(t, "student:events", ChannelKey.StudentEvents())
	assert.Equal(t, "school:3:student_events", ChannelKey.SchoolStudentEvents(3))
}
