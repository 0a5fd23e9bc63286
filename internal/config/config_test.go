package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	cfg := New()
	cfg.Postgres.User = "postgres"
	cfg.Postgres.Password = "postgres"
	return cfg
}

func TestNew_Env(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("ORDER_TIMEOUT", "3s")
	t.Setenv("ORDER_PUBLISH_TIMEOUT", "250ms")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg := New()

	assert.Equal(t, "9000", cfg.Http.Port)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Order.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Order.PublishTimeout)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults with credentials", mutate: func(*Config) {}},
		{name: "unknown env", mutate: func(c *Config) { c.Env = "qa" }, wantErr: true},
		{name: "missing db password", mutate: func(c *Config) { c.Postgres.Password = "" }, wantErr: true},
		{name: "bad ssl mode", mutate: func(c *Config) { c.Postgres.SSLMode = "maybe" }, wantErr: true},
		{name: "zero order timeout", mutate: func(c *Config) { c.Order.Timeout = 0 }, wantErr: true},
		{name: "zero publish timeout", mutate: func(c *Config) { c.Order.PublishTimeout = 0 }, wantErr: true},
		{name: "empty publish queue", mutate: func(c *Config) { c.Kafka.PublishQueueSize = 0 }, wantErr: true},
		{name: "kafka enabled without brokers", mutate: func(c *Config) {
			c.Kafka.Enabled = true
			c.Kafka.Brokers = nil
		}, wantErr: true},
		{name: "kafka disabled ignores topics", mutate: func(c *Config) {
			c.Kafka.OrdersTopic = ""
			c.Kafka.EventsTopic = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
