package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH", "DEFAULT_LOCALE",
		"DISCORD_TOKEN", "DISCORD_CHANNEL_ID", "OTEL_ENDPOINT", "OTEL_ENABLED", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("DEFAULT_LOCALE", "es")
	t.Setenv("SQLITE_PATH", "retreat.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/retreat?sslmode=disable" {
		t.Fatalf("DatabaseURL = %q, want local default", cfg.DatabaseURL)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %s, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.DiscordEnabled() {
		t.Fatal("discord should be disabled without token")
	}
}

func TestValidateZeroConfig(t *testing.T) {
	var cfg Config

	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for zero config")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			HTTPAddr:        ":8080",
			StorageDriver:   DriverSQLite,
			SQLitePath:      "retreat.db",
			DefaultLocale:   "es",
			ShutdownTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "sqlite ok", mutate: func(*Config) {}},
		{name: "driver upper case", mutate: func(c *Config) { c.StorageDriver = " SQLite " }},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "mysql" }, wantErr: "STORAGE_DRIVER"},
		{name: "sqlite without path", mutate: func(c *Config) { c.SQLitePath = " " }, wantErr: "SQLITE_PATH"},
		{name: "postgres bad url", mutate: func(c *Config) {
			c.StorageDriver = DriverPostgres
			c.DatabaseURL = "localhost"
		}, wantErr: "DATABASE_URL"},
		{name: "postgres ok", mutate: func(c *Config) {
			c.StorageDriver = DriverPostgres
			c.DatabaseURL = "postgres://u:p@db:5432/retreat"
		}},
		{name: "discord token without channel", mutate: func(c *Config) { c.DiscordToken = "abc" }, wantErr: "set together"},
		{name: "discord channel not numeric", mutate: func(c *Config) {
			c.DiscordToken = "abc"
			c.DiscordChannel = "general"
		}, wantErr: "digits only"},
		{name: "discord ok", mutate: func(c *Config) {
			c.DiscordToken = "abc"
			c.DiscordChannel = "123456789"
		}},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: "SHUTDOWN_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validate error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("Load error = %v, want parse env error", err)
	}
}
