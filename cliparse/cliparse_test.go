// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	os.Setenv("JOIN_CODE_SALT", "test-join")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected default database type postgres, got %q", cfg.DatabaseType)
	}
	if cfg.ClaimRetryLimit != 5 {
		t.Errorf("expected default retry limit 5, got %d", cfg.ClaimRetryLimit)
	}
	if cfg.FeedPollInterval != 2*time.Second {
		t.Errorf("expected default poll interval 2s, got %v", cfg.FeedPollInterval)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "sqlite", "-admin-salt", "s1", "-join-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_RejectsBadDatabaseType(t *testing.T) {
	defer os.Clearenv()

	_, err := ParseFlags([]string{"-d", "x", "-t", "oracle", "-admin-salt", "s1", "-join-salt", "s2"})
	if err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestParseFlags_RequiresSalts(t *testing.T) {
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "x"}); err == nil {
		t.Error("expected error when ADMIN_KEY_SALT missing")
	}
	if _, err := ParseFlags([]string{"-d", "x", "-admin-salt", "s1"}); err == nil {
		t.Error("expected error when JOIN_CODE_SALT missing")
	}
}
