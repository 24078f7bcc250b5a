package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEPTSITE_SESSION_SECRET", strings.Repeat("s", 32))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/deptsite.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.UseMySQL() {
		t.Error("UseMySQL should be false without DEPTSITE_DATABASE_URL")
	}
	if cfg.DoSeed {
		t.Error("DoSeed should default to false")
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("DEPTSITE_SESSION_SECRET", "short")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a short session secret")
	}
}

func TestLoadMySQL(t *testing.T) {
	t.Setenv("DEPTSITE_SESSION_SECRET", strings.Repeat("s", 32))
	t.Setenv("DEPTSITE_DATABASE_URL", "user:pass@tcp(db:3306)/deptsite?parseTime=true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseMySQL() {
		t.Error("UseMySQL should be true when DEPTSITE_DATABASE_URL is set")
	}
}
