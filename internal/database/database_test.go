package database

import (
	"path/filepath"
	"testing"

	"ratecurves/internal/config"
	"ratecurves/internal/models"
)

func TestNewManager_sqlite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "curves.db"),
	}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, model := range []any{&models.Curve{}, &models.Instrument{}, &models.Quote{}} {
		if !m.DB().Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}
}

func TestNewManager_unsupportedDriver(t *testing.T) {
	_, err := NewManager(&config.Config{DBDriver: "mysql"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
