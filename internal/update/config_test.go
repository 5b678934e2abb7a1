package update

import (
	"testing"

	"todolite/internal/model"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.Ordering != model.OrderInsertion {
		t.Fatalf("unexpected ordering default: %+v", cfg)
	}
	if !cfg.NotePreview || cfg.TitleLimit != 256 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TODOLITE_ORDERING", "active-first")
	t.Setenv("TODOLITE_NOTE_PREVIEW", "off")
	t.Setenv("TODOLITE_TITLE_LIMIT", "120")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Ordering != model.OrderActiveFirst {
		t.Fatalf("unexpected ordering: %+v", cfg)
	}
	if cfg.NotePreview {
		t.Fatal("expected note preview disabled from env")
	}
	if cfg.TitleLimit != 120 {
		t.Fatalf("unexpected title limit: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("TODOLITE_ORDERING", "alphabetical")
	t.Setenv("TODOLITE_TITLE_LIMIT", "-4")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Ordering != model.OrderInsertion || cfg.TitleLimit != 256 {
		t.Fatalf("expected defaults preserved, got %+v", cfg)
	}
}
