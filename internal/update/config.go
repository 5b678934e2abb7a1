package update

import (
	"os"
	"strconv"
	"strings"

	"todolite/internal/model"
)

type RuntimeConfig struct {
	Ordering    model.Ordering
	NotePreview bool
	TitleLimit  int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Ordering:    model.OrderInsertion,
		NotePreview: true,
		TitleLimit:  256,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if raw := strings.TrimSpace(os.Getenv("TODOLITE_ORDERING")); raw != "" {
		if ordering, err := model.ParseOrdering(raw); err == nil {
			cfg.Ordering = ordering
		}
	}
	if v, ok := getEnvBool("TODOLITE_NOTE_PREVIEW"); ok {
		cfg.NotePreview = v
	}
	if v, ok := getEnvInt("TODOLITE_TITLE_LIMIT"); ok && v > 0 {
		cfg.TitleLimit = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
