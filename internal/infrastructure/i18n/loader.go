// Package i18n loads the translation catalogs served with the page and hands
// out the per-visitor content.Catalogs view.
package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/content"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
)

const (
	GreetingsFile  = "greetings.json"
	FallbackLocale = "en"
)

// Bundle holds every catalog read at startup. It is immutable after Load.
type Bundle struct {
	full      map[string]content.Catalog
	greetings content.GreetingCatalog
}

// Load reads "<locale>.json" for each fully localized locale plus the greetings
// file. English is always attempted since it backs the UI strings of every other
// locale. Missing or malformed files are logged and skipped.
func Load(fsys fs.FS, locales []string, logger *logging.ChanneledLogger) *Bundle {
	b := &Bundle{full: make(map[string]content.Catalog)}
	if fsys == nil {
		return b
	}

	seen := map[string]bool{}
	for _, locale := range append([]string{FallbackLocale}, locales...) {
		if seen[locale] {
			continue
		}
		seen[locale] = true

		var cat content.Catalog
		if err := readJSON(fsys, locale+".json", &cat); err != nil {
			logSkip(logger, locale+".json", err)
			continue
		}
		b.full[locale] = cat
	}

	var greetings content.GreetingCatalog
	if err := readJSON(fsys, GreetingsFile, &greetings); err != nil {
		logSkip(logger, GreetingsFile, err)
	} else {
		b.greetings = greetings
	}

	if logger != nil {
		logger.Startup().Info("Translation catalogs loaded", "fullLocales", len(b.full), "greetingLocales", len(b.greetings))
	}
	return b
}

// Catalogs returns the catalogs for one visitor. Full is only set for a fully
// localized locale; UI falls back to English.
func (b *Bundle) Catalogs(locale string, fullyLocalized bool) content.Catalogs {
	if b == nil {
		return content.Catalogs{}
	}
	var cats content.Catalogs
	if fullyLocalized {
		cats.Full = b.full[locale]
	}
	cats.UI = cats.Full
	if cats.UI == nil {
		cats.UI = b.full[FallbackLocale]
	}
	cats.Greetings = b.greetings
	return cats
}

func readJSON(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func logSkip(logger *logging.ChanneledLogger, name string, err error) {
	if logger == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		logger.Startup().Warn("Translation catalog not found", "file", name)
		return
	}
	logger.Startup().Error("Translation catalog skipped", "file", name, "error", err.Error())
}
