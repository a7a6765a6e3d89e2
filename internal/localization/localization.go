// Package localization provides the user-facing strings of the complaint
// screens. Catalogs are JSON files named by language code (e.g. "en.json");
// the English catalog is embedded.
package localization

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed locales/*.json
var embedded embed.FS

// DefaultLanguage is the fallback for missing languages and keys.
const DefaultLanguage = "en"

// Localizer looks up catalog strings by language and key. Catalogs are
// immutable after construction.
type Localizer struct {
	catalogs map[string]map[string]string
}

// NewEmbeddedLocalizer loads the catalogs shipped with the binary.
func NewEmbeddedLocalizer() (*Localizer, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return NewLocalizer(sub)
}

// NewLocalizer loads every *.json catalog at the root of fsys.
func NewLocalizer(fsys fs.FS) (*Localizer, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}

	catalogs := make(map[string]map[string]string, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var catalog map[string]string
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		catalogs[strings.TrimSuffix(name, ".json")] = catalog
	}
	return &Localizer{catalogs: catalogs}, nil
}

func (l *Localizer) lookup(lang, key string) (string, bool) {
	value, ok := l.catalogs[lang][key]
	return value, ok
}

// GetString returns the string for key in lang, falling back to English and
// then to the key itself.
func (l *Localizer) GetString(lang, key string) string {
	if value, ok := l.lookup(lang, key); ok {
		return value
	}
	if value, ok := l.lookup(DefaultLanguage, key); ok {
		return value
	}
	return key
}

// Format is GetString followed by fmt.Sprintf.
func (l *Localizer) Format(lang, key string, args ...any) string {
	return fmt.Sprintf(l.GetString(lang, key), args...)
}
