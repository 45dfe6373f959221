package text

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Built-in family names.
const (
	FamilySans   = "sans"
	FamilyMono   = "mono"
	FamilyBold   = "sans-bold"
	FamilyItalic = "sans-italic"

	// DefaultFamily is used for empty or unknown names.
	DefaultFamily = FamilySans
)

// Family is a parsed font, usable for both shaping and outline extraction.
// A Family is safe for concurrent use.
type Family struct {
	name   string
	outl   *sfnt.Font
	shaper *gtfont.Font
}

// Name returns the registered family name.
func (f *Family) Name() string {
	return f.name
}

// ParseFamily parses TrueType or OpenType data.
func ParseFamily(name string, data []byte) (*Family, error) {
	outl, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFont, name, err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFont, name, err)
	}
	return &Family{name: name, outl: outl, shaper: face.Font}, nil
}

type registry struct {
	mu       sync.RWMutex
	families map[string]*Family
	aliases  map[string]string
}

var (
	defaultRegistry     *registry
	defaultRegistryOnce sync.Once
)

func builtins() *registry {
	defaultRegistryOnce.Do(func() {
		r := &registry{
			families: make(map[string]*Family),
			aliases:  make(map[string]string),
		}
		for _, b := range []struct {
			name    string
			data    []byte
			aliases []string
		}{
			{FamilySans, goregular.TTF, []string{"arial", "helvetica", "verdana", "sans-serif", "times new roman", "georgia", "serif"}},
			{FamilyMono, gomono.TTF, []string{"courier", "courier new", "monospace"}},
			{FamilyBold, gobold.TTF, []string{"bold"}},
			{FamilyItalic, goitalic.TTF, []string{"italic"}},
		} {
			f, err := ParseFamily(b.name, b.data)
			if err != nil {
				// embedded fonts always parse
				panic(err)
			}
			r.families[b.name] = f
			for _, a := range b.aliases {
				r.aliases[a] = b.name
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// RegisterFamily adds a family under name and any aliases. Names are
// case-insensitive. Registering an existing name replaces it.
func RegisterFamily(name string, data []byte, aliases ...string) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("%w: empty family name", ErrInvalidFont)
	}
	f, err := ParseFamily(key, data)
	if err != nil {
		return err
	}

	r := builtins()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.families[key] = f
	for _, a := range aliases {
		r.aliases[normalizeName(a)] = key
	}
	return nil
}

// LookupFamily resolves a family or alias name. Unknown and empty names
// resolve to DefaultFamily; ok reports whether name was recognised.
func LookupFamily(name string) (f *Family, ok bool) {
	r := builtins()
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalizeName(name)
	if alias, found := r.aliases[key]; found {
		key = alias
	}
	if f, found := r.families[key]; found {
		return f, true
	}
	return r.families[DefaultFamily], false
}

// Families returns the registered family names, sorted.
func Families() []string {
	r := builtins()
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// normalizeName lower-cases a CSS-style family name and strips quotes.
func normalizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.Trim(name, `"'`)
}
