package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qwikker/business-import/internal/domain"
)

// fileFormat is the YAML layout of a category override file.
type fileFormat struct {
	Categories map[string]fileCategory `yaml:"categories"`
}

type fileCategory struct {
	Label       string   `yaml:"label"`
	GoogleTypes []string `yaml:"google_types"`
}

// Load builds a catalog from the compiled-in table, applying the overrides
// in the YAML file at path. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category config %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse category config %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML override data. Every key must name a
// known category and every listed category must keep at least one type.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	c := Default()
	for key, override := range f.Categories {
		cat, ok := domain.ParseCategory(key)
		if !ok {
			return nil, fmt.Errorf("%w: %w %q", domain.ErrInvalidCatalog, domain.ErrUnknownCategory, key)
		}

		types := normalizeTypes(override.GoogleTypes)
		if len(types) == 0 {
			return nil, fmt.Errorf("%w: category %q has no google_types", domain.ErrInvalidCatalog, key)
		}

		p := c.profiles[cat]
		p.GoogleTypes = types
		if label := strings.TrimSpace(override.Label); label != "" {
			p.Label = label
		}
		c.profiles[cat] = p
	}

	return c, nil
}

// normalizeTypes lowercases, trims and de-duplicates provider types, keeping order.
func normalizeTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
