// Package catalog maps normalized language tags to ordered lists of model
// identifiers.
//
// The order of each list is a policy decision: the first entry is the default
// model for that language (native single-language models are listed before
// the generic multilingual ones). Lookups never reorder candidates.
package catalog

import (
	"sort"

	"github.com/nadzzz/voicebox/internal/langtag"
)

// Catalog is an immutable language -> candidate models table. Keys are stored
// in normalized form so "pt-BR", "pt_br" and "pt-br" address the same entry.
type Catalog struct {
	models map[string][]string
}

// New builds a catalog from a raw table. Keys are normalized; when two raw
// keys normalize to the same tag their candidate lists are concatenated in
// the order the keys sort.
func New(table map[string][]string) *Catalog {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	models := make(map[string][]string, len(table))
	for _, k := range keys {
		norm := langtag.Normalize(k, false)
		models[norm] = append(models[norm], table[k]...)
	}
	return &Catalog{models: models}
}

// Candidates returns the models for lang, looked up by the normalized tag
// first and by its macro prefix second. The result is a copy and is empty
// when neither lookup matches.
func (c *Catalog) Candidates(lang string) []string {
	norm := langtag.Normalize(lang, false)
	if ids, ok := c.models[norm]; ok {
		return append([]string(nil), ids...)
	}
	if ids, ok := c.models[langtag.Prefix(norm)]; ok {
		return append([]string(nil), ids...)
	}
	return nil
}

// Default returns the first candidate for lang.
func (c *Catalog) Default(lang string) (string, bool) {
	ids := c.Candidates(lang)
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// Languages returns the sorted normalized keys.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.models))
	for k := range c.models {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

// Len returns the number of languages in the catalog.
func (c *Catalog) Len() int { return len(c.models) }
