// Package langtag normalizes BCP-47 style language tags.
//
// Every function here is total: malformed input degrades to a lowercase
// best-effort split on "-" instead of returning an error.
package langtag

import (
	"strings"

	"golang.org/x/text/language"
)

// canon replaces deprecated and macro-language members with their preferred
// forms, e.g. "cmn" becomes "zh" and "iw" becomes "he".
var canon = language.Deprecated | language.Macro | language.Legacy | language.SuppressScript

// Normalize canonicalizes tag.
//
// With macro set it returns the macro-language code only ("zh-CN" -> "zh").
// Otherwise it returns the full canonical tag in lowercase ("pt-BR" -> "pt-br").
func Normalize(tag string, macro bool) string {
	t, err := canon.Parse(strings.TrimSpace(tag))
	if err != nil {
		return fallback(tag, macro)
	}
	if macro {
		base, conf := t.Base()
		if conf == language.No {
			return fallback(tag, macro)
		}
		return base.String()
	}
	if t == language.Und {
		return fallback(tag, macro)
	}
	return strings.ToLower(t.String())
}

// Macro is shorthand for Normalize(tag, true).
func Macro(tag string) string {
	return Normalize(tag, true)
}

// Alpha3 returns the ISO 639-3 code of the tag's base language
// ("pt-pt" -> "por", "en-us" -> "eng"). A base that is already a three-letter
// code is returned as written, so macro-language members keep their own code
// ("swh" stays "swh", not "swa"). Tags that cannot be parsed fall back to
// their macro form.
func Alpha3(tag string) string {
	if base := Prefix(tag); isAlpha3(base) {
		return base
	}
	t, err := language.Deprecated.Parse(strings.TrimSpace(tag))
	if err != nil {
		return fallback(tag, true)
	}
	base, conf := t.Base()
	if conf == language.No {
		return fallback(tag, true)
	}
	return base.ISO3()
}

func isAlpha3(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Prefix returns the lowercase substring before the first "-".
func Prefix(tag string) string {
	return fallback(tag, true)
}

func fallback(tag string, macro bool) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if macro {
		tag, _, _ = strings.Cut(tag, "-")
	}
	return tag
}
