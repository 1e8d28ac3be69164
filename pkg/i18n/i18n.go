// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package i18n resolves bilingual (Lao/English) display strings.

Every public-facing catalog field is stored as a small per-language mapping
([Text]) rather than a flat string. This package owns the fallback chain so
that a missing translation degrades to the default language instead of
rendering an empty card.

Resolution Order:

  - Exact language match.
  - Default language (English).
  - Caller-supplied literal fallback.
  - Empty string (free-form text) or the lookup key (keyed dictionaries).

All functions are pure and total: malformed or absent input degrades to the
next fallback, it never panics.
*/
package i18n

import "golang.org/x/text/language"

// # Language Codes

// Lang identifies one of the site's supported display languages.
type Lang string

const (
	// LangEnglish is the default language and the required fallback key.
	LangEnglish Lang = "en"

	// LangLao is the primary audience language.
	LangLao Lang = "lo"

	// LangThai is kept for the legacy Thai content variant.
	LangThai Lang = "th"
)

// DefaultLang is the terminal language in every fallback chain.
const DefaultLang = LangEnglish

// supported is the closed set of languages the resolver recognises.
var supported = []Lang{LangEnglish, LangLao, LangThai}

// matcher maps arbitrary BCP-47 tags onto the supported set.
// The first entry is the matcher's default, which keeps unsupported
// tags collapsing onto English.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Lao,
	language.Thai,
})

// IsSupported reports whether code is one of the recognised language codes.
func (l Lang) IsSupported() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

// Tag returns the BCP-47 tag for collation and formatting purposes.
func (l Lang) Tag() language.Tag {
	switch l {
	case LangLao:
		return language.Lao
	case LangThai:
		return language.Thai
	default:
		return language.English
	}
}

// Parse normalises an arbitrary language tag (e.g. "lo-LA", "en_US", "xx")
// onto a supported [Lang]. Unsupported or malformed tags yield [DefaultLang].
func Parse(tag string) Lang {
	if tag == "" {
		return DefaultLang
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return DefaultLang
	}

	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return DefaultLang
	}

	return supported[index]
}

// # Localized Text

// Text is a per-language string mapping for a single bilingual field.
//
// A Text is well-formed for fallback purposes when the [DefaultLang] entry
// is present; [Validate] checks this at write time so that reads never need to.
type Text map[Lang]string

// Resolve returns the display string for lang, walking the fallback chain.
//
// A nil or empty Text resolves to the literal fallback, or "" when no
// fallback is supplied. Unsupported languages are treated as [DefaultLang].
func Resolve(text Text, lang Lang, fallback string) string {
	if len(text) == 0 {
		return fallback
	}

	if !lang.IsSupported() {
		lang = DefaultLang
	}

	if value, ok := text[lang]; ok && value != "" {
		return value
	}

	if value, ok := text[DefaultLang]; ok && value != "" {
		return value
	}

	return fallback
}

// Get is shorthand for [Resolve] with no literal fallback.
func (t Text) Get(lang Lang) string {
	return Resolve(t, lang, "")
}

// Validate reports whether the text carries the mandatory default-language
// entry. Admin write paths reject content that fails this check.
func (t Text) Validate() bool {
	return t[DefaultLang] != ""
}

// Merge overlays non-empty entries from other onto a copy of t.
// Used by partial-update handlers so a PATCH of one language does not
// clobber the other.
func (t Text) Merge(other Text) Text {
	merged := make(Text, len(t)+len(other))
	for lang, value := range t {
		merged[lang] = value
	}
	for lang, value := range other {
		if value != "" {
			merged[lang] = value
		}
	}
	return merged
}

// # Keyed Dictionaries

// Dictionary is a keyed lookup table of localized strings (UI labels,
// enum display names). Unlike free-form [Text], a missing entry falls back
// to the lookup key itself so broken keys are visible rather than blank.
type Dictionary map[string]Text

// Lookup resolves the entry for key in the requested language.
// The final fallback is the key itself.
func (d Dictionary) Lookup(key string, lang Lang) string {
	if d == nil {
		return key
	}

	text, ok := d[key]
	if !ok {
		return key
	}

	return Resolve(text, lang, key)
}
