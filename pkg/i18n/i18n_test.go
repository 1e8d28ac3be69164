// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/champastudio/champa/pkg/i18n"
)

/*
TestResolve_FallbackChain verifies the full resolution order:
exact match, default language, literal fallback, empty string.
*/
func TestResolve_FallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		text     i18n.Text
		lang     i18n.Lang
		fallback string
		want     string
	}{
		{"exact_match", i18n.Text{"en": "Logo", "lo": "ໂລໂກ້"}, i18n.LangLao, "x", "ໂລໂກ້"},
		{"missing_lang_falls_to_english", i18n.Text{"en": "Logo"}, i18n.LangLao, "x", "Logo"},
		{"missing_lang_and_default", i18n.Text{"th": "โลโก้"}, i18n.LangLao, "fallback", "fallback"},
		{"empty_value_is_missing", i18n.Text{"lo": "", "en": "Logo"}, i18n.LangLao, "x", "Logo"},
		{"nil_text_uses_fallback", nil, i18n.LangEnglish, "placeholder", "placeholder"},
		{"nil_text_no_fallback", nil, i18n.LangEnglish, "", ""},
		{"unsupported_lang_treated_as_default", i18n.Text{"en": "About"}, i18n.Lang("fr"), "x", "About"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got := i18n.Resolve(tt.text, tt.lang, tt.fallback)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

/*
TestParse checks BCP-47 tag normalisation onto the supported set.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		tag  string
		want i18n.Lang
	}{
		{"en", i18n.LangEnglish},
		{"lo", i18n.LangLao},
		{"lo-LA", i18n.LangLao},
		{"th", i18n.LangThai},
		{"en-GB", i18n.LangEnglish},
		{"", i18n.LangEnglish},
		{"not a tag!!", i18n.LangEnglish},
		{"de", i18n.LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Parse(tt.tag))
		})
	}
}

/*
TestText_Validate ensures the mandatory default-language invariant.
*/
func TestText_Validate(t *testing.T) {
	assert.True(t, i18n.Text{"en": "Branding", "lo": "ການສ້າງແບຣນ"}.Validate())
	assert.False(t, i18n.Text{"lo": "ການສ້າງແບຣນ"}.Validate())
	assert.False(t, i18n.Text{}.Validate())
}

/*
TestText_Merge checks that partial updates overlay without clobbering.
*/
func TestText_Merge(t *testing.T) {
	base := i18n.Text{"en": "Web Design", "lo": "ອອກແບບເວັບ"}
	merged := base.Merge(i18n.Text{"en": "Web Development", "lo": ""})

	assert.Equal(t, "Web Development", merged[i18n.LangEnglish])
	assert.Equal(t, "ອອກແບບເວັບ", merged[i18n.LangLao])

	// Original must be untouched.
	assert.Equal(t, "Web Design", base[i18n.LangEnglish])
}

/*
TestDictionary_Lookup verifies keyed dictionaries fall back to the key itself.
*/
func TestDictionary_Lookup(t *testing.T) {
	dict := i18n.Dictionary{
		"nav.portfolio": {"en": "Portfolio", "lo": "ຜົນງານ"},
		"nav.contact":   {"en": "Contact"},
	}

	assert.Equal(t, "ຜົນງານ", dict.Lookup("nav.portfolio", i18n.LangLao))
	assert.Equal(t, "Contact", dict.Lookup("nav.contact", i18n.LangLao))
	assert.Equal(t, "nav.missing", dict.Lookup("nav.missing", i18n.LangLao))

	var nilDict i18n.Dictionary
	assert.Equal(t, "nav.home", nilDict.Lookup("nav.home", i18n.LangEnglish))
}
