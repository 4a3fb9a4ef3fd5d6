// Package i18n holds the UI string table and language negotiation.
package i18n

import (
	"golang.org/x/text/language"
)

// Supported UI languages
const (
	English    = "en-US"
	Portuguese = "pt-BR"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Match negotiates the closest supported language for a tag such as
// "pt", "pt_PT" or "en-GB". Unknown input yields English.
func Match(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English
	}
	return supported[idx].String()
}

// Next returns the language after tag in the toggle order
func Next(tag string) string {
	if Match(tag) == Portuguese {
		return English
	}
	return Portuguese
}

// T translates an English UI string. English and untranslated keys
// return the key itself.
func T(lang, key string) string {
	if lang == English {
		return key
	}
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return key
}

// Translator binds T to one language
type Translator string

// T translates key into the bound language
func (tr Translator) T(key string) string {
	return T(string(tr), key)
}
