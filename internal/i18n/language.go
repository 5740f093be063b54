// Package i18n holds the static phrase tables used to localize household
// messages, plus the optional remote fallback for phrases the tables miss.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Tamil   Language = "tamil"
	Telugu  Language = "telugu"
	Kannada Language = "kannada"
)

// Supported lists every language the tables carry, english first.
var Supported = []Language{English, Hindi, Tamil, Telugu, Kannada}

var byBase = map[string]Language{
	"en": English,
	"hi": Hindi,
	"ta": Tamil,
	"te": Telugu,
	"kn": Kannada,
}

// ParseLanguage accepts a language name ("Hindi") or a BCP 47 tag ("hi",
// "ta-IN"). Anything unrecognized is english.
func ParseLanguage(s string) Language {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Supported {
		if key == string(l) {
			return l
		}
	}
	if key == "" {
		return English
	}
	tag, err := language.Parse(key)
	if err != nil {
		return English
	}
	base, _ := tag.Base()
	if l, ok := byBase[base.String()]; ok {
		return l
	}
	return English
}

func (l Language) Code() string {
	for code, lang := range byBase {
		if lang == l {
			return code
		}
	}
	return "en"
}

func (l Language) Valid() bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}
