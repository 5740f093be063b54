package i18n

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FallbackEmoji is returned by Emoji for phrases without a table entry.
const FallbackEmoji = "🔹"

// Dictionary is what the composer needs from the translation engine.
type Dictionary interface {
	Translate(text string, lang Language) string
	Emoji(text string) string
}

// Static is the table-only Dictionary.
type Static struct{}

func (Static) Translate(text string, lang Language) string { return Translate(text, lang) }
func (Static) Emoji(text string) string                    { return Emoji(text) }

// Normalize is the lookup key for a phrase: trimmed, lowercased, inner
// whitespace collapsed, NFC.
func Normalize(text string) string {
	return norm.NFC.String(strings.ToLower(strings.Join(strings.Fields(text), " ")))
}

func lookup(text string) (entry, bool) {
	key := Normalize(text)
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	e, ok := phrases[key]
	return e, ok
}

// Translate returns the table value for text in lang, the canonical display
// form for english, and text unchanged when the phrase is unknown.
func Translate(text string, lang Language) string {
	e, ok := lookup(text)
	if !ok {
		return text
	}
	return e.in(lang)
}

// Known reports whether text has a table entry.
func Known(text string) bool {
	_, ok := lookup(text)
	return ok
}

func Emoji(text string) string {
	e, ok := lookup(text)
	if !ok || e.emoji == "" {
		return FallbackEmoji
	}
	return e.emoji
}
