// Package textdir infers the writing mode of content from its text or its
// language tag.
package textdir

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	textlang "golang.org/x/text/language"

	"github.com/wudi/tagkit/tagging"
)

// DetectScript returns the script with the most letters in text, Latin when
// no letter belongs to a known script.
func DetectScript(text string) language.Script {
	counts := make(map[language.Script]int)
	maxCount := 0
	bestScript := language.Latin

	for _, r := range text {
		script := scriptFromRune(r)
		if script == language.Unknown {
			continue
		}
		counts[script]++
		if counts[script] > maxCount {
			maxCount = counts[script]
			bestScript = script
		}
	}
	return bestScript
}

// Direction returns the inline progression of script. vertical selects
// top-to-bottom for scripts that are traditionally set vertically.
func Direction(script language.Script, vertical bool) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	case language.Han, language.Hiragana, language.Katakana, language.Hangul, language.Mongolian:
		if vertical {
			return di.DirectionTTB
		}
	}
	return di.DirectionLTR
}

// ForDirection converts an inline direction to a writing mode.
func ForDirection(d di.Direction) tagging.WritingMode {
	switch d {
	case di.DirectionRTL:
		return tagging.WritingRlTb
	case di.DirectionTTB, di.DirectionBTT:
		return tagging.WritingTbRl
	}
	return tagging.WritingLrTb
}

// FromText infers a horizontal writing mode from the dominant script.
func FromText(text string) tagging.WritingMode {
	return ForDirection(Direction(DetectScript(text), false))
}

// FromVerticalText is FromText for content set in vertical lines.
func FromVerticalText(text string) tagging.WritingMode {
	return ForDirection(Direction(DetectScript(text), true))
}

var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Syrc": true, "Thaa": true, "Nkoo": true,
	"Adlm": true, "Rohg": true, "Mand": true, "Samr": true,
}

// FromLang infers the writing mode from a BCP 47 tag. It reports false when
// the tag does not parse or its script cannot be guessed.
func FromLang(lang string) (tagging.WritingMode, bool) {
	tag, err := textlang.Parse(lang)
	if err != nil {
		return tagging.WritingLrTb, false
	}
	script, conf := tag.Script()
	if conf == textlang.No {
		return tagging.WritingLrTb, false
	}
	if rtlScripts[script.String()] {
		return tagging.WritingRlTb, true
	}
	return tagging.WritingLrTb, true
}

// Annotate sets the writing mode of t when it has none and the inferred mode
// differs from the default. The language tag is consulted before the text.
// It reports whether a mode was set.
func Annotate(t *tagging.Tag, text string) bool {
	if _, ok := t.WritingMode(); ok {
		return false
	}
	mode := tagging.WritingLrTb
	if lang, ok := t.Lang(); ok {
		if m, ok := FromLang(lang); ok {
			mode = m
		}
	}
	if mode == tagging.WritingLrTb && text != "" {
		mode = FromText(text)
	}
	if mode == tagging.WritingLrTb {
		return false
	}
	t.Apply(tagging.WithWritingMode(mode))
	return true
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Syriac, r):
		return language.Syriac
	case unicode.Is(unicode.Thaana, r):
		return language.Thaana
	case unicode.Is(unicode.Nko, r):
		return language.Nko
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	case unicode.Is(unicode.Thai, r):
		return language.Thai
	case unicode.Is(unicode.Devanagari, r):
		return language.Devanagari
	case unicode.Is(unicode.Bengali, r):
		return language.Bengali
	case unicode.Is(unicode.Tamil, r):
		return language.Tamil
	case unicode.Is(unicode.Han, r):
		return language.Han
	case unicode.Is(unicode.Hiragana, r):
		return language.Hiragana
	case unicode.Is(unicode.Katakana, r):
		return language.Katakana
	case unicode.Is(unicode.Hangul, r):
		return language.Hangul
	case unicode.Is(unicode.Mongolian, r):
		return language.Mongolian
	}
	return language.Unknown
}
