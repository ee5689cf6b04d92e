package domain

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Locale es el idioma de los textos generados.
type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocalePortuguese Locale = "pt"
)

var ErrInvalidLocale = errors.New("invalid locale")

var supportedTags = []language.Tag{language.English, language.Portuguese}

var localeMatcher = language.NewMatcher(supportedTags)

// ParseLocale acepta "en", "pt" y variantes regionales ("pt-BR", "en_GB").
func ParseLocale(raw string) (Locale, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if raw == "" {
		return "", ErrInvalidLocale
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", ErrInvalidLocale
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return LocaleEnglish, nil
	case "pt":
		return LocalePortuguese, nil
	default:
		return "", ErrInvalidLocale
	}
}

// MatchAcceptLanguage elige el locale soportado más cercano a un header Accept-Language.
// Si el header está vacío o es inválido devuelve fallback.
func MatchAcceptLanguage(header string, fallback Locale) Locale {
	if strings.TrimSpace(header) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	if supportedTags[idx] == language.Portuguese {
		return LocalePortuguese
	}
	return LocaleEnglish
}

// Valid indica si el locale es uno de los soportados.
func (l Locale) Valid() bool {
	return l == LocaleEnglish || l == LocalePortuguese
}
