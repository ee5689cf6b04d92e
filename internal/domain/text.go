package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldTag baja a minúsculas, recorta y elimina diacríticos.
// Ej: "  Músicas de Fado " -> "musicas de fado"
func FoldTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldKey es FoldTag más separadores normalizados a "_", para claves de tabla.
// Ej: "Açores Island" -> "acores_island"
func FoldKey(s string) string {
	s = FoldTag(s)
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	}), "_")
}
