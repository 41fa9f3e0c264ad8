package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxSlugBaseLength = 50

// GenerateSlug cria um identificador estável de marcador a partir do nome do
// escritório e da posição 1-based do registro no arquivo.
// Formato: {kebab-case-nome}-{posição}
// Exemplo: "Escritório São Paulo" + 3 -> "escritorio-sao-paulo-3"
func GenerateSlug(nome string, ordinal int) string {
	slug := normalizeToSlug(nome)
	if slug == "" {
		return strconv.Itoa(ordinal)
	}
	return slug + "-" + strconv.Itoa(ordinal)
}

// normalizeToSlug converte texto para formato slug kebab-case
func normalizeToSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, text)
	normalized = strings.ToLower(normalized)

	reg := regexp.MustCompile(`[^a-z0-9]+`)
	slug := reg.ReplaceAllString(normalized, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugBaseLength {
		slug = slug[:MaxSlugBaseLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}
