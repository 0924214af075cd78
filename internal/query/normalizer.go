// Package query normalizes raw user queries and extracts embedded
// quantities and units. Normalization never fails; a query with no usable
// signal simply yields an empty token list.
package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sitecrew/estimator/internal/domain"
)

// Parsed is the result of parsing a raw query.
type Parsed struct {
	Normalized string
	Tokens     []string
	Quantity   *float64
	Unit       string
	Language   domain.Language
}

// diacriticsRemover strips combining marks (Arabic diacritics included)
// after canonical decomposition.
var diacriticsRemover = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// unitAliases maps spelled-out or typographic unit forms to the token
// spelling the recognizer works with. Applied before tokenization.
var unitAliases = []struct{ from, to string }{
	{"م٣", "م3"},
	{"م²", "م2"},
	{"م³", "م3"},
	{"متر مكعب", "m3"},
	{"متر مربع", "m2"},
	{"cubic meters", "m3"},
	{"cubic meter", "m3"},
	{"cubic", "m3"},
	{"square meters", "m2"},
	{"square meter", "m2"},
	{"sqm", "m2"},
	{"cum", "m3"},
}

// unitTokens are the unit spellings recognized next to a quantity.
var unitTokens = []string{"m3", "م3", "m2", "م2", "ton", "طن", "each", "عدد"}

// Normalize lowercases, strips Arabic diacritics, folds Arabic-Indic
// numerals to ASCII, collapses punctuation to whitespace and squeezes
// repeated whitespace. Idempotent: Normalize(Normalize(q)) == Normalize(q).
func Normalize(raw string) string {
	s := strings.ToLower(raw)

	if stripped, _, err := transform.String(diacriticsRemover, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Parse normalizes a raw query and extracts the first embedded quantity and
// its unit. A number adjacent to a recognized unit token wins; otherwise the
// first bare number anywhere in the query is used with no unit. Absence of a
// number yields a nil quantity, never an error.
func Parse(raw string) Parsed {
	lang := DetectLanguage(raw)

	aliased := strings.ToLower(raw)
	for _, a := range unitAliases {
		aliased = strings.ReplaceAll(aliased, a.from, a.to)
	}

	normalized := Normalize(aliased)
	tokens := strings.Fields(normalized)

	qty, unit := extractQuantity(tokens)

	return Parsed{
		Normalized: normalized,
		Tokens:     tokens,
		Quantity:   qty,
		Unit:       unit,
		Language:   lang,
	}
}

// DetectLanguage reports Arabic when the query contains any rune from the
// Arabic Unicode block, English otherwise.
func DetectLanguage(raw string) domain.Language {
	for _, r := range raw {
		if r >= 0x0600 && r <= 0x06FF {
			return domain.LanguageArabic
		}
	}
	return domain.LanguageEnglish
}

// extractQuantity scans tokens for a number bound to a recognized unit,
// falling back to the first bare number found anywhere.
func extractQuantity(tokens []string) (*float64, string) {
	// Pass 1: number and unit fused in one token ("50m3") or a unit token
	// directly following a number ("50 m3").
	for i, tok := range tokens {
		for _, unit := range unitTokens {
			if !strings.Contains(tok, unit) {
				continue
			}
			if v, ok := parseNumber(strings.Replace(tok, unit, "", 1)); ok {
				return &v, unit
			}
			if i > 0 {
				if v, ok := parseNumber(tokens[i-1]); ok {
					return &v, unit
				}
			}
		}
	}

	// Pass 2: first bare number anywhere. Tokens carrying a unit spelling
	// were already considered in pass 1; their embedded digits belong to
	// the unit, not to a quantity.
	for _, tok := range tokens {
		if containsUnitToken(tok) {
			continue
		}
		if v, ok := parseNumber(tok); ok {
			return &v, ""
		}
	}

	return nil, ""
}

func containsUnitToken(tok string) bool {
	for _, unit := range unitTokens {
		if strings.Contains(tok, unit) {
			return true
		}
	}
	return false
}

// parseNumber extracts the maximal numeric substring (decimals supported)
// from a token. Malformed numbers are treated as absent, not as errors.
func parseNumber(tok string) (float64, bool) {
	start := -1
	end := -1
	for i, r := range tok {
		if unicode.IsDigit(r) || r == '.' {
			if start < 0 {
				start = i
			}
			end = i + utf8.RuneLen(r)
		} else if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.Trim(tok[start:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
