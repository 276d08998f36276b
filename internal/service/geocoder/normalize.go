package geocoder

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// abbreviations of street types, expanded only when followed by a dot
var abbreviations = []struct {
	re   *regexp.Regexp
	full string
}{
	{regexp.MustCompile(`(^|[\s,])r\.\s*`), "${1}rua "},
	{regexp.MustCompile(`(^|[\s,])av\.\s*`), "${1}avenida "},
	{regexp.MustCompile(`(^|[\s,])trav\.\s*`), "${1}travessa "},
	{regexp.MustCompile(`(^|[\s,])tv\.\s*`), "${1}travessa "},
	{regexp.MustCompile(`(^|[\s,])al\.\s*`), "${1}alameda "},
	{regexp.MustCompile(`(^|[\s,])pc\.\s*`), "${1}praça "},
	{regexp.MustCompile(`(^|[\s,])rod\.\s*`), "${1}rodovia "},
	{regexp.MustCompile(`(^|[\s,])est\.\s*`), "${1}estrada "},
}

var (
	commaRun = regexp.MustCompile(`\s*,[\s,]*`)
	spaceRun = regexp.MustCompile(`\s+`)

	streetPrefix = regexp.MustCompile(`^((?:rua|avenida|travessa|alameda|praça|praca|rodovia|estrada)\s+[^,]+)`)
)

// Normalize lower-cases the address, collapses whitespace and commas and
// expands street type abbreviations.
func Normalize(address string) string {
	s := cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(address))

	for _, a := range abbreviations {
		s = a.re.ReplaceAllString(s, a.full)
	}

	s = commaRun.ReplaceAllString(s, ", ")
	s = spaceRun.ReplaceAllString(s, " ")

	return strings.Trim(s, " ,")
}

// CompleteLocality appends the default locality to an address that does not name one.
// An address naming the city or state but no country only gets the country appended.
func CompleteLocality(normalized string, loc models.Locality, country string, aliases Aliases) string {
	folded := fold(normalized)

	hasCountry := containsWord(folded, fold(country)) || containsAny(folded, aliases.Country)
	hasRegion := containsWord(folded, fold(loc.City)) ||
		containsWord(folded, fold(loc.State)) ||
		containsAny(folded, aliases.Region)

	switch {
	case !hasCountry && !hasRegion:
		return joinNonEmpty(normalized, loc.City, loc.State, country)
	case !hasCountry:
		return joinNonEmpty(normalized, country)
	default:
		return normalized
	}
}

// ExtractStreet returns the leading street ("rua x") of a normalized address.
func ExtractStreet(normalized string) (string, bool) {
	m := streetPrefix.FindStringSubmatch(normalized)
	if m == nil {
		return "", false
	}

	street := strings.TrimSpace(m[1])
	return street, street != ""
}

// NormalizeCEP keeps only the digits of a postal code. ok is false unless exactly 8 remain.
func NormalizeCEP(postalCode string) (string, bool) {
	var b strings.Builder
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cep := b.String()
	return cep, len(cep) == 8
}

// fold lower-cases s and strips diacritics, "São Gonçalo" becomes "sao goncalo".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return cases.Lower(language.Und).String(strings.TrimSpace(out))
}

// containsWord reports whether needle occurs in s delimited by non alphanumeric runes.
// Both arguments are expected to be folded.
func containsWord(s, needle string) bool {
	if needle == "" {
		return false
	}

	for offset := 0; offset < len(s); {
		i := strings.Index(s[offset:], needle)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(needle)

		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			return true
		}
		offset = start + 1
	}

	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if containsWord(s, fold(n)) {
			return true
		}
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
