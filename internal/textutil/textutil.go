// Package textutil normalizes the free-text fields that arrive with
// shipment and policy imports: token cleanup, Cyrillic transliteration,
// lenient date parsing and clause extraction.
package textutil

import (
	"regexp"
	"strings"
	"time"
)

// Normalize splits text on runs of non-word characters (the fill
// character counts as a separator too), drops empty tokens and rejoins
// the rest with a single fill character. Leading and trailing fill
// characters are trimmed, so separator-only input collapses to "".
// Word characters follow the Unicode tables, not ASCII: Cyrillic
// tokens survive normalization intact.
func Normalize(text, fill string) string {
	pattern := regexp.MustCompile(`(?:[^\p{L}\p{N}]|` + regexp.QuoteMeta(fill) + `)+`)

	parts := pattern.Split(strings.TrimSpace(text), -1)
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Trim(strings.Join(kept, fill), fill)
}

// Transliterate maps Cyrillic runes to Latin via a fixed table keyed on
// the lowercased rune. Mapped runes come out in the table's lower case;
// anything not in the table passes through with its case intact.
func Transliterate(word string) string {
	var b strings.Builder
	b.Grow(len(word))

	for _, r := range word {
		if latin, ok := cyrillicToLatin[lowerRune(r)]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

type datePattern struct {
	re     *regexp.Regexp
	layout string
}

// Ordered: the first pattern whose match also parses wins.
var datePatterns = []datePattern{
	{regexp.MustCompile(`(\D+) (\d{2}), (\d{4})`), "Jan 02, 2006"},
	{regexp.MustCompile(`(\D+), (\d{2}) (\d{4})`), "Jan, 02 2006"},
	{regexp.MustCompile(`(\d{2}) (\D+), (\d{4})`), "02 January, 2006"},
	{regexp.MustCompile(`(\d{2}) (\D+) (\d{4})`), "02 January 2006"},
}

// ParseDate scans text for one of four textual date shapes
// (abbreviated or full month names, day before or after the month).
// The second return is false when nothing matched; callers are expected
// to handle a missing date, this never errors.
func ParseDate(text string) (time.Time, bool) {
	for _, p := range datePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}
		t, err := time.Parse(p.layout, strings.TrimSpace(match))
		if err != nil {
			continue
		}
		return t, true
	}

	return time.Time{}, false
}

var (
	countryRe   = regexp.MustCompile(`One Or \w+\s+Safe\s+Port(?:\s+S|s)?\s+(?P<country>.+)$`)
	entityRe    = regexp.MustCompile(`To The Order Of (?P<entity>.*)`)
	forOrdersRe = regexp.MustCompile(`(?P<country>.*) For Orders`)
)

func regexTrim(value string, re *regexp.Regexp, group string) string {
	m := re.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[re.SubexpIndex(group)]
}

// TrimCountry extracts the destination country from a "safe port"
// discharge clause; no match returns the input unchanged.
func TrimCountry(value string) string {
	return regexTrim(value, countryRe, "country")
}

// TrimEntity extracts the consignee from a "to the order of" clause;
// no match returns the input unchanged.
func TrimEntity(value string) string {
	return regexTrim(value, entityRe, "entity")
}

// TrimForOrders strips a trailing "For Orders" qualifier from a
// destination; no match returns the input unchanged.
func TrimForOrders(value string) string {
	return regexTrim(value, forOrdersRe, "country")
}
