package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Length caps per destination. Values follow the registry database schema.
const (
	maxNameLength     = 100
	maxPhoneLength    = 16
	maxEmailLength    = 254
	maxURLLength      = 2048
	maxQueryLength    = 200
	maxFilenameLength = 255
	maxDBInputLength  = 1000
)

const philSysDigits = 16

var nameTitleCaser = cases.Title(language.English)

// Name cleans a person-name field: only letters, spaces, hyphens,
// apostrophes and periods survive, repeated whitespace collapses, leading
// and trailing punctuation is trimmed, each word is title-cased, and the
// result is capped at 100 characters.
func Name(input string) string {
	s := norm.NFC.String(input)
	s = keepMatching(s, func(r rune) bool {
		return unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' || r == '.'
	})
	s = collapseWhitespace(s)
	s = strings.Trim(s, " -'.")
	s = nameTitleCaser.String(s)
	s = truncateRunes(s, maxNameLength)
	return strings.Trim(s, " -'.")
}

// PhilSysNumber normalizes a PhilSys card number: all non-digits are
// stripped, and when exactly 16 digits remain they are re-grouped as
// XXXX-XXXX-XXXX-XXXX. Any other digit count is returned ungrouped.
func PhilSysNumber(input string) string {
	digits := keepMatching(input, unicode.IsDigit)
	if len(digits) != philSysDigits {
		return digits
	}
	return digits[0:4] + "-" + digits[4:8] + "-" + digits[8:12] + "-" + digits[12:16]
}

// Phone keeps digits plus a single leading "+" and caps the result, turning
// presentation forms like "0917 123 4567" into "09171234567".
func Phone(input string) string {
	s := strings.TrimSpace(input)
	plus := strings.HasPrefix(s, "+")
	digits := keepMatching(s, unicode.IsDigit)
	if plus {
		digits = "+" + digits
	}
	return truncateRunes(digits, maxPhoneLength)
}

// Email trims, lowercases, and restricts an email address to its legal
// character set, capped at the RFC 5321 path limit.
func Email(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = keepMatching(s, func(r rune) bool {
		return r >= 'a' && r <= 'z' ||
			r >= '0' && r <= '9' ||
			strings.ContainsRune("@._%+-", r)
	})
	return truncateRunes(s, maxEmailLength)
}

var urlDangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)data\s*:`),
	regexp.MustCompile(`[\x00-\x1f\x7f]`),
	regexp.MustCompile(`\s`),
}

// URL strips whitespace, control characters, and script-capable schemes from
// a URL-destined string.
func URL(input string) string {
	s := removeAll(strings.TrimSpace(input), urlDangerousPatterns)
	return truncateRunes(s, maxURLLength)
}

// SearchQuery restricts a free-text search term to letters, digits, spaces
// and name punctuation, with whitespace collapsed.
func SearchQuery(input string) string {
	s := keepMatching(input, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == ' ' || r == '-' || r == '\'' || r == '.' || r == ','
	})
	s = collapseWhitespace(s)
	return truncateRunes(s, maxQueryLength)
}

var filenameDangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.\.`),
	regexp.MustCompile(`[/\\]`),
	regexp.MustCompile(`[\x00-\x1f\x7f]`),
}

// Filename removes path-traversal sequences and separators, keeping only
// characters safe for a stored attachment name.
func Filename(input string) string {
	s := removeAll(strings.TrimSpace(input), filenameDangerousPatterns)
	s = keepMatching(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == '.' || r == '_' || r == '-' || r == ' '
	})
	s = strings.Trim(s, ". ")
	return truncateRunes(s, maxFilenameLength)
}

var dbDangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`--`),
	regexp.MustCompile(`/\*`),
	regexp.MustCompile(`\*/`),
	regexp.MustCompile(`[;'"\\]`),
	regexp.MustCompile(`\x00`),
}

// DatabaseInput strips SQL metacharacters and comment markers from a value
// destined for non-parameterized storage contexts (e.g. generated reports).
// Parameterized queries remain the first line of defense; this is the
// storage variant of the display-oriented HTML escaping.
func DatabaseInput(input string) string {
	s := removeAll(strings.TrimSpace(input), dbDangerousPatterns)
	return truncateRunes(s, maxDBInputLength)
}

// removeAll deletes every match of patterns, repeating until the string is
// stable so that overlapping fragments cannot reassemble a removed pattern.
func removeAll(s string, patterns []*regexp.Regexp) string {
	for {
		before := s
		for _, p := range patterns {
			s = p.ReplaceAllString(s, "")
		}
		if s == before {
			return s
		}
	}
}
