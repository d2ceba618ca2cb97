package sanitize

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Options controls which steps of the general [Sanitize] pipeline run.
// Steps execute in declaration order; each is individually toggleable.
type Options struct {
	// NormalizeUnicode applies NFC normalization so that visually identical
	// inputs compare equal regardless of how they were composed.
	NormalizeUnicode bool

	// TrimWhitespace removes leading and trailing whitespace.
	TrimWhitespace bool

	// StripHTML removes HTML tags and script/event-handler patterns.
	StripHTML bool

	// EscapeHTML escapes HTML special characters for safe display.
	// Mutually exclusive with StripHTML in practice; when both are set,
	// stripping runs first.
	EscapeHTML bool

	// AllowedChars, when non-empty, is a set of runes to keep; every other
	// rune is dropped.
	AllowedChars string

	// MaxLength, when positive, truncates the result to at most this many
	// runes.
	MaxLength int
}

var (
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
	scriptBlockPattern  = regexp.MustCompile(`(?is)<script.*?(?:</script>|$)`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	javascriptPattern   = regexp.MustCompile(`(?i)javascript\s*:`)
)

// Sanitize applies the steps enabled in opts to input, in order:
// unicode normalization, whitespace trim, HTML stripping, HTML escaping,
// allowed-character filtering, max-length truncation.
// Non-sanitizing configurations (zero Options) return input unchanged.
func Sanitize(input string, opts Options) string {
	s := input

	if opts.NormalizeUnicode {
		s = norm.NFC.String(s)
	}
	if opts.TrimWhitespace {
		s = strings.TrimSpace(s)
	}
	if opts.StripHTML {
		s = stripHTML(s)
	}
	if opts.EscapeHTML {
		s = html.EscapeString(s)
	}
	if opts.AllowedChars != "" {
		s = keepRunes(s, opts.AllowedChars)
	}
	if opts.MaxLength > 0 {
		s = truncateRunes(s, opts.MaxLength)
	}

	return s
}

func stripHTML(s string) string {
	s = scriptBlockPattern.ReplaceAllString(s, "")
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = eventHandlerPattern.ReplaceAllString(s, "")
	s = javascriptPattern.ReplaceAllString(s, "")
	return s
}

func keepRunes(s, allowed string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(allowed, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// collapseWhitespace replaces every run of whitespace with a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func keepMatching(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
