// Package query translates free-text natural-language filter queries into
// the structured predicate consumed by the strings repository.
//
// The translator is pure and stateless: each call is a bounded, synchronous
// scan over normalized tokens, safe for concurrent use.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	"github.com/kailas-cloud/stringdex/internal/metrics"
)

// MaxQuerySize is the maximum accepted query size in bytes.
const MaxQuerySize = 1024

// cardinals maps spelled-out numbers accepted in word-count clauses.
var cardinals = map[string]int{
	"a single": 1, "single": 1,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

const cardinalAlt = `\d+|a single|single|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve`

// clauseMatcher recognizes one phrase pattern in normalized text and writes
// one predicate fragment. Matchers run in order; within a matcher, matches
// apply left to right, so for repeated mentions of the same field the last
// one wins.
type clauseMatcher struct {
	name    string
	pattern *regexp.Regexp
	apply   func(groups []string, p *predicate.Predicate) bool
}

var matchers = []clauseMatcher{
	{
		name:    "palindrome",
		pattern: regexp.MustCompile(`\b(?:(non|not)\s+(?:a\s+)?)?palindrom(?:es|e|ic)\b`),
		apply: func(g []string, p *predicate.Predicate) bool {
			p.SetIsPalindrome(g[1] == "")
			return true
		},
	},
	{
		// Trailing "words" means the number is a word count, not a length
		// (RE2 has no lookahead, so it is captured and rejected in apply).
		name:    "min_length_exclusive",
		pattern: regexp.MustCompile(`\b(?:longer than|more than|greater than|over)\s+(\d+)\b(\s+words?\b)?`),
		apply: func(g []string, p *predicate.Predicate) bool {
			n, err := strconv.Atoi(g[1])
			if err != nil || g[2] != "" {
				return false
			}
			p.SetMinLength(n + 1)
			return true
		},
	},
	{
		name:    "min_length_inclusive",
		pattern: regexp.MustCompile(`\bat least\s+(\d+)\b(\s+words?\b)?`),
		apply: func(g []string, p *predicate.Predicate) bool {
			n, err := strconv.Atoi(g[1])
			if err != nil || g[2] != "" {
				return false
			}
			p.SetMinLength(n)
			return true
		},
	},
	{
		name:    "max_length_exclusive",
		pattern: regexp.MustCompile(`\b(?:shorter than|less than|fewer than|under)\s+(\d+)\b(\s+words?\b)?`),
		apply: func(g []string, p *predicate.Predicate) bool {
			n, err := strconv.Atoi(g[1])
			if err != nil || g[2] != "" {
				return false
			}
			p.SetMaxLength(n - 1)
			return true
		},
	},
	{
		name:    "max_length_inclusive",
		pattern: regexp.MustCompile(`\bat most\s+(\d+)\b(\s+words?\b)?`),
		apply: func(g []string, p *predicate.Predicate) bool {
			n, err := strconv.Atoi(g[1])
			if err != nil || g[2] != "" {
				return false
			}
			p.SetMaxLength(n)
			return true
		},
	},
	{
		name:    "word_count",
		pattern: regexp.MustCompile(`\b(` + cardinalAlt + `)\s+words?\b`),
		apply: func(g []string, p *predicate.Predicate) bool {
			n, ok := cardinals[g[1]]
			if !ok {
				var err error
				n, err = strconv.Atoi(g[1])
				if err != nil {
					return false
				}
			}
			p.SetWordCount(n)
			return true
		},
	},
	{
		name:    "contains_character",
		pattern: regexp.MustCompile(`\bcontain(?:s|ing)?\s+(?:the\s+)?(?:(?:character|letter|char)\s+)?([a-z0-9])\b`),
		apply: func(g []string, p *predicate.Predicate) bool {
			p.SetContainsCharacter(rune(g[1][0]))
			return true
		},
	},
}

// Translator converts natural-language filter queries into predicates.
type Translator struct {
	maxQuerySize int
}

// New creates a query translator.
func New() *Translator {
	return &Translator{maxQuerySize: MaxQuerySize}
}

// WithMaxQuerySize configures the maximum accepted query size in bytes.
func (t *Translator) WithMaxQuerySize(n int) *Translator {
	if n > 0 {
		t.maxQuerySize = n
	}
	return t
}

// Translate parses free text into a predicate.
//
// Returns domain.ErrInvalidInput for empty or oversized text and
// domain.ErrUnrecognizedQuery when no clause matcher fires: an all-empty
// predicate is indistinguishable from "no filter", which is never the intent
// behind a natural-language query.
func (t *Translator) Translate(text string) (predicate.Predicate, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		metrics.TranslatorQueriesTotal.WithLabelValues("invalid").Inc()
		return predicate.Predicate{}, fmt.Errorf("query must not be empty: %w", domain.ErrInvalidInput)
	}
	if len(trimmed) > t.maxQuerySize {
		metrics.TranslatorQueriesTotal.WithLabelValues("invalid").Inc()
		return predicate.Predicate{}, fmt.Errorf("query exceeds %d bytes: %w", t.maxQuerySize, domain.ErrInvalidInput)
	}

	normalized := normalize(trimmed)

	var p predicate.Predicate
	for _, m := range matchers {
		for _, groups := range m.pattern.FindAllStringSubmatch(normalized, -1) {
			if m.apply(groups, &p) {
				metrics.TranslatorClausesTotal.WithLabelValues(m.name).Inc()
			}
		}
	}

	if p.IsEmpty() {
		metrics.TranslatorQueriesTotal.WithLabelValues("unrecognized").Inc()
		return predicate.Predicate{}, fmt.Errorf("no interpretable clause in %q: %w", trimmed, domain.ErrUnrecognizedQuery)
	}

	metrics.TranslatorQueriesTotal.WithLabelValues("ok").Inc()
	return p, nil
}

// normalize lowercases the text, replaces everything except letters and
// digits with spaces and collapses runs of whitespace.
func normalize(text string) string {
	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lowered)
	return strings.Join(strings.Fields(mapped), " ")
}
