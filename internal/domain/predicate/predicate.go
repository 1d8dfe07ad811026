// Package predicate defines the structured filter shared by the
// query-parameter endpoint and the natural-language translator.
package predicate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Predicate is a composable condition over analyzed string attributes.
// Absent (nil) fields impose no constraint; present fields AND together.
type Predicate struct {
	isPalindrome      *bool
	minLength         *int
	maxLength         *int
	wordCount         *int
	containsCharacter *rune
}

// IsEmpty reports whether no field constrains anything.
func (p Predicate) IsEmpty() bool {
	return p.isPalindrome == nil && p.minLength == nil && p.maxLength == nil &&
		p.wordCount == nil && p.containsCharacter == nil
}

// Matches reports whether the record satisfies every present field.
func (p Predicate) Matches(r *record.Record) bool {
	if p.isPalindrome != nil && r.IsPalindrome() != *p.isPalindrome {
		return false
	}
	if p.minLength != nil && r.Length() < *p.minLength {
		return false
	}
	if p.maxLength != nil && r.Length() > *p.maxLength {
		return false
	}
	if p.wordCount != nil && r.WordCount() != *p.wordCount {
		return false
	}
	if p.containsCharacter != nil && !r.ContainsCharacter(*p.containsCharacter) {
		return false
	}
	return true
}

// Setters overwrite any previous value for the same field (last write wins).

// SetIsPalindrome constrains palindrome status.
func (p *Predicate) SetIsPalindrome(v bool) { p.isPalindrome = &v }

// SetMinLength constrains the minimum character count (inclusive).
func (p *Predicate) SetMinLength(n int) { p.minLength = &n }

// SetMaxLength constrains the maximum character count (inclusive).
func (p *Predicate) SetMaxLength(n int) { p.maxLength = &n }

// SetWordCount constrains the exact word count.
func (p *Predicate) SetWordCount(n int) { p.wordCount = &n }

// SetContainsCharacter constrains containment of a single character
// (matched case-insensitively).
func (p *Predicate) SetContainsCharacter(c rune) { p.containsCharacter = &c }

// IsPalindrome returns the palindrome constraint, nil if unset.
func (p Predicate) IsPalindrome() *bool { return p.isPalindrome }

// MinLength returns the minimum length constraint, nil if unset.
func (p Predicate) MinLength() *int { return p.minLength }

// MaxLength returns the maximum length constraint, nil if unset.
func (p Predicate) MaxLength() *int { return p.maxLength }

// WordCount returns the word count constraint, nil if unset.
func (p Predicate) WordCount() *int { return p.wordCount }

// ContainsCharacter returns the containment constraint, nil if unset.
func (p Predicate) ContainsCharacter() *rune { return p.containsCharacter }

// Fields returns the present constraints as a name-to-value map,
// suitable for echoing back to API clients.
func (p Predicate) Fields() map[string]any {
	m := make(map[string]any)
	if p.isPalindrome != nil {
		m["is_palindrome"] = *p.isPalindrome
	}
	if p.minLength != nil {
		m["min_length"] = *p.minLength
	}
	if p.maxLength != nil {
		m["max_length"] = *p.maxLength
	}
	if p.wordCount != nil {
		m["word_count"] = *p.wordCount
	}
	if p.containsCharacter != nil {
		m["contains_character"] = string(*p.containsCharacter)
	}
	return m
}

// String renders the present constraints in field order, for logs.
func (p Predicate) String() string {
	fields := p.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
