// Package record holds the analyzed string aggregate.
package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxValueSize is the maximum accepted string size in bytes.
const MaxValueSize = 65536 // 64KB

// Record is an analyzed string (immutable value object).
// All derived properties are computed once at construction and never mutated.
type Record struct {
	value      string
	hash       string
	length     int
	wordCount  int
	palindrome bool
	charSet    []rune
	charFreq   map[rune]int
	createdAt  int64
}

// Analyze validates a raw string and computes its derived properties.
// Value: non-empty after trimming, max 64KB.
func Analyze(value string) (Record, error) {
	if strings.TrimSpace(value) == "" {
		return Record{}, fmt.Errorf("value must not be empty or whitespace-only")
	}
	if len(value) > MaxValueSize {
		return Record{}, fmt.Errorf("value too large (max %d bytes)", MaxValueSize)
	}

	freq := make(map[rune]int)
	for _, r := range value {
		freq[r]++
	}
	set := make([]rune, 0, len(freq))
	for r := range freq {
		set = append(set, r)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })

	return Record{
		value:      value,
		hash:       Hash(value),
		length:     utf8.RuneCountInString(value),
		wordCount:  len(strings.Fields(value)),
		palindrome: isPalindrome(value),
		charSet:    set,
		charFreq:   freq,
		createdAt:  time.Now().UnixMilli(),
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(
	value, hash string, length, wordCount int, palindrome bool,
	charSet []rune, charFreq map[rune]int, createdAt int64,
) Record {
	return Record{
		value: value, hash: hash, length: length, wordCount: wordCount,
		palindrome: palindrome, charSet: charSet, charFreq: charFreq, createdAt: createdAt,
	}
}

// Hash returns the hex-encoded SHA-256 digest of a value.
// The digest is the storage key: equal values always collide.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome reports whether the lowercased value, reduced to letters and
// digits, equals its reverse. An empty reduced value counts as a palindrome.
func isPalindrome(value string) bool {
	cleaned := make([]rune, 0, utf8.RuneCountInString(value))
	for _, r := range strings.ToLower(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned = append(cleaned, r)
		}
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// Value returns the original input string.
func (r *Record) Value() string { return r.value }

// Hash returns the content hash (hex SHA-256), the record's unique key.
func (r *Record) Hash() string { return r.hash }

// Length returns the character (rune) count.
func (r *Record) Length() int { return r.length }

// WordCount returns the count of whitespace-delimited tokens.
func (r *Record) WordCount() int { return r.wordCount }

// IsPalindrome reports case- and punctuation-insensitive palindromicity.
func (r *Record) IsPalindrome() bool { return r.palindrome }

// CharacterSet returns the distinct runes of the value in ascending order.
// The slice is a copy; mutating it does not affect the record.
func (r *Record) CharacterSet() []rune {
	out := make([]rune, len(r.charSet))
	copy(out, r.charSet)
	return out
}

// UniqueCharacters returns the number of distinct runes.
func (r *Record) UniqueCharacters() int { return len(r.charSet) }

// CharacterFrequency returns occurrences per rune.
// The map is a copy; mutating it does not affect the record.
func (r *Record) CharacterFrequency() map[rune]int {
	out := make(map[rune]int, len(r.charFreq))
	for k, v := range r.charFreq {
		out[k] = v
	}
	return out
}

// CreatedAt returns the analysis timestamp in unix milliseconds.
func (r *Record) CreatedAt() int64 { return r.createdAt }

// ContainsCharacter reports whether the value contains the rune,
// case-insensitively.
func (r *Record) ContainsCharacter(c rune) bool {
	return strings.ContainsRune(strings.ToLower(r.value), unicode.ToLower(c))
}
