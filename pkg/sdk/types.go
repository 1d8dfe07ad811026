package stringdex

import (
	"time"

	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Record is the public analyzed-string representation.
type Record struct {
	ID                 string
	Value              string
	Length             int
	WordCount          int
	IsPalindrome       bool
	UniqueCharacters   int
	CharacterSet       []string
	CharacterFrequency map[string]int
	CreatedAt          time.Time
}

// Filter is a structured condition over analyzed-string attributes.
// Nil fields impose no constraint; present fields AND together.
type Filter struct {
	IsPalindrome      *bool
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	ContainsCharacter *rune
}

// ParsedFilters is the field-to-value view of a translated query,
// as returned by Strings().Query.
type ParsedFilters map[string]any

func recordFromDomain(rec *record.Record) Record {
	set := make([]string, len(rec.CharacterSet()))
	for i, r := range rec.CharacterSet() {
		set[i] = string(r)
	}
	freq := make(map[string]int, len(rec.CharacterFrequency()))
	for r, n := range rec.CharacterFrequency() {
		freq[string(r)] = n
	}
	return Record{
		ID:                 rec.Hash(),
		Value:              rec.Value(),
		Length:             rec.Length(),
		WordCount:          rec.WordCount(),
		IsPalindrome:       rec.IsPalindrome(),
		UniqueCharacters:   rec.UniqueCharacters(),
		CharacterSet:       set,
		CharacterFrequency: freq,
		CreatedAt:          time.UnixMilli(rec.CreatedAt()).UTC(),
	}
}

func recordsFromDomain(recs []record.Record) []Record {
	out := make([]Record, len(recs))
	for i := range recs {
		out[i] = recordFromDomain(&recs[i])
	}
	return out
}

func (f Filter) toPredicate() predicate.Predicate {
	var p predicate.Predicate
	if f.IsPalindrome != nil {
		p.SetIsPalindrome(*f.IsPalindrome)
	}
	if f.MinLength != nil {
		p.SetMinLength(*f.MinLength)
	}
	if f.MaxLength != nil {
		p.SetMaxLength(*f.MaxLength)
	}
	if f.WordCount != nil {
		p.SetWordCount(*f.WordCount)
	}
	if f.ContainsCharacter != nil {
		p.SetContainsCharacter(*f.ContainsCharacter)
	}
	return p
}
