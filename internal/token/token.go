// Package token splits a raw date string into classified tokens: ordinal
// days, named months, and bare numbers. Everything else is dropped.
package token

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ambidate/ambidate/internal/locale"
)

// Tag is the syntactic role the classifier assigned to a token.
type Tag uint8

const (
	Unknown Tag = iota
	Day
	Month
	// Year is never produced by the classifier; it exists so callers can
	// inject pre-resolved year tokens.
	Year
)

func (t Tag) String() string {
	switch t {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// Token is one classified fragment of a date string. Immutable; input order
// is preserved by Classify.
type Token struct {
	Tag   Tag
	Value int
}

// maxTokens caps how many recognized tokens one date contributes; trailing
// extras are discarded.
const maxTokens = 3

var (
	ordinalRe = regexp.MustCompile(`^([0-9]{1,2})(\p{L}+)$`)
	digitsRe  = regexp.MustCompile(`^[0-9]{1,4}$`)
)

// Classifier turns date strings into token sequences using an injected
// read-only locale table. It performs no locale lookups of its own.
type Classifier struct {
	table *locale.Table
}

func NewClassifier(table *locale.Table) *Classifier {
	return &Classifier{table: table}
}

// Classify splits s on Unicode punctuation and whitespace and classifies
// each surviving fragment in order: ordinal day, then month name, then bare
// 1-4 digit number. Fragments matching none of the three are dropped
// silently, so a string with nothing recognizable yields an empty sequence.
func (c *Classifier) Classify(s string) []Token {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	tokens := make([]Token, 0, maxTokens)
	for _, f := range fields {
		if len(tokens) == maxTokens {
			break
		}
		lower := strings.ToLower(f)
		if m := ordinalRe.FindStringSubmatch(lower); m != nil {
			if _, ok := c.table.Ordinals[m[2]]; ok {
				v, _ := strconv.Atoi(m[1])
				tokens = append(tokens, Token{Tag: Day, Value: v})
				continue
			}
		}
		if month, ok := c.table.Months[lower]; ok {
			tokens = append(tokens, Token{Tag: Month, Value: month})
			continue
		}
		if digitsRe.MatchString(lower) {
			v, _ := strconv.Atoi(lower)
			tokens = append(tokens, Token{Tag: Unknown, Value: v})
		}
	}
	return tokens
}
