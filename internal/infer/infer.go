// Package infer builds date parsers that learn day/month field ordering from
// a corpus of exemplar dates. A single string like "2/3/2012" cannot say
// which field comes first, but a corpus containing "3/26/2012" can: no 26th
// month exists, so the whole corpus must be month-before-day. Training
// reduces every exemplar to a structural pattern, and ambiguous patterns are
// resolved against the unambiguous ones seen alongside them.
package infer

import (
	"sort"

	"github.com/ambidate/ambidate/internal/locale"
	"github.com/ambidate/ambidate/internal/log"
	"github.com/ambidate/ambidate/internal/pattern"
	"github.com/ambidate/ambidate/internal/token"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrNilTable is returned by New when no locale table was supplied. This is
// the one construction-time contract violation; per-string parse failures
// are never errors, they degrade to ReliabilityInvalid.
var ErrNilTable = errors.New("infer: nil locale table")

// expand maps one classified token to its possibility set. Explicit tags pin
// the token outright; bare numbers are bounded by magnitude: nothing above 31
// can be a day or month, nothing above 12 a month. Non-positive values
// poison the pattern with Invalid.
func expand(t token.Token) pattern.KindSet {
	switch t.Tag {
	case token.Day:
		return pattern.NewKindSet(pattern.Day)
	case token.Month:
		return pattern.NewKindSet(pattern.Month)
	case token.Year:
		return pattern.NewKindSet(pattern.Year)
	}
	switch {
	case t.Value > 31:
		return pattern.NewKindSet(pattern.Year)
	case t.Value > 12:
		return pattern.NewKindSet(pattern.Day, pattern.Year)
	case t.Value > 0:
		return pattern.NewKindSet(pattern.Day, pattern.Month, pattern.Year)
	default:
		return pattern.NewKindSet(pattern.Invalid)
	}
}

func expandAll(tokens []token.Token) pattern.Pattern {
	p := make(pattern.Pattern, len(tokens))
	for i, t := range tokens {
		p[i] = expand(t)
	}
	return p
}

// candidate is one unambiguous training pattern that could resolve an
// ambiguous one, with how often it occurred in the corpus.
type candidate struct {
	pat   pattern.Pattern
	count int
}

// Parser parses date strings using field-order knowledge learned at
// construction. It is immutable after New returns; Parse is side-effect-free
// and safe for unsynchronized concurrent use.
type Parser struct {
	classifier *token.Classifier
	resolution map[string][]candidate
}

type tally struct {
	pat   pattern.Pattern
	count int
}

// New trains a Parser on the exemplar dates. An empty training list is
// legal: the parser still handles unambiguous inputs but degrades every
// ambiguous one to ReliabilityInvalid.
func New(trainingDates []string, table *locale.Table) (*Parser, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	classifier := token.NewClassifier(table)

	// Tally reduced patterns by structural equality, keeping discovery order
	// so candidate ties below stay deterministic.
	counts := make(map[string]*tally)
	var order []*tally
	for _, s := range trainingDates {
		p := pattern.Reduce(expandAll(classifier.Classify(s)))
		key := p.Key()
		if e, ok := counts[key]; ok {
			e.count++
			continue
		}
		e := &tally{pat: p, count: 1}
		counts[key] = e
		order = append(order, e)
	}

	unambiguous := lo.Filter(order, func(e *tally, _ int) bool { return e.pat.Unambiguous() })
	ambiguous := lo.Filter(order, func(e *tally, _ int) bool { return !e.pat.Unambiguous() })

	resolution := make(map[string][]candidate)
	for _, a := range ambiguous {
		var cands []candidate
		for _, u := range unambiguous {
			if pattern.Consistent(a.pat, u.pat) {
				cands = append(cands, candidate{pat: u.pat, count: u.count})
			}
		}
		if len(cands) == 0 {
			// Unresolvable patterns stay out of the table; lookups miss and
			// parse as invalid.
			continue
		}
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].count > cands[j].count })
		resolution[a.pat.Key()] = cands
		log.Detailedf("infer: %s resolvable %d way(s), best %s x%d",
			a.pat.Key(), len(cands), cands[0].pat.Key(), cands[0].count)
	}

	return &Parser{classifier: classifier, resolution: resolution}, nil
}

// NewWithLocales is New with the table built from embedded locale data for
// the given language codes.
func NewWithLocales(trainingDates []string, localeCodes []string) (*Parser, error) {
	table, err := locale.Load(localeCodes)
	if err != nil {
		return nil, err
	}
	return New(trainingDates, table)
}

// Parse classifies and reduces s, then resolves any remaining ambiguity
// against the trained table. Field kinds come from the matched training
// pattern; the numeric values always come from s's own tokens, matched by
// position. The zero-value fields of an invalid result carry no meaning.
func (p *Parser) Parse(s string) ParsedDate {
	tokens := p.classifier.Classify(s)
	reduced := pattern.Reduce(expandAll(tokens))
	if reduced.Unambiguous() {
		return assemble(ReliabilityUnambiguous, reduced, tokens)
	}
	cands, ok := p.resolution[reduced.Key()]
	if !ok {
		return ParsedDate{Reliability: ReliabilityInvalid, Calendar: Gregorian}
	}
	reliability := ReliabilityResolvedAmbiguously
	if len(cands) == 1 {
		reliability = ReliabilityResolvedUnambiguously
	}
	return assemble(reliability, cands[0].pat, tokens)
}

func assemble(reliability Reliability, pat pattern.Pattern, tokens []token.Token) ParsedDate {
	d := ParsedDate{Reliability: reliability, Calendar: Gregorian}
	for i, set := range pat {
		kind, _ := set.Singleton()
		switch kind {
		case pattern.Day:
			d.Day = tokens[i].Value
		case pattern.Month:
			d.Month = tokens[i].Value
		case pattern.Year:
			d.Year = tokens[i].Value
		}
	}
	return d
}
