package infer

import "fmt"

// Reliability classifies how confidently a parse's field order was
// determined.
type Reliability uint8

const (
	// ReliabilityInvalid marks inputs with no usable interpretation; the
	// numeric fields of such a result carry no meaning.
	ReliabilityInvalid Reliability = iota
	// ReliabilityUnambiguous means the string alone pinned every field.
	ReliabilityUnambiguous
	// ReliabilityResolvedUnambiguously means training offered exactly one
	// compatible field ordering.
	ReliabilityResolvedUnambiguously
	// ReliabilityResolvedAmbiguously means several orderings were compatible
	// and the most frequent one was chosen.
	ReliabilityResolvedAmbiguously
)

func (r Reliability) String() string {
	switch r {
	case ReliabilityUnambiguous:
		return "unambiguous"
	case ReliabilityResolvedUnambiguously:
		return "resolved-unambiguously"
	case ReliabilityResolvedAmbiguously:
		return "resolved-ambiguously"
	}
	return "unclear/invalid"
}

func (r Reliability) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r Reliability) MarshalYAML() (any, error) { return r.String(), nil }

// Calendar names the calendar system a parse is expressed in.
type Calendar string

const Gregorian Calendar = "gregorian"

// ParsedDate is the result of parsing one date string. Day, Month and Year
// hold the integers exactly as they appeared in the source string: no
// century inference and no validity check against real calendar limits.
type ParsedDate struct {
	Reliability Reliability `json:"reliability" yaml:"reliability"`
	Calendar    Calendar    `json:"calendar" yaml:"calendar"`
	Day         int         `json:"day,omitempty" yaml:"day,omitempty"`
	Month       int         `json:"month,omitempty" yaml:"month,omitempty"`
	Year        int         `json:"year,omitempty" yaml:"year,omitempty"`
}

func (d ParsedDate) String() string {
	if d.Reliability == ReliabilityInvalid {
		return string(d.Calendar) + " " + d.Reliability.String()
	}
	return fmt.Sprintf("%s %s day=%d month=%d year=%d",
		d.Calendar, d.Reliability, d.Day, d.Month, d.Year)
}
