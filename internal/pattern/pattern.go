// Package pattern holds the structural model of an ambiguous date: the
// possibility sets a token could stand for and the constraint-propagation
// reduction that narrows them.
package pattern

import "strings"

// FieldKind identifies what a date token stands for once resolved.
type FieldKind uint8

const (
	Day FieldKind = 1 << iota
	Month
	Year
	Invalid
)

func (k FieldKind) String() string {
	switch k {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// KindSet is a possibility set: the field kinds one token could represent.
// The zero value is the empty set.
type KindSet uint8

func NewKindSet(kinds ...FieldKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= KindSet(k)
	}
	return s
}

func (s KindSet) Has(k FieldKind) bool { return s&KindSet(k) != 0 }

func (s KindSet) With(k FieldKind) KindSet { return s | KindSet(k) }

func (s KindSet) Without(k FieldKind) KindSet { return s &^ KindSet(k) }

func (s KindSet) Len() int {
	n := 0
	for _, k := range allKinds {
		if s.Has(k) {
			n++
		}
	}
	return n
}

// Singleton returns the set's only kind when the set has exactly one member.
func (s KindSet) Singleton() (FieldKind, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	for _, k := range allKinds {
		if s.Has(k) {
			return k, true
		}
	}
	return 0, false
}

func (s KindSet) String() string {
	var parts []string
	for _, k := range allKinds {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

var allKinds = []FieldKind{Day, Month, Year, Invalid}

// Pattern is the ordered sequence of possibility sets for one date string.
// It is the unit that training and lookup operate on: two patterns are the
// same only when their sequences are element-wise set-equal.
type Pattern []KindSet

// Key returns a canonical string form usable as a map key.
func (p Pattern) Key() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Unambiguous reports whether every position has been pinned to exactly one
// field kind. Empty patterns and patterns carrying Invalid never qualify.
func (p Pattern) Unambiguous() bool {
	if len(p) == 0 {
		return false
	}
	for _, s := range p {
		if s.Has(Invalid) {
			return false
		}
		if _, ok := s.Singleton(); !ok {
			return false
		}
	}
	return true
}

// Consistent reports whether the unambiguous pattern u is one structurally
// compatible resolution of a: same length, and at every position u's single
// kind is still among a's possibilities.
func Consistent(a, u Pattern) bool {
	if len(a) != len(u) {
		return false
	}
	for i := range a {
		if a[i]&u[i] == 0 {
			return false
		}
	}
	return true
}

// Reduce narrows a pattern by constraint propagation: whenever a position is
// forced to a single kind, that kind is removed from every other position,
// which may in turn force more positions. The input is not modified. The
// result is a fixed point, not necessarily unambiguous, and reducing it
// again returns it unchanged.
func Reduce(p Pattern) Pattern {
	out := make(Pattern, len(p))
	copy(out, p)
	var resolved KindSet
	for {
		idx := -1
		var kind FieldKind
		for i, s := range out {
			if k, ok := s.Singleton(); ok && !resolved.Has(k) {
				idx, kind = i, k
				break
			}
		}
		if idx < 0 {
			return out
		}
		resolved = resolved.With(kind)
		for i := range out {
			if i != idx {
				out[i] = out[i].Without(kind)
			}
		}
	}
}
