package model

import "time"

// PredicateKind tags the variant held by a Predicate node.
type PredicateKind int

const (
	PredicateUnconditional PredicateKind = iota
	PredicateAnd
	PredicateOr
	PredicateNot
	// PredicateBeforeAbsoluteTime holds strictly before AbsBefore.
	PredicateBeforeAbsoluteTime
	// PredicateBeforeRelativeTime holds strictly before creation time + RelBefore.
	PredicateBeforeRelativeTime
)

func (k PredicateKind) String() string {
	switch k {
	case PredicateUnconditional:
		return "unconditional"
	case PredicateAnd:
		return "and"
	case PredicateOr:
		return "or"
	case PredicateNot:
		return "not"
	case PredicateBeforeAbsoluteTime:
		return "before_absolute_time"
	case PredicateBeforeRelativeTime:
		return "before_relative_time"
	default:
		return "unknown"
	}
}

// Predicate is one node of a claim condition tree.
type Predicate struct {
	Kind      PredicateKind
	Children  []Predicate
	AbsBefore time.Time
	RelBefore time.Duration
}

// Unconditional returns a predicate that always holds.
func Unconditional() Predicate {
	return Predicate{Kind: PredicateUnconditional}
}

// And returns a predicate holding when every child holds.
func And(children ...Predicate) Predicate {
	return Predicate{Kind: PredicateAnd, Children: children}
}

// Or returns a predicate holding when any child holds.
func Or(children ...Predicate) Predicate {
	return Predicate{Kind: PredicateOr, Children: children}
}

// Not negates child.
func Not(child Predicate) Predicate {
	return Predicate{Kind: PredicateNot, Children: []Predicate{child}}
}

// BeforeAbsolute holds strictly before t.
func BeforeAbsolute(t time.Time) Predicate {
	return Predicate{Kind: PredicateBeforeAbsoluteTime, AbsBefore: t}
}

// BeforeRelative holds for d after the resource was created.
func BeforeRelative(d time.Duration) Predicate {
	return Predicate{Kind: PredicateBeforeRelativeTime, RelBefore: d}
}
