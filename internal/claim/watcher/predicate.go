package watcher

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

// maxPredicateDepth bounds recursion over untrusted ledger data.
const maxPredicateDepth = 16

var (
	errMissingCreation = errors.New("relative bound without creation time")
	errTooDeep         = fmt.Errorf("predicate nested deeper than %d", maxPredicateDepth)
)

// window is the half-open interval [from, until) during which a predicate holds.
// A zero from is open towards the past, a zero until is open towards the future.
type window struct {
	from  time.Time
	until time.Time
	// timed is set when any time bound contributed to the window.
	timed bool
	// never is set when the predicate can not hold at any instant.
	never bool
}

func (w window) opensBefore(o window) bool {
	switch {
	case w.from.IsZero():
		return !o.from.IsZero() || w.closesAfter(o)
	case o.from.IsZero():
		return false
	case w.from.Equal(o.from):
		return w.closesAfter(o)
	default:
		return w.from.Before(o.from)
	}
}

func (w window) closesAfter(o window) bool {
	switch {
	case w.until.IsZero():
		return !o.until.IsZero()
	case o.until.IsZero():
		return false
	default:
		return w.until.After(o.until)
	}
}

func intersect(a, b window) window {
	out := window{
		from:  a.from,
		until: a.until,
		timed: a.timed || b.timed,
		never: a.never || b.never,
	}
	if !b.from.IsZero() && (out.from.IsZero() || b.from.After(out.from)) {
		out.from = b.from
	}
	if !b.until.IsZero() && (out.until.IsZero() || b.until.Before(out.until)) {
		out.until = b.until
	}
	if !out.from.IsZero() && !out.until.IsZero() && !out.from.Before(out.until) {
		out.never = true
	}
	return out
}

func (w window) closedAt(now time.Time) bool {
	return !w.until.IsZero() && !now.Before(w.until)
}

// earliest picks the reachable window that opens first. Windows already closed at
// now only win when no branch is still open.
func earliest(ws []window, now time.Time) window {
	var best, closed window
	found, foundClosed, timed := false, false, false
	for _, w := range ws {
		timed = timed || w.timed
		if w.never {
			continue
		}
		if w.closedAt(now) {
			if !foundClosed || w.closesAfter(closed) {
				closed, foundClosed = w, true
			}
			continue
		}
		if !found || w.opensBefore(best) {
			best, found = w, true
		}
	}
	switch {
	case found:
		return best
	case foundClosed:
		return closed
	default:
		return window{never: true, timed: timed}
	}
}

// resolvePredicate computes the claimable window of p. Negation is pushed down to
// the leaves: NOT(before T) holds from T onwards and NOT over AND/OR swaps the
// combinator. OR branches already closed at now are passed over.
func resolvePredicate(p model.Predicate, createdAt, now time.Time) (window, error) {
	return visit(p, createdAt, now, false, 0)
}

func visit(p model.Predicate, createdAt, now time.Time, negate bool, depth int) (window, error) {
	if depth > maxPredicateDepth {
		return window{}, errTooDeep
	}

	switch p.Kind {
	case model.PredicateUnconditional:
		return window{never: negate}, nil

	case model.PredicateBeforeAbsoluteTime:
		if p.AbsBefore.IsZero() {
			return window{}, errors.New("absolute bound without time")
		}
		return bound(p.AbsBefore, negate), nil

	case model.PredicateBeforeRelativeTime:
		if createdAt.IsZero() {
			return window{}, errMissingCreation
		}
		if p.RelBefore < 0 {
			return window{}, fmt.Errorf("negative relative bound %s", p.RelBefore)
		}
		return bound(createdAt.Add(p.RelBefore), negate), nil

	case model.PredicateNot:
		if len(p.Children) != 1 {
			return window{}, fmt.Errorf("not predicate with %d children", len(p.Children))
		}
		return visit(p.Children[0], createdAt, now, !negate, depth+1)

	case model.PredicateAnd, model.PredicateOr:
		if len(p.Children) == 0 {
			return window{}, fmt.Errorf("%s predicate without children", p.Kind)
		}
		children := make([]window, 0, len(p.Children))
		for _, child := range p.Children {
			w, err := visit(child, createdAt, now, negate, depth+1)
			if err != nil {
				return window{}, err
			}
			children = append(children, w)
		}
		conjunction := p.Kind == model.PredicateAnd
		if negate {
			conjunction = !conjunction
		}
		if !conjunction {
			return earliest(children, now), nil
		}
		out := children[0]
		for _, w := range children[1:] {
			out = intersect(out, w)
		}
		return out, nil

	default:
		return window{}, fmt.Errorf("unknown predicate kind %d", p.Kind)
	}
}

func bound(t time.Time, negate bool) window {
	if negate {
		return window{from: t, timed: true}
	}
	return window{until: t, timed: true}
}
