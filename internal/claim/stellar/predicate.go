package stellar

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/stellar/go-stellar-sdk/xdr"
)

const maxPredicateDepth = 16

var errPredicateDepth = errors.New("predicate nested too deeply")

// convertPredicate maps an XDR claim predicate onto the model tree.
func convertPredicate(p xdr.ClaimPredicate) (model.Predicate, error) {
	return convertPredicateAt(p, 0)
}

func convertPredicateAt(p xdr.ClaimPredicate, depth int) (model.Predicate, error) {
	if depth > maxPredicateDepth {
		return model.Predicate{}, errPredicateDepth
	}

	switch p.Type {
	case xdr.ClaimPredicateTypeClaimPredicateUnconditional:
		return model.Unconditional(), nil

	case xdr.ClaimPredicateTypeClaimPredicateAnd, xdr.ClaimPredicateTypeClaimPredicateOr:
		list := p.AndPredicates
		if p.Type == xdr.ClaimPredicateTypeClaimPredicateOr {
			list = p.OrPredicates
		}
		if list == nil {
			return model.Predicate{}, fmt.Errorf("%s predicate without children", p.Type)
		}
		children := make([]model.Predicate, 0, len(*list))
		for _, child := range *list {
			converted, err := convertPredicateAt(child, depth+1)
			if err != nil {
				return model.Predicate{}, err
			}
			children = append(children, converted)
		}
		if p.Type == xdr.ClaimPredicateTypeClaimPredicateAnd {
			return model.And(children...), nil
		}
		return model.Or(children...), nil

	case xdr.ClaimPredicateTypeClaimPredicateNot:
		if p.NotPredicate == nil || *p.NotPredicate == nil {
			return model.Predicate{}, errors.New("not predicate without child")
		}
		child, err := convertPredicateAt(**p.NotPredicate, depth+1)
		if err != nil {
			return model.Predicate{}, err
		}
		return model.Not(child), nil

	case xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		if p.AbsBefore == nil {
			return model.Predicate{}, errors.New("absolute predicate without time")
		}
		return model.BeforeAbsolute(time.Unix(int64(*p.AbsBefore), 0).UTC()), nil

	case xdr.ClaimPredicateTypeClaimPredicateBeforeRelativeTime:
		if p.RelBefore == nil {
			return model.Predicate{}, errors.New("relative predicate without duration")
		}
		return model.BeforeRelative(time.Duration(*p.RelBefore) * time.Second), nil

	default:
		return model.Predicate{}, fmt.Errorf("unknown predicate type %d", p.Type)
	}
}
