package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePriceBracket resolves a price bracket token into min/max bounds.
// "1000-1500" yields an inclusive [1000, 1500] range and "3000+" a minimum
// with no maximum. Empty, "any" and malformed tokens yield no bounds at
// all; a bad token never fails a search.
func ParsePriceBracket(token string) (min, max *decimal.Decimal) {
	token = strings.TrimSpace(token)
	if token == "" || token == "any" {
		return nil, nil
	}

	if bound, ok := strings.CutSuffix(token, "+"); ok {
		v, err := decimal.NewFromString(bound)
		if err != nil || v.IsNegative() {
			return nil, nil
		}
		return &v, nil
	}

	lo, hi, ok := strings.Cut(token, "-")
	if !ok {
		return nil, nil
	}
	loVal, err := decimal.NewFromString(lo)
	if err != nil || loVal.IsNegative() {
		return nil, nil
	}
	hiVal, err := decimal.NewFromString(hi)
	if err != nil || hiVal.LessThan(loVal) {
		return nil, nil
	}
	return &loVal, &hiVal
}
