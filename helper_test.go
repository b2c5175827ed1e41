package collateral

import (
	"slices"
	"time"
)

// refTime stamps the reference dataset in tests.
var refTime = time.Date(2026, time.October, 18, 14, 5, 0, 0, time.UTC)

// reference is a helper for test returning the reference dataset.
func reference() []Asset { return ReferenceAssets(refTime) }

// symbols is a helper for test listing the symbols of assets in order.
func symbols(assets []Asset) []string {
	res := make([]string, 0, len(assets))
	for _, a := range assets {
		res = append(res, a.Symbol)
	}
	return res
}

func reversed(s []string) []string {
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}
