package collateral

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/stat"
)

// TypeFilter selects assets by type. AllTypes disables filtering.
type TypeFilter string

// AllTypes is the filter keeping every asset.
const AllTypes TypeFilter = "all"

// ParseTypeFilter parses "all" or an asset type.
func ParseTypeFilter(s string) (TypeFilter, error) {
	if s == string(AllTypes) {
		return AllTypes, nil
	}
	if !AssetType(s).Valid() {
		return "", badQuery(ErrUnknownFilterType, "unknown filter type: %q", s)
	}
	return TypeFilter(s), nil
}

// FilterByType returns the assets matching f, in their original order.
func FilterByType(assets []Asset, f TypeFilter) []Asset {
	res := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if f == AllTypes || TypeFilter(a.Type) == f {
			res = append(res, a)
		}
	}
	return res
}

// SearchByText returns the assets whose symbol or name contains query,
// ignoring case and surrounding whitespace. An empty query is an error.
func SearchByText(assets []Asset, query string) ([]Asset, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, badQuery(ErrEmptyQuery, "search text is empty")
	}
	fold := cases.Fold()
	q := fold.String(query)

	res := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if strings.Contains(fold.String(a.Symbol), q) || strings.Contains(fold.String(a.Name), q) {
			res = append(res, a)
		}
	}
	return res, nil
}

// SortField names a sortable asset field.
type SortField string

const (
	BySymbol               SortField = "symbol"
	ByName                 SortField = "name"
	ByType                 SortField = "type"
	ByPrice                SortField = "price"
	ByChange               SortField = "change"
	ByChangePercent        SortField = "changePercent"
	ByMarketCap            SortField = "marketCap"
	ByVolume               SortField = "volume"
	ByLoanToValue          SortField = "loanToValue"
	ByRiskRating           SortField = "riskRating"
	ByMaxLoanAmount        SortField = "maxLoanAmount"
	ByLiquidationThreshold SortField = "liquidationThreshold"
	ByTimestamp            SortField = "timestamp"
)

// sortKey compares two assets on one field. missing is nil for fields that
// are always present.
type sortKey struct {
	compare func(c *collate.Collator, a, b Asset) int
	missing func(a Asset) bool
}

func byString(get func(Asset) string) sortKey {
	return sortKey{compare: func(c *collate.Collator, a, b Asset) int {
		return c.CompareString(get(a), get(b))
	}}
}

func byValue[T cmp.Ordered](get func(Asset) T) sortKey {
	return sortKey{compare: func(_ *collate.Collator, a, b Asset) int {
		return cmp.Compare(get(a), get(b))
	}}
}

func byMoney(get func(Asset) Money) sortKey {
	return sortKey{compare: func(_ *collate.Collator, a, b Asset) int {
		return get(a).Cmp(get(b))
	}}
}

var sortKeys = map[SortField]sortKey{
	BySymbol:               byString(func(a Asset) string { return a.Symbol }),
	ByName:                 byString(func(a Asset) string { return a.Name }),
	ByType:                 byString(func(a Asset) string { return string(a.Type) }),
	ByPrice:                byMoney(func(a Asset) Money { return a.Price }),
	ByChange:               byMoney(func(a Asset) Money { return a.Change }),
	ByChangePercent:        byValue(func(a Asset) Percent { return a.ChangePercent }),
	ByLoanToValue:          byValue(func(a Asset) Percent { return a.LoanToValue }),
	ByRiskRating:           byValue(func(a Asset) int { return a.RiskRating.rank() }),
	ByMaxLoanAmount:        byMoney(func(a Asset) Money { return a.MaxLoanAmount }),
	ByLiquidationThreshold: byValue(func(a Asset) Percent { return a.LiquidationThreshold }),
	ByTimestamp:            byValue(func(a Asset) int64 { return a.Timestamp.UnixNano() }),
	ByMarketCap: {
		compare: func(_ *collate.Collator, a, b Asset) int { return a.MarketCap.Cmp(*b.MarketCap) },
		missing: func(a Asset) bool { return a.MarketCap == nil },
	},
	ByVolume: {
		compare: func(_ *collate.Collator, a, b Asset) int { return a.Volume.Cmp(*b.Volume) },
		missing: func(a Asset) bool { return a.Volume == nil },
	},
}

// SortFields lists the sortable fields.
func SortFields() []SortField {
	fields := make([]SortField, 0, len(sortKeys))
	for f := range sortKeys {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// ParseSortField parses a sortable field name.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if _, ok := sortKeys[f]; !ok {
		return "", badQuery(ErrUnknownSortField, "unknown sort field: %q", s)
	}
	return f, nil
}

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection parses "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Ascending, Descending:
		return d, nil
	}
	return "", badQuery(ErrUnknownDirection, "unknown sort direction: %q", s)
}

// SortBy returns a stably sorted copy of assets.
//
// Strings are ordered with English collation, numbers numerically. Assets
// missing an optional field (market cap, volume) always come first, whatever
// the direction: only the order among present values is reversed.
func SortBy(assets []Asset, field SortField, dir Direction) ([]Asset, error) {
	key, ok := sortKeys[field]
	if !ok {
		return nil, badQuery(ErrUnknownSortField, "unknown sort field: %q", field)
	}
	if dir != Ascending && dir != Descending {
		return nil, badQuery(ErrUnknownDirection, "unknown sort direction: %q", dir)
	}

	col := collate.New(language.English)
	res := make([]Asset, len(assets))
	copy(res, assets)
	slices.SortStableFunc(res, func(a, b Asset) int {
		if key.missing != nil {
			am, bm := key.missing(a), key.missing(b)
			switch {
			case am && bm:
				return 0
			case am:
				return -1
			case bm:
				return 1
			}
		}
		c := key.compare(col, a, b)
		if dir == Descending {
			c = -c
		}
		return c
	})
	return res, nil
}

// Summary aggregates the loan figures of a collection.
type Summary struct {
	TotalMaxLoan         Money   // sum of max loan amounts
	AverageLTV           Percent // mean LTV, 0 for an empty collection
	HighRiskCount        int     // assets rated high risk
	NearLiquidationCount int     // assets with an LTV above the policy NearLiquidationLTV
}

// Aggregate summarises assets. It never fails, an empty collection yields a
// zero Summary. Max loan amounts are summed as DefaultCurrency amounts, the
// currency they carry once validated.
func (p Policy) Aggregate(assets []Asset) Summary {
	s := Summary{TotalMaxLoan: USD(0)}
	if len(assets) == 0 {
		return s
	}
	var total decimal.Decimal
	ltvs := make([]float64, 0, len(assets))
	for _, a := range assets {
		total = total.Add(a.MaxLoanAmount.Decimal())
		ltvs = append(ltvs, float64(a.LoanToValue))
		if a.RiskRating == HighRisk {
			s.HighRiskCount++
		}
		if float64(a.LoanToValue) > p.NearLiquidationLTV {
			s.NearLiquidationCount++
		}
	}
	s.TotalMaxLoan = USD(total)
	s.AverageLTV = Percent(stat.Mean(ltvs, nil))
	return s
}

// Aggregate summarises assets with the DefaultPolicy.
func Aggregate(assets []Asset) Summary {
	return DefaultPolicy().Aggregate(assets)
}
