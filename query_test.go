package collateral

import (
	"errors"
	"slices"
	"testing"
)

func TestFilterByType(t *testing.T) {
	assets := reference()

	tests := []struct {
		filter TypeFilter
		want   []string
	}{
		{AllTypes, []string{"AAPL", "MSFT", "AMZN", "TSLA", "BTC", "ETH", "10Y-T", "XAU"}},
		{TypeFilter(Crypto), []string{"BTC", "ETH"}},
		{TypeFilter(Bond), []string{"10Y-T"}},
		{TypeFilter(Forex), []string{}},
	}
	for _, tt := range tests {
		got := symbols(FilterByType(assets, tt.filter))
		if !slices.Equal(got, tt.want) {
			t.Errorf("FilterByType(%s) = %v, want %v", tt.filter, got, tt.want)
		}
	}

	if got := FilterByType(nil, AllTypes); got == nil || len(got) != 0 {
		t.Errorf("FilterByType(nil) = %#v, want an empty collection", got)
	}
}

func TestParseTypeFilter(t *testing.T) {
	if f, err := ParseTypeFilter("all"); err != nil || f != AllTypes {
		t.Errorf("ParseTypeFilter(all) = %q, %v", f, err)
	}
	if f, err := ParseTypeFilter("crypto"); err != nil || f != TypeFilter(Crypto) {
		t.Errorf("ParseTypeFilter(crypto) = %q, %v", f, err)
	}
	_, err := ParseTypeFilter("etf")
	if !errors.Is(err, ErrUnknownFilterType) {
		t.Errorf("ParseTypeFilter(etf) error = %v, want %v", err, ErrUnknownFilterType)
	}
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Errorf("ParseTypeFilter(etf) error %v is not a *QueryError", err)
	}
}

func TestSearchByText(t *testing.T) {
	assets := reference()

	tests := []struct {
		query string
		want  []string
	}{
		{"aapl", []string{"AAPL"}},
		{"  BitCoin ", []string{"BTC"}},
		{"inc", []string{"AAPL", "AMZN", "TSLA"}},
		{"t", []string{"MSFT", "TSLA", "BTC", "ETH", "10Y-T"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		res, err := SearchByText(assets, tt.query)
		if err != nil {
			t.Errorf("SearchByText(%q) error = %v", tt.query, err)
			continue
		}
		if got := symbols(res); !slices.Equal(got, tt.want) {
			t.Errorf("SearchByText(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSearchByText_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := SearchByText(reference(), q); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("SearchByText(%q) error = %v, want %v", q, err, ErrEmptyQuery)
		}
	}
}

func TestSortBy(t *testing.T) {
	assets := reference()

	tests := []struct {
		field SortField
		dir   Direction
		want  []string
	}{
		{ByPrice, Ascending, []string{"10Y-T", "TSLA", "AMZN", "AAPL", "MSFT", "XAU", "ETH", "BTC"}},
		{ByPrice, Descending, []string{"BTC", "ETH", "XAU", "MSFT", "AAPL", "AMZN", "TSLA", "10Y-T"}},
		{BySymbol, Ascending, []string{"10Y-T", "AAPL", "AMZN", "BTC", "ETH", "MSFT", "TSLA", "XAU"}},
		// missing market caps stay first in both directions.
		{ByMarketCap, Ascending, []string{"10Y-T", "XAU", "ETH", "TSLA", "BTC", "AMZN", "AAPL", "MSFT"}},
		{ByMarketCap, Descending, []string{"10Y-T", "XAU", "MSFT", "AAPL", "AMZN", "BTC", "TSLA", "ETH"}},
		// stable within a rating.
		{ByRiskRating, Ascending, []string{"AAPL", "MSFT", "10Y-T", "XAU", "AMZN", "TSLA", "BTC", "ETH"}},
		{ByRiskRating, Descending, []string{"TSLA", "BTC", "ETH", "AMZN", "AAPL", "MSFT", "10Y-T", "XAU"}},
		{ByChangePercent, Ascending, []string{"AMZN", "10Y-T", "XAU", "AAPL", "BTC", "MSFT", "ETH", "TSLA"}},
	}
	for _, tt := range tests {
		res, err := SortBy(assets, tt.field, tt.dir)
		if err != nil {
			t.Errorf("SortBy(%s, %s) error = %v", tt.field, tt.dir, err)
			continue
		}
		if got := symbols(res); !slices.Equal(got, tt.want) {
			t.Errorf("SortBy(%s, %s) = %v, want %v", tt.field, tt.dir, got, tt.want)
		}
	}

	// the source is left untouched.
	if got := symbols(assets); !slices.Equal(got, symbols(reference())) {
		t.Errorf("SortBy modified its input: %v", got)
	}
}

func TestSortBy_ReverseOnUniqueValues(t *testing.T) {
	assets := reference()
	asc, err := SortBy(assets, ByPrice, Ascending)
	if err != nil {
		t.Fatal(err)
	}
	desc, err := SortBy(asc, ByPrice, Descending)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := symbols(desc), reversed(symbols(asc)); !slices.Equal(got, want) {
		t.Errorf("descending = %v, want %v", got, want)
	}
}

func TestSortBy_Collation(t *testing.T) {
	assets := []Asset{
		{Symbol: "B", Name: "banana"},
		{Symbol: "C", Name: "Cherry"},
		{Symbol: "A", Name: "apple"},
		{Symbol: "E", Name: "éclair"},
	}
	res, err := SortBy(assets, ByName, Ascending)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := symbols(res), []string{"A", "B", "C", "E"}; !slices.Equal(got, want) {
		t.Errorf("SortBy(name) = %v, want %v", got, want)
	}
}

func TestSortBy_Errors(t *testing.T) {
	if _, err := SortBy(reference(), SortField("color"), Ascending); !errors.Is(err, ErrUnknownSortField) {
		t.Errorf("SortBy(color) error = %v, want %v", err, ErrUnknownSortField)
	}
	if _, err := SortBy(reference(), ByPrice, Direction("up")); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("SortBy(price, up) error = %v, want %v", err, ErrUnknownDirection)
	}
	if _, err := ParseSortField("color"); !errors.Is(err, ErrUnknownSortField) {
		t.Errorf("ParseSortField(color) error = %v, want %v", err, ErrUnknownSortField)
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(sideways) error = %v, want %v", err, ErrUnknownDirection)
	}
	for _, f := range SortFields() {
		if _, err := ParseSortField(string(f)); err != nil {
			t.Errorf("ParseSortField(%s) error = %v", f, err)
		}
	}
}

func TestAggregate(t *testing.T) {
	s := Aggregate(reference())
	if want := USD(38481.523); !s.TotalMaxLoan.Equal(want) {
		t.Errorf("TotalMaxLoan = %v, want %v", s.TotalMaxLoan.Decimal(), want.Decimal())
	}
	if !s.AverageLTV.Equal(69.375) {
		t.Errorf("AverageLTV = %v, want 69.375", s.AverageLTV)
	}
	if s.HighRiskCount != 3 {
		t.Errorf("HighRiskCount = %d, want 3", s.HighRiskCount)
	}
	// MSFT sits exactly at 80 and is not counted.
	if s.NearLiquidationCount != 2 {
		t.Errorf("NearLiquidationCount = %d, want 2", s.NearLiquidationCount)
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)
	if !s.TotalMaxLoan.IsZero() || s.AverageLTV != 0 || s.HighRiskCount != 0 || s.NearLiquidationCount != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zero summary", s)
	}
}

func TestAggregate_OtherCurrency(t *testing.T) {
	assets := reference()[:2]
	assets[1].MaxLoanAmount = M(10, "EUR")
	s := Aggregate(assets)
	if want := USD(152.38); !s.TotalMaxLoan.Equal(want) {
		t.Errorf("TotalMaxLoan = %v, want %v", s.TotalMaxLoan, want)
	}
}

func TestAggregate_Crypto(t *testing.T) {
	crypto := FilterByType(reference(), TypeFilter(Crypto))
	if got, want := symbols(crypto), []string{"BTC", "ETH"}; !slices.Equal(got, want) {
		t.Fatalf("FilterByType(crypto) = %v, want %v", got, want)
	}
	if s := Aggregate(crypto); !s.AverageLTV.Equal(47.5) {
		t.Errorf("AverageLTV = %v, want 47.5", s.AverageLTV)
	}
}

func TestPolicy_Aggregate_NearLiquidation(t *testing.T) {
	p := DefaultPolicy()
	p.NearLiquidationLTV = 70
	if s := p.Aggregate(reference()); s.NearLiquidationCount != 4 {
		t.Errorf("NearLiquidationCount = %d, want 4", s.NearLiquidationCount)
	}
}
