package collateral

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAsset_Validate_Reference(t *testing.T) {
	for _, a := range reference() {
		if err := a.Validate(); err != nil {
			t.Errorf("reference asset %s: %v", a.Symbol, err)
		}
	}
}

func TestAsset_Validate(t *testing.T) {
	valid := reference()[0] // AAPL

	tests := []struct {
		name   string
		modify func(a *Asset)
		want   error
	}{
		{"empty symbol", func(a *Asset) { a.Symbol = "" }, ErrMissingField},
		{"empty name", func(a *Asset) { a.Name = "" }, ErrMissingField},
		{"unknown type", func(a *Asset) { a.Type = "etf" }, ErrUnknownAssetType},
		{"unknown rating", func(a *Asset) { a.RiskRating = "extreme" }, ErrUnknownRiskRating},
		{"negative price", func(a *Asset) { a.Price = USD(-1) }, ErrNegative},
		{"negative max loan", func(a *Asset) { a.MaxLoanAmount = USD(-0.01) }, ErrNegative},
		{"negative market cap", func(a *Asset) { m := USD(-5); a.MarketCap = &m }, ErrNegative},
		{"negative volume", func(a *Asset) { q := Q(-5); a.Volume = &q }, ErrNegative},
		{"huge price", func(a *Asset) { a.Price = USD(1e20) }, ErrOutOfRange},
		{"huge change", func(a *Asset) { a.Change = USD(-1e15) }, ErrOutOfRange},
		{"huge collateral", func(a *Asset) { a.CollateralValue = USD(1e15) }, ErrOutOfRange},
		{"huge volume", func(a *Asset) { q := Q(1e16); a.Volume = &q }, ErrOutOfRange},
		{"change percent NaN", func(a *Asset) { a.ChangePercent = Percent(math.NaN()) }, ErrInvalidNumber},
		{"euro price", func(a *Asset) { a.Price = M(142.38, "EUR") }, ErrUnsupportedCurrency},
		{"euro max loan", func(a *Asset) { a.MaxLoanAmount = M(142.38, "EUR") }, ErrUnsupportedCurrency},
		{"ltv above 100", func(a *Asset) { a.LoanToValue = 101; a.LiquidationThreshold = 101 }, ErrOutOfRange},
		{"ltv negative", func(a *Asset) { a.LoanToValue = -1 }, ErrOutOfRange},
		{"ltv NaN", func(a *Asset) { a.LoanToValue = Percent(math.NaN()) }, ErrInvalidNumber},
		{"threshold below ltv", func(a *Asset) { a.LiquidationThreshold = 70 }, ErrInconsistent},
		{"change sign mismatch", func(a *Asset) { a.ChangePercent = -0.86 }, ErrInconsistent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.modify(&a)
			err := a.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAsset_Validate_ReportsAll(t *testing.T) {
	a := reference()[0]
	a.Name = ""
	a.Type = "etf"
	a.Price = USD(-1)

	err := a.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want an error")
	}
	for _, want := range []error{ErrMissingField, ErrUnknownAssetType, ErrNegative} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() error = %v, want it to match %v", err, want)
		}
	}
	if !strings.Contains(err.Error(), `"AAPL"`) {
		t.Errorf("Validate() error %q does not name the asset", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field == "" {
		t.Errorf("Validate() error %v does not carry a field", err)
	}
}

func TestAsset_Optional(t *testing.T) {
	byID := make(map[string]Asset)
	for _, a := range reference() {
		byID[a.Symbol] = a
	}
	if a := byID["10Y-T"]; a.HasMarketCap() || a.HasVolume() {
		t.Errorf("10Y-T should have neither market cap nor volume")
	}
	if a := byID["BTC"]; a.HasSector() || !a.HasMarketCap() || !a.HasVolume() {
		t.Errorf("BTC should have market cap and volume but no sector")
	}
}

func TestParseAssetType(t *testing.T) {
	for _, typ := range AssetTypes {
		if got, err := ParseAssetType(string(typ)); err != nil || got != typ {
			t.Errorf("ParseAssetType(%s) = %q, %v", typ, got, err)
		}
	}
	if _, err := ParseAssetType("Stock"); !errors.Is(err, ErrUnknownAssetType) {
		t.Errorf("ParseAssetType(Stock) error = %v, want %v", err, ErrUnknownAssetType)
	}
}

func TestParseRiskRating(t *testing.T) {
	for _, r := range []RiskRating{LowRisk, MediumRisk, HighRisk} {
		if got, err := ParseRiskRating(string(r)); err != nil || got != r {
			t.Errorf("ParseRiskRating(%s) = %q, %v", r, got, err)
		}
	}
	if _, err := ParseRiskRating(""); !errors.Is(err, ErrUnknownRiskRating) {
		t.Errorf("ParseRiskRating(\"\") error = %v, want %v", err, ErrUnknownRiskRating)
	}
}
