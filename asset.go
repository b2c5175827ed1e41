package collateral

import (
	"errors"
	"fmt"
	"time"
)

// AssetType classifies the market an asset trades on.
type AssetType string

const (
	Stock     AssetType = "stock"
	Bond      AssetType = "bond"
	Crypto    AssetType = "crypto"
	Forex     AssetType = "forex"
	Commodity AssetType = "commodity"
)

// AssetTypes lists every asset type in display order.
var AssetTypes = []AssetType{Stock, Bond, Crypto, Forex, Commodity}

func (t AssetType) String() string { return string(t) }

// Valid reports whether t belongs to the fixed set of asset types.
func (t AssetType) Valid() bool {
	switch t {
	case Stock, Bond, Crypto, Forex, Commodity:
		return true
	}
	return false
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(s)
	if !t.Valid() {
		return "", invalid(ErrUnknownAssetType, "type", "unknown asset type: %q", s)
	}
	return t, nil
}

// RiskRating is an independent risk classification, not derived from the LTV.
type RiskRating string

const (
	LowRisk    RiskRating = "low"
	MediumRisk RiskRating = "medium"
	HighRisk   RiskRating = "high"
)

func (r RiskRating) String() string { return string(r) }

// rank orders ratings from low to high; unknown ratings rank first.
func (r RiskRating) rank() int {
	switch r {
	case LowRisk:
		return 1
	case MediumRisk:
		return 2
	case HighRisk:
		return 3
	}
	return 0
}

// ParseRiskRating parses a string into a RiskRating.
func ParseRiskRating(s string) (RiskRating, error) {
	r := RiskRating(s)
	if r.rank() == 0 {
		return "", invalid(ErrUnknownRiskRating, "riskRating", "unknown risk rating: %q", s)
	}
	return r, nil
}

// Asset is a financial instrument with its loan-to-value terms.
//
// Assets are values: the core never modifies one in place, an updated asset is
// a new record replacing the old one in the collection.
type Asset struct {
	ID            string
	Symbol        string
	Name          string
	Type          AssetType
	Price         Money
	PreviousPrice Money
	Change        Money     // Price - PreviousPrice
	ChangePercent Percent   // Change / PreviousPrice × 100
	MarketCap     *Money    // nil for instruments without a market cap (bonds, commodities)
	Volume        *Quantity // nil when unknown

	LoanToValue          Percent // LTV currently applied
	RiskRating           RiskRating
	CollateralValue      Money
	MaxLoanAmount        Money   // stored as provided, never recomputed on read
	LiquidationThreshold Percent // LTV level that triggers liquidation

	Sector    string // empty when absent
	Timestamp time.Time
}

func (a Asset) HasMarketCap() bool { return a.MarketCap != nil }
func (a Asset) HasVolume() bool    { return a.Volume != nil }
func (a Asset) HasSector() bool    { return a.Sector != "" }

// Validate checks the data-quality invariants an asset must satisfy at the
// ingest boundary. All failures are reported, joined in a single error.
func (a Asset) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if a.Symbol == "" {
		add(invalid(ErrMissingField, "symbol", "symbol must not be empty"))
	}
	if a.Name == "" {
		add(invalid(ErrMissingField, "name", "name must not be empty"))
	}
	if !a.Type.Valid() {
		add(invalid(ErrUnknownAssetType, "type", "unknown asset type: %q", a.Type))
	}
	if a.RiskRating.rank() == 0 {
		add(invalid(ErrUnknownRiskRating, "riskRating", "unknown risk rating: %q", a.RiskRating))
	}

	add(nonNegativeMoney("price", a.Price))
	add(nonNegativeMoney("previousPrice", a.PreviousPrice))
	add(amount("change", a.Change))
	add(nonNegativeMoney("collateralValue", a.CollateralValue))
	add(nonNegativeMoney("maxLoanAmount", a.MaxLoanAmount))
	if a.MarketCap != nil {
		add(nonNegativeMoney("marketCap", *a.MarketCap))
	}
	if a.Volume != nil {
		add(checkNonNegative("volume", a.Volume.Decimal().InexactFloat64()))
	}
	add(checkFinite("changePercent", float64(a.ChangePercent)))

	add(percentInRange("loanToValue", a.LoanToValue))
	add(percentInRange("liquidationThreshold", a.LiquidationThreshold))
	if a.LiquidationThreshold < a.LoanToValue {
		add(invalid(ErrInconsistent, "liquidationThreshold",
			"liquidation threshold %s is below the loan-to-value %s", a.LiquidationThreshold, a.LoanToValue))
	}

	if a.Change.Sign()*a.ChangePercent.sign() < 0 {
		add(invalid(ErrInconsistent, "changePercent",
			"change %s and change percent %s have opposite signs", a.Change, a.ChangePercent.SignedString()))
	}

	if len(errs) == 0 {
		return nil
	}
	if a.Symbol != "" {
		return fmt.Errorf("invalid asset %q: %w", a.Symbol, errors.Join(errs...))
	}
	return errors.Join(errs...)
}

// amount checks the currency and magnitude of m.
func amount(field string, m Money) error {
	if err := m.checkCurrency(field); err != nil {
		return err
	}
	return m.checkMagnitude(field)
}

func nonNegativeMoney(field string, m Money) error {
	if err := amount(field, m); err != nil {
		return err
	}
	if m.IsNegative() {
		return invalid(ErrNegative, field, "%s must not be negative", m)
	}
	return nil
}

func percentInRange(field string, p Percent) error {
	if err := checkFinite(field, float64(p)); err != nil {
		return err
	}
	if p < 0 || p > 100 {
		return invalid(ErrOutOfRange, field, "%s is outside [0%%, 100%%]", p)
	}
	return nil
}
