package collateral

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency every asset amount is expressed in.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates Money from a numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD is a shortcut for M(value, DefaultCurrency).
func USD[T float64 | int | int64 | decimal.Decimal](value T) Money { return M(value, DefaultCurrency) }

// currency returns the money's currency, falling back to DefaultCurrency.
func (m Money) currency() money.Currency {
	code := m.cur
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// String renders the amount with the currency formatter, rounded half away
// from zero to the currency fraction: "$1,234.57", "-$1.15".
func (m Money) String() string {
	cur := m.currency()
	fraction := int32(cur.Fraction)
	minor := m.value.Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart())
}

// Format is String for amounts below the supported magnitude. It fails with
// ErrOutOfRange beyond it, where the minor units no longer fit an int64.
func (m Money) Format() (string, error) {
	if err := m.checkMagnitude("amount"); err != nil {
		return "", err
	}
	return m.String(), nil
}

var maxAmount = decimal.NewFromFloat(maxFormattable)

func (m Money) checkMagnitude(field string) error {
	if m.value.Abs().GreaterThanOrEqual(maxAmount) {
		return invalid(ErrOutOfRange, field, "%s exceeds the supported magnitude", m.value)
	}
	return nil
}

// checkCurrency accepts DefaultCurrency and the weak "" currency.
func (m Money) checkCurrency(field string) error {
	if m.cur != "" && m.cur != DefaultCurrency {
		return invalid(ErrUnsupportedCurrency, field, "currency %q is not supported, amounts are in %s", m.cur, DefaultCurrency)
	}
	return nil
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) Sign() int                       { return m.value.Sign() }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// MulPercent returns m × p / 100.
func (m Money) MulPercent(p Percent) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(float64(p))).Div(decimal.NewFromInt(100)), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// number returns the exact amount as a JSON number.
func (m Money) number() json.Number { return json.Number(m.value.String()) }
