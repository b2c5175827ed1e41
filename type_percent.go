package collateral

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value: 75 means 75%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// rounded is p rounded half away from zero to 2 fraction digits.
func (p Percent) rounded() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Round(2)
}

// String renders the percentage with 2 fraction digits: "75.00%".
func (p Percent) String() string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return fmt.Sprintf("%v%%", float64(p))
	}
	return p.rounded().StringFixed(2) + "%"
}

// SignedString prefixes values that stay positive once rounded with "+":
// "+0.86%", "0.00%", "-0.62%". Values rounding to zero carry no sign.
func (p Percent) SignedString() string {
	r := p.rounded()
	s := r.StringFixed(2)
	if r.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

// sign returns -1, 0 or 1.
func (p Percent) sign() int {
	switch {
	case p > 0:
		return 1
	case p < 0:
		return -1
	}
	return 0
}
