package collateral

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// tier is a magnitude threshold and the suffix rendering it.
type tier struct {
	threshold decimal.Decimal
	suffix    string
}

var (
	trillion = decimal.New(1, 12)
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
	thousand = decimal.New(1, 3)

	marketCapTiers = []tier{{trillion, "T"}, {billion, "B"}, {million, "M"}}
	volumeTiers    = []tier{{billion, "B"}, {million, "M"}, {thousand, "K"}}
)

// scaled renders v divided by the first tier it reaches, with 2 fraction
// digits and the tier suffix. It reports false when v is below every tier.
// Tiers are picked on rounded values: a v below the smallest tier that
// rounds up to it at places fraction digits, or a scaled value rounding up
// to 1000, moves to the next tier ("1.00K", not "1000" nor "1000.00K").
func scaled(v decimal.Decimal, tiers []tier, places int32) (string, bool) {
	if r := v.Round(places); v.LessThan(tiers[len(tiers)-1].threshold) && r.GreaterThanOrEqual(tiers[len(tiers)-1].threshold) {
		v = r
	}
	for i, t := range tiers {
		if v.LessThan(t.threshold) {
			continue
		}
		q := v.Div(t.threshold).Round(2)
		if i > 0 && q.GreaterThanOrEqual(thousand) {
			t = tiers[i-1]
			q = v.Div(t.threshold).Round(2)
		}
		return q.StringFixed(2) + t.suffix, true
	}
	return "", false
}

// FormatCurrency renders v in USD with exactly 2 fraction digits:
// "$1,234.57", "$0.00", "-$1.15".
func FormatCurrency(v float64) (string, error) {
	if err := checkFinite("value", v); err != nil {
		return "", err
	}
	return USD(v).String(), nil
}

// FormatMarketCap renders v with a T, B or M suffix ("$2.95T", "$1.00B"), or
// as plain currency below one million.
func FormatMarketCap(v float64) (string, error) {
	if err := checkNonNegative("marketCap", v); err != nil {
		return "", err
	}
	return USD(v).Compact(), nil
}

// Compact renders m with magnitude suffixes like FormatMarketCap.
func (m Money) Compact() string {
	if s, ok := scaled(m.value, marketCapTiers, int32(m.currency().Fraction)); ok {
		return m.currency().Grapheme + s
	}
	return m.String()
}

// FormatVolume renders v with a B, M or K suffix and 2 fraction digits, or
// as a plain integer below one thousand.
func FormatVolume(v float64) (string, error) {
	if err := checkNonNegative("volume", v); err != nil {
		return "", err
	}
	return Q(v).Compact(), nil
}

// Compact renders q with magnitude suffixes like FormatVolume.
func (q Quantity) Compact() string {
	if s, ok := scaled(q.value, volumeTiers, 0); ok {
		return s
	}
	return q.value.Round(0).String()
}

// FormatPercent renders v with 2 fraction digits, a "+" for positive values
// and a trailing "%": "+1.43%", "0.00%", "-0.62%".
func FormatPercent(v float64) (string, error) {
	if err := checkFinite("percent", v); err != nil {
		return "", err
	}
	return Percent(v).SignedString(), nil
}

// FormatNumber renders v rounded to an integer with thousands separators.
func FormatNumber(v float64) (string, error) {
	if err := checkFinite("value", v); err != nil {
		return "", err
	}
	return humanize.Comma(decimal.NewFromFloat(v).Round(0).IntPart()), nil
}

// TimestampLayout is the layout used by FormatTimestamp.
const TimestampLayout = "Jan 2, 2006, 03:04 PM"

// FormatTimestamp renders t in UTC: "Oct 18, 2026, 02:15 PM".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
