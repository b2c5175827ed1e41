package collateral

// RiskBand classifies an LTV value. Presentation maps bands to colours.
type RiskBand string

const (
	Safe    RiskBand = "safe"
	Warning RiskBand = "warning"
	Danger  RiskBand = "danger"
)

func (b RiskBand) String() string { return string(b) }

// RiskBand classifies ltv: below WarningLTV is safe, below DangerLTV is a
// warning, anything else is danger.
func (p Policy) RiskBand(ltv float64) (RiskBand, error) {
	if err := checkNonNegative("ltv", ltv); err != nil {
		return "", err
	}
	switch {
	case ltv < p.WarningLTV:
		return Safe, nil
	case ltv < p.DangerLTV:
		return Warning, nil
	default:
		return Danger, nil
	}
}

// GetLtvRiskBand classifies ltv with the DefaultPolicy.
func GetLtvRiskBand(ltv float64) (RiskBand, error) {
	return DefaultPolicy().RiskBand(ltv)
}

// MarginLevels are the LTV levels signalling escalating risk above the
// current LTV of an asset.
type MarginLevels struct {
	MarginCall Percent
	StopLoss   Percent
}

// MarginLevels derives the margin call and stop loss levels of a.
func (p Policy) MarginLevels(a Asset) MarginLevels {
	return MarginLevels{
		MarginCall: a.LoanToValue + Percent(p.MarginCallOffset),
		StopLoss:   a.LoanToValue + Percent(p.StopLossOffset),
	}
}

// DeriveMarginLevels derives margin levels with the DefaultPolicy.
func DeriveMarginLevels(a Asset) MarginLevels {
	return DefaultPolicy().MarginLevels(a)
}
