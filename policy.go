package collateral

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds every threshold and offset used to classify LTV risk.
// The zero value is not usable, start from DefaultPolicy.
type Policy struct {
	// WarningLTV is the first LTV in the warning band (default 65).
	WarningLTV float64 `yaml:"warning_ltv"`

	// DangerLTV is the first LTV in the danger band (default 80).
	DangerLTV float64 `yaml:"danger_ltv"`

	// MarginCallOffset is added to an asset LTV to get its margin call level (default 3.75).
	MarginCallOffset float64 `yaml:"margin_call_offset"`

	// StopLossOffset is added to an asset LTV to get its stop loss level (default 7.5).
	StopLossOffset float64 `yaml:"stop_loss_offset"`

	// NearLiquidationLTV is the fixed LTV above which an asset counts as
	// near liquidation in a Summary (default 80). It does not look at the
	// asset's own liquidation threshold.
	NearLiquidationLTV float64 `yaml:"near_liquidation_ltv"`

	// LiquidationBuffer is added to the LTV when an imported asset has no
	// liquidation threshold (default 5).
	LiquidationBuffer float64 `yaml:"liquidation_buffer"`

	// HighRiskAlertCount is the number of high risk assets above which the
	// high risk card trends down (default 2).
	HighRiskAlertCount int `yaml:"high_risk_alert_count"`
}

// DefaultPolicy returns the reference policy.
func DefaultPolicy() Policy {
	return Policy{
		WarningLTV:         65,
		DangerLTV:          80,
		MarginCallOffset:   3.75,
		StopLossOffset:     7.5,
		NearLiquidationLTV: 80,
		LiquidationBuffer:  5,
		HighRiskAlertCount: 2,
	}
}

// Validate checks the policy is coherent.
func (p Policy) Validate() error {
	var errs []error
	check := func(field string, v float64) {
		if err := checkNonNegative(field, v); err != nil {
			errs = append(errs, err)
		}
	}
	check("warning_ltv", p.WarningLTV)
	check("danger_ltv", p.DangerLTV)
	check("margin_call_offset", p.MarginCallOffset)
	check("stop_loss_offset", p.StopLossOffset)
	check("near_liquidation_ltv", p.NearLiquidationLTV)
	check("liquidation_buffer", p.LiquidationBuffer)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if p.DangerLTV > 100 {
		errs = append(errs, invalid(ErrOutOfRange, "danger_ltv", "%v is above 100", p.DangerLTV))
	}
	if p.NearLiquidationLTV > 100 {
		errs = append(errs, invalid(ErrOutOfRange, "near_liquidation_ltv", "%v is above 100", p.NearLiquidationLTV))
	}
	if p.WarningLTV > p.DangerLTV {
		errs = append(errs, invalid(ErrInconsistent, "warning_ltv", "%v is above danger_ltv %v", p.WarningLTV, p.DangerLTV))
	}
	if p.HighRiskAlertCount < 0 {
		errs = append(errs, invalid(ErrNegative, "high_risk_alert_count", "%d must not be negative", p.HighRiskAlertCount))
	}
	return errors.Join(errs...)
}

// DecodePolicy reads a YAML policy from r. Missing keys keep their default value.
func DecodePolicy(r io.Reader) (Policy, error) {
	p := DefaultPolicy()
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("parse error: not a valid policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid policy: %w", err)
	}
	return p, nil
}

// LoadPolicy reads a YAML policy file. An empty path returns DefaultPolicy.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("load error: cannot open policy file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodePolicy(f)
	if err != nil {
		return Policy{}, fmt.Errorf("load error: %q: %w", path, err)
	}
	return p, nil
}
