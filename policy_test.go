package collateral

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodePolicy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Policy
	}{
		{"empty", "", DefaultPolicy()},
		{"partial", "warning_ltv: 60\ndanger_ltv: 75\n", func() Policy {
			p := DefaultPolicy()
			p.WarningLTV, p.DangerLTV = 60, 75
			return p
		}()},
		{"count", "high_risk_alert_count: 0\n", func() Policy {
			p := DefaultPolicy()
			p.HighRiskAlertCount = 0
			return p
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePolicy(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodePolicy() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodePolicy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodePolicy_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"nan", "warning_ltv: .nan\n", ErrInvalidNumber},
		{"negative", "margin_call_offset: -1\n", ErrNegative},
		{"danger above 100", "danger_ltv: 120\n", ErrOutOfRange},
		{"warning above danger", "warning_ltv: 85\n", ErrInconsistent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePolicy(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodePolicy() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := DecodePolicy(strings.NewReader("warning_ltv: [1, 2]\n")); err == nil {
		t.Error("DecodePolicy() on malformed yaml = nil, want an error")
	}
}

func TestLoadPolicy(t *testing.T) {
	p, err := LoadPolicy("")
	if err != nil || p != DefaultPolicy() {
		t.Errorf("LoadPolicy(\"\") = %+v, %v, want the default policy", p, err)
	}

	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("stop_loss_offset: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = LoadPolicy(path)
	if err != nil {
		t.Fatalf("LoadPolicy() error = %v", err)
	}
	if p.StopLossOffset != 10 || p.MarginCallOffset != 3.75 {
		t.Errorf("LoadPolicy() = %+v", p)
	}

	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPolicy(missing) error = %v, want %v", err, os.ErrNotExist)
	}
}
