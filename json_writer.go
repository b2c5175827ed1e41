package collateral

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}

	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair to the JSON object only if the provided
// value is not its type's zero value (nil pointers included).
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}

// MarshalJSON writes the asset in the import/export shape, with a fixed field
// order and absent optional fields omitted.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("symbol", a.Symbol)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("price", a.Price.number())
	w.Append("previousPrice", a.PreviousPrice.number())
	w.Append("change", a.Change.number())
	w.Append("changePercent", a.ChangePercent)
	if a.MarketCap != nil {
		w.Append("marketCap", a.MarketCap.number())
	}
	if a.Volume != nil {
		w.Append("volume", a.Volume.number())
	}
	w.Append("loanToValue", a.LoanToValue)
	w.Append("riskRating", a.RiskRating)
	w.Append("collateralValue", a.CollateralValue.number())
	w.Append("maxLoanAmount", a.MaxLoanAmount.number())
	w.Append("liquidationThreshold", a.LiquidationThreshold)
	w.Optional("sector", a.Sector)
	w.Append("timestamp", a.Timestamp.UTC())
	return w.MarshalJSON()
}
