package collateral

import (
	"fmt"
	"math"
)

// ValidationError reports a malformed or out-of-range numeric or enum input.
// Errors derived from one of the Err* sentinels below match it with errors.Is.
type ValidationError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	Internal error  `json:"-"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error { return e.Internal }

// Is matches any ValidationError carrying the same code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

// Validation errors.
var (
	ErrInvalidNumber       = &ValidationError{Code: "INVALID_NUMBER", Message: "value is not a finite number"}
	ErrNegative            = &ValidationError{Code: "NEGATIVE", Message: "value must not be negative"}
	ErrOutOfRange          = &ValidationError{Code: "OUT_OF_RANGE", Message: "value is out of range"}
	ErrUnknownAssetType    = &ValidationError{Code: "UNKNOWN_ASSET_TYPE", Message: "unknown asset type"}
	ErrUnknownRiskRating   = &ValidationError{Code: "UNKNOWN_RISK_RATING", Message: "unknown risk rating"}
	ErrMissingField        = &ValidationError{Code: "MISSING_FIELD", Message: "required field is missing"}
	ErrInconsistent        = &ValidationError{Code: "INCONSISTENT", Message: "fields are inconsistent"}
	ErrUnsupportedCurrency = &ValidationError{Code: "UNSUPPORTED_CURRENCY", Message: "currency is not supported"}
)

// invalid derives a ValidationError from a sentinel for a given field.
func invalid(sentinel *ValidationError, field string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    sentinel.Code,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// QueryError reports an invalid collection query: empty search text, unknown
// sort field, direction or filter type.
type QueryError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

func (e *QueryError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *QueryError) Unwrap() error { return e.Internal }

// Is matches any QueryError carrying the same code.
func (e *QueryError) Is(target error) bool {
	t, ok := target.(*QueryError)
	return ok && t.Code == e.Code
}

// Query errors.
var (
	ErrEmptyQuery        = &QueryError{Code: "EMPTY_QUERY", Message: "search text is empty"}
	ErrUnknownSortField  = &QueryError{Code: "UNKNOWN_SORT_FIELD", Message: "unknown sort field"}
	ErrUnknownDirection  = &QueryError{Code: "UNKNOWN_DIRECTION", Message: "unknown sort direction"}
	ErrUnknownFilterType = &QueryError{Code: "UNKNOWN_FILTER_TYPE", Message: "unknown filter type"}
)

func badQuery(sentinel *QueryError, format string, args ...any) *QueryError {
	return &QueryError{Code: sentinel.Code, Message: fmt.Sprintf(format, args...)}
}

// maxFormattable bounds the magnitude accepted by the formatters so that the
// minor-unit representation always fits in an int64.
const maxFormattable = 1e15

// checkFinite fails on NaN, infinities and magnitudes beyond maxFormattable.
func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(ErrInvalidNumber, field, "%v is not a finite number", v)
	}
	if math.Abs(v) >= maxFormattable {
		return invalid(ErrOutOfRange, field, "%v exceeds the supported magnitude", v)
	}
	return nil
}

// checkNonNegative is checkFinite plus a sign check.
func checkNonNegative(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return invalid(ErrNegative, field, "%v must not be negative", v)
	}
	return nil
}
