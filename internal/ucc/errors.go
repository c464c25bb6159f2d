package ucc

import (
	"errors"
	"fmt"
)

// RangeErrorCode categorizes range errors.
type RangeErrorCode string

const (
	// ErrCodeTriadRange indicates a triad number outside [0, 12].
	ErrCodeTriadRange RangeErrorCode = "OUT_OF_RANGE_TRIAD"

	// ErrCodeDoyRange indicates a day-of-year outside [0, 365].
	ErrCodeDoyRange RangeErrorCode = "OUT_OF_RANGE_DAY_OF_YEAR"
)

// Valid argument ranges.
const (
	MinTriad = 0
	MaxTriad = 12
	MinDoy   = 0
	MaxDoy   = 365
)

// RangeError reports an argument outside the domain of a conversion.
type RangeError struct {
	// Code identifies the error category.
	Code RangeErrorCode

	// Op is the operation that rejected the value (e.g. "DoyToTriad").
	Op string

	// Value is the rejected argument.
	Value int64

	// Min and Max bound the accepted range, inclusive.
	Min, Max int64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s: %d not in [%d, %d]", e.Code, e.Op, e.Value, e.Min, e.Max)
}

func newTriadRangeError(op string, triad int64) *RangeError {
	return &RangeError{Code: ErrCodeTriadRange, Op: op, Value: triad, Min: MinTriad, Max: MaxTriad}
}

func newDoyRangeError(op string, doy int64) *RangeError {
	return &RangeError{Code: ErrCodeDoyRange, Op: op, Value: doy, Min: MinDoy, Max: MaxDoy}
}

// IsTriadRangeError returns true if err is, or wraps, a triad range error.
func IsTriadRangeError(err error) bool {
	var re *RangeError
	if errors.As(err, &re) {
		return re.Code == ErrCodeTriadRange
	}
	return false
}

// IsDoyRangeError returns true if err is, or wraps, a day-of-year range error.
func IsDoyRangeError(err error) bool {
	var re *RangeError
	if errors.As(err, &re) {
		return re.Code == ErrCodeDoyRange
	}
	return false
}

// ErrorCode returns the RangeErrorCode carried by err, or "" if err is not a
// range error.
func ErrorCode(err error) RangeErrorCode {
	var re *RangeError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
