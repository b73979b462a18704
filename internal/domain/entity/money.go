package entity

import (
	"fmt"
	"math"
	"strconv"

	errs "txnsynth/internal/domain/error"
)

// Monetary amounts travel through the pipeline as float64 and are rounded
// to two decimal places at every point where the ledger or a record stores
// them. Corrupted copies of an amount may be strings, so reading an amount
// back is a separate, failure-prone operation.

// Round2 rounds a monetary amount to two decimal places
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// FormatNumber renders a number the way emitted CSV cells carry it: the
// shortest decimal form that round-trips, never scientific notation.
// Examples: 1013.4 -> "1013.4", -409.52 -> "-409.52", 409520 -> "409520".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// looksSignedNumeric reports whether s contains only digits, minus signs
// and decimal points, with at least one digit. This is the gate applied to
// stored amount strings before re-parsing; anything a corruption pass
// turned into letters or emptied out fails it.
func looksSignedNumeric(s string) bool {
	digits := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '-' || c == '.':
		default:
			return false
		}
	}
	return digits > 0
}

// ParseLooseAmount reads a stored amount string back into a number. The
// string may have been through corruption, so it is first gated by
// looksSignedNumeric and then parsed strictly; either step failing yields
// ErrUnparsableAmount.
func ParseLooseAmount(s string) (float64, error) {
	if !looksSignedNumeric(s) {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnparsableAmount, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnparsableAmount, s)
	}
	return f, nil
}

// ReadAmount extracts a numeric amount from a record field. Numbers pass
// through untouched, text goes through ParseLooseAmount, and absent fields
// are unreadable.
func ReadAmount(v Value) (float64, error) {
	switch {
	case v.IsNumber():
		f, _ := v.Number()
		return f, nil
	case v.IsText():
		s, _ := v.Text()
		return ParseLooseAmount(s)
	default:
		return 0, fmt.Errorf("%w: field is absent", errs.ErrUnparsableAmount)
	}
}
