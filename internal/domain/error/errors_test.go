package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrMissingTransactionID.Error() != "transaction ID is missing" {
		t.Errorf("ErrMissingTransactionID has unexpected message: %s", ErrMissingTransactionID.Error())
	}
	if ErrUnparsableAmount.Error() != "amount cannot be parsed" {
		t.Errorf("ErrUnparsableAmount has unexpected message: %s", ErrUnparsableAmount.Error())
	}
	// Add more assertions for other base error types as needed
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingTransactionID", ErrMissingTransactionID, 1001},
		{"UnknownTransactionID", ErrUnknownTransactionID, 1002},
		{"UnparsableAmount", ErrUnparsableAmount, 1003},
		{"UnknownAccount", ErrUnknownAccount, 1004},
		{"SnapshotWrite", ErrSnapshotWrite, 1005},
		{"InvalidConfig", ErrInvalidConfig, 2001},
		{"Internal", ErrInternal, 5000},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnknownAccount), 1004},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestAmountParseError(t *testing.T) {
	baseErr := ErrUnparsableAmount
	parseErr := &AmountParseError{
		TransactionID: "TXN00000042",
		Raw:           "409.52x",
	}

	// Test Error method
	expectedErrMsg := `cannot parse amount "409.52x" on transaction TXN00000042`
	if parseErr.Error() != expectedErrMsg {
		t.Errorf("AmountParseError.Error() = %s, want %s", parseErr.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(parseErr, baseErr) {
		t.Errorf("errors.Is(parseErr, baseErr) = false, want true")
	}
}

func TestUnknownAccountError(t *testing.T) {
	baseErr := ErrUnknownAccount
	acctErr := &UnknownAccountError{
		TransactionID: "TXN00000007",
		Raw:           "ACCT-12e45678",
	}

	// Test Error method
	expectedErrMsg := `account "ACCT-12e45678" on transaction TXN00000007 is not tracked by the ledger`
	if acctErr.Error() != expectedErrMsg {
		t.Errorf("UnknownAccountError.Error() = %s, want %s", acctErr.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(acctErr, baseErr) {
		t.Errorf("errors.Is(acctErr, baseErr) = false, want true")
	}
}

func TestUnknownTransactionIDError(t *testing.T) {
	err := NewUnknownTransactionIDError("TXN0000x042")
	if err == nil {
		t.Fatal("NewUnknownTransactionIDError returned nil")
	}

	// Test Error method
	expectedErrMsg := `stored transaction ID "TXN0000x042" does not resolve to any issued ID`
	if err.Error() != expectedErrMsg {
		t.Errorf("UnknownTransactionIDError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrUnknownTransactionID) {
		t.Errorf("errors.Is(err, ErrUnknownTransactionID) = false, want true")
	}

	// Test through helper function
	if !IsUnknownTransactionIDError(err) {
		t.Errorf("IsUnknownTransactionIDError(err) = false, want true")
	}
}

func TestSnapshotError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewSnapshotError(3, "data/financial_transactions_delta_3.csv", cause)
	if err == nil {
		t.Fatal("NewSnapshotError returned nil")
	}

	// Test Error method
	expectedErrMsg := "writing snapshot 3 to data/financial_transactions_delta_3.csv: disk full"
	if err.Error() != expectedErrMsg {
		t.Errorf("SnapshotError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrSnapshotWrite) {
		t.Errorf("errors.Is(err, ErrSnapshotWrite) = false, want true")
	}

	// Test unwrapping to the underlying cause
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	// Test through helper function
	if !IsSnapshotWriteError(err) {
		t.Errorf("IsSnapshotWriteError(err) = false, want true")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	// Test regular errors
	if IsUnparsableAmountError(ErrUnknownAccount) {
		t.Errorf("IsUnparsableAmountError(ErrUnknownAccount) = true, want false")
	}

	if IsUnknownAccountError(ErrMissingTransactionID) {
		t.Errorf("IsUnknownAccountError(ErrMissingTransactionID) = true, want false")
	}

	if IsMissingTransactionIDError(ErrUnknownTransactionID) {
		t.Errorf("IsMissingTransactionIDError(ErrUnknownTransactionID) = true, want false")
	}

	// Test wrapped errors
	wrappedAmountErr := fmt.Errorf("wrapped: %w", ErrUnparsableAmount)
	if !IsUnparsableAmountError(wrappedAmountErr) {
		t.Errorf("IsUnparsableAmountError(wrappedAmountErr) = false, want true")
	}

	wrappedConfigErr := fmt.Errorf("wrapped: %w", ErrInvalidConfig)
	if !IsInvalidConfigError(wrappedConfigErr) {
		t.Errorf("IsInvalidConfigError(wrappedConfigErr) = false, want true")
	}

	// Typed errors wrap their base error through Is
	typedErr := NewAmountParseError("TXN00000011", "")
	if !IsUnparsableAmountError(typedErr) {
		t.Errorf("IsUnparsableAmountError(typedErr) = false, want true")
	}
}

func TestNewConfigError(t *testing.T) {
	cfgErr := NewConfigError("generation.errorRate", "must be between 0 and 1")

	if cfgErr == nil {
		t.Fatal("NewConfigError returned nil")
	}

	// Check if the error is correctly created
	var cfgErrCast *ConfigError
	if !errors.As(cfgErr, &cfgErrCast) {
		t.Fatalf("errors.As failed: not a *ConfigError")
	}

	if cfgErrCast.Field != "generation.errorRate" {
		t.Errorf("Field = %s, want generation.errorRate", cfgErrCast.Field)
	}

	if cfgErrCast.Reason != "must be between 0 and 1" {
		t.Errorf("Reason = %s, want must be between 0 and 1", cfgErrCast.Reason)
	}

	// Test Error method
	expectedErrMsg := "config field generation.errorRate: must be between 0 and 1"
	if cfgErr.Error() != expectedErrMsg {
		t.Errorf("ConfigError.Error() = %s, want %s", cfgErr.Error(), expectedErrMsg)
	}

	// Compare errors using errors.Is instead of direct equality
	if !errors.Is(cfgErr, ErrInvalidConfig) {
		t.Errorf("errors.Is(cfgErr, ErrInvalidConfig) = false, want true")
	}

	// Test through helper function
	if !IsInvalidConfigError(cfgErr) {
		t.Errorf("IsInvalidConfigError(cfgErr) = false, want true")
	}
}
