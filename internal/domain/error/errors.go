package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized run reporting
const (
	// 1xxx - Data errors
	CodeMissingTransactionID = 1001
	CodeUnknownTransactionID = 1002
	CodeUnparsableAmount     = 1003
	CodeUnknownAccount       = 1004
	CodeSnapshotWrite        = 1005

	// 2xxx - Configuration errors
	CodeInvalidConfig = 2001

	// 5xxx - Internal errors
	CodeInternal = 5000
)

// Base error types
var (
	// ErrMissingTransactionID is returned when a record selected for mutation
	// carries no usable transaction ID
	ErrMissingTransactionID = errors.New("transaction ID is missing")

	// ErrUnknownTransactionID is returned when a stored transaction ID cannot
	// be matched against any issued ID
	ErrUnknownTransactionID = errors.New("transaction ID does not match any issued ID")

	// ErrUnparsableAmount is returned when a stored amount cannot be read back
	// as a number
	ErrUnparsableAmount = errors.New("amount cannot be parsed")

	// ErrUnknownAccount is returned when a record references an account the
	// ledger has never seen
	ErrUnknownAccount = errors.New("account is not tracked by the ledger")

	// ErrSnapshotWrite is returned when a dataset snapshot cannot be written
	ErrSnapshotWrite = errors.New("snapshot write failed")

	// ErrInvalidConfig is returned when the loaded configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingTransactionID):
		return CodeMissingTransactionID
	case errors.Is(err, ErrUnknownTransactionID):
		return CodeUnknownTransactionID
	case errors.Is(err, ErrUnparsableAmount):
		return CodeUnparsableAmount
	case errors.Is(err, ErrUnknownAccount):
		return CodeUnknownAccount
	case errors.Is(err, ErrSnapshotWrite):
		return CodeSnapshotWrite
	case errors.Is(err, ErrInvalidConfig):
		return CodeInvalidConfig
	default:
		return CodeInternal
	}
}

// AmountParseError reports an amount value that survived corruption in a
// shape the mutator can no longer read back
type AmountParseError struct {
	TransactionID string
	Raw           string
}

// Error implements the error interface
func (e *AmountParseError) Error() string {
	return fmt.Sprintf("cannot parse amount %q on transaction %s", e.Raw, e.TransactionID)
}

// Is checks if the target error is an ErrUnparsableAmount
func (e *AmountParseError) Is(target error) bool {
	return target == ErrUnparsableAmount
}

// LogFields returns a map of fields for structured logging
func (e *AmountParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "amount_parse",
		"transaction_id": e.TransactionID,
		"raw_amount":     e.Raw,
		"error_code":     CodeUnparsableAmount,
	}
}

// NewAmountParseError creates a new detailed amount parse error
func NewAmountParseError(transactionID, raw string) error {
	return &AmountParseError{
		TransactionID: transactionID,
		Raw:           raw,
	}
}

// UnknownTransactionIDError reports a stored transaction ID that could not be
// resolved, even by substring recovery, against the issued IDs
type UnknownTransactionIDError struct {
	Raw string
}

// Error implements the error interface
func (e *UnknownTransactionIDError) Error() string {
	return fmt.Sprintf("stored transaction ID %q does not resolve to any issued ID", e.Raw)
}

// Is checks if the target error is an ErrUnknownTransactionID
func (e *UnknownTransactionIDError) Is(target error) bool {
	return target == ErrUnknownTransactionID
}

// LogFields returns a map of fields for structured logging
func (e *UnknownTransactionIDError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unknown_transaction_id",
		"raw_id":     e.Raw,
		"error_code": CodeUnknownTransactionID,
	}
}

// NewUnknownTransactionIDError creates a new unknown transaction ID error
func NewUnknownTransactionIDError(raw string) error {
	return &UnknownTransactionIDError{Raw: raw}
}

// UnknownAccountError reports a record whose account number is absent from
// the ledger, usually because corruption rewrote it
type UnknownAccountError struct {
	TransactionID string
	Raw           string
}

// Error implements the error interface
func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("account %q on transaction %s is not tracked by the ledger", e.Raw, e.TransactionID)
}

// Is checks if the target error is an ErrUnknownAccount
func (e *UnknownAccountError) Is(target error) bool {
	return target == ErrUnknownAccount
}

// LogFields returns a map of fields for structured logging
func (e *UnknownAccountError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "unknown_account",
		"transaction_id": e.TransactionID,
		"raw_account":    e.Raw,
		"error_code":     CodeUnknownAccount,
	}
}

// NewUnknownAccountError creates a new unknown account error
func NewUnknownAccountError(transactionID, raw string) error {
	return &UnknownAccountError{
		TransactionID: transactionID,
		Raw:           raw,
	}
}

// SnapshotError reports a failed snapshot write, carrying the destination
// and the underlying cause
type SnapshotError struct {
	Seq  int
	Path string
	Err  error
}

// Error implements the error interface
func (e *SnapshotError) Error() string {
	return fmt.Sprintf("writing snapshot %d to %s: %v", e.Seq, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrSnapshotWrite
func (e *SnapshotError) Is(target error) bool {
	return target == ErrSnapshotWrite
}

// LogFields returns a map of fields for structured logging
func (e *SnapshotError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "snapshot_write",
		"seq":        e.Seq,
		"path":       e.Path,
		"error":      e.Err.Error(),
		"error_code": CodeSnapshotWrite,
	}
}

// NewSnapshotError creates a new snapshot write error
func NewSnapshotError(seq int, path string, err error) error {
	return &SnapshotError{
		Seq:  seq,
		Path: path,
		Err:  err,
	}
}

// ConfigError reports a configuration field that failed validation
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrInvalidConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// LogFields returns a map of fields for structured logging
func (e *ConfigError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_config",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeInvalidConfig,
	}
}

// NewConfigError creates a new configuration validation error
func NewConfigError(field, reason string) error {
	return &ConfigError{
		Field:  field,
		Reason: reason,
	}
}

// IsMissingTransactionIDError checks if the error marks a missing transaction ID
func IsMissingTransactionIDError(err error) bool {
	return errors.Is(err, ErrMissingTransactionID)
}

// IsUnknownTransactionIDError checks if the error marks an unresolvable transaction ID
func IsUnknownTransactionIDError(err error) bool {
	return errors.Is(err, ErrUnknownTransactionID)
}

// IsUnparsableAmountError checks if the error marks an unreadable amount
func IsUnparsableAmountError(err error) bool {
	return errors.Is(err, ErrUnparsableAmount)
}

// IsUnknownAccountError checks if the error marks an untracked account
func IsUnknownAccountError(err error) bool {
	return errors.Is(err, ErrUnknownAccount)
}

// IsSnapshotWriteError checks if the error came from writing a snapshot
func IsSnapshotWriteError(err error) bool {
	return errors.Is(err, ErrSnapshotWrite)
}

// IsInvalidConfigError checks if the error came from configuration validation
func IsInvalidConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
