package entity

import (
	"fmt"
)

// TransactionType represents the kind of movement a record describes
type TransactionType string

// Transaction types
const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeTransfer   TransactionType = "transfer"
	TypePayment    TransactionType = "payment"
	TypeRefund     TransactionType = "refund"
	TypeFee        TransactionType = "fee"
	TypeInterest   TransactionType = "interest"
)

// TransactionStatus defines possible status values for a record
type TransactionStatus string

// TransactionStatus constants
const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
	StatusDisputed  TransactionStatus = "disputed"
	StatusReversed  TransactionStatus = "reversed"
)

// TransactionTypes returns every transaction type, in draw order
func TransactionTypes() []TransactionType {
	return []TransactionType{
		TypeDeposit,
		TypeWithdrawal,
		TypeTransfer,
		TypePayment,
		TypeRefund,
		TypeFee,
		TypeInterest,
	}
}

// TransactionStatuses returns every status, in draw order
func TransactionStatuses() []TransactionStatus {
	return []TransactionStatus{
		StatusCompleted,
		StatusPending,
		StatusFailed,
		StatusDisputed,
		StatusReversed,
	}
}

// Currencies returns the currency draw pool. USD appears five times out of
// ten entries so roughly half of all records settle in USD.
func Currencies() []string {
	return []string{"USD", "USD", "USD", "USD", "USD", "EUR", "GBP", "CAD", "JPY", "AUD"}
}

// PayrollMerchant is the merchant stamped on payroll-style deposits
const PayrollMerchant = "Direct Deposit - Employer"

// Merchants returns the merchant catalog
func Merchants() []string {
	return []string{
		"Amazon", "Walmart", "Target", "Costco", "Whole Foods", "Uber", "Uber Eats",
		"DoorDash", "Spotify", "Netflix", "AT&T", "Verizon", "Comcast", "PG&E",
		"Chevron", "Shell", "CVS", "Walgreens", "Starbucks", "McDonalds",
		"Home Depot", "Lowes", "Apple", "Best Buy", "Direct Deposit - Employer",
		"Venmo", "PayPal", "Zelle", "Chase", "Bank of America", "Wells Fargo",
		"American Express", "Visa", "Mastercard", "Southwest Airlines",
		"Delta Airlines", "Airbnb", "Hilton Hotels", "Marriott Hotels",
	}
}

// FeeBanks returns the institutions that show up as merchants on fee records
func FeeBanks() []string {
	return []string{"Chase", "Bank of America", "Wells Fargo"}
}

// Categories returns the spending category catalog
func Categories() []string {
	return []string{
		"groceries", "dining", "entertainment", "utilities", "housing", "transportation",
		"healthcare", "education", "shopping", "travel", "charity", "income", "investment",
		"savings", "insurance", "taxes", "miscellaneous",
	}
}

// Locations returns the location and channel catalog
func Locations() []string {
	return []string{
		"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX", "Phoenix, AZ",
		"Philadelphia, PA", "San Antonio, TX", "San Diego, CA", "Dallas, TX", "San Jose, CA",
		"Austin, TX", "Jacksonville, FL", "Fort Worth, TX", "Columbus, OH", "Charlotte, NC",
		"San Francisco, CA", "Indianapolis, IN", "Seattle, WA", "Denver, CO", "Boston, MA",
		"Online", "Mobile App", "ATM", "Phone Banking", "Branch",
	}
}

// FormatTransactionID renders the nth issued transaction ID, 1-based
func FormatTransactionID(n int) string {
	return fmt.Sprintf("TXN%08d", n)
}

// FormatCustomerID renders the ith customer ID, 0-based; numbering starts
// at 1001
func FormatCustomerID(i int) string {
	return fmt.Sprintf("CUST%06d", i+1001)
}

// FormatAccountNumber renders an account number from its 8-digit suffix
func FormatAccountNumber(n int) string {
	return fmt.Sprintf("ACCT-%d", n)
}

// IsValidTransactionType validates if the type is part of the catalog
func IsValidTransactionType(t string) bool {
	for _, known := range TransactionTypes() {
		if t == string(known) {
			return true
		}
	}
	return false
}

// IsValidStatus validates if the status is part of the catalog
func IsValidStatus(s string) bool {
	for _, known := range TransactionStatuses() {
		if s == string(known) {
			return true
		}
	}
	return false
}
