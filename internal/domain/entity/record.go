package entity

// TimestampLayout is the wall-clock format carried in the timestamp column
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one transaction row. Every field is a Value because corruption
// may have nullified it, typo'd it, or flipped its type; nothing outside
// the synthesizer may assume a field still holds its original shape.
type Record struct {
	TransactionID Value
	Timestamp     Value
	CustomerID    Value
	AccountNumber Value
	Type          Value
	Amount        Value
	Currency      Value
	BalanceAfter  Value
	Status        Value
	Merchant      Value
	Category      Value
	Location      Value
}

// Columns returns the CSV header, in emission order
func Columns() []string {
	return []string{
		"transaction_id",
		"timestamp",
		"customer_id",
		"account_number",
		"transaction_type",
		"amount",
		"currency",
		"balance_after",
		"status",
		"merchant",
		"category",
		"location",
	}
}

// Fields returns the record's values in the same order as Columns
func (r Record) Fields() []Value {
	return []Value{
		r.TransactionID,
		r.Timestamp,
		r.CustomerID,
		r.AccountNumber,
		r.Type,
		r.Amount,
		r.Currency,
		r.BalanceAfter,
		r.Status,
		r.Merchant,
		r.Category,
		r.Location,
	}
}

// Row renders the record as one CSV row, in column order
func (r Record) Row() []string {
	fields := r.Fields()
	row := make([]string, len(fields))
	for i, f := range fields {
		row[i] = f.Render()
	}
	return row
}
