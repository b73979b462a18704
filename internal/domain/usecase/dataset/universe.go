package dataset

import (
	"txnsynth/internal/domain/entity"
	tport "txnsynth/internal/domain/port/core"
)

// Universe holds the customers and accounts that every synthesized record
// draws from. It is built once per run, before any record exists, and is
// immutable afterwards.
type Universe struct {
	customers []string
	accounts  map[string][]string
	total     int
}

// BuildUniverse creates the customer population and assigns each customer
// one to three accounts. Account numbers are drawn uniformly from the
// 8-digit space and redrawn on collision, so they are unique across the
// whole universe.
func BuildUniverse(r tport.Rand, customerCount int) *Universe {
	customers := make([]string, customerCount)
	for i := range customers {
		customers[i] = entity.FormatCustomerID(i)
	}

	taken := make(map[string]struct{}, customerCount*2)
	accounts := make(map[string][]string, customerCount)
	total := 0
	for _, customer := range customers {
		count := accountCount(r)
		owned := make([]string, 0, count)
		for len(owned) < count {
			number := entity.FormatAccountNumber(10000000 + r.Intn(90000000))
			if _, dup := taken[number]; dup {
				continue
			}
			taken[number] = struct{}{}
			owned = append(owned, number)
		}
		accounts[customer] = owned
		total += count
	}

	return &Universe{
		customers: customers,
		accounts:  accounts,
		total:     total,
	}
}

// accountCount draws how many accounts one customer owns: one with
// probability 0.5, otherwise two with probability 0.8, otherwise three.
// The second draw only happens when the first fails.
func accountCount(r tport.Rand) int {
	if r.Float64() < 0.5 {
		return 1
	}
	if r.Float64() < 0.8 {
		return 2
	}
	return 3
}

// PickCustomer draws one customer uniformly
func (u *Universe) PickCustomer(r tport.Rand) string {
	return u.customers[r.Intn(len(u.customers))]
}

// PickAccount draws one of the customer's accounts uniformly
func (u *Universe) PickAccount(r tport.Rand, customer string) string {
	owned := u.accounts[customer]
	return owned[r.Intn(len(owned))]
}

// Customers returns the customer IDs in creation order
func (u *Universe) Customers() []string {
	return u.customers
}

// AccountsOf returns the accounts owned by one customer
func (u *Universe) AccountsOf(customer string) []string {
	return u.accounts[customer]
}

// CustomerCount returns the number of customers
func (u *Universe) CustomerCount() int {
	return len(u.customers)
}

// AccountCount returns the total number of accounts across all customers
func (u *Universe) AccountCount() int {
	return u.total
}
