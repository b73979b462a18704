package dataset

import (
	"time"

	"txnsynth/internal/domain/entity"
	tport "txnsynth/internal/domain/port/core"
	"txnsynth/internal/domain/usecase/corrupt"
)

const secondsPerDay = 86400

// Window bounds the timestamps of one generation phase. End is exclusive
// at day granularity: a drawn timestamp falls on a day in [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns how many whole days the window spans
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// randomTimestamp draws a uniform day inside the window, then a uniform
// second of that day
func randomTimestamp(r tport.Rand, w Window) time.Time {
	day := r.Intn(w.Days())
	sec := r.Intn(secondsPerDay)
	return w.Start.AddDate(0, 0, day).Add(time.Duration(sec) * time.Second)
}

// Synthesizer builds fresh transaction records. Every draw goes through
// the shared Rand, the clean amount is applied to the ledger before any
// corruption happens, and only the emitted copy of each field passes
// through the corruptor.
type Synthesizer struct {
	rand           tport.Rand
	corruptor      *corrupt.Corruptor
	universe       *Universe
	ledger         *entity.Ledger
	ids            *IDRegistry
	errorRate      float64
	optionalFactor float64
}

// NewSynthesizer creates a synthesizer over shared run state
func NewSynthesizer(
	rand tport.Rand,
	corruptor *corrupt.Corruptor,
	universe *Universe,
	ledger *entity.Ledger,
	ids *IDRegistry,
	errorRate float64,
	optionalFactor float64,
) *Synthesizer {
	return &Synthesizer{
		rand:           rand,
		corruptor:      corruptor,
		universe:       universe,
		ledger:         ledger,
		ids:            ids,
		errorRate:      errorRate,
		optionalFactor: optionalFactor,
	}
}

// Synthesize draws one record with a timestamp inside the window. The
// ledger is updated with the clean amount; the record carries the
// corrupted copies.
func (s *Synthesizer) Synthesize(window Window) entity.Record {
	id := s.ids.Next()
	timestamp := randomTimestamp(s.rand, window)
	customer := s.universe.PickCustomer(s.rand)
	account := s.universe.PickAccount(s.rand, customer)
	txType := s.pickType()
	amount := s.drawAmount(txType)
	currency := s.pickCurrency()
	balance := s.ledger.Apply(s.rand, account, amount)
	status := s.pickStatus()
	merchant, category := s.merchantAndCategory(txType)
	location := s.pickLocation()

	base := s.errorRate
	optional := s.errorRate * s.optionalFactor
	return entity.Record{
		TransactionID: s.corruptor.Corrupt(entity.TextValue(id), base),
		Timestamp:     s.corruptor.Corrupt(entity.TextValue(timestamp.Format(entity.TimestampLayout)), base),
		CustomerID:    s.corruptor.Corrupt(entity.TextValue(customer), base),
		AccountNumber: s.corruptor.Corrupt(entity.TextValue(account), base),
		Type:          s.corruptor.Corrupt(entity.TextValue(string(txType)), base),
		Amount:        s.corruptor.Corrupt(entity.NumberValue(amount), base),
		Currency:      s.corruptor.Corrupt(entity.TextValue(currency), base),
		BalanceAfter:  s.corruptor.Corrupt(entity.NumberValue(entity.Round2(balance)), base),
		Status:        s.corruptor.Corrupt(entity.TextValue(string(status)), base),
		Merchant:      s.corruptor.Corrupt(merchant, optional),
		Category:      s.corruptor.Corrupt(category, optional),
		Location:      s.corruptor.Corrupt(entity.TextValue(location), optional),
	}
}

// drawAmount draws an amount whose sign and range depend on the
// transaction type: credits for deposit-like types, debits for
// withdrawal-like types, small debits for fees.
func (s *Synthesizer) drawAmount(t entity.TransactionType) float64 {
	switch t {
	case entity.TypeDeposit, entity.TypeRefund, entity.TypeInterest:
		return entity.Round2(s.rand.Float64()*2000 + 10)
	case entity.TypeWithdrawal, entity.TypePayment, entity.TypeTransfer:
		return entity.Round2(-s.rand.Float64()*1000 - 10)
	case entity.TypeFee:
		return entity.Round2(-s.rand.Float64()*50 - 1)
	default:
		magnitude := s.rand.Float64() * 1000
		if s.rand.Float64() < 0.5 {
			return entity.Round2(magnitude)
		}
		return entity.Round2(-magnitude)
	}
}

// merchantAndCategory stamps merchant and category according to the
// transaction type: payments and refunds draw freely from the catalogs,
// most deposits look like payroll, fees come from a bank, and everything
// else leaves both fields empty.
func (s *Synthesizer) merchantAndCategory(t entity.TransactionType) (entity.Value, entity.Value) {
	switch {
	case t == entity.TypePayment || t == entity.TypeRefund:
		merchant := s.pickString(entity.Merchants())
		category := s.pickString(entity.Categories())
		return entity.TextValue(merchant), entity.TextValue(category)
	case t == entity.TypeDeposit && s.rand.Float64() < 0.7:
		return entity.TextValue(entity.PayrollMerchant), entity.TextValue("income")
	case t == entity.TypeFee:
		return entity.TextValue(s.pickString(entity.FeeBanks())), entity.TextValue("fees")
	default:
		return entity.AbsentValue(), entity.AbsentValue()
	}
}

func (s *Synthesizer) pickType() entity.TransactionType {
	types := entity.TransactionTypes()
	return types[s.rand.Intn(len(types))]
}

func (s *Synthesizer) pickStatus() entity.TransactionStatus {
	statuses := entity.TransactionStatuses()
	return statuses[s.rand.Intn(len(statuses))]
}

func (s *Synthesizer) pickCurrency() string {
	return s.pickString(entity.Currencies())
}

func (s *Synthesizer) pickLocation() string {
	return s.pickString(entity.Locations())
}

func (s *Synthesizer) pickString(items []string) string {
	return items[s.rand.Intn(len(items))]
}
