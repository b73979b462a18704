package dataset

import (
	"txnsynth/internal/domain/entity"
	errs "txnsynth/internal/domain/error"
	tport "txnsynth/internal/domain/port/core"
	"txnsynth/internal/domain/port/usecase"
	"txnsynth/internal/domain/usecase/corrupt"
)

// Mutator rewrites records already present in a snapshot. A mutation never
// changes a record's position or its transaction ID; it rewrites exactly
// one aspect (status, amount, or timestamp), passing the rewritten fields
// through the corruptor on the way out. Skipped records stay byte-for-byte
// as they were, and the ledger only moves on a fully successful amount
// adjustment.
type Mutator struct {
	rand      tport.Rand
	corruptor *corrupt.Corruptor
	ledger    *entity.Ledger
	ids       *IDRegistry
	logger    tport.Logger
	errorRate float64
}

// NewMutator creates a mutator over shared run state
func NewMutator(
	rand tport.Rand,
	corruptor *corrupt.Corruptor,
	ledger *entity.Ledger,
	ids *IDRegistry,
	logger tport.Logger,
	errorRate float64,
) *Mutator {
	return &Mutator{
		rand:      rand,
		corruptor: corruptor,
		ledger:    ledger,
		ids:       ids,
		logger:    logger,
		errorRate: errorRate,
	}
}

// MutateRecords selects percent% of the records (rounded down), in random
// order and without replacement, and applies one random mutation to each.
func (m *Mutator) MutateRecords(records []entity.Record, percent int, window Window) usecase.MutationTally {
	count := len(records) * percent / 100
	selected := m.rand.Perm(len(records))[:count]

	tally := usecase.MutationTally{
		Selected: count,
		Results:  make([]usecase.MutationResult, 0, count),
	}
	for _, idx := range selected {
		result := m.mutateOne(&records[idx], idx, window)
		tally.Results = append(tally.Results, result)

		switch result.Outcome {
		case usecase.OutcomeMutated:
			tally.Mutated++
			switch result.Field {
			case "status":
				tally.StatusFlips++
			case "amount":
				tally.AmountAdjustments++
			case "timestamp":
				tally.TimestampShifts++
			}
		case usecase.OutcomeSkippedUnresolvable:
			tally.SkippedUnresolvable++
			m.logSkip(result)
		case usecase.OutcomeSkippedUnparsable:
			tally.SkippedUnparsable++
			m.logSkip(result)
		}
	}
	return tally
}

// mutateOne applies one mutation to the record. The mutation kind is drawn
// before the record is identified, so a skipped record still consumes the
// kind draw.
func (m *Mutator) mutateOne(rec *entity.Record, idx int, window Window) usecase.MutationResult {
	kind := m.rand.Float64()

	id, err := m.ids.Resolve(rec.TransactionID)
	if err != nil {
		return usecase.MutationResult{
			Index:         idx,
			TransactionID: rec.TransactionID.Render(),
			Outcome:       usecase.OutcomeSkippedUnresolvable,
			Reason:        err,
		}
	}

	switch {
	case kind < 0.4:
		m.flipStatus(rec)
		return usecase.MutationResult{Index: idx, TransactionID: id, Field: "status", Outcome: usecase.OutcomeMutated}
	case kind < 0.8:
		return m.adjustAmount(rec, idx, id)
	default:
		m.shiftTimestamp(rec, window)
		return usecase.MutationResult{Index: idx, TransactionID: id, Field: "timestamp", Outcome: usecase.OutcomeMutated}
	}
}

// flipStatus redraws the status until it differs from whatever the record
// currently carries. A corrupted stored status never equals a catalog
// value, so the first draw sticks.
func (m *Mutator) flipStatus(rec *entity.Record) {
	statuses := entity.TransactionStatuses()
	next := statuses[m.rand.Intn(len(statuses))]
	for sameStatus(rec.Status, next) {
		next = statuses[m.rand.Intn(len(statuses))]
	}
	rec.Status = m.corruptor.Corrupt(entity.TextValue(string(next)), m.errorRate)
}

func sameStatus(v entity.Value, s entity.TransactionStatus) bool {
	text, ok := v.Text()
	return ok && text == string(s)
}

// adjustAmount rescales the record's amount to 80-120% of its stored value
// and restates the balance. The old amount is backed out of the ledger and
// the new clean amount applied before the emitted copies are corrupted, so
// either the whole swap lands or nothing does.
func (m *Mutator) adjustAmount(rec *entity.Record, idx int, id string) usecase.MutationResult {
	if rec.AccountNumber.IsBlank() {
		return usecase.MutationResult{
			Index:         idx,
			TransactionID: id,
			Field:         "amount",
			Outcome:       usecase.OutcomeSkippedUnresolvable,
			Reason:        errs.NewUnknownAccountError(id, rec.AccountNumber.Render()),
		}
	}
	account := rec.AccountNumber.Render()

	oldAmount, err := entity.ReadAmount(rec.Amount)
	if err != nil {
		return usecase.MutationResult{
			Index:         idx,
			TransactionID: id,
			Field:         "amount",
			Outcome:       usecase.OutcomeSkippedUnparsable,
			Reason:        errs.NewAmountParseError(id, rec.Amount.Render()),
		}
	}

	if _, err := m.ledger.Shift(account, -oldAmount); err != nil {
		return usecase.MutationResult{
			Index:         idx,
			TransactionID: id,
			Field:         "amount",
			Outcome:       usecase.OutcomeSkippedUnresolvable,
			Reason:        errs.NewUnknownAccountError(id, account),
		}
	}

	newAmount := entity.Round2(oldAmount * (0.8 + m.rand.Float64()*0.4))
	// The account was proven tracked by the shift above
	balance, _ := m.ledger.Shift(account, newAmount)

	rec.Amount = m.corruptor.Corrupt(entity.NumberValue(newAmount), m.errorRate)
	rec.BalanceAfter = m.corruptor.Corrupt(entity.NumberValue(entity.Round2(balance)), m.errorRate)
	return usecase.MutationResult{Index: idx, TransactionID: id, Field: "amount", Outcome: usecase.OutcomeMutated}
}

// shiftTimestamp redraws the timestamp inside the delta window, moving the
// record into the newer date range
func (m *Mutator) shiftTimestamp(rec *entity.Record, window Window) {
	t := randomTimestamp(m.rand, window)
	rec.Timestamp = m.corruptor.Corrupt(entity.TextValue(t.Format(entity.TimestampLayout)), m.errorRate)
}

func (m *Mutator) logSkip(result usecase.MutationResult) {
	fields := map[string]any{
		"index":         result.Index,
		"transactionId": result.TransactionID,
		"outcome":       result.Outcome.String(),
	}
	if result.Reason != nil {
		fields["reason"] = result.Reason.Error()
	}
	m.logger.Debug("Skipped record during mutation", fields)
}
