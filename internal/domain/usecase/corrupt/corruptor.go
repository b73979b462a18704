package corrupt

import (
	"txnsynth/internal/domain/entity"
	tport "txnsynth/internal/domain/port/core"
	"txnsynth/internal/domain/port/usecase"
)

// Corruptor injects data-quality defects into record fields. Each field is
// corrupted independently with the probability passed per call, and a
// corrupted field is damaged in one of four ways: nullified, typo'd,
// type-flipped, or pushed to an extreme value. Variants that cannot apply
// to the field's kind fall through in a fixed order, so numbers see the
// type-flip variant for the whole typo band.
type Corruptor struct {
	rand  tport.Rand
	stats usecase.CorruptionStats
}

// NewCorruptor creates a corruptor drawing from r
func NewCorruptor(r tport.Rand) *Corruptor {
	return &Corruptor{rand: r}
}

// Corrupt returns the field to emit in place of v. With probability p the
// field is damaged; otherwise it passes through untouched. Exactly one
// draw decides the trial, and further draws happen only on the damage
// path, so the draw sequence is reproducible field by field.
func (c *Corruptor) Corrupt(v entity.Value, p float64) entity.Value {
	c.stats.Trials++
	if c.rand.Float64() >= p {
		return v
	}

	out := v
	variant := c.rand.Float64()
	switch {
	case variant < 0.3:
		out = c.nullify()
	case variant < 0.6 && isTypoTarget(v):
		out = c.typo(v)
	case variant < 0.8:
		out = typeFlip(v)
	default:
		out = c.extreme(v)
	}

	if out != v {
		c.stats.Corrupted++
		switch {
		case variant < 0.3:
			c.stats.Nullified++
		case variant < 0.6 && isTypoTarget(v):
			c.stats.Typos++
		case variant < 0.8:
			c.stats.TypeFlips++
		default:
			c.stats.Extremes++
		}
	}
	return out
}

// Stats returns a snapshot of the corruption counters
func (c *Corruptor) Stats() usecase.CorruptionStats {
	return c.stats
}

// nullify empties the field, half the time to an absent value and half the
// time to empty text
func (c *Corruptor) nullify() entity.Value {
	if c.rand.Float64() < 0.5 {
		return entity.AbsentValue()
	}
	return entity.TextValue("")
}

// isTypoTarget reports whether the typo variant can apply: only non-empty
// text can take a character swap
func isTypoTarget(v entity.Value) bool {
	s, ok := v.Text()
	return ok && s != ""
}

// typo replaces one character at a random position with a random lowercase
// letter
func (c *Corruptor) typo(v entity.Value) entity.Value {
	s, _ := v.Text()
	pos := c.rand.Intn(len(s))
	letter := byte('a' + c.rand.Intn(26))
	b := []byte(s)
	b[pos] = letter
	return entity.TextValue(string(b))
}

// typeFlip changes the field's type without changing what it reads as:
// numbers become their text rendering, and text that reads as an unsigned
// number gains a trailing letter. Other shapes are left alone.
func typeFlip(v entity.Value) entity.Value {
	if f, ok := v.Number(); ok {
		return entity.TextValue(entity.FormatNumber(f))
	}
	if s, ok := v.Text(); ok && plainNumeric(s) {
		return entity.TextValue(s + "x")
	}
	return v
}

// extreme distorts numeric magnitude: scaled a thousandfold or negated,
// half and half. Non-numbers pass through without consuming a draw.
func (c *Corruptor) extreme(v entity.Value) entity.Value {
	f, ok := v.Number()
	if !ok {
		return v
	}
	if c.rand.Float64() < 0.5 {
		return entity.NumberValue(f * 1000)
	}
	return entity.NumberValue(-f)
}

// plainNumeric reports whether s is digits with at most one decimal point
// and no sign, the shape the type-flip variant targets
func plainNumeric(s string) bool {
	digits := 0
	dotSeen := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dotSeen:
			dotSeen = true
		default:
			return false
		}
	}
	return digits > 0
}
