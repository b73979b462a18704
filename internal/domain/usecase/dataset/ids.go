package dataset

import (
	"strings"

	"txnsynth/internal/domain/entity"
	errs "txnsynth/internal/domain/error"
)

// IDRegistry issues sequential transaction IDs and resolves stored,
// possibly corrupted, ID fields back to the IDs it issued. Every record in
// a run gets its ID from the same registry, so IDs stay globally unique
// and strictly ordered across deltas.
type IDRegistry struct {
	issued []string
	known  map[string]struct{}
}

// NewIDRegistry creates an empty registry
func NewIDRegistry() *IDRegistry {
	return &IDRegistry{
		known: make(map[string]struct{}),
	}
}

// Next issues the next transaction ID in sequence, starting at TXN00000001
func (g *IDRegistry) Next() string {
	id := entity.FormatTransactionID(len(g.issued) + 1)
	g.issued = append(g.issued, id)
	g.known[id] = struct{}{}
	return id
}

// Count returns how many IDs have been issued
func (g *IDRegistry) Count() int {
	return len(g.issued)
}

// Contains reports whether id was issued by this registry
func (g *IDRegistry) Contains(id string) bool {
	_, ok := g.known[id]
	return ok
}

// Resolve maps a stored ID field back to an issued ID. A clean ID resolves
// to itself. A corrupted ID is recovered on a best-effort basis: if any
// issued ID is a substring of the stored text, the earliest issued match
// wins. The stored field itself is never repaired.
//
// Possible errors:
// - ErrMissingTransactionID: if the field is absent or empty
// - ErrUnknownTransactionID: if nothing issued matches
func (g *IDRegistry) Resolve(v entity.Value) (string, error) {
	if v.IsBlank() {
		return "", errs.ErrMissingTransactionID
	}

	raw := v.Render()
	if _, ok := g.known[raw]; ok {
		return raw, nil
	}
	for _, id := range g.issued {
		if strings.Contains(raw, id) {
			return id, nil
		}
	}
	return "", errs.NewUnknownTransactionIDError(raw)
}
