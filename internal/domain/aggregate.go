package domain

import "strings"

// AggregateEntry accumulates all admitted occurrences pointing at one
// resolved target. It lives for the duration of a single report run.
type AggregateEntry struct {
	Count            int
	CanonicalDisplay string   // "Link" column value
	DisplayName      string   // alias-stripped text of the first occurrence
	ConnectedTerms   []string // distinct aliases observed across occurrences

	rawTexts []string
}

// Aggregator folds reference occurrences into one entry per distinct
// case-insensitive resolved identity. Stored display values keep their
// original casing; lower-casing applies to map lookup only.
//
// Aggregation is two-pass: Add only appends the raw text, and Entries derives
// connected terms once per accumulated occurrence. This keeps the hot loop
// O(1) amortized per reference.
type Aggregator struct {
	entries map[string]*AggregateEntry
	order   []string
}

// NewAggregator returns an empty aggregator for one report run.
func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]*AggregateEntry)}
}

// Has reports whether an entry already exists for the identity. Callers use
// this to compute the canonical display only for first occurrences.
func (a *Aggregator) Has(identity string) bool {
	_, ok := a.entries[strings.ToLower(identity)]
	return ok
}

// Add folds one admitted occurrence into the aggregate. canonicalDisplay and
// displayName are taken from the first occurrence only.
func (a *Aggregator) Add(identity, canonicalDisplay, displayName, rawText string) {
	key := strings.ToLower(identity)
	if e, ok := a.entries[key]; ok {
		e.Count++
		e.rawTexts = append(e.rawTexts, rawText)
		return
	}

	a.entries[key] = &AggregateEntry{
		Count:            1,
		CanonicalDisplay: canonicalDisplay,
		DisplayName:      displayName,
		rawTexts:         []string{rawText},
	}
	a.order = append(a.order, key)
}

// Len returns the number of distinct entries.
func (a *Aggregator) Len() int {
	return len(a.entries)
}

// Entries derives each entry's connected terms from its stored raw texts and
// returns the entries in insertion order.
func (a *Aggregator) Entries() []*AggregateEntry {
	out := make([]*AggregateEntry, 0, len(a.order))
	for _, key := range a.order {
		e := a.entries[key]
		e.ConnectedTerms = connectedTerms(e.rawTexts, e.DisplayName)
		out = append(out, e)
	}
	return out
}

// connectedTerms extracts the set of non-empty aliases from the raw reference
// texts, excluding the display name itself, with duplicates collapsed.
func connectedTerms(rawTexts []string, displayName string) []string {
	var terms []string
	seen := make(map[string]struct{})
	for _, raw := range rawTexts {
		alias := ParseReference(raw).Alias
		if alias == "" || alias == displayName {
			continue
		}
		if _, dup := seen[alias]; dup {
			continue
		}
		seen[alias] = struct{}{}
		terms = append(terms, alias)
	}
	return terms
}
