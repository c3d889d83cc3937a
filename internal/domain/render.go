package domain

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	tableHeader    = "| Count | Link | Connected Terms |"
	tableSeparator = "|-------|------|----------------|"
)

// SortEntries orders entries in place. Alphabetical mode compares display
// names case-insensitively with locale-aware collation; otherwise entries are
// ordered by count descending. Both modes are stable, so ties keep their
// original insertion order.
func SortEntries(entries []*AggregateEntry, alphabetical bool) {
	if alphabetical {
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(entries, func(i, j int) bool {
			return c.CompareString(entries[i].DisplayName, entries[j].DisplayName) < 0
		})
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
}

// RenderTable sorts the entries and serializes them to the three-column
// report table. Cell values are not escaped; a literal | inside a display
// name or term corrupts the table structure (known limitation).
func RenderTable(entries []*AggregateEntry, alphabetical bool) string {
	SortEntries(entries, alphabetical)

	var sb strings.Builder
	sb.WriteString(tableHeader)
	sb.WriteByte('\n')
	sb.WriteString(tableSeparator)
	sb.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", e.Count, e.CanonicalDisplay, strings.Join(e.ConnectedTerms, ", "))
	}
	return sb.String()
}
