package domain

import (
	"strings"
	"testing"
)

func TestRenderTable_Format(t *testing.T) {
	entries := []*AggregateEntry{
		{Count: 2, CanonicalDisplay: "[[B]]", DisplayName: "B", ConnectedTerms: []string{"bee", "second b"}},
		{Count: 1, CanonicalDisplay: "X", DisplayName: "X"},
	}

	got := RenderTable(entries, false)
	want := "| Count | Link | Connected Terms |\n" +
		"|-------|------|----------------|\n" +
		"| 2 | [[B]] | bee, second b |\n" +
		"| 1 | X |  |\n"

	if got != want {
		t.Errorf("RenderTable =\n%q\nwant\n%q", got, want)
	}
}

func TestSortEntries_ByCount(t *testing.T) {
	entries := []*AggregateEntry{
		{Count: 1, DisplayName: "A"},
		{Count: 3, DisplayName: "B"},
		{Count: 2, DisplayName: "C"},
		{Count: 3, DisplayName: "D"},
	}

	SortEntries(entries, false)

	counts := []int{entries[0].Count, entries[1].Count, entries[2].Count, entries[3].Count}
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[i-1] {
			t.Fatalf("counts not non-increasing: %v", counts)
		}
	}
	// Stable: B before D on equal counts.
	if entries[0].DisplayName != "B" || entries[1].DisplayName != "D" {
		t.Errorf("tie not broken by insertion order: %s, %s", entries[0].DisplayName, entries[1].DisplayName)
	}
}

func TestSortEntries_Alphabetical(t *testing.T) {
	entries := []*AggregateEntry{
		{Count: 1, DisplayName: "banana"},
		{Count: 5, DisplayName: "Apple"},
		{Count: 2, DisplayName: "cherry"},
		{Count: 3, DisplayName: "apple pie"},
	}

	SortEntries(entries, true)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.DisplayName
	}
	want := []string{"Apple", "apple pie", "banana", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("alphabetical order = %v, want %v", got, want)
		}
	}
}

func TestRenderTable_EmptyEntries(t *testing.T) {
	got := RenderTable(nil, false)
	if !strings.HasPrefix(got, "| Count | Link | Connected Terms |\n") {
		t.Errorf("missing header in %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected header and separator only, got %q", got)
	}
}
