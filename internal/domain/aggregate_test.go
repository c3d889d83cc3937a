package domain

import "testing"

func TestAggregator_CaseInsensitiveIdentity(t *testing.T) {
	agg := NewAggregator()
	agg.Add("Notes/Target.md", "[[Target]]", "Target", "[[Target]]")
	agg.Add("notes/target.md", "[[target]]", "target", "[[target]]")
	agg.Add("NOTES/TARGET.MD", "[[TARGET]]", "TARGET", "[[TARGET]]")

	if agg.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", agg.Len())
	}

	entries := agg.Entries()
	if entries[0].Count != 3 {
		t.Errorf("Count = %d, want 3", entries[0].Count)
	}
	// First occurrence wins for display values.
	if entries[0].CanonicalDisplay != "[[Target]]" {
		t.Errorf("CanonicalDisplay = %q, want [[Target]]", entries[0].CanonicalDisplay)
	}
	if entries[0].DisplayName != "Target" {
		t.Errorf("DisplayName = %q, want Target", entries[0].DisplayName)
	}
}

func TestAggregator_ConnectedTerms(t *testing.T) {
	agg := NewAggregator()
	agg.Add("Human Connection", "Human Connection", "Human Connection", "[[Human Connection]]")
	agg.Add("Human Connection", "", "", "[[Human Connection|human connection]]")
	agg.Add("Human Connection", "", "", "[[Human Connection|human connection]]")
	agg.Add("Human Connection", "", "", "[[Human Connection|connections]]")
	agg.Add("Human Connection", "", "", "[[Human Connection|Human Connection]]")
	agg.Add("Human Connection", "", "", "[[Human Connection|]]")

	entries := agg.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Count != 6 {
		t.Errorf("Count = %d, want 6", e.Count)
	}

	want := map[string]bool{"human connection": true, "connections": true}
	if len(e.ConnectedTerms) != len(want) {
		t.Fatalf("ConnectedTerms = %v, want %v", e.ConnectedTerms, want)
	}
	for _, term := range e.ConnectedTerms {
		if !want[term] {
			t.Errorf("unexpected connected term %q", term)
		}
		if term == "" {
			t.Error("connected terms must never contain an empty string")
		}
	}
}

func TestAggregator_InsertionOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Add("B.md", "[[B]]", "B", "[[B]]")
	agg.Add("C.md", "[[C]]", "C", "[[C]]")
	agg.Add("A.md", "[[A]]", "A", "[[A]]")
	agg.Add("C.md", "", "", "[[C]]")

	entries := agg.Entries()
	got := []string{entries[0].DisplayName, entries[1].DisplayName, entries[2].DisplayName}
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry order = %v, want %v", got, want)
		}
	}
}

func TestAggregator_Has(t *testing.T) {
	agg := NewAggregator()
	if agg.Has("X.md") {
		t.Error("Has on empty aggregator should be false")
	}
	agg.Add("X.md", "X", "X", "[[X]]")
	if !agg.Has("x.MD") {
		t.Error("Has should be case-insensitive")
	}
}
