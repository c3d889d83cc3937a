package domain

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Notes/Target.md", "Notes/Target.md"},
		{"./Notes/Target.md", "Notes/Target.md"},
		{`Notes\Target.md`, "Notes/Target.md"},
		{"Notes/./Sub/./Target.md", "Notes/Sub/Target.md"},
		{"./a/././b.md", "a/b.md"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureMarkdownSuffix(t *testing.T) {
	if got := EnsureMarkdownSuffix("report"); got != "report.md" {
		t.Errorf("got %q, want report.md", got)
	}
	if got := EnsureMarkdownSuffix("report.md"); got != "report.md" {
		t.Errorf("got %q, want report.md", got)
	}
	if got := EnsureMarkdownSuffix("report.MD"); got != "report.MD" {
		t.Errorf("suffix check should be case-insensitive, got %q", got)
	}
}

func TestPathFilter_GlobalOutputExclusion(t *testing.T) {
	presets := []PresetConfig{
		{Name: "all", OutputPath: "reports/all links"},
		{Name: "drafts", OutputPath: "./drafts links.md"},
	}
	f := NewPathFilter(presets)

	tests := []struct {
		path string
		want bool
	}{
		{"reports/all links.md", true},
		{"./reports/./all links.md", true}, // different spelling, same path
		{"drafts links.md", true},
		{"Notes/Target.md", false},
		{"Reports/all links.md", false}, // comparison is case-sensitive
	}

	for _, tt := range tests {
		if got := f.IsExcluded(tt.path, nil, nil); got != tt.want {
			t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPathFilter_FilenamePatterns(t *testing.T) {
	f := NewPathFilter(nil)

	if !f.IsExcluded("Notes/Draft-1.md", []string{"^Draft"}, nil) {
		t.Error("^Draft should exclude Draft-1.md")
	}
	if f.IsExcluded("Notes/Final.md", []string{"^Draft"}, nil) {
		t.Error("^Draft should not exclude Final.md")
	}
	// Pattern matches the filename alone, not the directory.
	if f.IsExcluded("Draft/Final.md", []string{"^Draft"}, nil) {
		t.Error("filename pattern should ignore directory components")
	}
}

func TestPathFilter_GlobPatterns(t *testing.T) {
	f := NewPathFilter(nil)

	if !f.IsExcluded("Private/x.md", nil, []string{"Private/**"}) {
		t.Error("Private/** should exclude Private/x.md")
	}
	if !f.IsExcluded("Private/deep/y.md", nil, []string{"Private/**"}) {
		t.Error("Private/** should exclude nested paths")
	}
	if f.IsExcluded("Public/x.md", nil, []string{"Private/**"}) {
		t.Error("Private/** should not exclude Public/x.md")
	}
}

func TestPathFilter_InvalidPatternsSkipped(t *testing.T) {
	f := NewPathFilter(nil)

	if f.IsExcluded("Notes/Target.md", []string{"("}, []string{"[unclosed"}) {
		t.Error("invalid patterns should be skipped, not match")
	}
	if !f.IsExcluded("Notes/Target.md", []string{"(", "^Target"}, nil) {
		t.Error("valid pattern after an invalid one should still match")
	}
}
