package domain

import "testing"

func TestParseReference(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantTarget string
		wantAlias  string
		wantEmbed  bool
	}{
		{
			name:       "plain link",
			raw:        "[[Target]]",
			wantTarget: "Target",
		},
		{
			name:       "aliased link",
			raw:        "[[Target|alias]]",
			wantTarget: "Target",
			wantAlias:  "alias",
		},
		{
			name:       "embed",
			raw:        "![[Target]]",
			wantTarget: "Target",
			wantEmbed:  true,
		},
		{
			name:       "aliased embed",
			raw:        "![[Notes/Target|the target]]",
			wantTarget: "Notes/Target",
			wantAlias:  "the target",
			wantEmbed:  true,
		},
		{
			name:       "only first separator splits",
			raw:        "[[Target|alias|more]]",
			wantTarget: "Target",
			wantAlias:  "alias|more",
		},
		{
			name:       "empty alias treated as absent",
			raw:        "[[Target|  ]]",
			wantTarget: "Target",
		},
		{
			name:       "whitespace trimmed",
			raw:        "[[ Human Connection | human connection ]]",
			wantTarget: "Human Connection",
			wantAlias:  "human connection",
		},
		{
			name:       "bare text without delimiters",
			raw:        "Target",
			wantTarget: "Target",
		},
		{
			name:       "empty token",
			raw:        "",
			wantTarget: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseReference(tt.raw)

			if ref.TargetPath != tt.wantTarget {
				t.Errorf("TargetPath = %q, want %q", ref.TargetPath, tt.wantTarget)
			}
			if ref.Alias != tt.wantAlias {
				t.Errorf("Alias = %q, want %q", ref.Alias, tt.wantAlias)
			}
			if ref.IsEmbed != tt.wantEmbed {
				t.Errorf("IsEmbed = %v, want %v", ref.IsEmbed, tt.wantEmbed)
			}
			if ref.RawText != tt.raw {
				t.Errorf("RawText = %q, want %q", ref.RawText, tt.raw)
			}
		})
	}
}

func TestParseReference_DisplayName(t *testing.T) {
	ref := ParseReference("[[Target|alias]]")
	if got := ref.DisplayName(); got != "Target" {
		t.Errorf("DisplayName = %q, want Target", got)
	}

	ref = ParseReference("[[Target]]")
	if got := ref.DisplayName(); got != "Target" {
		t.Errorf("DisplayName = %q, want Target", got)
	}
	if ref.Alias != "" {
		t.Errorf("expected absent alias, got %q", ref.Alias)
	}
}
