package domain

import "strings"

// Reference is one parsed occurrence of a wiki link inside a note.
type Reference struct {
	RawText    string // original token, e.g. "[[Human Connection|human connection]]"
	IsEmbed    bool   // true for transclusions (![[...]])
	TargetPath string // path portion before the alias separator
	Alias      string // display text after the separator, empty if absent
}

// Link is one outbound reference occurrence as reported by the vault:
// the original token plus the best-effort parsed path component.
type Link struct {
	RawText string
	Target  string
	Embed   bool
}

// ParseReference decomposes a raw link token. Wrapping [[ ]] delimiters and a
// leading embed marker are stripped if present. Only the first | splits the
// text; everything after it, including further separators, is the alias.
// An alias that is empty after trimming is treated as absent.
func ParseReference(raw string) Reference {
	ref := Reference{RawText: raw}

	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "!") {
		ref.IsEmbed = true
		text = text[1:]
	}
	if strings.HasPrefix(text, "[[") && strings.HasSuffix(text, "]]") && len(text) >= 4 {
		text = text[2 : len(text)-2]
	}

	target, alias, found := strings.Cut(text, "|")
	ref.TargetPath = strings.TrimSpace(target)
	if found {
		ref.Alias = strings.TrimSpace(alias)
	}
	return ref
}

// DisplayName returns the alias-stripped text shown for this reference.
func (r Reference) DisplayName() string {
	return r.TargetPath
}
