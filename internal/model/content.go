package model

import "strings"

// Content is the payload of a Message. It is one of TextContent,
// FragmentContent or UnknownContent.
type Content interface {
	extract() string
}

// Fragment is one element of a FragmentContent. It is one of TextFragment,
// LabeledFragment or OpaqueFragment.
type Fragment interface {
	fragmentText() (string, bool)
}

// TextContent is a plain string payload.
type TextContent string

// FragmentContent is an ordered multi-part payload.
type FragmentContent []Fragment

// UnknownContent is any payload shape the service does not understand.
// It always extracts to "".
type UnknownContent struct{}

// TextFragment is a bare string element.
type TextFragment string

// LabeledFragment is a record element such as {"type":"text","text":"..."}.
// HasText is false when the record carries no text field.
type LabeledFragment struct {
	Type    string
	Text    string
	HasText bool
}

// OpaqueFragment is an element that contributes no text (numbers, nested lists,
// images).
type OpaqueFragment struct{}

// ExtractText flattens any Content into a single trimmed string.
// It never fails: unknown shapes yield "".
func ExtractText(c Content) string {
	if c == nil {
		return ""
	}
	return c.extract()
}

func (c TextContent) extract() string {
	return strings.TrimSpace(string(c))
}

func (c FragmentContent) extract() string {
	var b strings.Builder
	for _, f := range c {
		if f == nil {
			continue
		}
		if text, ok := f.fragmentText(); ok {
			b.WriteString(text)
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func (UnknownContent) extract() string { return "" }

func (f TextFragment) fragmentText() (string, bool) { return string(f), true }

func (f LabeledFragment) fragmentText() (string, bool) { return f.Text, f.HasText }

func (OpaqueFragment) fragmentText() (string, bool) { return "", false }

// Text builds a {"type":"text"} record fragment.
func Text(s string) LabeledFragment {
	return LabeledFragment{Type: "text", Text: s, HasText: true}
}

func cloneContent(c Content) Content {
	fc, ok := c.(FragmentContent)
	if !ok {
		return c
	}
	out := make(FragmentContent, len(fc))
	copy(out, fc)
	return out
}
