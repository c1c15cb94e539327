// Package text manipulates named HTML-comment sections in wikitext.
//
// Sections look like:
//
//	<!-- azusa start="section_id" -->content<!-- azusa end="section_id" -->
//
// and mark content a bot can locate and replace without any side effect
// on the rendered page.
package text

import (
	"fmt"
	"regexp"
)

// Tags is a named start/end comment-tag pair.
type Tags struct {
	Name string
}

// NewTags returns the tag pair for the given section name.
func NewTags(name string) Tags {
	return Tags{Name: name}
}

// Start returns the opening comment tag, e.g.
// `<!-- azusa start="foo" -->`.
func (t Tags) Start() string {
	return fmt.Sprintf(`<!-- azusa start="%s" -->`, t.Name)
}

// End returns the closing comment tag, e.g. `<!-- azusa end="foo" -->`.
func (t Tags) End() string {
	return fmt.Sprintf(`<!-- azusa end="%s" -->`, t.Name)
}

// sectionPattern matches one whole section, capturing the content
// between the tags. (?s) lets the content span lines.
func (t Tags) sectionPattern() *regexp.Regexp {
	pattern := fmt.Sprintf(`(?s)%s(.*?)%s`, regexp.QuoteMeta(t.Start()), regexp.QuoteMeta(t.End()))
	return regexp.MustCompile(pattern)
}

// MakeSection wraps content with the tag pair.
func (t Tags) MakeSection(content string) string {
	return t.Start() + content + t.End()
}

// ExtractContent returns the inner content of the first section found
// in text. The second return is false when no section exists.
func (t Tags) ExtractContent(text string) (string, bool) {
	match := t.sectionPattern().FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ReplaceContent replaces the inner content of every section in text.
// Text without a matching section is returned unchanged.
func (t Tags) ReplaceContent(text, content string) string {
	return t.ReplaceContentN(text, content, -1)
}

// ReplaceContentN replaces the inner content of up to n sections; n < 0
// means all.
func (t Tags) ReplaceContentN(text, content string, n int) string {
	section := t.MakeSection(content)
	count := 0
	return t.sectionPattern().ReplaceAllStringFunc(text, func(found string) string {
		if n >= 0 && count >= n {
			return found
		}
		count++
		return section
	})
}
