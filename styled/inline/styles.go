/*
Package inline bridges between styled text and inline HTML.

Inline elements like <b>, <i> or <u> map to font traits and underlines of
styled text, and vice versa.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// Markup is a set of inline text formats, as expressed by inline HTML elements.
type Markup int

// Some standard inline formats
const (
	PlainMarkup Markup = 0
	BoldMarkup  Markup = 1 << iota
	ItalicsMarkup
	UnderlineMarkup
	MonoMarkup
)

const markupCount = 4

func markupTag(m Markup) string {
	switch m {
	case BoldMarkup:
		return "b"
	case ItalicsMarkup:
		return "i"
	case UnderlineMarkup:
		return "u"
	case MonoMarkup:
		return "tt"
	}
	return ""
}

// MarkupFromHTMLName returns the markup for an HTML element name.
// Elements without an inline format yield PlainMarkup.
func MarkupFromHTMLName(name string) Markup {
	switch strings.ToLower(name) {
	case "b", "strong":
		return BoldMarkup
	case "i", "em", "cite", "var":
		return ItalicsMarkup
	case "u", "ins":
		return UnderlineMarkup
	case "tt", "code", "kbd", "samp":
		return MonoMarkup
	}
	return PlainMarkup
}

// Add combines two sets of markup.
func (m Markup) Add(other Markup) Markup {
	return m | other
}

// Minus removes other from m.
func (m Markup) Minus(other Markup) Markup {
	return m & ^other
}

func (m Markup) String() string {
	if m == PlainMarkup {
		return "plain"
	}
	var tags []string
	for i := 1; i <= markupCount; i++ {
		if m&(1<<i) > 0 {
			tags = append(tags, markupTag(1<<i))
		}
	}
	if len(tags) == 0 {
		return fmt.Sprintf("Markup(%d)", int(m))
	}
	return strings.Join(tags, "+")
}

// Apply adds the markup's traits and underline on top of a base style.
func (m Markup) Apply(base styled.Style) styled.Style {
	sty := base
	if m&BoldMarkup > 0 {
		sty = sty.WithTrait(styled.Bold)
	}
	if m&ItalicsMarkup > 0 {
		sty = sty.WithTrait(styled.Italic)
	}
	if m&MonoMarkup > 0 {
		sty = sty.WithTrait(styled.MonoSpace)
	}
	if m&UnderlineMarkup > 0 && !sty.Underline.IsSet() {
		sty = sty.WithUnderline(styled.UnderlineSingle)
	}
	return sty
}

// MarkupOf extracts the inline markup expressed by a style.
func MarkupOf(sty styled.Style) Markup {
	m := PlainMarkup
	if sty.Font.Traits.Has(styled.Bold) {
		m = m.Add(BoldMarkup)
	}
	if sty.Font.Traits.Has(styled.Italic) {
		m = m.Add(ItalicsMarkup)
	}
	if sty.Underline.IsSet() {
		m = m.Add(UnderlineMarkup)
	}
	if sty.Font.Traits.Has(styled.MonoSpace) {
		m = m.Add(MonoMarkup)
	}
	return m
}

// Tags returns the opening or closing HTML tags for m. Closing tags are
// produced in reverse order.
func (m Markup) Tags(closing bool) string {
	var b strings.Builder
	if closing {
		for i := markupCount; i >= 1; i-- {
			if m&(1<<i) > 0 {
				b.WriteString("</" + markupTag(1<<i) + ">")
			}
		}
		return b.String()
	}
	for i := 1; i <= markupCount; i++ {
		if m&(1<<i) > 0 {
			b.WriteString("<" + markupTag(1<<i) + ">")
		}
	}
	return b.String()
}
