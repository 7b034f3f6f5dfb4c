package styled

import "strings"

// TextBuilder is for building styled text from style runs.
type TextBuilder struct {
	content strings.Builder
	runs    runs
	done    bool
}

// NewTextBuilder creates a new and empty builder for styled.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	text := &Text{
		text: b.content.String(),
		runs: append(runs(nil), b.runs...).coalesce(),
	}
	if text.IsVoid() {
		tracer().Debugf("text builder: text is void")
	}
	return text
}

// Append appends a text fragment at the end of the text to build, styled
// with sty.
func (b *TextBuilder) Append(fragment string, sty Style) error {
	if b.done {
		return ErrTextCompleted
	}
	if len(fragment) == 0 {
		return nil
	}
	b.content.WriteString(fragment)
	b.runs = append(b.runs, makeRun(sty, toSpan(0, uint64(len(fragment)))))
	return nil
}
