package styled

import (
	"iter"
	"strings"
)

// --- Styled Text -----------------------------------------------------------

// Text is a styled text. Its text and its styles are automatically synchronized.
//
// The zero value is an empty text.
type Text struct {
	text string
	runs runs
}

// TextFromString creates a stylable text from a string. The whole text is
// styled with the zero Style.
func TextFromString(s string) *Text {
	return TextFromStringWithStyle(s, Style{})
}

// TextFromStringWithStyle creates a text from a string, uniformly styled with sty.
func TextFromStringWithStyle(s string, sty Style) *Text {
	t := &Text{text: s}
	if len(s) > 0 {
		t.runs = runs{makeRun(sty, toSpan(0, uint64(len(s))))}
	}
	return t
}

// Raw returns the text without any styles.
func (t *Text) Raw() string {
	return t.text
}

// Len returns the length of the text in bytes.
func (t *Text) Len() uint64 {
	return uint64(len(t.text))
}

// IsVoid is true for an empty text.
func (t *Text) IsVoid() bool {
	return t == nil || len(t.text) == 0
}

// StyleAt returns the style at byte position pos of the styled text, together
// with the start position of the style run containing pos.
func (t *Text) StyleAt(pos uint64) (Style, uint64, error) {
	if t.IsVoid() || pos >= t.Len() {
		return Style{}, pos, ErrIndexOutOfBounds
	}
	i, start := t.runs.locate(pos)
	return t.runs[i].style, start, nil
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text.
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to interface `itemized.Iterator`.
func (t *Text) EachStyleRun(f func(content string, sty Style, pos uint64) error) error {
	var pos uint64
	for _, r := range t.runs {
		if err := f(t.text[pos:pos+r.length], r.style, pos); err != nil {
			return err
		}
		pos += r.length
	}
	return nil
}

// RangeStyleRun iterates over the runs of the text, yielding the content and
// the style of each run.
func (t *Text) RangeStyleRun() iter.Seq2[string, Style] {
	return func(yield func(string, Style) bool) {
		var pos uint64
		for _, r := range t.runs {
			if !yield(t.text[pos:pos+r.length], r.style) {
				return
			}
			pos += r.length
		}
	}
}

// Style styles a run of text, given the start and end position.
// Given range boundaries will silently be restricted to valid text positions.
func (t *Text) Style(sty Style, from, to uint64) *Text {
	return t.Restyle(from, to, func(Style) Style { return sty })
}

// Restyle replaces the style of every run within [from,to) by f(style).
// Runs crossing a range boundary are split, so that text outside of the range
// keeps its style. Afterwards adjacent runs of equal style are merged.
//
// Given range boundaries will silently be restricted to valid text positions.
// An empty range is a no-op.
func (t *Text) Restyle(from, to uint64, f func(Style) Style) *Text {
	spn := toSpan(from, to).contained(t.Len())
	if spn.void() {
		tracer().Debugf("styled text: void span for restyle, ignored")
		return t
	}
	t.runs = t.runs.splitAt(spn.l).splitAt(spn.r)
	var pos uint64
	for i, r := range t.runs {
		if pos >= spn.l && pos+r.length <= spn.r {
			t.runs[i].style = f(r.style)
		}
		pos += r.length
	}
	t.runs = t.runs.coalesce()
	tracer().Debugf("styled text: restyled [%d,%d), runs=%s", spn.l, spn.r, t.runs)
	return t
}

// EveryStyle reports whether all runs overlapping [from,to) satisfy pred.
// For an empty range EveryStyle returns false.
func (t *Text) EveryStyle(from, to uint64, pred func(Style) bool) bool {
	spn := toSpan(from, to).contained(t.Len())
	if spn.void() {
		return false
	}
	var pos uint64
	for _, r := range t.runs {
		if pos < spn.r && pos+r.length > spn.l && !pred(r.style) {
			return false
		}
		pos += r.length
	}
	return true
}

// Insert inserts s at position pos, styled with sty.
func (t *Text) Insert(pos uint64, s string, sty Style) error {
	if pos > t.Len() {
		return ErrIndexOutOfBounds
	}
	if len(s) == 0 {
		return nil
	}
	rs := t.runs.splitAt(pos)
	i, at := 0, uint64(0)
	for i < len(rs) && at < pos {
		at += rs[i].length
		i++
	}
	merged := make(runs, 0, len(rs)+1)
	merged = append(merged, rs[:i]...)
	merged = append(merged, makeRun(sty, toSpan(0, uint64(len(s)))))
	merged = append(merged, rs[i:]...)
	t.text = t.text[:pos] + s + t.text[pos:]
	t.runs = merged.coalesce()
	return nil
}

// Delete removes the text within [from,to), together with its styles.
func (t *Text) Delete(from, to uint64) error {
	spn := toSpan(from, to)
	if spn.r > t.Len() {
		return ErrIndexOutOfBounds
	}
	if spn.void() {
		return nil
	}
	rs := t.runs.splitAt(spn.l).splitAt(spn.r)
	kept := make(runs, 0, len(rs))
	var pos uint64
	for _, r := range rs {
		if pos < spn.l || pos >= spn.r {
			kept = append(kept, r)
		}
		pos += r.length
	}
	t.text = t.text[:spn.l] + t.text[spn.r:]
	t.runs = kept.coalesce()
	return nil
}

// Equals is true if both texts have the same content and the same style runs.
func (t *Text) Equals(other *Text) bool {
	if t == nil || other == nil {
		return t.IsVoid() && other.IsVoid()
	}
	if t.text != other.text || len(t.runs) != len(other.runs) {
		return false
	}
	for i, r := range t.runs {
		if r != other.runs[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of t.
func (t *Text) Copy() *Text {
	c := &Text{text: t.text}
	c.runs = append(runs(nil), t.runs...)
	return c
}

func (t *Text) String() string {
	var b strings.Builder
	for content, sty := range t.RangeStyleRun() {
		b.WriteString("[")
		b.WriteString(sty.String())
		b.WriteString("]")
		b.WriteString(content)
	}
	return b.String()
}

// Section copies a piece of styled text, delimited by parameters from and to.
func Section(t *Text, from, to uint64) (*Text, error) {
	spn := toSpan(from, to)
	if spn.r > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	section := &Text{text: t.text[spn.l:spn.r]}
	if spn.void() {
		return section, nil
	}
	rs := t.runs.splitAt(spn.l).splitAt(spn.r)
	var pos uint64
	for _, r := range rs {
		if pos >= spn.l && pos < spn.r {
			section.runs = append(section.runs, r)
		}
		pos += r.length
	}
	return section, nil
}

// StyleChange holds a style and the text position where the style run starts.
type StyleChange struct {
	Style    Style
	Position uint64
	Length   uint64
}

// StyleRuns returns a slice of style runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	slice := make([]StyleChange, len(t.runs))
	var pos uint64
	for i, r := range t.runs {
		slice[i] = StyleChange{Style: r.style, Position: pos, Length: r.length}
		pos += r.length
	}
	return slice
}

// --- Runs of Styles --------------------------------------------------------

// runs hold information about style-formats which have been applied to a text.
// The sum of all run lengths equals the length of the text they belong to.
type runs []run

// String returns an informational string for these runs. Clients must not rely
// on the format of the string.
func (rs runs) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, r := range rs {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(r.String())
	}
	b.WriteString("}")
	return b.String()
}

// locate finds the run containing pos. pos must be valid.
func (rs runs) locate(pos uint64) (int, uint64) {
	var start uint64
	for i, r := range rs {
		if pos < start+r.length {
			return i, start
		}
		start += r.length
	}
	return len(rs) - 1, start - rs[len(rs)-1].length
}

// splitAt makes sure that a run boundary exists at position pos.
// It returns a fresh slice; the receiver is not modified.
func (rs runs) splitAt(pos uint64) runs {
	out := make(runs, 0, len(rs)+1)
	var start uint64
	for _, r := range rs {
		if pos > start && pos < start+r.length {
			left, right := r.split(pos - start)
			out = append(out, left, right)
		} else {
			out = append(out, r)
		}
		start += r.length
	}
	return out
}

// coalesce merges adjacent runs of equal style and drops empty runs.
func (rs runs) coalesce() runs {
	out := rs[:0]
	for _, r := range rs {
		if r.length == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].style == r.style {
			out[n-1].length += r.length
			continue
		}
		out = append(out, r)
	}
	return out
}

// --- Style Run -------------------------------------------------------------

type run struct {
	style  Style  // applied style
	length uint64 // length of this style run in bytes
}

// Weight is the length of the style run in bytes.
func (r run) Weight() uint64 {
	return r.length
}

func (r run) String() string {
	return r.style.String()
}

// split into 2 runs at position i, resulting in two equal styles with different
// length < |r|.
func (r run) split(i uint64) (run, run) {
	return run{style: r.style, length: i}, run{style: r.style, length: r.length - i}
}

func makeRun(sty Style, spn span) run {
	return run{
		style:  sty,
		length: spn.len(),
	}
}

// --- Span ------------------------------------------------------------------

type span struct {
	l uint64
	r uint64
}

func toSpan(from, to uint64) span {
	if from > to {
		from, to = to, from
	}
	return span{from, to}
}

func (spn span) void() bool {
	return spn.r <= spn.l
}

func (spn span) len() uint64 {
	if spn.void() {
		return 0
	}
	return spn.r - spn.l
}

func (spn span) contained(length uint64) span {
	if spn.r > length {
		spn.r = length
	}
	if spn.l > spn.r {
		spn.l = spn.r
	}
	return spn
}

// --- Range -----------------------------------------------------------------

// Range is a half-open range [From,To) of byte positions of a text.
type Range struct {
	From, To uint64
}

// Empty is true for a range not covering any text, i.e. a caret position.
func (r Range) Empty() bool {
	return r.To <= r.From
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() uint64 {
	if r.Empty() {
		return 0
	}
	return r.To - r.From
}
