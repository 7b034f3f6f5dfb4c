/*
Package textview implements an editable view onto a styled text.

A TextView holds a styled text, the current selection and the typing
attributes, i.e. the style used for text inserted next. It is the concrete
control the formatting operations of package richtext act upon.

Selections are byte ranges of the text. Selecting snaps the range outwards to
grapheme boundaries (UAX#29), so a selection never splits a user perceived
character.

All methods accept a nil *TextView, which behaves like an empty view that
ignores edits.

A TextView is not safe for concurrent use; it belongs to the goroutine driving
the user interface.
*/
package textview

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// TextView is an editable styled text with a selection.
type TextView struct {
	text      *styled.Text
	selection styled.Range
	typing    styled.Style
}

// New creates a text view for text, with the caret at the start of the text.
// base is the initial typing style; it is replaced by the style of the first
// character if text is not empty. A nil text creates an empty view.
func New(text *styled.Text, base styled.Style) *TextView {
	if text == nil {
		text = styled.TextFromStringWithStyle("", base)
	}
	tv := &TextView{text: text, typing: base}
	tv.Select(0, 0)
	return tv
}

// Text returns the styled text of the view. Changes of the text are visible
// to the view. A nil view has a nil text.
func (tv *TextView) Text() *styled.Text {
	if tv == nil {
		return nil
	}
	return tv.text
}

// SelectedRange returns the current selection. An empty range denotes a caret.
func (tv *TextView) SelectedRange() styled.Range {
	if tv == nil {
		return styled.Range{}
	}
	return tv.selection
}

// TypingAttributes returns the style applied to text inserted next.
func (tv *TextView) TypingAttributes() styled.Style {
	if tv == nil {
		return styled.Style{}
	}
	return tv.typing
}

// SetTypingAttributes sets the style applied to text inserted next.
func (tv *TextView) SetTypingAttributes(sty styled.Style) {
	if tv == nil {
		return
	}
	tv.typing = sty
}

// Select sets the selection to [from,to). Positions beyond the end of the text
// are clamped, reversed positions are swapped, and the range is widened to
// the enclosing grapheme boundaries. Select returns the resulting selection.
//
// The typing attributes follow the selection: for a non-empty selection they
// are the style at the selection start, for a caret the style of the
// character before the caret.
func (tv *TextView) Select(from, to uint64) styled.Range {
	if tv == nil {
		return styled.Range{}
	}
	if from > to {
		from, to = to, from
	}
	s := tv.text.Raw()
	from = snapToGrapheme(s, min(from, tv.text.Len()), false)
	if to > from {
		to = snapToGrapheme(s, min(to, tv.text.Len()), true)
	} else {
		to = from
	}
	tv.selection = styled.Range{From: from, To: to}
	tracer().Debugf("text view: selected [%d,%d)", from, to)
	tv.typing = tv.styleForSelection()
	return tv.selection
}

// SelectAll selects the complete text.
func (tv *TextView) SelectAll() styled.Range {
	if tv == nil {
		return styled.Range{}
	}
	return tv.Select(0, tv.text.Len())
}

func (tv *TextView) styleForSelection() styled.Style {
	pos := tv.selection.From
	if tv.selection.Empty() && pos > 0 {
		pos--
	}
	if sty, _, err := tv.text.StyleAt(pos); err == nil {
		return sty
	}
	return tv.typing
}

// InsertText replaces the selection by s, styled with the typing attributes,
// and places the caret after the inserted text.
func (tv *TextView) InsertText(s string) {
	if tv == nil {
		return
	}
	if !utf8.ValidString(s) {
		tracer().Errorf("text view: refusing to insert invalid UTF-8")
		return
	}
	tv.DeleteSelection()
	at := tv.selection.From
	if err := tv.text.Insert(at, s, tv.typing); err != nil {
		tracer().Errorf("text view: insert at %d: %v", at, err)
		return
	}
	end := at + uint64(len(s))
	tv.selection = styled.Range{From: end, To: end}
}

// DeleteSelection removes the selected text and leaves a caret at the start
// of the former selection. The typing attributes are kept.
func (tv *TextView) DeleteSelection() {
	if tv == nil {
		return
	}
	sel := tv.selection
	if sel.Empty() {
		return
	}
	if err := tv.text.Delete(sel.From, sel.To); err != nil {
		tracer().Errorf("text view: delete [%d,%d): %v", sel.From, sel.To, err)
		return
	}
	tv.selection = styled.Range{From: sel.From, To: sel.From}
}

// --- Grapheme boundaries ---------------------------------------------------

// graphemeWindow is the number of bytes around a position inspected for
// grapheme boundaries. Grapheme clusters are short; building grapheme
// strings for the complete text would be expensive.
const graphemeWindow = 64

var setupGraphemes sync.Once

// snapToGrapheme moves pos to the nearest grapheme boundary, forward or backward.
func snapToGrapheme(s string, pos uint64, forward bool) uint64 {
	if pos == 0 || pos >= uint64(len(s)) {
		return pos
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	lo := uint64(0)
	if pos > graphemeWindow {
		lo = pos - graphemeWindow
	}
	for lo > 0 && !utf8.RuneStart(s[lo]) {
		lo--
	}
	hi := min(pos+graphemeWindow, uint64(len(s)))
	for hi < uint64(len(s)) && !utf8.RuneStart(s[hi]) {
		hi++
	}
	gstr := grapheme.StringFromString(s[lo:hi])
	at := lo
	for i := 0; i < gstr.Len(); i++ {
		if at == pos {
			return pos
		}
		next := at + uint64(len(gstr.Nth(i)))
		if next > pos {
			if forward {
				return next
			}
			return at
		}
		at = next
	}
	return pos
}
