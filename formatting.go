package richtext

import (
	"github.com/npillmayer/richtext/styled"
)

// Control is an editable text control presenting a styled text and a
// selection. The formatting operations of this package act upon a Control.
//
// Text returns the control's text itself, not a copy: formatting operations
// restyle it in place. After restyling a selection, the operations set the
// typing attributes to the style at the selection start.
type Control interface {
	SelectedRange() styled.Range
	Text() *styled.Text
	TypingAttributes() styled.Style
	SetTypingAttributes(styled.Style)
}

// AddOrRemoveFontTraitWithName toggles a font trait, given by name and by its
// value in the symbolic-traits encoding, on the selection of c.
//
// The trait name is looked up with styled.TraitByName. If the name is unknown
// or traitValue is not the encoding of the named trait, the call is a no-op.
func AddOrRemoveFontTraitWithName(c Control, traitName string, traitValue uint32) {
	trait, ok := styled.TraitByName(traitName)
	if !ok {
		tracer().Debugf("richtext: unknown font trait %q, ignored", traitName)
		return
	}
	if trait.Mask() != traitValue {
		tracer().Debugf("richtext: value %#x does not encode trait %s, ignored", traitValue, trait)
		return
	}
	AddOrRemoveFontTrait(c, trait)
}

// AddOrRemoveFontTrait toggles a font trait on the selection of c.
//
// If the style at the start of the selection carries the trait, the trait is
// removed from every run of the selection. Otherwise it is added to every run.
// No other attribute changes. For an empty selection the trait is toggled in
// the typing attributes of c instead.
func AddOrRemoveFontTrait(c Control, trait styled.Trait) {
	if c == nil || !trait.Valid() {
		tracer().Debugf("richtext: cannot toggle trait %s, ignored", trait)
		return
	}
	sel, text := c.SelectedRange(), c.Text()
	if sel.Empty() || text.IsVoid() {
		typing := c.TypingAttributes()
		typing.Font.Traits = typing.Font.Traits.Toggle(trait)
		c.SetTypingAttributes(typing)
		return
	}
	representative, _, err := text.StyleAt(sel.From)
	if err != nil {
		tracer().Debugf("richtext: selection [%d,%d) out of range, ignored", sel.From, sel.To)
		return
	}
	if representative.Font.Traits.Has(trait) {
		tracer().Debugf("richtext: removing trait %s from [%d,%d)", trait, sel.From, sel.To)
		text.Restyle(sel.From, sel.To, func(sty styled.Style) styled.Style {
			return sty.WithoutTrait(trait)
		})
	} else {
		tracer().Debugf("richtext: adding trait %s to [%d,%d)", trait, sel.From, sel.To)
		text.Restyle(sel.From, sel.To, func(sty styled.Style) styled.Style {
			return sty.WithTrait(trait)
		})
	}
	refreshTypingAttributes(c, text, sel)
}

// UnderlineText toggles underlining on the selection of c.
//
// If every run of the selection is underlined, underlines are removed from the
// selection. Otherwise the whole selection is underlined. No other attribute
// changes. For an empty selection the underline is toggled in the typing
// attributes of c instead.
func UnderlineText(c Control) {
	if c == nil {
		return
	}
	sel, text := c.SelectedRange(), c.Text()
	if sel.Empty() || text.IsVoid() {
		typing := c.TypingAttributes()
		typing.Underline = toggledUnderline(typing.Underline)
		c.SetTypingAttributes(typing)
		return
	}
	underline := styled.UnderlineSingle
	if text.EveryStyle(sel.From, sel.To, isUnderlined) {
		underline = styled.UnderlineNone
	}
	tracer().Debugf("richtext: setting underline=%s on [%d,%d)", underline, sel.From, sel.To)
	text.Restyle(sel.From, sel.To, func(sty styled.Style) styled.Style {
		return sty.WithUnderline(underline)
	})
	refreshTypingAttributes(c, text, sel)
}

// refreshTypingAttributes lets the typing attributes of c follow a restyled
// selection.
func refreshTypingAttributes(c Control, text *styled.Text, sel styled.Range) {
	if sty, _, err := text.StyleAt(sel.From); err == nil {
		c.SetTypingAttributes(sty)
	}
}

func isUnderlined(sty styled.Style) bool {
	return sty.Underline.IsSet()
}

func toggledUnderline(u styled.Underline) styled.Underline {
	return !u
}
