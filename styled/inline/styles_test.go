package inline

import (
	"testing"

	"github.com/npillmayer/richtext/styled"
)

func TestMarkupSimple(t *testing.T) {
	m := ItalicsMarkup
	t.Logf("italics=%v", m)
	m = m.Add(UnderlineMarkup)
	if m.String() != "i+u" {
		t.Errorf("expected combined markup 'i+u', have %q", m)
	}
	if m.Minus(ItalicsMarkup) != UnderlineMarkup {
		t.Errorf("expected only underline to remain, have %v", m.Minus(ItalicsMarkup))
	}
}

func TestMarkupTags(t *testing.T) {
	m := BoldMarkup.Add(ItalicsMarkup)
	if open, cls := m.Tags(false), m.Tags(true); open != "<b><i>" || cls != "</i></b>" {
		t.Errorf("unexpected tags %q … %q", open, cls)
	}
	if PlainMarkup.Tags(false) != "" {
		t.Errorf("expected no tags for plain markup")
	}
}

func TestMarkupRoundTrip(t *testing.T) {
	base := styled.Style{Font: styled.Font{Family: "Georgia", Size: 12}, Color: "blue"}
	m := BoldMarkup.Add(UnderlineMarkup).Add(MonoMarkup)
	sty := m.Apply(base)
	if sty.Font.Family != "Georgia" || sty.Color != "blue" || sty.Font.Size != 12 {
		t.Errorf("expected base attributes to survive, have %v", sty)
	}
	if MarkupOf(sty) != m {
		t.Errorf("expected markup %v, have %v", m, MarkupOf(sty))
	}
	if MarkupFromHTMLName("STRONG") != BoldMarkup || MarkupFromHTMLName("p") != PlainMarkup {
		t.Errorf("unexpected element mapping")
	}
}
