package styled

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var plain = Style{Font: Font{Family: "Helvetica", Size: 17}}

func TestTraitByName(t *testing.T) {
	for _, name := range []string{"bold", "Bold", "traitBold", "UIFontDescriptorTraitBold"} {
		trait, ok := TraitByName(name)
		if !ok || trait != Bold {
			t.Errorf("expected %q to denote bold, got %v/%v", name, trait, ok)
		}
	}
	if _, ok := TraitByName("heavy"); ok {
		t.Errorf("expected 'heavy' to be an unknown trait")
	}
	if _, ok := TraitByName(""); ok {
		t.Errorf("expected empty name to be an unknown trait")
	}
	if Bold.Mask() != 2 || Italic.Mask() != 1 {
		t.Errorf("unexpected trait encoding: bold=%d italic=%d", Bold.Mask(), Italic.Mask())
	}
}

func TestTraitsSet(t *testing.T) {
	var ts Traits
	ts = ts.Add(Bold).Add(Italic)
	if !ts.Has(Bold) || !ts.Has(Italic) || ts.Has(MonoSpace) {
		t.Errorf("unexpected trait set %s", ts)
	}
	ts = ts.Minus(Bold)
	if ts.Has(Bold) {
		t.Errorf("expected bold to be removed, have %s", ts)
	}
	if ts.Toggle(Italic) != 0 {
		t.Errorf("expected toggling italic to clear the set, have %s", ts.Toggle(Italic))
	}
	if s := Traits(0).Add(Bold).Add(Italic).String(); s != "italic+bold" {
		t.Errorf("expected 'italic+bold', have %q", s)
	}
}

func TestBasicStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromStringWithStyle("Hello World", plain)
	bold := plain.WithTrait(Bold)
	text.Style(bold, 6, text.Len())
	t.Logf("text=%s", text)
	if cnt := len(text.StyleRuns()); cnt != 2 {
		t.Errorf("expected formatted text to have 2 segments, has %d", cnt)
	}
	text.Style(bold, 0, 1)
	if cnt := len(text.StyleRuns()); cnt != 3 {
		t.Errorf("expected formatted text to have 3 segments, has %d", cnt)
	}
}

func TestTextSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromStringWithStyle("Hello World, how are you?", plain)
	bold, italic := plain.WithTrait(Bold), plain.WithTrait(Italic)
	text.Style(bold, 6, 11)
	text.Style(italic, 8, 16) // erase part of bold run
	if cnt := len(text.StyleRuns()); cnt != 4 {
		t.Errorf("expected formatted text to have 4 segments, has %d", cnt)
	}
}

func TestStyleCoalesces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromStringWithStyle("Hello World", plain)
	orig := text.Copy()
	text.Style(plain.WithTrait(Bold), 2, 7)
	text.Style(plain, 2, 7)
	if !text.Equals(orig) {
		t.Errorf("expected runs to merge back, have %s", text)
	}
}

func TestRestylePreservesOtherAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	red := plain
	red.Color = "red"
	text := TextFromStringWithStyle("Hello World", red)
	text.Style(red.WithUnderline(UnderlineSingle), 0, 5)
	text.Restyle(3, 8, func(s Style) Style { return s.WithTrait(Bold) })
	expect := []StyleChange{
		{Style: red.WithUnderline(UnderlineSingle), Position: 0, Length: 3},
		{Style: red.WithUnderline(UnderlineSingle).WithTrait(Bold), Position: 3, Length: 2},
		{Style: red.WithTrait(Bold), Position: 5, Length: 3},
		{Style: red, Position: 8, Length: 3},
	}
	got := text.StyleRuns()
	if len(got) != len(expect) {
		t.Fatalf("expected %d runs, have %d: %s", len(expect), len(got), text)
	}
	for i := range expect {
		if got[i] != expect[i] {
			t.Errorf("run #%d: expected %v, have %v", i, expect[i], got[i])
		}
	}
}

func TestRestyleClampsRange(t *testing.T) {
	text := TextFromStringWithStyle("Hello", plain)
	text.Style(plain.WithTrait(Bold), 2, 100)
	if sty, _, _ := text.StyleAt(4); !sty.Font.Traits.Has(Bold) {
		t.Errorf("expected tail to be bold, have %s", text)
	}
	orig := text.Copy()
	text.Style(plain.WithTrait(Italic), 100, 200)
	if !text.Equals(orig) {
		t.Errorf("expected out-of-range style to be ignored, have %s", text)
	}
}

func TestStyleAt(t *testing.T) {
	text := TextFromStringWithStyle("Hello World", plain)
	text.Style(plain.WithTrait(Bold), 6, 11)
	sty, start, err := text.StyleAt(8)
	if err != nil {
		t.Fatal(err)
	}
	if !sty.Font.Traits.Has(Bold) || start != 6 {
		t.Errorf("expected bold run starting at 6, have %v at %d", sty, start)
	}
	if _, _, err = text.StyleAt(11); err != ErrIndexOutOfBounds {
		t.Errorf("expected out of bounds error, have %v", err)
	}
}

func TestEveryStyle(t *testing.T) {
	text := TextFromStringWithStyle("Hello World", plain)
	text.Style(plain.WithUnderline(UnderlineSingle), 0, 5)
	underlined := func(s Style) bool { return s.Underline.IsSet() }
	if !text.EveryStyle(0, 5, underlined) {
		t.Errorf("expected 'Hello' to be underlined")
	}
	if text.EveryStyle(3, 8, underlined) {
		t.Errorf("expected 'lo Wo' to be partially underlined only")
	}
	if text.EveryStyle(2, 2, underlined) {
		t.Errorf("expected empty range to yield false")
	}
}

func TestInsertDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromStringWithStyle("Hello World", plain)
	bold := plain.WithTrait(Bold)
	if err := text.Insert(5, ",", bold); err != nil {
		t.Fatal(err)
	}
	if text.Raw() != "Hello, World" {
		t.Errorf("unexpected content %q", text.Raw())
	}
	if cnt := len(text.StyleRuns()); cnt != 3 {
		t.Errorf("expected 3 runs after insert, have %d: %s", cnt, text)
	}
	if err := text.Delete(5, 6); err != nil {
		t.Fatal(err)
	}
	if !text.Equals(TextFromStringWithStyle("Hello World", plain)) {
		t.Errorf("expected delete to restore text, have %s", text)
	}
	if err := text.Insert(100, "x", plain); err != ErrIndexOutOfBounds {
		t.Errorf("expected out of bounds error, have %v", err)
	}
	empty := &Text{}
	if err := empty.Insert(0, "abc", bold); err != nil || empty.Raw() != "abc" {
		t.Errorf("expected insert into empty text to succeed, have %q/%v", empty.Raw(), err)
	}
}

func TestEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromStringWithStyle("Hello World, how are you?", plain)
	text.Style(plain.WithTrait(Bold), 6, 16)
	//
	cnt := 0
	text.EachStyleRun(func(content string, sty Style, pos uint64) error {
		cnt++
		t.Logf("%v: (%s)", sty, content)
		return nil
	})
	if cnt != 3 {
		t.Errorf("expected formatted text to have 3 style runs, has %d", cnt)
	}
}

func TestSection(t *testing.T) {
	text := TextFromStringWithStyle("Hello World", plain)
	text.Style(plain.WithTrait(Bold), 4, 7)
	section, err := Section(text, 2, 9)
	if err != nil {
		t.Fatal(err)
	}
	if section.Raw() != "llo Wor" {
		t.Errorf("unexpected section content %q", section.Raw())
	}
	runs := section.StyleRuns()
	if len(runs) != 3 || runs[1].Position != 2 || runs[1].Length != 3 {
		t.Errorf("unexpected section runs %v", runs)
	}
}

func TestBuilder(t *testing.T) {
	b := NewTextBuilder()
	b.Append("Hello ", plain)
	b.Append("", plain.WithTrait(Italic))
	b.Append("World", plain)
	text := b.Text()
	if text.Raw() != "Hello World" || len(text.StyleRuns()) != 1 {
		t.Errorf("expected one merged run, have %s", text)
	}
	if err := b.Append("!", plain); err != ErrTextCompleted {
		t.Errorf("expected builder to be completed, have %v", err)
	}
}
