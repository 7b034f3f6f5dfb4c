package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var bold = styled.Style{}.WithTrait(styled.Bold)

func TestFirstFitKeepsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	grapheme.SetupGraphemeClasses()
	s := "The quick brown fox jumps over the lazy dog!"
	breaks := firstFit(s, 12, uax11.LatinContext)
	t.Logf("breaks = %v", breaks)
	if len(breaks) == 0 {
		t.Fatalf("expected text to be broken into lines, have none")
	}
	if breaks[len(breaks)-1] != uint64(len(s)) {
		t.Errorf("expected last break at end of text, have %v", breaks)
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			t.Errorf("expected increasing break positions, have %v", breaks)
		}
	}
}

func TestFirstFitNoWidth(t *testing.T) {
	if breaks := firstFit("Hello World", 0, uax11.LatinContext); len(breaks) != 1 || breaks[0] != 11 {
		t.Errorf("expected a single line, have %v", breaks)
	}
	if breaks := firstFit("", 20, uax11.LatinContext); len(breaks) != 0 {
		t.Errorf("expected no lines for empty text, have %v", breaks)
	}
}

func TestHTMLOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := styled.TextFromString("Hello <World>")
	text.Style(bold, 0, 5)
	var out bytes.Buffer
	if err := NewHTML().Print(text, &out, &Config{LineWidth: 0}); err != nil {
		t.Fatal(err)
	}
	expect := "<p><b>Hello</b> &lt;World&gt;<br>\n</p>\n"
	if out.String() != expect {
		t.Errorf("expected %q, have %q", expect, out.String())
	}
}

func TestConsoleOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	grapheme.SetupGraphemeClasses()
	text := styled.TextFromString("The quick brown fox jumps over the lazy dog!")
	text.Style(bold, 4, 9)
	console := NewConsole(nil)
	console.ColorFor(bold).EnableColor()
	var out bytes.Buffer
	if err := Output(text, &out, &Config{LineWidth: 20}, console); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out.String())
	if !strings.Contains(out.String(), "\x1b[1mquick\x1b[0m") {
		t.Errorf("expected 'quick' to be output in bold, have %q", out.String())
	}
	plain := strings.NewReplacer("\x1b[1m", "", "\x1b[0m", "", "\n", "").Replace(out.String())
	if plain != text.Raw() {
		t.Errorf("expected output to contain the complete text, have %q", plain)
	}
}

func TestConsoleColors(t *testing.T) {
	console := NewConsole(nil)
	if console.ColorFor(styled.Style{}) != nil {
		t.Errorf("expected plain style to have no color")
	}
	red := styled.Style{Color: "Red"}.WithUnderline(styled.UnderlineSingle)
	if console.ColorFor(red) == nil {
		t.Errorf("expected red underlined style to have a color")
	}
	if console.ColorFor(red) != console.ColorFor(red) {
		t.Errorf("expected colors to be cached per style")
	}
}

func TestOutputIllegalArguments(t *testing.T) {
	if err := Output(nil, &bytes.Buffer{}, &Config{}, NewHTML()); err == nil {
		t.Errorf("expected error for nil text")
	}
}
