package inline

import (
	"io"

	"github.com/npillmayer/richtext/styled"
	"golang.org/x/net/html"
)

// InnerText creates a styled text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore the resulting styled text is limited to inline span elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Clients should provide a paragraph-like element. Every run of the
// resulting text is based on style base.
func InnerText(n *html.Node, base styled.Style) (*styled.Text, error) {
	if n == nil {
		return nil, styled.ErrIllegalArguments
	}
	b := styled.NewTextBuilder()
	collectText(n, PlainMarkup, base, b)
	return b.Text(), nil
}

func collectText(n *html.Node, markup Markup, base styled.Style, b *styled.TextBuilder) {
	if n.Type == html.ElementNode {
		tracer().Debugf("styled inline text: collect text of <%s>", n.Data)
		markup = markup.Add(MarkupFromHTMLName(n.Data))
	} else if n.Type == html.TextNode {
		tracer().Debugf("styled inline text = %q (%v)", n.Data, markup)
		b.Append(n.Data, markup.Apply(base))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, markup, base, b)
	}
}

// TextFromHTML creates a styled.Text from the textual content of an HTML fragment.
// The HTML fragment should reflect the content of a paragraph-like element.
func TextFromHTML(input io.Reader, base styled.Style) (*styled.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := styled.NewTextBuilder()
	for _, n := range nodes {
		collectText(n, PlainMarkup, base, b)
	}
	return b.Text(), nil
}

// WriteHTML writes a styled text as a fragment of inline HTML. Font family,
// size and color are not expressible as inline markup and are dropped.
func WriteHTML(w io.Writer, text *styled.Text) error {
	if text == nil {
		return styled.ErrIllegalArguments
	}
	return text.EachStyleRun(func(content string, sty styled.Style, pos uint64) error {
		m := MarkupOf(sty)
		if _, err := io.WriteString(w, m.Tags(false)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, html.EscapeString(content)); err != nil {
			return err
		}
		_, err := io.WriteString(w, m.Tags(true))
		return err
	})
}
