/*
Package itemized iterates over the uniformly styled items of a styled text.
*/
package itemized

import "github.com/npillmayer/richtext/styled"

// Iterator is a “pull”-interface for the style runs of a styled text.
// For a “push”-interface please refer to `styled.Text.EachStyleRun`.
type Iterator struct {
	text *styled.Text
	runs []styled.StyleChange
	inx  int
}

// IterateText creates an iterator positioned before the first run of text.
func IterateText(text *styled.Text) *Iterator {
	iterator := &Iterator{text: text}
	if text != nil {
		iterator.runs = text.StyleRuns()
	}
	return iterator
}

// Next advances the iterator to the next run. It returns false if there are
// no more runs.
func (it *Iterator) Next() bool {
	if it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	return true
}

// Style returns the text and the style at the current iterator position,
// together with the text indices [from…to) of the style run.
func (it *Iterator) Style() (string, styled.Style, uint64, uint64) {
	if it.inx == 0 {
		return "", styled.Style{}, 0, 0
	}
	s := it.runs[it.inx-1]
	from, to := s.Position, s.Position+s.Length
	return it.text.Raw()[from:to], s.Style, from, to
}
