package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/richtext/styled/itemized"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // target line length in fixed width positions (“en”s)
	Context   *uax11.Context // context for character widths; nil means uax11.LatinContext
}

// Format is an interface for formatting drivers, given an io.Writer
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, styled.Style, io.Writer)
	Newline(io.Writer)
}

// Output formats a styled text using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(text *styled.Text, out io.Writer, config *Config, format Format) error {
	//
	if text == nil || out == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	breaks := firstFit(text.Raw(), config.LineWidth, context)
	format.Preamble(out)
	var start uint64
	for i, pos := range breaks {
		line, err := styled.Section(text, start, pos)
		if err != nil {
			tracer().Errorf("cannot cut line [%d,%d): %v", start, pos, err)
			return err
		}
		tracer().Debugf("[%3d] %q", i, line.Raw())
		iter := itemized.IterateText(line)
		for iter.Next() {
			s, style, from, to := iter.Style()
			tracer().Debugf("%v: %d…%d = %q", style, from, to, s)
			format.StyledText(s, style, out)
		}
		format.Newline(out)
		start = pos
	}
	format.Postamble(out)
	return nil
}

// Print outputs a styled text to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(text, os.Stdout, config, NewConsole(nil))
}

// --- Line breaking ---------------------------------------------------------

// maxGraphemeRun limits the fragments we measure with grapheme strings, which
// do not accept arbitrary lengths. Longer fragments are measured in runes.
const maxGraphemeRun = 4096

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Break positions returned are byte positions, the last one being the end of text.
*/
func firstFit(text string, linewidth int, context *uax11.Context) []uint64 {
	if len(text) == 0 {
		return nil
	}
	if linewidth <= 0 {
		return []uint64{uint64(len(text))}
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	breaks := make([]uint64, 0, len(text)/linewidth+1)
	spaceleft := linewidth
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := fragmentWidth(frag, context)
		if fraglen > spaceleft && !linestart { // fragment overshoots line
			breaks = append(breaks, uint64(prevpos))
			tracer().Debugf("break @ %d", prevpos)
			spaceleft = linewidth
		}
		if fraglen >= spaceleft { // fragment fills the line or is too long for one
			pos := prevpos + len(frag)
			breaks = append(breaks, uint64(pos))
			tracer().Debugf("break @ %d", pos)
			spaceleft = linewidth
			linestart = true
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
			linestart = false
		}
		prevpos += len(frag)
	}
	if n := len(breaks); n == 0 || breaks[n-1] < uint64(len(text)) {
		breaks = append(breaks, uint64(len(text)))
		tracer().Debugf("break @ %d", len(text))
	}
	return breaks
}

func fragmentWidth(frag string, context *uax11.Context) int {
	if len(frag) > maxGraphemeRun {
		return utf8.RuneCountInString(frag)
	}
	return uax11.StringWidth(grapheme.StringFromString(frag), context)
}
