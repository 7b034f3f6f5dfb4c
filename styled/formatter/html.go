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
*/

import (
	"io"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/richtext/styled/inline"
	"golang.org/x/net/html"
)

// HTML is a format for simple HTML output. Runs of text are wrapped into
// inline elements (<b>, <i>, <u>, <tt>), lines are separated by <br>.
type HTML struct{}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs a styled text as HTML.
//
// If parameter config is nil, a default configuration will be used.
func (h *HTML) Print(text *styled.Text, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{LineWidth: 40}
	}
	return Output(text, w, config, h)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (h *HTML) StyledText(s string, style styled.Style, w io.Writer) {
	m := inline.MarkupOf(style)
	io.WriteString(w, m.Tags(false))
	io.WriteString(w, html.EscapeString(s))
	io.WriteString(w, m.Tags(true))
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs a `<p>` tag.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	io.WriteString(w, "<p>")
}

// Postamble will be called after a text has been formatted.
// It outputs a closing `</p>` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	io.WriteString(w, "</p>\n")
}

// Newline will be called at the end of every formatted line of text.
// It outputs a `<br>` tag.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	io.WriteString(w, "<br>\n")
}

var _ Format = &HTML{}
