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
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/richtext/styled"
	"golang.org/x/term"
)

// Console is a format for outputting styled text to a console with
// a fixed width font.
//
// Font traits bold and italic as well as underlines are output as the
// terminal's SGR attributes, colors are mapped to the eight standard
// foreground colors. Font family and size cannot be represented on a console
// and are ignored.
type Console struct {
	Newlines []byte
	palette  map[string]color.Attribute
	colors   map[styled.Style]*color.Color
}

// NewConsole creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// palette maps color names of styles to terminal colors. It may be nil, in
// which case the names of the eight standard terminal colors are recognized.
func NewConsole(palette map[string]color.Attribute) *Console {
	c := &Console{
		Newlines: []byte{'\n'},
		palette:  palette,
		colors:   make(map[styled.Style]*color.Color),
	}
	if c.palette == nil {
		c.palette = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[string]color.Attribute {
	return map[string]color.Attribute{
		"black":   color.FgBlack,
		"red":     color.FgRed,
		"green":   color.FgGreen,
		"yellow":  color.FgYellow,
		"blue":    color.FgBlue,
		"magenta": color.FgMagenta,
		"cyan":    color.FgCyan,
		"white":   color.FgWhite,
	}
}

// ColorFor returns the terminal color for a style, or nil for styles which
// look like plain text on a console.
func (fw *Console) ColorFor(style styled.Style) *color.Color {
	if c, ok := fw.colors[style]; ok {
		return c
	}
	var attrs []color.Attribute
	if style.Font.Traits.Has(styled.Bold) {
		attrs = append(attrs, color.Bold)
	}
	if style.Font.Traits.Has(styled.Italic) {
		attrs = append(attrs, color.Italic)
	}
	if style.Underline.IsSet() {
		attrs = append(attrs, color.Underline)
	}
	if fg, ok := fw.palette[strings.ToLower(style.Color)]; ok {
		attrs = append(attrs, fg)
	}
	var c *color.Color
	if len(attrs) > 0 {
		c = color.New(attrs...)
	}
	fw.colors[style] = c
	return c
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (fw *Console) StyledText(s string, style styled.Style, w io.Writer) {
	if c := fw.ColorFor(style); c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Preamble is called by the output driver before a text will be formatted.
// (Part of interface Format)
func (fw *Console) Preamble(w io.Writer) {
}

// Postamble will be called after a text has been formatted.
// (Part of interface Format)
func (fw *Console) Postamble(w io.Writer) {
}

// Newline will be called at the end of every formatted line of text.
// It outputs fw.Newlines.
// (Part of interface Format)
func (fw *Console) Newline(w io.Writer) {
	w.Write(fw.Newlines)
}

var _ Format = &Console{}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
