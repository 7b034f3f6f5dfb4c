/*
Package styled makes styled text.

A styled.Text is a UTF-8 text together with runs of styles. Each run covers a
contiguous span of bytes and carries a single Style, i.e. a font (family, size
and symbolic traits), an underline and a color. Text and runs are kept in sync
by every operation of this package, and adjacent runs of equal style are
merged. Two texts which look the same therefore have identical runs.

Positions are byte positions into the text, ranges are half-open.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// TextError is an error type for styled texts.
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = TextError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")

// ErrTextCompleted signals that a text builder has already completed a text and
// it's illegal to further add fragments.
const ErrTextCompleted = TextError("forbidden to add fragments; text has been completed")
