/*
Package richtext offers rich-text formatting helpers for editable text controls.

Formatting

Text controls present a styled text and a selection to the user. Users
format their text by toggling attributes on the selected range: a press on
“bold” makes the selection bold, a second press makes it plain again. This
package implements these toggles for font traits (bold, italic, monospace,
…) and for underlines:

	tv := textview.New(styled.TextFromString("Hello World"), styled.Style{})
	tv.Select(0, 5)
	richtext.AddOrRemoveFontTrait(tv, styled.Bold)    // "Hello" is bold
	richtext.UnderlineText(tv)                        // … and underlined
	richtext.AddOrRemoveFontTrait(tv, styled.Bold)    // "Hello" is plain again

Toggles only ever touch the selected range, and only the attribute toggled.
Font family, size, color and all other traits of the selected runs are
preserved.

Deciding on a toggle direction for a selection with mixed attributes needs a
rule:

▪︎ Font traits are decided by the style at the start of the selection. If the
first character carries the trait, the trait is removed from the whole
selection, otherwise it is added to the whole selection.

▪︎ Underlines are removed if the whole selection is underlined, and applied
to the whole selection otherwise.

With an empty selection (a caret), the text is left untouched and the toggle
applies to the control's typing attributes, i.e. to text typed next. After
formatting a selection, the typing attributes are the new style at its start.

Formatting operations do not fail. Unknown traits, nil controls and the like
result in no-ops. Operations must be called from the goroutine owning the
control.

_________________________________________________________________________

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
package richtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
