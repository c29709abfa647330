// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package matlex

// Colourise styles the whole buffer and, if the Lexer was created with
// WithFolding(true), computes its fold levels. It returns the scanner state
// at the end of the text.
//
func (lx *Lexer) Colourise(b *Buffer) Style {
	st := lx.Scan(b, 0, b.Len(), Default)
	b.markStyled()
	if lx.opts.folding {
		lx.Fold(b, 0, b.Len())
	}
	return st
}

// Restyle restyles b after one or more edits, starting at line (usually the
// value returned by Buffer.Replace) or at the first line whose styles are no
// longer valid, whichever comes first. Lines are styled one by one, threading
// the scanner state from each line to the next, until a line past the edited
// text ends with the same state and line state it had before. The remaining
// text is then known to be unchanged.
//
// If folding is enabled, the restyled lines are refolded; folding continues
// to the end of the text when the fold level at the last restyled line has
// changed.
//
// Restyle returns the last restyled line.
//
func (lx *Lexer) Restyle(b *Buffer, line int) int {
	n := b.LineCount()
	if l := b.Line(b.styled); l < line {
		line = l
	}
	if line < 0 {
		line = 0
	}
	if line >= n {
		line = n - 1
	}
	first := line
	init := Default
	if first > 0 {
		init = lineEndState(b, first-1)
	}

	for ; line < n; line++ {
		start, end := b.LineStart(line), b.LineStart(line+1)
		oldState := b.LineState(line)
		oldStyle := lineEndState(b, line)
		init = lx.Scan(b, start, end-start, init)
		if line > first && start >= b.touched && b.LineState(line) == oldState && init == oldStyle {
			break
		}
	}
	if line == n {
		line--
	}
	b.markStyled()

	if lx.opts.folding {
		// The level of a line depends on whether its neighbours are comment
		// lines.
		from, to := b.LineStart(first-1), b.LineStart(line+2)
		oldEnd := b.FoldLevel(line + 1).End()
		lx.Fold(b, from, to-from)
		if b.FoldLevel(line+1).End() != oldEnd {
			lx.Fold(b, to, b.Len()-to)
		}
	}
	return line
}

// lineEndState returns the scanner state at the end of line, as recorded by
// the style of its last byte.
func lineEndState(b *Buffer, line int) Style {
	end := b.LineStart(line + 1)
	if end <= b.LineStart(line) {
		return Default
	}
	return b.StyleAt(end - 1)
}
