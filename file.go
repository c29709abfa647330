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

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrLine  = errors.New("invalid line number")
	ErrRange = errors.New("position out of range")
)

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A Buffer is an in-memory Document. It keeps the text, its line index and
// the side tables written by the Lexer: one style per byte, one state and
// one fold level per line.
//
// Lines are terminated by LF, CR or CRLF. A text ending with a terminator
// has an empty last line.
//
type Buffer struct {
	name    string
	text    []byte
	lines   []int // 0-based line/position information
	styles  []Style
	states  []int
	levels  []Level
	styled  int // bytes in [0, styled) hold valid styles
	touched int // bytes in [styled, touched) have been edited
}

// NewBuffer returns a new Buffer holding a copy of text.
//
func NewBuffer(name string, text []byte) *Buffer {
	b := &Buffer{
		name: name,
		text: append([]byte(nil), text...),
	}
	b.touched = len(b.text)
	b.lines = indexLines(b.text)
	b.styles = make([]Style, len(b.text))
	b.states = make([]int, len(b.lines))
	b.levels = make([]Level, len(b.lines))
	for i := range b.levels {
		b.levels[i] = baseLevel
	}
	return b
}

var baseLevel = makeLevel(int(LevelBase), int(LevelBase), false, false)

func indexLines(text []byte) []int {
	lines := []int{0}
	for i, c := range text {
		if c == '\n' || (c == '\r' && (i+1 == len(text) || text[i+1] != '\n')) {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// Name returns the buffer name.
//
func (b *Buffer) Name() string {
	return b.name
}

// Bytes returns the buffer text. The returned slice must not be modified.
//
func (b *Buffer) Bytes() []byte {
	return b.text
}

// Len returns the length of the text in bytes.
//
func (b *Buffer) Len() int {
	return len(b.text)
}

// ByteAt returns the byte at pos, or 0 if pos is out of range.
//
func (b *Buffer) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(b.text) {
		return 0
	}
	return b.text[pos]
}

// LineCount returns the number of lines.
//
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the 0-based line containing pos. Positions past the end of
// the text belong to the last line.
//
func (b *Buffer) Line(pos int) int {
	i, j := 0, len(b.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(b.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// LineStart returns the position of the first byte of line. It returns 0
// for negative lines and Len() for lines past the end of the text.
//
func (b *Buffer) LineStart(line int) int {
	switch {
	case line < 0:
		return 0
	case line >= len(b.lines):
		return len(b.text)
	}
	return b.lines[line]
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset.
//
func (b *Buffer) Position(pos int) Position {
	l := b.Line(pos)
	return Position{b.name, l + 1, pos - b.lines[l] + 1}
}

// LineBytes returns the text of line without its terminator.
//
func (b *Buffer) LineBytes(line int) ([]byte, error) {
	if line < 0 || line >= len(b.lines) {
		return nil, ErrLine
	}
	s, e := b.LineStart(line), b.LineStart(line+1)
	for e > s && (b.text[e-1] == '\n' || b.text[e-1] == '\r') {
		e--
	}
	return b.text[s:e], nil
}

// StyleAt returns the style of the byte at pos.
//
func (b *Buffer) StyleAt(pos int) Style {
	if pos < 0 || pos >= len(b.styles) {
		return Default
	}
	return b.styles[pos]
}

// SetStyle sets the style of the byte at pos.
//
func (b *Buffer) SetStyle(pos int, s Style) {
	if pos >= 0 && pos < len(b.styles) {
		b.styles[pos] = s
	}
}

// Styles returns the style table. The returned slice must not be modified.
//
func (b *Buffer) Styles() []Style {
	return b.styles
}

// LineState returns the scanner state recorded at the end of line.
//
func (b *Buffer) LineState(line int) int {
	if line < 0 || line >= len(b.states) {
		return 0
	}
	return b.states[line]
}

// SetLineState records the scanner state at the end of line.
//
func (b *Buffer) SetLineState(line int, state int) {
	if line >= 0 && line < len(b.states) {
		b.states[line] = state
	}
}

// FoldLevel returns the fold level of line.
//
func (b *Buffer) FoldLevel(line int) Level {
	if line < 0 || line >= len(b.levels) {
		return baseLevel
	}
	return b.levels[line]
}

// SetFoldLevel sets the fold level of line.
//
func (b *Buffer) SetFoldLevel(line int, l Level) {
	if line >= 0 && line < len(b.levels) {
		b.levels[line] = l
	}
}

// EndStyled returns the position up to which styles are known to be valid.
//
func (b *Buffer) EndStyled() int {
	return b.styled
}

// Replace replaces the n bytes at pos with text and returns the first line
// whose styles are no longer valid. Styles, line states and fold levels of
// the text following the edit are kept and shifted accordingly.
//
func (b *Buffer) Replace(pos, n int, text []byte) (int, error) {
	if pos < 0 || n < 0 || pos+n > len(b.text) {
		return 0, fmt.Errorf("replace [%d, %d) in %q: %w", pos, pos+n, b.name, ErrRange)
	}
	first := b.Line(pos)
	if pos > 0 && b.text[pos-1] == '\r' {
		// inserting or removing a \n after \r changes the previous terminator
		first = b.Line(pos - 1)
	}
	last := b.Line(pos + n)
	oldCount := len(b.lines)

	t := make([]byte, 0, len(b.text)-n+len(text))
	t = append(t, b.text[:pos]...)
	t = append(t, text...)
	t = append(t, b.text[pos+n:]...)
	b.text = t
	b.lines = indexLines(t)

	st := make([]Style, 0, len(t))
	st = append(st, b.styles[:pos]...)
	st = append(st, make([]Style, len(text))...)
	st = append(st, b.styles[pos+n:]...)
	b.styles = st

	delta := len(b.lines) - oldCount
	states := make([]int, len(b.lines))
	levels := make([]Level, len(b.lines))
	for i := range states {
		switch {
		case i < first:
			states[i], levels[i] = b.states[i], b.levels[i]
		case i > last+delta:
			states[i], levels[i] = b.states[i-delta], b.levels[i-delta]
		default:
			levels[i] = baseLevel
		}
	}
	b.states, b.levels = states, levels

	if s := b.LineStart(first); s < b.styled {
		b.styled = s
	}
	if b.touched > pos+n {
		b.touched += len(text) - n
	}
	if e := b.LineStart(last + delta + 1); e > b.touched {
		b.touched = e
	}
	return first, nil
}

// markStyled records that the whole text holds valid styles.
func (b *Buffer) markStyled() {
	b.styled, b.touched = len(b.text), 0
}
