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

// Text is a random access view of the document bytes.
//
// ByteAt must return 0 for positions outside [0, Len()). Line returns the
// 0-based line containing pos and LineStart the position of the first byte of
// a line; for lines past the end of the document it returns Len().
//
type Text interface {
	ByteAt(pos int) byte
	Len() int
	Line(pos int) int
	LineStart(line int) int
}

// Styles stores one Style per document byte.
//
type Styles interface {
	StyleAt(pos int) Style
	SetStyle(pos int, s Style)
}

// LineStates stores the opaque per-line state of the scanner.
//
type LineStates interface {
	LineState(line int) int
	SetLineState(line int, state int)
}

// FoldLevels stores per-line fold levels.
//
type FoldLevels interface {
	FoldLevel(line int) Level
	SetFoldLevel(line int, l Level)
}

// A Document is everything the Lexer needs from its host. The host owns it
// and must not modify it during a call to Scan or Fold.
//
type Document interface {
	Text
	Styles
	LineStates
	FoldLevels
}
