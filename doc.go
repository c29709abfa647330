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

/*
Package matlex styles and folds source code written in the Matlab family of
languages: Matlab, Octave, Scilab, Gnuplot and Julia.

It is built for editors. A document is never tokenized as a whole: the host
keeps the text together with one style per byte, one state per line and one
fold level per line, and asks the Lexer to restyle only the lines touched by an
edit. Everything the Lexer needs to resume scanning in the middle of a document
is recorded in these side tables.

Styling

Lexer.Scan walks a byte range and assigns a Style to every byte. The style of
the last byte of a line is the state in which scanning of the next line
resumes, so that unterminated strings or comments carry over line boundaries:

	lx := matlex.New(matlex.Octave, matlex.WithKeywords(kw))
	st := lx.Scan(doc, start, length, doc.StyleAt(start-1))

Block comments may nest in Matlab and Octave. The nesting depth at the end of
each line is packed into the line state (see CommentLevel), along with the
number of brackets left open (see BracketDepth) and a flag recording whether
an Octave test block (%!test, %!assert, ...) has been seen.

Identifiers are classified against the word lists of a Keywords value. Function
lists are matched with a trailing "(" marker, so that an entry "disp()" styles
"disp" as a function name. The keywords sub-package provides default lists
for every dialect.

Folding

Lexer.Fold computes fold levels from the text and its styles. Block keywords
(function, if, for, ...) open a fold and end keywords close it; brackets fold
too, and block keywords inside brackets, such as end in x(1:end), do not
fold. Comment blocks, Julia triple quoted strings and runs of line comments
fold when the FoldComment option is set. Each line gets a Level holding the
levels at its start and end:

	lx.Fold(doc, start, length)
	lev := doc.FoldLevel(line)
	if lev.IsHeader() {
		// line opens a fold
	}

Incremental updates

Buffer is an in-memory Document. Buffer.Replace edits the text and shifts the
side tables; Lexer.Restyle then restyles from the first edited line and stops
as soon as a line past the edit ends in the same state as before:

	b := matlex.NewBuffer("f.m", src)
	lx.Colourise(b)
	line, err := b.Replace(pos, 0, []byte("%{\n"))
	if err != nil {
		// ...
	}
	lx.Restyle(b, line)

Error handling

Scanning and folding never fail: malformed input such as an unterminated
string or an unbalanced end keyword only affects the styles and levels of the
following text. Errors are limited to the Buffer API (ErrRange, ErrLine) and
to parsing dialect or style names (ErrDialect, ErrStyle).

The matlex command in cmd/matlex prints styles and fold levels of source files.

*/
package matlex
