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

import "strings"

// maxFoldWord bounds the keyword text checked by the folder.
const maxFoldWord = 31

// classdef section keywords. They open a block only when they introduce one,
// i.e. when followed by the end of the statement or by an attribute list.
var classSections = map[string]bool{
	"methods":     true,
	"properties":  true,
	"events":      true,
	"enumeration": true,
}

// Fold computes the fold level of every line in [start, start+length) from
// the text and the styles computed by Scan. The level at start is the end
// level of the line preceding start, or LevelBase on the first line.
//
// Unbalanced block keywords or brackets are not errors: they only shift the
// levels of the following lines. Block keywords are ignored inside brackets,
// including brackets left open on previous lines as recorded in their line
// state by Scan.
//
func (lx *Lexer) Fold(doc Document, start, length int) {
	r := newReader(doc)
	if start < 0 {
		length += start
		start = 0
	}
	end := start + length
	if end > r.n {
		end = r.n
	}
	if start >= end {
		return
	}
	p := lx.p
	foldComment := lx.opts.foldComment

	line := doc.Line(start)
	levelCurrent := int(LevelBase)
	if line > 0 {
		levelCurrent = doc.FoldLevel(line - 1).End()
	}
	levelNext := levelCurrent
	visible := 0
	braces := 0
	if line > 0 {
		braces = BracketDepth(doc.LineState(line - 1))
	}

	styleAt := func(pos int) Style { return safeStyleAt(doc, r, pos) }

	var ch byte
	chNext := r.at(start)
	style := styleAt(start - 1)
	styleNext := styleAt(start)

	for i := start; i < end; i++ {
		chPrev := ch
		ch = chNext
		chNext = r.at(i + 1)
		stylePrev := style
		style = styleNext
		styleNext = styleAt(i + 1)
		atEOL := ch == '\n' || (ch == '\r' && chNext != '\n')

		if foldComment && style == BlockComment {
			if p.matlabLike {
				if p.isNestedCommentStart(r, i, ch, chNext, visible) {
					levelNext++
				} else if p.isNestedCommentEnd(r, i, ch, chNext, visible) {
					levelNext--
				}
			} else {
				if stylePrev != BlockComment {
					levelNext++
				} else if styleNext != BlockComment && !atEOL {
					levelNext--
				}
			}
		}
		if foldComment && atEOL && isCommentLine(doc, r, line) {
			prev, next := isCommentLine(doc, r, line-1), isCommentLine(doc, r, line+1)
			if !prev && next {
				levelNext++
			} else if prev && !next {
				levelNext--
			}
		}
		if foldComment && style == TripleString {
			if stylePrev != TripleString {
				levelNext++
			} else if styleNext != TripleString && !atEOL {
				levelNext--
			}
		}

		if style == Keyword && stylePrev != Keyword && braces == 0 && chPrev != '.' && chPrev != ':' {
			levelNext += lx.keywordDelta(doc, r, i, end, chPrev)
		}

		if style == Operator {
			if isOpening(ch) {
				levelNext++
				braces++
			} else if isClosing(ch) {
				levelNext--
				if braces > 0 {
					braces--
				}
			}
		}

		if !isSpace(ch) {
			visible++
		}

		if atEOL || i == end-1 {
			lev := makeLevel(levelCurrent, levelNext, levelCurrent < levelNext, visible == 0 && lx.opts.foldCompact)
			if lev != doc.FoldLevel(line) {
				doc.SetFoldLevel(line, lev)
			}
			line++
			levelCurrent = levelNext
			visible = 0
			braces = BracketDepth(doc.LineState(line - 1))
		}
	}
}

// keywordDelta returns the fold level change caused by the keyword starting
// at pos.
func (lx *Lexer) keywordDelta(doc Document, r reader, pos, end int, chPrev byte) int {
	p := lx.p
	word := r.word(pos, maxFoldWord)
	switch {
	case p.blockKeywords[word]:
		if word == "function" && p.anonFunction && r.nextNonSpace(pos+len(word)) == '(' {
			return 0 // anonymous function
		}
		return 1
	case p.dialect == Octave && word == "until":
		return -1
	case strings.HasPrefix(word, "end"):
		// end, endfunction, endif, end_try_catch, ...
		return -1
	case p.matlabLike && chPrev != '@' && classSections[word]:
		i := r.skipSpaceTab(pos+len(word), end)
		c := r.at(i)
		if c == '\r' || c == '\n' || c == ';' || isCommentStyle(safeStyleAt(doc, r, i)) {
			return 1
		}
		if c == '(' {
			i = r.skipSpaceTab(i+1, end)
			if safeStyleAt(doc, r, i) == Attribute {
				return 1
			}
		}
	}
	return 0
}

// isCommentLine reports whether the first non blank byte of line is styled as
// a line comment.
func isCommentLine(doc Document, r reader, line int) bool {
	if line < 0 {
		return false
	}
	end := doc.LineStart(line + 1)
	for pos := doc.LineStart(line); pos < end; pos++ {
		c := r.at(pos)
		if isEOLChar(c) {
			return false
		}
		if !isSpaceOrTab(c) {
			return doc.StyleAt(pos) == Comment
		}
	}
	return false
}

func safeStyleAt(doc Document, r reader, pos int) Style {
	if pos < 0 || pos >= r.n {
		return Default
	}
	return doc.StyleAt(pos)
}
