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

// maxIdentifier bounds the identifier text looked up in keyword lists. Matlab
// identifiers are at most 63 characters long.
const maxIdentifier = 127

// Octave test and demo blocks are comment lines starting with %! followed by
// one of these words.
var octaveTestWords = []string{"test", "demo", "assert", "error", "warning", "fail", "shared", "function"}

// A Lexer styles and folds documents written in one dialect. A Lexer holds no
// per-document state; it can be shared by any number of documents, but a
// single Document must not be scanned concurrently.
//
type Lexer struct {
	p    *policy
	kw   *Keywords
	opts options
}

// New returns a new Lexer for the given dialect.
//
func New(d Dialect, opts ...Option) *Lexer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.keywords == nil {
		o.keywords = &Keywords{}
	}
	return &Lexer{
		p:    newPolicy(d),
		kw:   o.keywords,
		opts: o,
	}
}

// Dialect returns the dialect of the lexer.
//
func (lx *Lexer) Dialect() Dialect {
	return lx.p.dialect
}

// Scan styles the bytes in [start, start+length) of doc and returns the
// scanner state at the end of the range.
//
// initStyle is the state at start, usually doc.StyleAt(start-1) or Default
// at the start of the document. start must be a position where that state is
// valid, in practice the start of a line. The line state of every line whose
// end is reached is written to doc; the line state of the line preceding
// start is read to restore the nested comment and bracket depths.
//
// Scan never fails: unterminated constructs run to the end of the range and
// their state is returned so that the next call can resume them.
//
func (lx *Lexer) Scan(doc Document, start, length int, initStyle Style) Style {
	s := newScanner(lx, doc, start, length, initStyle)
	for ; s.more(); s.forward() {
		s.step()
	}
	if s.end == s.r.n {
		s.atEOF()
	}
	s.complete()
	return s.state
}

// scanner is the per-call state of Scan. Its cursor mirrors a classic style
// context: ch is the byte at pos, chPrev and chNext its neighbours, and
// [start, pos) the run waiting to be styled with state.
//
type scanner struct {
	p   *policy
	kw  *Keywords
	doc Document
	r   reader

	pos, end   int
	start      int // start of the pending run
	state      Style
	ch, chPrev byte
	chNext     byte
	lineStart  bool
	lineEnd    bool
	line       int

	transpose    bool // a ' at this point is a transpose operator
	visible      int  // non blank characters since the start of the line
	commentLevel int  // nested block comment depth
	hasTest      bool // an Octave test section has been seen
	depth        int  // open brackets
}

func newScanner(lx *Lexer, doc Document, start, length int, initStyle Style) *scanner {
	r := newReader(doc)
	if start < 0 {
		length += start
		start = 0
	}
	end := start + length
	if end > r.n {
		end = r.n
	}
	if initStyle >= numStyles {
		initStyle = Default
	}
	s := &scanner{
		p:     lx.p,
		kw:    lx.kw,
		doc:   doc,
		r:     r,
		pos:   start,
		end:   end,
		start: start,
		state: initStyle,
		line:  doc.Line(start),
	}
	if s.line > 0 {
		s.commentLevel, s.depth, s.hasTest = unpackLineState(doc.LineState(s.line - 1))
	}
	s.ch = r.at(start)
	s.chNext = r.at(start + 1)
	s.lineStart = doc.LineStart(s.line) == start
	s.lineEnd = s.atEOL()
	return s
}

func (s *scanner) atEOL() bool {
	return s.ch == '\n' || (s.ch == '\r' && s.chNext != '\n')
}

func (s *scanner) more() bool {
	return s.pos < s.end
}

// forward moves to the next byte. Past the end of the range, the cursor stays
// in place and reads blanks.
func (s *scanner) forward() {
	if s.pos < s.end {
		s.lineStart = s.lineEnd
		s.chPrev = s.ch
		s.pos++
		s.ch = s.chNext
		s.chNext = s.r.at(s.pos + 1)
		s.lineEnd = s.atEOL()
		return
	}
	s.lineStart = false
	s.chPrev, s.ch, s.chNext = ' ', ' ', ' '
	s.lineEnd = true
}

func (s *scanner) forwardN(n int) {
	for ; n > 0; n-- {
		s.forward()
	}
}

// colourTo styles the pending run up to and including pos.
func (s *scanner) colourTo(pos int) {
	for i := s.start; i <= pos && i < s.end; i++ {
		s.doc.SetStyle(i, s.state)
	}
	if pos+1 > s.start {
		s.start = pos + 1
	}
}

// setState styles the pending run with the current state, then starts a new
// run at pos.
func (s *scanner) setState(st Style) {
	s.colourTo(s.pos - 1)
	s.state = st
}

func (s *scanner) forwardSetState(st Style) {
	s.forward()
	s.setState(st)
}

// changeState changes the style of the pending run.
func (s *scanner) changeState(st Style) {
	s.state = st
}

func (s *scanner) complete() {
	s.colourTo(s.pos - 1)
}

// current returns the text of the pending run.
func (s *scanner) current() string {
	n := s.pos - s.start
	if n > maxIdentifier {
		n = maxIdentifier
	}
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = s.r.at(s.start + i)
	}
	return string(b)
}

func (s *scanner) match(str string) bool {
	return s.r.match(s.pos, str)
}

// step processes the byte at pos: it first checks whether the byte ends the
// current construct, then classifies it if the scanner is back in the default
// state.
func (s *scanner) step() {
	if s.lineStart {
		s.transpose = false
	}
	s.exitState()
	if s.state == Default && s.pos < s.end {
		s.classify()
	}
	if s.lineEnd && s.pos < s.end {
		s.doc.SetLineState(s.line, packLineState(s.commentLevel, s.depth, s.hasTest))
		s.line++
		s.visible = 0
	}
	if !isSpace(s.ch) {
		s.visible++
	}
}

// exitState ends the current construct if the byte at pos is not part of it.
func (s *scanner) exitState() {
	switch s.state {
	case Operator:
		s.setState(Default)
		if s.chPrev == '.' {
			switch s.ch {
			case '*', '/', '\\', '^':
				s.transpose = false
			case '\'':
				s.transpose = true
			}
		}

	case Number:
		if !isNumberChar(s.ch, s.chPrev) {
			if s.p.juliaStrings && s.ch == 'm' && s.chPrev == 'i' {
				s.forward() // 2im
			}
			s.setState(Default)
			s.transpose = true
		}

	case HexNumber:
		if !isHexDigit(s.ch) {
			s.setState(Default)
			s.transpose = true
		}

	case Identifier, Attribute:
		if !isWordChar(s.ch) {
			s.endIdentifier()
		}

	case Callback, Variable:
		if !isWordChar(s.ch) {
			s.skipAt()
			s.setState(Default)
		}

	case Command:
		if isInvalidFileNameChar(s.ch) {
			s.setState(Default)
			s.transpose = false
		}

	case String:
		if s.p.juliaStrings && s.ch == '\\' {
			if isEscapable(s.chNext) {
				s.forward()
			}
		} else if s.ch == '\'' {
			if s.chNext == '\'' {
				s.forward()
			} else {
				s.forwardSetState(Default)
			}
		}

	case DoubleQuotedString, Regex, RawString:
		if s.ch == '\\' {
			if isEscapable(s.chNext) {
				s.forward()
			}
		} else if s.ch == '"' {
			if s.state == Regex {
				for isRegexFlag(s.chNext) && s.pos < s.end {
					s.forward()
				}
			}
			s.forwardSetState(Default)
		}

	case TripleString:
		if s.match(`"""`) {
			s.forwardN(2)
			s.forwardSetState(Default)
		}

	case Backtick:
		if s.ch == '`' {
			s.forwardSetState(Default)
		}

	case BlockComment:
		if s.p.isBlockCommentEnd(s.r, s.pos, s.ch, s.chNext, s.visible) {
			if s.p.matlabLike && s.commentLevel > 0 {
				s.commentLevel--
			}
			if !s.p.matlabLike || s.commentLevel == 0 {
				s.forward()
				s.forwardSetState(Default)
			}
		} else if s.p.isNestedCommentStart(s.r, s.pos, s.ch, s.chNext, s.visible) {
			s.commentLevel++
			s.forward()
		}

	case Comment:
		if s.lineStart {
			s.visible = 0
			s.setState(Default)
			s.transpose = false
		}
	}
}

func isEscapable(c byte) bool {
	return c == '"' || c == '\'' || c == '\\'
}

// endIdentifier reclassifies the identifier that ends at pos.
func (s *scanner) endIdentifier() {
	s.transpose = true
	st := s.kw.classify(s.current(), s.r.nextNonSpace(s.pos), s.p.juliaStrings, s.state)
	if st == Keyword {
		s.transpose = false
	}
	s.changeState(st)
	s.skipAt()
	s.setState(Default)
}

// atEOF reclassifies an identifier ending the document.
func (s *scanner) atEOF() {
	switch s.state {
	case Identifier, Attribute:
		if s.pos > s.start {
			s.changeState(s.kw.classify(s.current(), 0, s.p.juliaStrings, s.state))
		}
	}
}

// skipAt styles an @ directly following a word as an operator.
func (s *scanner) skipAt() {
	if s.ch == '@' {
		s.setState(Operator)
		s.forward()
	}
}

// classify starts the construct that begins at pos, in order of priority.
// Bytes that start nothing are left in the default state.
func (s *scanner) classify() {
	p := s.p
	switch {
	case p.juliaStrings && s.ch == 'r' && s.chNext == '"':
		s.setState(Regex)
		s.forward()

	case p.juliaStrings && isJuliaStringPrefix(s.ch) && s.chNext == '"':
		s.setState(DoubleQuotedString)
		s.forward()

	case s.match(`raw"`):
		s.setState(RawString)
		s.forwardN(3)
		if s.match(`"""`) {
			s.changeState(TripleString)
			s.forwardN(2)
		}

	case p.isBlockCommentStart(s.r, s.pos, s.ch, s.chNext, s.visible):
		if p.matlabLike {
			s.commentLevel++
		}
		s.setState(BlockComment)
		s.forward()

	case p.isLineCommentStart(s.ch, s.chNext, s.r.at(s.pos+2), s.visible):
		s.lineComment()

	case p.matlabLike && s.visible == 0 && s.ch == '!':
		s.setState(Command)

	case s.match(`"""`):
		s.setState(TripleString)
		s.forwardN(2)

	case s.ch == '\'':
		if s.transpose {
			s.setState(Operator)
		} else {
			s.setState(String)
		}

	case s.ch == '"':
		s.setState(DoubleQuotedString)

	case s.ch == '`':
		s.setState(Backtick)

	case s.ch == '0' && (s.chNext == 'x' || s.chNext == 'X'):
		s.setState(HexNumber)
		s.forward()

	case isDigit(s.ch) || (s.ch == '.' && isDigit(s.chNext)):
		s.setState(Number)

	case s.ch == '@' && isWordChar(s.chNext):
		s.setState(Callback)
		s.forward()

	case s.ch == '$' && isWordChar(s.chNext):
		s.setState(Variable)
		s.forward()

	case isWordChar(s.ch):
		s.setState(Identifier)

	case isOperator(s.ch):
		s.operator()

	default:
		s.transpose = false
	}
}

func (s *scanner) lineComment() {
	s.setState(Comment)
	switch {
	case s.p.octaveTests && s.lineStart && s.ch == '%' && s.chNext == '!':
		if !s.hasTest {
			for _, w := range octaveTestWords {
				if s.r.match(s.pos+2, w) {
					s.hasTest = true
					break
				}
			}
		}
		if s.hasTest {
			s.forwardN(2)
			if isWordChar(s.ch) {
				s.setState(Identifier)
			} else {
				s.setState(Default)
			}
		}
	case s.ch == '.':
		s.forwardN(2) // ... continuation
	}
}

func (s *scanner) operator() {
	s.setState(Operator)
	s.transpose = isClosing(s.ch)
	if isOpening(s.ch) {
		s.depth++
	} else if isClosing(s.ch) && s.depth > 0 {
		s.depth--
	}

	// var::Type, T <: Type
	if s.p.juliaStrings && (s.ch == ':' || s.ch == '<') && s.chNext == ':' {
		s.forwardN(2)
		s.setState(Default)
		for s.pos < s.end && isSpaceOrTab(s.ch) {
			s.forward()
		}
		if isWordChar(s.ch) {
			s.setState(Attribute)
		} else {
			s.classify()
		}
	}
}
