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

// reader wraps a Text with bounds checked access. Out of range reads return 0,
// which belongs to no character class.
//
type reader struct {
	t Text
	n int
}

func newReader(t Text) reader {
	return reader{t: t, n: t.Len()}
}

func (r reader) at(pos int) byte {
	if pos < 0 || pos >= r.n {
		return 0
	}
	return r.t.ByteAt(pos)
}

// spaceToEOL reports whether there is nothing but spaces and tabs from pos to
// the end of its line.
func (r reader) spaceToEOL(pos int) bool {
	for ; pos < r.n; pos++ {
		c := r.t.ByteAt(pos)
		if isEOLChar(c) {
			return true
		}
		if !isSpaceOrTab(c) {
			return false
		}
	}
	return true
}

// skipSpaceTab returns the position of the first byte in [pos, end) that is
// neither a space nor a tab, or end.
func (r reader) skipSpaceTab(pos, end int) int {
	for ; pos < end && isSpaceOrTab(r.at(pos)); pos++ {
	}
	return pos
}

// nextNonSpace returns the first byte at or after pos that is not a space or
// a tab, looking no further than the end of the line.
func (r reader) nextNonSpace(pos int) byte {
	for ; pos < r.n; pos++ {
		if c := r.t.ByteAt(pos); !isSpaceOrTab(c) {
			return c
		}
	}
	return 0
}

// word returns the run of word characters starting at pos, truncated to max
// bytes.
func (r reader) word(pos, max int) string {
	end := pos
	for end-pos < max && isWordChar(r.at(end)) {
		end++
	}
	b := make([]byte, end-pos)
	for i := range b {
		b[i] = r.t.ByteAt(pos + i)
	}
	return string(b)
}

// match reports whether the text at pos starts with s.
func (r reader) match(pos int, s string) bool {
	for i := 0; i < len(s); i++ {
		if r.at(pos+i) != s[i] {
			return false
		}
	}
	return true
}

func (p *policy) isLineCommentStart(c, next, next2 byte, visible int) bool {
	return c == '#' ||
		(p.percentLine && (c == '%' || (visible == 0 && c == '.' && next == '.' && next2 == '.'))) ||
		(p.slashLine && c == '/' && next == '/')
}

// isNestedCommentStart matches %{ (or #{ in Octave) alone on its line.
func (p *policy) isNestedCommentStart(r reader, pos int, c, next byte, visible int) bool {
	return visible == 0 && next == '{' && p.matlabLike &&
		(c == '%' || (p.nestedHash && c == '#')) &&
		r.spaceToEOL(pos+2)
}

// isNestedCommentEnd matches %} (or #} in Octave) alone on its line.
func (p *policy) isNestedCommentEnd(r reader, pos int, c, next byte, visible int) bool {
	return visible == 0 && next == '}' && p.matlabLike &&
		(c == '%' || (p.nestedHash && c == '#')) &&
		r.spaceToEOL(pos+2)
}

func (p *policy) isBlockCommentStart(r reader, pos int, c, next byte, visible int) bool {
	return p.isNestedCommentStart(r, pos, c, next, visible) ||
		(p.juliaBlock && c == '#' && next == '=') ||
		(c == '/' && next == '*')
}

func (p *policy) isBlockCommentEnd(r reader, pos int, c, next byte, visible int) bool {
	return p.isNestedCommentEnd(r, pos, c, next, visible) ||
		(p.juliaBlock && c == '=' && next == '#') ||
		(c == '*' && next == '/')
}
