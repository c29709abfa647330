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

// Character classes. All predicates work on single bytes with ASCII
// classification; bytes >= 0x80 belong to no class.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// isWordChar reports whether c can start or continue an identifier.
func isWordChar(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' }

// isSpace matches ' ' and \t through \r.
func isSpace(c byte) bool { return c == ' ' || (c >= '\t' && c <= '\r') }

func isSpaceOrTab(c byte) bool { return c == ' ' || c == '\t' }

func isEOLChar(c byte) bool { return c == '\n' || c == '\r' }

// isOperator reports whether c is an operator or punctuation character.
func isOperator(c byte) bool {
	switch c {
	case '%', '^', '&', '*', '(', ')', '-', '+', '=', '|', '{', '}', '[', ']',
		':', ';', '<', '>', ',', '/', '?', '!', '.', '~', '@', '\\', '$':
		return true
	}
	return false
}

func isOpening(c byte) bool { return c == '(' || c == '[' || c == '{' }

func isClosing(c byte) bool { return c == ')' || c == ']' || c == '}' }

// isNumberChar reports whether c continues a number whose previous character
// is prev. Accepted forms: [.] digits [.] digits [e|E [+|-] digits] [i|j|I|J].
//
func isNumberChar(c, prev byte) bool {
	switch {
	case isDigit(c):
		return true
	case c == '.':
		return prev != '.'
	case c == '+' || c == '-':
		return prev == 'e' || prev == 'E'
	case c == 'e' || c == 'E' || c == 'i' || c == 'j' || c == 'I' || c == 'J':
		return isDigit(prev)
	}
	return false
}

// isInvalidFileNameChar ends a shell escape command.
func isInvalidFileNameChar(c byte) bool {
	switch c {
	case '<', '>', '/', '\\', '\'', '"', '|', '*', '?':
		return true
	}
	return isSpace(c)
}

// isJuliaStringPrefix matches the single letter prefixes of Julia's byte,
// version and custom string literals.
func isJuliaStringPrefix(c byte) bool {
	switch c {
	case 'b', 'L', 'I', 'E', 'v':
		return true
	}
	return false
}

func isRegexFlag(c byte) bool { return c == 'i' || c == 'm' || c == 's' || c == 'x' }
