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

// Packed line state layout: nested comment depth in the low 16 bits, the
// Octave test section flag above it, then the bracket depth.
const (
	lineStateLevelMask  = 0xffff
	lineStateTest       = 1 << 16
	lineStateDepthShift = 17
	lineStateDepthMask  = 0xff
)

func packLineState(commentLevel, depth int, hasTest bool) int {
	if commentLevel < 0 {
		commentLevel = 0
	} else if commentLevel > lineStateLevelMask {
		commentLevel = lineStateLevelMask
	}
	if depth < 0 {
		depth = 0
	} else if depth > lineStateDepthMask {
		depth = lineStateDepthMask
	}
	s := commentLevel | depth<<lineStateDepthShift
	if hasTest {
		s |= lineStateTest
	}
	return s
}

func unpackLineState(s int) (commentLevel, depth int, hasTest bool) {
	return s & lineStateLevelMask, s >> lineStateDepthShift & lineStateDepthMask, s&lineStateTest != 0
}

// CommentLevel returns the nested block comment depth recorded in a packed
// line state.
//
func CommentLevel(lineState int) int {
	l, _, _ := unpackLineState(lineState)
	return l
}

// BracketDepth returns the number of brackets left open at the end of the
// line whose packed state is lineState.
//
func BracketDepth(lineState int) int {
	_, d, _ := unpackLineState(lineState)
	return d
}
