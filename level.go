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

import "fmt"

// A Level is the fold level of a line. It packs the level at the start of the
// line, the level at its end, and two flags.
//
type Level int

// Level constants.
//
const (
	LevelBase       Level = 0x400  // level of top level lines
	LevelWhiteFlag  Level = 0x1000 // blank line, set when compact folding is enabled
	LevelHeaderFlag Level = 0x2000 // the line opens a fold
	LevelNumberMask Level = 0x0fff

	levelEndShift = 16
)

func makeLevel(start, end int, header, white bool) Level {
	l := Level(start)&LevelNumberMask | Level(end)<<levelEndShift
	if header {
		l |= LevelHeaderFlag
	}
	if white {
		l |= LevelWhiteFlag
	}
	return l
}

// Start returns the fold level at the start of the line.
//
func (l Level) Start() int { return int(l & LevelNumberMask) }

// End returns the fold level at the end of the line, which is also the start
// level of the next line. Unbalanced closers may drive it below LevelBase.
//
func (l Level) End() int { return int(l >> levelEndShift) }

// IsHeader reports whether the line opens a fold.
//
func (l Level) IsHeader() bool { return l&LevelHeaderFlag != 0 }

// IsWhite reports whether the line is blank and compact folding is enabled.
//
func (l Level) IsWhite() bool { return l&LevelWhiteFlag != 0 }

func (l Level) String() string {
	s := fmt.Sprintf("%d-%d", l.Start()-int(LevelBase), l.End()-int(LevelBase))
	if l.IsHeader() {
		s += " H"
	}
	if l.IsWhite() {
		s += " W"
	}
	return s
}
