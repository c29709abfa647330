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
	"strings"
)

// ErrDialect is returned by ParseDialect for unknown dialect names.
var ErrDialect = errors.New("unknown dialect")

// A Dialect selects one of the language variants sharing the scanner.
//
type Dialect int

// Supported dialects.
//
const (
	Matlab Dialect = iota
	Octave
	Scilab
	Gnuplot
	Julia
)

var dialectNames = [...]string{
	Matlab:  "matlab",
	Octave:  "octave",
	Scilab:  "scilab",
	Gnuplot: "gnuplot",
	Julia:   "julia",
}

func (d Dialect) String() string {
	if d >= 0 && int(d) < len(dialectNames) {
		return dialectNames[d]
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Dialects returns all supported dialects in declaration order.
//
func Dialects() []Dialect {
	return []Dialect{Matlab, Octave, Scilab, Gnuplot, Julia}
}

// ParseDialect returns the dialect with the given (case insensitive) name.
//
func ParseDialect(name string) (Dialect, error) {
	for i, n := range dialectNames {
		if strings.EqualFold(n, name) {
			return Dialect(i), nil
		}
	}
	return Matlab, fmt.Errorf("%w %q", ErrDialect, name)
}

// policy holds the dialect dependent decisions of the scanner and folder. It
// is resolved once per Lexer.
//
type policy struct {
	dialect Dialect

	matlabLike    bool // Matlab or Octave: nested %{ %} comments, !commands, transpose
	nestedHash    bool // #{ #} also opens/closes nested comments (Octave)
	percentLine   bool // % starts a line comment
	slashLine     bool // // starts a line comment
	juliaStrings  bool // r"", b"", L"", I"", E"", v"" prefixes, :: and <: annotations
	juliaBlock    bool // #= =# block comments
	octaveTests   bool // %!test annotations
	anonFunction  bool // function( is an anonymous function, not a definition
	blockKeywords map[string]bool
}

var commonBlockKeywords = []string{"function", "if", "for", "while", "try"}

func newPolicy(d Dialect) *policy {
	p := &policy{
		dialect:       d,
		matlabLike:    d == Matlab || d == Octave,
		nestedHash:    d == Octave,
		slashLine:     d != Julia,
		juliaStrings:  d == Julia,
		juliaBlock:    d == Julia,
		octaveTests:   d == Octave,
		anonFunction:  d == Matlab || d == Octave || d == Scilab,
		blockKeywords: make(map[string]bool),
	}
	p.percentLine = p.matlabLike

	words := append([]string(nil), commonBlockKeywords...)
	switch d {
	case Matlab:
		words = append(words, "switch", "classdef", "parfor")
	case Octave:
		words = append(words, "switch", "classdef", "parfor", "do", "unwind_protect")
	case Scilab:
		words = append(words, "switch", "classdef", "parfor", "select")
	case Julia:
		words = append(words, "type", "quote", "let", "macro", "do", "struct", "begin", "module")
	}
	for _, w := range words {
		p.blockKeywords[w] = true
	}
	return p
}
