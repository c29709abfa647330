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

// ErrStyle is returned by ParseStyle for unknown style names.
var ErrStyle = errors.New("unknown style")

// A Style is the lexical class attached to a single byte of the document.
//
type Style uint8

// Styles produced by the scanner.
//
const (
	Default              Style = iota // whitespace and inert text
	Operator                          // operators and punctuation
	Number                            // decimal, float and complex literals
	HexNumber                         // 0x literals
	Identifier                        // any identifier not found in a keyword list
	Keyword                           // reserved words
	Attribute                         // class attributes, Julia type annotations
	InternalCommand                   // internal commands
	Function1                         // first tier library functions
	Function2                         // second tier library functions
	Function3                         // third tier library functions
	Function                          // identifier followed by (
	Callback                          // @name
	Variable                          // $name
	Command                           // !shell escape
	String                            // 'single quoted'
	DoubleQuotedString                // "double quoted"
	RawString                         // raw"..."
	TripleString                      // """...""" and raw"""..."""
	Backtick                          // `command`
	Regex                             // Julia r"..."flags
	Comment                           // line comment
	BlockComment                      // %{ %}, #= =#, /* */

	numStyles
)

var styleNames = [...]string{
	Default:            "Default",
	Operator:           "Operator",
	Number:             "Number",
	HexNumber:          "HexNumber",
	Identifier:         "Identifier",
	Keyword:            "Keyword",
	Attribute:          "Attribute",
	InternalCommand:    "InternalCommand",
	Function1:          "Function1",
	Function2:          "Function2",
	Function3:          "Function3",
	Function:           "Function",
	Callback:           "Callback",
	Variable:           "Variable",
	Command:            "Command",
	String:             "String",
	DoubleQuotedString: "DoubleQuotedString",
	RawString:          "RawString",
	TripleString:       "TripleString",
	Backtick:           "Backtick",
	Regex:              "Regex",
	Comment:            "Comment",
	BlockComment:       "BlockComment",
}

func (s Style) String() string {
	if s < numStyles {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// ParseStyle returns the Style with the given name. The match is case
// insensitive.
//
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return Default, fmt.Errorf("%w %q", ErrStyle, name)
}

// isCommentStyle reports whether s is one of the comment styles.
func isCommentStyle(s Style) bool {
	return s == Comment || s == BlockComment
}
