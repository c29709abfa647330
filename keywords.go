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

// A WordList is a set of words used to classify identifiers.
//
// Entries of function lists may carry a marker suffix, e.g. "disp()": such
// entries only match through HasPrefixed. The zero value is an empty list.
//
type WordList struct {
	words map[string]struct{}
	heads map[string]struct{} // entry prefixes ending with a non word character
}

// NewWordList builds a WordList from a whitespace separated list of words.
//
func NewWordList(words string) WordList {
	l := WordList{
		words: make(map[string]struct{}),
		heads: make(map[string]struct{}),
	}
	for _, w := range strings.Fields(words) {
		l.words[w] = struct{}{}
		for i := 1; i < len(w); i++ {
			if !isWordChar(w[i]) {
				l.heads[w[:i+1]] = struct{}{}
				break
			}
		}
	}
	return l
}

// Len returns the number of words in the list.
//
func (l WordList) Len() int { return len(l.words) }

// Has reports whether word is in the list.
//
func (l WordList) Has(word string) bool {
	_, ok := l.words[word]
	return ok
}

// HasPrefixed reports whether the list has an entry made of word immediately
// followed by marker. Anything after the marker is ignored, so both "sin(" and
// "sin()" match HasPrefixed("sin", '(').
//
func (l WordList) HasPrefixed(word string, marker byte) bool {
	_, ok := l.heads[word+string(marker)]
	return ok
}

// Keywords groups the word lists of a dialect.
//
type Keywords struct {
	Keywords   WordList // reserved words
	Attributes WordList // class attributes
	Commands   WordList // internal commands
	Function1  WordList
	Function2  WordList
	Function3  WordList
}

// classify returns the style of an identifier. next is the first non blank
// character following it.
func (k *Keywords) classify(word string, next byte, juliaBraces bool, cur Style) Style {
	switch {
	case k.Keywords.Has(word):
		return Keyword
	case k.Attributes.Has(word):
		return Attribute
	case k.Commands.Has(word):
		return InternalCommand
	case k.Function1.HasPrefixed(word, '('):
		return Function1
	case k.Function2.HasPrefixed(word, '('):
		return Function2
	case k.Function3.HasPrefixed(word, '('):
		return Function3
	case next == '(':
		return Function
	case juliaBraces && cur == Identifier && next == '{':
		return Attribute
	}
	return cur
}
