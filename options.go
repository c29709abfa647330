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

type options struct {
	keywords    *Keywords
	foldComment bool
	foldCompact bool
	folding     bool
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// WithKeywords sets the word lists used to classify identifiers. Without this
// option, identifiers are only reclassified as functions when followed by a
// parenthesis.
//
func WithKeywords(k *Keywords) Option {
	return func(o *options) {
		o.keywords = k
	}
}

// FoldComment enables folding of block comments, runs of line comments and
// triple quoted strings (the fold.comment property). Defaults to false.
//
func FoldComment(enable bool) Option {
	return func(o *options) {
		o.foldComment = enable
	}
}

// FoldCompact marks blank lines with LevelWhiteFlag so that they are folded
// along with the preceding block (the fold.compact property). Defaults to
// true.
//
func FoldCompact(enable bool) Option {
	return func(o *options) {
		o.foldCompact = enable
	}
}

// WithFolding makes Restyle and Colourise recompute fold levels after
// styling. Defaults to false.
//
func WithFolding(enable bool) Option {
	return func(o *options) {
		o.folding = enable
	}
}

func defaultOptions() options {
	return options{
		keywords:    &Keywords{},
		foldCompact: true,
	}
}
