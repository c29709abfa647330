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

package matlex_test

import (
	"strings"
	"testing"

	"github.com/db47h/matlex"
	"github.com/db47h/matlex/keywords"
)

const benchSource = `classdef Account < handle
    properties (Access = private)
        Balance = 0 % current balance
    end
    methods
        function obj = deposit(obj, x)
            %{
            Adds x to the balance.
            %}
            if x > 0 && isnumeric(x)
                obj.Balance = obj.Balance + x';
            else
                error('Account:deposit', 'invalid amount "%g"', x);
            end
            cb = @(v) disp(v);
            m = [1 2 3; 4 5 6]';
        end
    end
end
`

func benchBuffer(b *testing.B) (*matlex.Lexer, *matlex.Buffer) {
	lx := matlex.New(matlex.Matlab,
		matlex.WithKeywords(keywords.Default(matlex.Matlab)),
		matlex.FoldComment(true))
	buf := matlex.NewBuffer("bench.m", []byte(strings.Repeat(benchSource, 200)))
	b.SetBytes(int64(buf.Len()))
	return lx, buf
}

func BenchmarkScan(b *testing.B) {
	lx, buf := benchBuffer(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx.Scan(buf, 0, buf.Len(), matlex.Default)
	}
}

func BenchmarkFold(b *testing.B) {
	lx, buf := benchBuffer(b)
	lx.Scan(buf, 0, buf.Len(), matlex.Default)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx.Fold(buf, 0, buf.Len())
	}
}

func BenchmarkRestyle(b *testing.B) {
	lx, buf := benchBuffer(b)
	lx.Colourise(buf)
	pos := buf.LineStart(buf.LineCount() / 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		line, err := buf.Replace(pos, 0, []byte("x"))
		if err != nil {
			b.Fatal(err)
		}
		lx.Restyle(buf, line)
		if line, err = buf.Replace(pos, 1, nil); err != nil {
			b.Fatal(err)
		}
		lx.Restyle(buf, line)
	}
}
