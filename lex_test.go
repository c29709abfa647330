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
	"testing"

	"github.com/db47h/matlex"
	"github.com/google/go-cmp/cmp"
)

// testKeywords is a small keyword set shared by the tests.
//
var testKeywords = &matlex.Keywords{
	Keywords: matlex.NewWordList(`break case catch classdef do else elseif end
		endfunction endif enumeration events for function if methods otherwise
		properties return select switch try until unwind_protect while
		begin let macro module quote struct`),
	Attributes: matlex.NewWordList("Access Static Int64"),
	Commands:   matlex.NewWordList("disp clc"),
	Function1:  matlex.NewWordList("sin() cos()"),
	Function2:  matlex.NewWordList("plot("),
	Function3:  matlex.NewWordList("strcat()"),
}

type run struct {
	Style matlex.Style
	Text  string
}

// runs returns the styled runs of b. Runs do not span lines, line terminators
// are dropped and so are blank default runs.
//
func runs(b *matlex.Buffer) []run {
	var rs []run
	text := b.Bytes()
	for line := 0; line < b.LineCount(); line++ {
		lt, _ := b.LineBytes(line)
		start := b.LineStart(line)
		for i := 0; i < len(lt); {
			st := b.StyleAt(start + i)
			j := i + 1
			for j < len(lt) && b.StyleAt(start+j) == st {
				j++
			}
			s := string(text[start+i : start+j])
			if st != matlex.Default || !blank(s) {
				rs = append(rs, run{st, s})
			}
			i = j
		}
	}
	return rs
}

func blank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

func colourise(d matlex.Dialect, src string, opts ...matlex.Option) *matlex.Buffer {
	b := matlex.NewBuffer("test", []byte(src))
	opts = append([]matlex.Option{matlex.WithKeywords(testKeywords)}, opts...)
	matlex.New(d, opts...).Colourise(b)
	return b
}

func TestScan(t *testing.T) {
	const (
		op    = matlex.Operator
		num   = matlex.Number
		hex   = matlex.HexNumber
		id    = matlex.Identifier
		kw    = matlex.Keyword
		attr  = matlex.Attribute
		cmd   = matlex.InternalCommand
		f1    = matlex.Function1
		f2    = matlex.Function2
		f3    = matlex.Function3
		fn    = matlex.Function
		cb    = matlex.Callback
		vr    = matlex.Variable
		shell = matlex.Command
		str   = matlex.String
		dqs   = matlex.DoubleQuotedString
		raw   = matlex.RawString
		tri   = matlex.TripleString
		bt    = matlex.Backtick
		re    = matlex.Regex
		cmt   = matlex.Comment
		blk   = matlex.BlockComment
	)

	data := []struct {
		name    string
		dialect matlex.Dialect
		input   string
		want    []run
	}{
		{"transpose", matlex.Matlab, "x = a' + 'bc';\n",
			[]run{{id, "x"}, {op, "="}, {id, "a"}, {op, "'"}, {op, "+"}, {str, "'bc'"}, {op, ";"}}},
		{"string_at_start", matlex.Matlab, "'abc'\n",
			[]run{{str, "'abc'"}}},
		{"dot_transpose", matlex.Matlab, "y = x.';\n",
			[]run{{id, "y"}, {op, "="}, {id, "x"}, {op, ".';"}}},
		{"doubled_quote", matlex.Matlab, "s = 'it''s';\n",
			[]run{{id, "s"}, {op, "="}, {str, "'it''s'"}, {op, ";"}}},
		{"nested_comment", matlex.Matlab, "%{\n%{\nx\n%}\n%}\ny\n",
			[]run{{blk, "%{"}, {blk, "%{"}, {blk, "x"}, {blk, "%}"}, {blk, "%}"}, {id, "y"}}},
		{"julia_block_comment", matlex.Julia, "#= outer #= inner =# still-comment =#",
			[]run{{blk, "#= outer #= inner =#"}, {id, "still"}, {op, "-"}, {id, "comment"}, {op, "="}, {cmt, "#"}}},
		{"octave_tests", matlex.Octave, "%!test\n%!assert (x)\n% plain\n",
			[]run{{cmt, "%!"}, {id, "test"}, {cmt, "%!"}, {fn, "assert"}, {op, "("}, {id, "x"}, {op, ")"}, {cmt, "% plain"}}},
		{"octave_tests_sticky", matlex.Octave, "%!test\nx = 1;\n%!foo x\n",
			[]run{{cmt, "%!"}, {id, "test"}, {id, "x"}, {op, "="}, {num, "1"}, {op, ";"}, {cmt, "%!"}, {id, "foo"}, {id, "x"}}},
		{"octave_no_test_word", matlex.Octave, "%!foo x\n",
			[]run{{cmt, "%!foo x"}}},
		{"matlab_no_tests", matlex.Matlab, "%!test\n",
			[]run{{cmt, "%!test"}}},
		{"continuation", matlex.Matlab, "... note\n",
			[]run{{cmt, "... note"}}},
		{"numbers", matlex.Matlab, "a = 1.5e-3i + 0x1F;\n",
			[]run{{id, "a"}, {op, "="}, {num, "1.5e-3i"}, {op, "+"}, {hex, "0x1F"}, {op, ";"}}},
		{"julia_im", matlex.Julia, "z = 2im",
			[]run{{id, "z"}, {op, "="}, {num, "2im"}}},
		{"callback", matlex.Matlab, "f = @sin;\n",
			[]run{{id, "f"}, {op, "="}, {cb, "@sin"}, {op, ";"}}},
		{"shell", matlex.Matlab, "!ls -l\n",
			[]run{{shell, "!ls"}, {op, "-"}, {id, "l"}}},
		{"keywords", matlex.Matlab, "if sin(x) disp(1) end",
			[]run{{kw, "if"}, {f1, "sin"}, {op, "("}, {id, "x"}, {op, ")"}, {cmd, "disp"}, {op, "("}, {num, "1"}, {op, ")"}, {kw, "end"}}},
		{"functions", matlex.Matlab, "plot (x); strcat(a); foo(1)\n",
			[]run{{f2, "plot"}, {op, "("}, {id, "x"}, {op, ");"}, {f3, "strcat"}, {op, "("}, {id, "a"}, {op, ");"}, {fn, "foo"}, {op, "("}, {num, "1"}, {op, ")"}}},
		{"function_without_call", matlex.Matlab, "x = sin;\n",
			[]run{{id, "x"}, {op, "="}, {f1, "sin"}, {op, ";"}}},
		{"julia_braces", matlex.Julia, "Vector{Int64}(undef)\n",
			[]run{{attr, "Vector"}, {op, "{"}, {attr, "Int64"}, {op, "}("}, {id, "undef"}, {op, ")"}}},
		{"julia_annotation", matlex.Julia, "x::Int64 = 1\n",
			[]run{{id, "x"}, {op, "::"}, {attr, "Int64"}, {op, "="}, {num, "1"}}},
		{"julia_strings", matlex.Julia, `s = "a\"b" * raw"c\d" * """t"""` + "\n",
			[]run{{id, "s"}, {op, "="}, {dqs, `"a\"b"`}, {op, "*"}, {raw, `raw"c\d"`}, {op, "*"}, {tri, `"""t"""`}}},
		{"julia_regex", matlex.Julia, `r"a\"b"i`,
			[]run{{re, `r"a\"b"i`}}},
		{"backtick", matlex.Julia, "`ls`\n",
			[]run{{bt, "`ls`"}}},
		{"variable", matlex.Julia, "$x\n",
			[]run{{vr, "$x"}}},
		{"scilab_comments", matlex.Scilab, "x = 1 // note\n/* a\nb */ y\n",
			[]run{{id, "x"}, {op, "="}, {num, "1"}, {cmt, "// note"}, {blk, "/* a"}, {blk, "b */"}, {id, "y"}}},
		{"gnuplot_comments", matlex.Gnuplot, "x = 5 % 2 // half\n# note\n",
			[]run{{id, "x"}, {op, "="}, {num, "5"}, {op, "%"}, {num, "2"}, {cmt, "// half"}, {cmt, "# note"}}},
		{"unterminated", matlex.Matlab, "s = 'abc\nd'\n",
			[]run{{id, "s"}, {op, "="}, {str, "'abc"}, {str, "d'"}}},
		{"crlf", matlex.Matlab, "x\r\ny\r\n",
			[]run{{id, "x"}, {id, "y"}}},
	}

	for _, td := range data {
		t.Run(td.name, func(t *testing.T) {
			b := colourise(td.dialect, td.input)
			if diff := cmp.Diff(td.want, runs(b)); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanOctaveTestResume(t *testing.T) {
	b := colourise(matlex.Octave, "%!test\nx = 1;\n%!foo x\n")
	want := runs(b)
	lx := matlex.New(matlex.Octave, matlex.WithKeywords(testKeywords))
	start := b.LineStart(2)
	rescan := func() {
		for i := start; i < b.Len(); i++ {
			b.SetStyle(i, matlex.Default)
		}
		lx.Scan(b, start, b.Len()-start, b.StyleAt(start-1))
	}

	rescan()
	if diff := cmp.Diff(want, runs(b)); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}

	// without the test section recorded on the previous line, %! starts a
	// plain comment
	b.SetLineState(1, 0)
	rescan()
	got := runs(b)
	if last := got[len(got)-1]; last != (run{matlex.Comment, "%!foo x"}) {
		t.Errorf("expected a comment run, got %v", last)
	}
}

func TestScanPartialLine(t *testing.T) {
	b := matlex.NewBuffer("test", []byte("%{\nx\n%}\ny\n"))
	b.SetLineState(2, 42)
	matlex.New(matlex.Matlab, matlex.WithKeywords(testKeywords)).Scan(b, 0, 6, matlex.Default)
	if got := matlex.CommentLevel(b.LineState(1)); got != 1 {
		t.Errorf("line 1: expected comment level 1, got %d", got)
	}
	if got := b.LineState(2); got != 42 {
		t.Errorf("line 2 was not reached but its state changed to %d", got)
	}
}

func TestBracketDepth(t *testing.T) {
	b := colourise(matlex.Matlab, "a = {1, (2, ...\n3), 4}\n]]\n")
	var got []int
	for line := 0; line < b.LineCount(); line++ {
		got = append(got, matlex.BracketDepth(b.LineState(line)))
	}
	want := []int{2, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bracket depths mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentLevel(t *testing.T) {
	b := colourise(matlex.Matlab, "%{\n%{\nx\n%}\n%}\ny\n")
	var got []int
	for line := 0; line < b.LineCount(); line++ {
		got = append(got, matlex.CommentLevel(b.LineState(line)))
	}
	want := []int{1, 2, 2, 1, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comment levels mismatch (-want +got):\n%s", diff)
	}

	// Octave also accepts #{ #}, Matlab does not.
	b = colourise(matlex.Octave, "#{\nx\n#}\n")
	if got := matlex.CommentLevel(b.LineState(1)); got != 1 {
		t.Errorf("octave: expected level 1, got %d", got)
	}
	b = colourise(matlex.Matlab, "#{\nx\n#}\n")
	if got := b.StyleAt(3); got != matlex.Identifier {
		t.Errorf("matlab: expected Identifier, got %v", got)
	}

	// %{ followed by text is a line comment.
	b = colourise(matlex.Matlab, "%{ x\ny\n")
	if got := b.StyleAt(5); got != matlex.Identifier {
		t.Errorf("inline: expected Identifier, got %v", got)
	}
}

func TestScanResume(t *testing.T) {
	b := matlex.NewBuffer("test", []byte("/* a\nb */ c\n"))
	lx := matlex.New(matlex.Scilab)
	st := lx.Scan(b, 0, 5, matlex.Default)
	if st != matlex.BlockComment {
		t.Fatalf("expected BlockComment, got %v", st)
	}
	st = lx.Scan(b, 5, b.Len()-5, st)
	if st != matlex.Default {
		t.Errorf("expected Default, got %v", st)
	}
	want := []run{{matlex.BlockComment, "/* a"}, {matlex.BlockComment, "b */"}, {matlex.Identifier, "c"}}
	if diff := cmp.Diff(want, runs(b)); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestScanRange(t *testing.T) {
	b := matlex.NewBuffer("test", []byte("abc"))
	lx := matlex.New(matlex.Matlab)
	// out of range requests are clamped
	lx.Scan(b, -2, 100, matlex.Default)
	for i := 0; i < b.Len(); i++ {
		if b.StyleAt(i) != matlex.Identifier {
			t.Errorf("pos %d: expected Identifier, got %v", i, b.StyleAt(i))
		}
	}
	if st := lx.Scan(b, 3, 0, matlex.String); st != matlex.String {
		t.Errorf("empty range: expected String, got %v", st)
	}
}

func TestParseStyle(t *testing.T) {
	for s := matlex.Default; s <= matlex.BlockComment; s++ {
		got, err := matlex.ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("%v: got %v, %v", s, got, err)
		}
	}
	if _, err := matlex.ParseStyle("bogus"); err == nil {
		t.Error("expected error")
	}
	if s, _ := matlex.ParseStyle("blockcomment"); s != matlex.BlockComment {
		t.Errorf("expected BlockComment, got %v", s)
	}
}

func TestParseDialect(t *testing.T) {
	for _, d := range matlex.Dialects() {
		got, err := matlex.ParseDialect(d.String())
		if err != nil || got != d {
			t.Errorf("%v: got %v, %v", d, got, err)
		}
	}
	if d, err := matlex.ParseDialect("Octave"); err != nil || d != matlex.Octave {
		t.Errorf("Octave: got %v, %v", d, err)
	}
	if _, err := matlex.ParseDialect("fortran"); err == nil {
		t.Error("expected error")
	}
}

func TestWordList(t *testing.T) {
	l := matlex.NewWordList("if  end\n sin() plot( x.y")
	if l.Len() != 5 {
		t.Errorf("expected 5 words, got %d", l.Len())
	}
	for _, w := range []string{"if", "end", "sin()", "x.y"} {
		if !l.Has(w) {
			t.Errorf("Has(%q) = false", w)
		}
	}
	for _, w := range []string{"sin", "plot", "x"} {
		if l.Has(w) {
			t.Errorf("Has(%q) = true", w)
		}
	}
	if !l.HasPrefixed("sin", '(') || !l.HasPrefixed("plot", '(') {
		t.Error("HasPrefixed failed")
	}
	if l.HasPrefixed("if", '(') || l.HasPrefixed("x", '(') || !l.HasPrefixed("x", '.') {
		t.Error("HasPrefixed false positive")
	}
	var zero matlex.WordList
	if zero.Has("if") || zero.HasPrefixed("if", '(') || zero.Len() != 0 {
		t.Error("zero WordList not empty")
	}
}
