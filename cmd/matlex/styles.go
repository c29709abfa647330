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

package main

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/db47h/matlex"
	"github.com/spf13/cobra"
	"golang.org/x/text/width"
)

func newStylesCmd(a *app) *cobra.Command {
	var ruler bool
	cmd := &cobra.Command{
		Use:   "styles FILE",
		Short: "Print the styled runs of a file",
		Long: `Print the styled runs of a file, one per line, as line:column STYLE "text".

With --ruler, every source line is followed by a line of style codes aligned
with the source text:

` + legend(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if ruler {
				writeRuler(w, b)
			} else {
				writeRuns(w, b)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&ruler, "ruler", false, "print style codes under each source line")
	return cmd
}

// writeRuns prints runs of bytes sharing the same style. Runs never span
// lines and blank default runs are skipped.
func writeRuns(w io.Writer, b *matlex.Buffer) {
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
			run := text[start+i : start+j]
			if st != matlex.Default || !isBlank(run) {
				p := b.Position(start + i)
				fmt.Fprintf(w, "%d:%d %s %q\n", p.Line, p.Column, st, run)
			}
			i = j
		}
	}
}

func isBlank(s []byte) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// styleCodes are the single character codes printed by --ruler.
var styleCodes = [...]byte{
	matlex.Default:            '.',
	matlex.Operator:           'o',
	matlex.Number:             'n',
	matlex.HexNumber:          'h',
	matlex.Identifier:         'i',
	matlex.Keyword:            'k',
	matlex.Attribute:          'a',
	matlex.InternalCommand:    'x',
	matlex.Function1:          '1',
	matlex.Function2:          '2',
	matlex.Function3:          '3',
	matlex.Function:           'f',
	matlex.Callback:           '@',
	matlex.Variable:           '$',
	matlex.Command:            '!',
	matlex.String:             's',
	matlex.DoubleQuotedString: 'd',
	matlex.RawString:          'r',
	matlex.TripleString:       't',
	matlex.Backtick:           '`',
	matlex.Regex:              'e',
	matlex.Comment:            'c',
	matlex.BlockComment:       'b',
}

func styleCode(s matlex.Style) byte {
	if int(s) < len(styleCodes) {
		return styleCodes[s]
	}
	return '?'
}

func legend() string {
	var s string
	for i, c := range styleCodes {
		s += fmt.Sprintf("  %c %s\n", c, matlex.Style(i))
	}
	return s
}

// writeRuler prints each line followed by its style codes. A code is repeated
// for every display column of its character, so that codes stay aligned under
// wide characters.
func writeRuler(w io.Writer, b *matlex.Buffer) {
	var codes []byte
	for line := 0; line < b.LineCount(); line++ {
		lt, _ := b.LineBytes(line)
		if len(lt) == 0 && line == b.LineCount()-1 {
			break
		}
		start := b.LineStart(line)
		codes = codes[:0]
		for i := 0; i < len(lt); {
			r, n := utf8.DecodeRune(lt[i:])
			c := styleCode(b.StyleAt(start + i))
			switch {
			case r == '\t':
				codes = append(codes, '\t')
			case isWide(r):
				codes = append(codes, c, c)
			default:
				codes = append(codes, c)
			}
			i += n
		}
		fmt.Fprintf(w, "%s\n%s\n", lt, codes)
	}
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
