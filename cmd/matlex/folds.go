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

	"github.com/db47h/matlex"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newFoldsCmd(a *app) *cobra.Command {
	var maxWidth int
	cmd := &cobra.Command{
		Use:   "folds FILE",
		Short: "Print the fold level of every line of a file",
		Long: `Print the fold level of every line of a file as

	line start end flags text

where start and end are the levels at the start and end of the line relative
to the base level, and flags holds H for fold headers and W for blank lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			writeFolds(w, b, maxWidth)
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&maxWidth, "width", "w", 0, "truncate source text to this many columns (0: no limit)")
	return cmd
}

func writeFolds(w io.Writer, b *matlex.Buffer, maxWidth int) {
	n := b.LineCount()
	if n > 1 && b.LineStart(n-1) == b.Len() {
		n-- // empty last line
	}
	for line := 0; line < n; line++ {
		lev := b.FoldLevel(line)
		flags := ""
		if lev.IsHeader() {
			flags += "H"
		}
		if lev.IsWhite() {
			flags += "W"
		}
		if flags == "" {
			flags = "-"
		}
		lt, _ := b.LineBytes(line)
		text := string(lt)
		if maxWidth > 0 {
			text = runewidth.Truncate(text, maxWidth, "...")
		}
		fmt.Fprintf(w, "%d %d %d %s %s\n", line+1,
			lev.Start()-int(matlex.LevelBase), lev.End()-int(matlex.LevelBase), flags, text)
	}
}
