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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/matlex"
	"github.com/db47h/matlex/keywords"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app holds the configuration shared by all sub-commands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "matlex",
		Short:         "Style and fold Matlab family source files",
		Long:          `matlex runs the matlex lexer over a source file and prints the resulting styles or fold levels.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./.matlex.yaml or ~/.matlex.yaml)")
	f.StringP("dialect", "d", "", "language dialect: matlab, octave, scilab, gnuplot or julia (default: by file extension)")
	f.StringP("keywords", "k", "", "YAML file of keyword lists")
	f.Bool("fold-comment", false, "fold comment blocks and triple quoted strings")
	f.Bool("fold-compact", true, "mark blank lines as white")

	_ = a.v.BindPFlag("dialect", f.Lookup("dialect"))
	_ = a.v.BindPFlag("keywords", f.Lookup("keywords"))
	_ = a.v.BindPFlag("fold.comment", f.Lookup("fold-comment"))
	_ = a.v.BindPFlag("fold.compact", f.Lookup("fold-compact"))

	root.AddCommand(newStylesCmd(a), newFoldsCmd(a))
	return root
}

func (a *app) initConfig() error {
	a.v.SetEnvPrefix("MATLEX")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("fold.compact", true)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(".matlex")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

var extDialects = map[string]matlex.Dialect{
	".m":       matlex.Matlab,
	".sci":     matlex.Scilab,
	".sce":     matlex.Scilab,
	".gp":      matlex.Gnuplot,
	".plt":     matlex.Gnuplot,
	".gnuplot": matlex.Gnuplot,
	".jl":      matlex.Julia,
}

// dialectFor guesses the dialect of filename from its extension.
func dialectFor(filename string) matlex.Dialect {
	if d, ok := extDialects[strings.ToLower(filepath.Ext(filename))]; ok {
		return d
	}
	return matlex.Matlab
}

func (a *app) lexer(filename string) (*matlex.Lexer, error) {
	d := dialectFor(filename)
	if name := a.v.GetString("dialect"); name != "" {
		var err error
		if d, err = matlex.ParseDialect(name); err != nil {
			return nil, err
		}
	}

	kw := keywords.Default(d)
	if path := a.v.GetString("keywords"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		m, err := keywords.Load(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if k, ok := m[d]; ok {
			kw = k
		}
	}

	return matlex.New(d,
		matlex.WithKeywords(kw),
		matlex.FoldComment(a.v.GetBool("fold.comment")),
		matlex.FoldCompact(a.v.GetBool("fold.compact")),
		matlex.WithFolding(true),
	), nil
}

// load reads filename and styles it.
func (a *app) load(filename string) (*matlex.Buffer, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lx, err := a.lexer(filename)
	if err != nil {
		return nil, err
	}
	b := matlex.NewBuffer(filename, src)
	lx.Colourise(b)
	return b, nil
}
