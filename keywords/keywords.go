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

// Package keywords provides the word lists used by matlex to classify
// identifiers, and loads custom lists from YAML.
//
// A YAML document maps dialect names to sets of whitespace separated words:
//
//	octave:
//	  keywords: if else end endif function endfunction
//	  function1: disp() printf()
//
// Entries of the function lists usually end with "()"; see
// matlex.WordList.HasPrefixed.
//
package keywords

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/db47h/matlex"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultYAML []byte

// Set is the YAML form of the word lists of a dialect.
//
type Set struct {
	Keywords   string `yaml:"keywords"`
	Attributes string `yaml:"attributes"`
	Commands   string `yaml:"commands"`
	Function1  string `yaml:"function1"`
	Function2  string `yaml:"function2"`
	Function3  string `yaml:"function3"`
}

// WordLists builds the word lists of s.
//
func (s *Set) WordLists() *matlex.Keywords {
	return &matlex.Keywords{
		Keywords:   matlex.NewWordList(s.Keywords),
		Attributes: matlex.NewWordList(s.Attributes),
		Commands:   matlex.NewWordList(s.Commands),
		Function1:  matlex.NewWordList(s.Function1),
		Function2:  matlex.NewWordList(s.Function2),
		Function3:  matlex.NewWordList(s.Function3),
	}
}

// Load decodes a YAML document of word lists keyed by dialect name. Dialects
// missing from the document are missing from the returned map.
//
func Load(r io.Reader) (map[matlex.Dialect]*matlex.Keywords, error) {
	var sets map[string]*Set
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		if errors.Is(err, io.EOF) {
			return map[matlex.Dialect]*matlex.Keywords{}, nil
		}
		return nil, fmt.Errorf("decode keywords: %w", err)
	}
	m := make(map[matlex.Dialect]*matlex.Keywords, len(sets))
	for name, s := range sets {
		d, err := matlex.ParseDialect(name)
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		if s == nil {
			s = &Set{}
		}
		m[d] = s.WordLists()
	}
	return m, nil
}

var (
	defaultOnce sync.Once
	defaults    map[matlex.Dialect]*matlex.Keywords
)

// Default returns the built-in word lists for d. The returned value is shared
// and must not be modified.
//
func Default(d matlex.Dialect) *matlex.Keywords {
	defaultOnce.Do(func() {
		var err error
		defaults, err = Load(bytes.NewReader(defaultYAML))
		if err != nil {
			panic(err)
		}
	})
	if k := defaults[d]; k != nil {
		return k
	}
	return &matlex.Keywords{}
}
