/*
Copyright 2025 The UCPTables Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package proptable

import "fmt"

// symbolTokens maps every character that may occur in a property name to
// its spelling token. The generated table spells names as sequences of
// these tokens instead of raw bytes, so the byte value of each character
// is deferred to per-platform definitions in the consuming engine. Extend
// the init loop below if future property names introduce new punctuation.
var symbolTokens = make(map[byte]string)

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		symbolTokens[c] = "str_" + string(c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		symbolTokens[c] = "str_" + string(c)
	}
	symbolTokens['_'] = "str_UNDERSCORE"
	symbolTokens['&'] = "str_AMPERSAND"
}

// EndOfString terminates every symbol spelling.
const EndOfString = "str_NUL"

// SymbolToken returns the spelling token for c, and whether c has one.
func SymbolToken(c byte) (string, bool) {
	tok, ok := symbolTokens[c]
	return tok, ok
}

// UnmappableCharError reports a property name containing a character
// with no spelling token. It aborts generation before any output is
// produced.
type UnmappableCharError struct {
	Name string
	Char byte
}

func (e *UnmappableCharError) Error() string {
	return fmt.Sprintf("property name %q contains unmappable character %q", e.Name, e.Char)
}

// PackedEntry is an Entry together with its byte offset into the names
// blob and its symbol spelling.
type PackedEntry struct {
	Entry
	Offset   int
	Spelling []string
}

// Pack computes, in table order, every entry's offset into the virtual
// names blob and its symbol spelling. Each name in the blob is followed
// by one terminator byte, so consecutive offsets differ by len(name)+1.
func Pack(table Table) ([]PackedEntry, error) {
	packed := make([]PackedEntry, 0, len(table))
	offset := 0
	for _, e := range table {
		spelling := make([]string, 0, len(e.Name)+1)
		for i := 0; i < len(e.Name); i++ {
			tok, ok := symbolTokens[e.Name[i]]
			if !ok {
				return nil, &UnmappableCharError{Name: e.Name, Char: e.Name[i]}
			}
			spelling = append(spelling, tok)
		}
		spelling = append(spelling, EndOfString)

		packed = append(packed, PackedEntry{Entry: e, Offset: offset, Spelling: spelling})
		offset += len(e.Name) + 1
	}
	return packed, nil
}
