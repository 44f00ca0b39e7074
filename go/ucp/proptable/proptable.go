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

// Package proptable builds the static lookup table that maps Unicode
// property names (scripts, general categories and two pseudo-properties)
// to a classification tag and a backing enumeration value.
//
// The table is rebuilt from scratch on every generator run: the curated
// name lists are merged, sorted byte-wise, and packed against a virtual
// names blob in which every name is followed by a single terminator byte.
package proptable

import (
	"fmt"
	"sort"
)

// TypeTag classifies a property name in the lookup table.
type TypeTag uint8

const (
	// TagScript marks a Unicode script name.
	TagScript TypeTag = iota
	// TagCategory marks a two-letter general-category abbreviation.
	TagCategory
	// TagGeneralCategory marks a single-letter super-category.
	TagGeneralCategory
	// TagLamp marks the "L&" pseudo-property (any cased letter).
	TagLamp
	// TagAny marks the "Any" pseudo-property.
	TagAny
)

// Backed reports whether entries carrying this tag reference a backing
// enumeration constant in the consuming engine. The two pseudo-properties
// are special-cased by the engine and carry none.
func (t TypeTag) Backed() bool {
	return t != TagLamp && t != TagAny
}

// GoName returns the identifier the generated table uses for this tag.
func (t TypeTag) GoName() string {
	switch t {
	case TagScript:
		return "ptScript"
	case TagCategory:
		return "ptCategory"
	case TagGeneralCategory:
		return "ptGeneralCategory"
	case TagLamp:
		return "ptLamp"
	case TagAny:
		return "ptAny"
	default:
		panic(fmt.Sprintf("unknown TypeTag %d", t))
	}
}

// ValuePrefix is prepended to a backed entry's name to form the
// identifier of its enumeration constant in the consuming engine.
const ValuePrefix = "ucp_"

// Entry is a single property name with its classification.
type Entry struct {
	Name string
	Tag  TypeTag
}

// ValueRef returns the identifier of the enumeration constant backing
// this entry, or "" for the pseudo-properties.
func (e Entry) ValueRef() string {
	if !e.Tag.Backed() {
		return ""
	}
	return ValuePrefix + e.Name
}

// Table is the sorted entry sequence all generated artifacts are emitted
// from. It is never mutated once BuildTable returns it.
type Table []Entry

// Assemble merges the three curated name lists into a single entry set
// and appends the two fixed pseudo-properties. The input slices are read
// only. Disjointness of the lists is a precondition on the curated data,
// not verified here; see CheckDistinctNames.
func Assemble(scripts, categories, generalCategories []string) []Entry {
	entries := make([]Entry, 0, len(scripts)+len(categories)+len(generalCategories)+2)
	for _, name := range scripts {
		entries = append(entries, Entry{Name: name, Tag: TagScript})
	}
	for _, name := range categories {
		entries = append(entries, Entry{Name: name, Tag: TagCategory})
	}
	for _, name := range generalCategories {
		entries = append(entries, Entry{Name: name, Tag: TagGeneralCategory})
	}
	entries = append(entries,
		Entry{Name: "L&", Tag: TagLamp},
		Entry{Name: "Any", Tag: TagAny},
	)
	return entries
}

// CheckDistinctNames verifies that no two entries share a name. The
// generator pipeline does not call it: duplicate-free input is a
// precondition on the curated lists, checked independently by the test
// suite.
func CheckDistinctNames(entries []Entry) error {
	seen := make(map[string]TypeTag, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.Name]; ok {
			return fmt.Errorf("property name %q appears twice (as %s and %s)", e.Name, prev.GoName(), e.Tag.GoName())
		}
		seen[e.Name] = e.Tag
	}
	return nil
}

// BuildTable returns the entries sorted ascending by a byte-wise
// comparison of their names. The consuming engine binary-searches the
// generated table against plain byte comparisons, so no other ordering
// is correct.
func BuildTable(entries []Entry) Table {
	table := make(Table, len(entries))
	copy(table, entries)
	sort.Slice(table, func(i, j int) bool {
		return table[i].Name < table[j].Name
	})
	return table
}
