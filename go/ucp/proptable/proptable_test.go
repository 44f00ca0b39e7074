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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucptables/go/test/utils"
)

func TestAssemble(t *testing.T) {
	entries := Assemble(
		[]string{"Latin", "Greek"},
		[]string{"Lu", "Ll"},
		[]string{"L"},
	)
	require.Len(t, entries, 2+2+1+2)

	utils.MustMatch(t, []Entry{
		{Name: "Latin", Tag: TagScript},
		{Name: "Greek", Tag: TagScript},
		{Name: "Lu", Tag: TagCategory},
		{Name: "Ll", Tag: TagCategory},
		{Name: "L", Tag: TagGeneralCategory},
		{Name: "L&", Tag: TagLamp},
		{Name: "Any", Tag: TagAny},
	}, entries)
}

func TestBuildTableBytewiseOrder(t *testing.T) {
	// "L" sorts before "L&" (prefix first), '&' (0x26) sorts before any
	// letter, and "Latin" sorts between "L&" and "Lu".
	entries := Assemble([]string{"Latin"}, []string{"Lu"}, []string{"L"})
	table := BuildTable(entries)

	var names []string
	for _, e := range table {
		names = append(names, e.Name)
	}
	utils.MustMatch(t, []string{"Any", "L", "L&", "Latin", "Lu"}, names)

	// the input set is left untouched
	assert.Equal(t, "Latin", entries[0].Name)
	assert.Equal(t, "Any", entries[len(entries)-1].Name)
}

func TestValueRefs(t *testing.T) {
	for _, e := range []Entry{
		{Name: "Latin", Tag: TagScript},
		{Name: "Lu", Tag: TagCategory},
		{Name: "L", Tag: TagGeneralCategory},
	} {
		assert.True(t, e.Tag.Backed())
		assert.Equal(t, "ucp_"+e.Name, e.ValueRef())
	}
	for _, e := range []Entry{
		{Name: "L&", Tag: TagLamp},
		{Name: "Any", Tag: TagAny},
	} {
		assert.False(t, e.Tag.Backed())
		assert.Equal(t, "", e.ValueRef())
	}
}

func TestPackWorkedExample(t *testing.T) {
	entries := Assemble([]string{"Latin"}, []string{"Lu"}, []string{"L"})
	packed, err := Pack(BuildTable(entries))
	require.NoError(t, err)

	utils.MustMatch(t, []PackedEntry{
		{Entry: Entry{Name: "Any", Tag: TagAny}, Offset: 0,
			Spelling: []string{"str_A", "str_n", "str_y", "str_NUL"}},
		{Entry: Entry{Name: "L", Tag: TagGeneralCategory}, Offset: 4,
			Spelling: []string{"str_L", "str_NUL"}},
		{Entry: Entry{Name: "L&", Tag: TagLamp}, Offset: 6,
			Spelling: []string{"str_L", "str_AMPERSAND", "str_NUL"}},
		{Entry: Entry{Name: "Latin", Tag: TagScript}, Offset: 9,
			Spelling: []string{"str_L", "str_a", "str_t", "str_i", "str_n", "str_NUL"}},
		{Entry: Entry{Name: "Lu", Tag: TagCategory}, Offset: 15,
			Spelling: []string{"str_L", "str_u", "str_NUL"}},
	}, packed)
}

func TestPackOffsets(t *testing.T) {
	entries := Assemble(
		[]string{"Thai", "Tibetan", "Tifinagh", "Canadian_Aboriginal"},
		[]string{"Zl", "Zp", "Zs"},
		[]string{"Z"},
	)
	packed, err := Pack(BuildTable(entries))
	require.NoError(t, err)

	require.Equal(t, 0, packed[0].Offset)
	for i := 1; i < len(packed); i++ {
		prev := packed[i-1]
		assert.Equal(t, prev.Offset+len(prev.Name)+1, packed[i].Offset)
		assert.Greater(t, packed[i].Offset, prev.Offset)
	}
}

func TestCheckDistinctNames(t *testing.T) {
	entries := Assemble([]string{"Thai", "Latin"}, []string{"Lu"}, []string{"L"})
	require.NoError(t, CheckDistinctNames(entries))

	// "Thai" appearing in two lists is an invalid fixture. The check
	// flags it, but the pipeline itself accepts the input: curated lists
	// are trusted, and rejecting here would change accepted behavior.
	dup := Assemble([]string{"Thai"}, []string{"Thai"}, nil)
	err := CheckDistinctNames(dup)
	require.ErrorContains(t, err, `"Thai"`)

	packed, packErr := Pack(BuildTable(dup))
	require.NoError(t, packErr)
	require.Len(t, packed, 4)
}
