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

package main

import (
	"strings"

	"ucptables/go/ucp/proptable"
	"ucptables/go/ucp/tools/makeucptables/codegen"
)

// symbolConstName derives the identifier of an entry's spelling constant
// from its name. '&' cannot appear in an identifier and becomes
// "_AMPERSAND"; '_' is identifier-safe and stays, though the spelling
// itself still tokenizes it. The trailing 0 marks the terminated form.
func symbolConstName(name string) string {
	return "string_" + strings.ReplaceAll(name, "&", "_AMPERSAND") + "0"
}

func printSymbolDefs(g *codegen.Generator, packed []proptable.PackedEntry) {
	g.P("// One spelling constant per property name. The str_ symbols are")
	g.P("// defined per platform by the consuming engine.")
	g.P("const (")
	for _, p := range packed {
		g.P(symbolConstName(p.Name), " = ", strings.Join(p.Spelling, " + "))
	}
	g.P(")")
	g.P()
}

func printNamesBlob(g *codegen.Generator, packed []proptable.PackedEntry) {
	g.P("// uttNames holds every property name in sorted order, each")
	g.P("// terminated by the end-of-string symbol. The offsets in uttTable")
	g.P("// are byte positions into this blob.")
	for i, p := range packed {
		var prefix, cont string
		if i == 0 {
			prefix = "const uttNames = "
		}
		if i < len(packed)-1 {
			cont = " +"
		}
		g.P(prefix, symbolConstName(p.Name), cont)
	}
	g.P()
}

func printLookupTable(g *codegen.Generator, packed []proptable.PackedEntry) {
	g.P("// uttTable is binary-searched by property name, so it must stay")
	g.P("// sorted byte-wise ascending. Pseudo-properties carry no ucp_ value.")
	g.P("var uttTable = [...]uttEntry{")
	for _, p := range packed {
		value := "0"
		if p.Tag.Backed() {
			value = p.ValueRef()
		}
		g.P("{", p.Offset, ", ", p.Tag.GoName(), ", ", value, "},")
	}
	g.P("}")
}

// makeucptables emits the three artifacts in their fixed order: the
// spelling constants, the names blob, and the lookup table.
func makeucptables(g *codegen.Generator, packed []proptable.PackedEntry) {
	if len(packed) == 0 {
		// cannot happen: the two pseudo-properties are always present
		g.Fail("no property names to emit")
	}
	printSymbolDefs(g, packed)
	printNamesBlob(g, packed)
	printLookupTable(g, packed)
}
