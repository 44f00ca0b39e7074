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

// Command makeucptables generates the static table mapping Unicode
// property names to their classification and enumeration value.
//
// The consuming engine keeps all property names in one large string and
// binary-searches a table of offsets into it, which keeps the data free
// of relocations. Names are spelled as sequences of per-character
// symbols so the same generated table works on platforms with different
// native character encodings. Maintaining the table by hand is tedious;
// this tool regenerates it from the curated lists in registry.go and
// writes it to stdout (or to a file with --out).
package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"ucptables/go/ucp/proptable"
	"ucptables/go/ucp/tools/makeucptables/codegen"
)

const PkgUCP codegen.Package = "ucptables/go/ucp"

var Output = pflag.String("out", "", "write the generated file here instead of stdout")

func main() {
	pflag.Parse()

	entries := proptable.Assemble(scriptNames, categoryNames, generalCategoryNames)
	packed, err := proptable.Pack(proptable.BuildTable(entries))
	if err != nil {
		log.Fatal(err)
	}

	g := codegen.NewGenerator(PkgUCP)
	makeucptables(g, packed)

	if *Output == "" {
		if _, err := g.WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
	} else {
		g.WriteToFile(*Output)
	}
}
