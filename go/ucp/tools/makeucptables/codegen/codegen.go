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

// Package codegen contains the printer makeucptables emits generated Go
// source through. Output is accumulated in memory and gofmt-formatted
// before a single write, so a failed generation never produces a partial
// output artifact.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"path"
	"strconv"
)

// Package identifies the import path of the package a Generator emits
// code for.
type Package string

// Name returns the bare package name.
func (p Package) Name() string {
	return path.Base(string(p))
}

// Generator accumulates the declarations of a single generated file. The
// file header and package clause are prepended when the output is
// rendered; indentation is left to gofmt.
type Generator struct {
	bytes.Buffer
	local Package
}

func NewGenerator(local Package) *Generator {
	return &Generator{local: local}
}

// P prints its arguments back to back, followed by a newline.
func (g *Generator) P(str ...any) {
	for _, v := range str {
		fmt.Fprintf(&g.Buffer, "%v", v)
	}
	g.Buffer.WriteByte('\n')
}

// Fail aborts generation without producing an output file.
func (g *Generator) Fail(msg string) {
	log.Fatalf("codegen: %s", msg)
}

// Quote returns s as a Go string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

// Merge concatenates the given generators, in order, into a single one
// targeting the first generator's package.
func Merge(gens ...*Generator) *Generator {
	merged := NewGenerator(gens[0].local)
	for _, g := range gens {
		merged.Buffer.Write(g.Bytes())
	}
	return merged
}

func (g *Generator) render() ([]byte, error) {
	var file bytes.Buffer
	file.WriteString("// Code generated by makeucptables. DO NOT EDIT.\n\n")
	fmt.Fprintf(&file, "package %s\n\n", g.local.Name())
	file.Write(g.Bytes())

	formatted, err := format.Source(file.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return formatted, nil
}

// WriteTo renders the generated file and writes it out in one call.
// Nothing is written when rendering fails.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	formatted, err := g.render()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(formatted)
	return int64(n), err
}

// WriteToFile renders the generated file and saves it to out.
func (g *Generator) WriteToFile(out string) {
	formatted, err := g.render()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, formatted, 0644); err != nil {
		log.Fatalf("failed to save %q: %v", out, err)
	}
	log.Printf("written %s (%d bytes)", out, len(formatted))
}
