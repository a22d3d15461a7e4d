/*
Package wicker is a declarative binary codec engine: binary formats are
described as composable schema trees, and one tree drives both
directions of the codec. Decoding a well-formed input and encoding the
result reproduces the input bit-exactly.

# Concept

A schema node describes the byte-level structure of one piece of a
format: a fixed-width integer, a length-prefixed string, a record of
named fields, a byte-literal tag. Composite nodes drive their children
left to right; children report (value, bytesize) and the parent keeps a
running cursor. Between child decodes a parent may reconfigure a later
child from values already decoded, which is how length fields size the
blobs that follow them.

# Key Features

  - Bidirectional by construction: one schema, both directions, with
    decode-then-encode as an identity over well-formed inputs.
  - Composable algebra: records, tuples, arrays, length-headed forms
    and byte-literal enums cover realistic container formats.
  - Extension hooks: composite decoders expose pre/post hooks whose
    no-op defaults give the pure algebra; quirky formats (JPEG
    entropy-coded spans) install richer behavior without forking the
    engine.
  - Reification: a schema travels as plain data (YAML, JSON, CBOR) and
    is rebuilt through the process-wide type registry.

# Usage

Build a schema, wrap it in an Engine, and feed it bytes:

	package main

	import (
		"log"
		"os"

		"github.com/aretw0/wicker"
		"github.com/aretw0/wicker/pkg/schema"
	)

	func main() {
		player := schema.MustRecord("player",
			schema.MustPrimitive("name", "cstr"),
			schema.MustPrimitive("health", "u1"),
			schema.MustHeadArray("inventory", "u1", schema.MustRecord("item",
				schema.MustPrimitive("id", "u2l"),
				schema.MustPrimitive("count", "u1"),
			)),
		)

		eng, err := wicker.New(player)
		if err != nil {
			log.Fatal(err)
		}

		data, err := os.ReadFile("player.bin")
		if err != nil {
			log.Fatal(err)
		}

		value, err := eng.ParseBuffer(data)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("decoded: %v", value)

		wire, err := eng.EncodeObject(value)
		if err != nil {
			log.Fatal(err)
		}
		os.WriteFile("player.out.bin", wire, 0o644)
	}

The pkg/formats tree holds complete clients for PNG chunk streams and
JPEG segment streams; they double as worked examples of the extension
patterns.
*/
package wicker
