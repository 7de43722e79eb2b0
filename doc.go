// Package dref resolves JSON Reference ($ref) nodes in JSON and YAML
// documents.
//
// A reference is a mapping whose "$ref" key holds a string. dref replaces
// each such mapping with the value it points to, following three forms:
//
//   - "#/a/b" is an internal pointer into the current document.
//   - "other.yaml#/a/b" names a file, resolved relative to the referring
//     document's directory, and a pointer inside it. A file without a
//     fragment stands for the whole file.
//   - "http://..." and "https://..." are recognized and rejected.
//
// # Packages
//
//   - value: ordered document tree (*value.Map keeps key order)
//   - pointer: classification and traversal of pointer strings
//   - codec: JSON and YAML decoding and encoding of value trees
//   - resolver: the reference engine, with cycle, depth and file size limits
//   - referrors: structured error types with sentinels for errors.Is
//
// # Quick Start
//
// Resolve a file and write the result as YAML:
//
//	import (
//		"github.com/erraggy/dref/codec"
//		"github.com/erraggy/dref/resolver"
//	)
//
//	doc, err := resolver.ResolveFile("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := codec.Encode(doc, codec.FormatYAML)
//
// Resolve an in-memory document, internal references included:
//
//	doc := value.Of("a", "x", "b", value.Of("$ref", "#/a"))
//	out, err := resolver.Resolve(doc) // {"a": "x", "b": "x"}
//
// By default the package-level functions resolve internal references too;
// pass resolver.WithExternalOnly(true) to leave them in place.
//
// # Command Line
//
// The dref command wraps the resolver:
//
//	dref [flags] <input> <output>
//	dref batch <out-dir> <input>...
//	dref mcp
//
// The command resolves only file references unless -i/--internal is given.
//
// # Errors
//
// Every failure aborts the whole resolution and is one of the types in
// referrors, so callers can branch with errors.Is:
//
//	if errors.Is(err, referrors.ErrFileResolution) {
//		// a referenced file is missing
//	}
package dref
