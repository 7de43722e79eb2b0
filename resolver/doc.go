// Package resolver replaces $ref nodes in JSON and YAML document trees with
// the data they point to.
//
// A reference node is a mapping whose "$ref" key holds a string pointer:
//
//   - "#/a/b" points into the current root document.
//   - "file.json#/a/b", "file.yaml#" and "file.json" point into another file,
//     resolved against the directory of the document that contains the
//     reference.
//   - "http://..." and "https://..." references are rejected.
//
// Resolution walks the tree depth-first in document order. When a reference
// leads into another file, internal pointers found there are followed against
// that file, and its relative references against its directory.
//
// # Basic Usage
//
//	doc, err := codec.ReadFile("api/root.yaml")
//	if err != nil {
//		return err
//	}
//	resolved, err := resolver.Resolve(doc, resolver.WithCwd("api"))
//
// Or, for a file on disk:
//
//	resolved, err := resolver.ResolveFile("api/root.yaml")
//
// # Limits
//
// A reference that leads back to itself fails with *referrors.CycleError.
// Chains longer than DefaultMaxDepth references and external files larger
// than DefaultMaxFileSize fail with *referrors.ResourceLimitError. Both
// limits can be changed with WithMaxDepth and WithMaxFileSize.
//
// # Ownership
//
// Resolve updates the tree it is given in place and also returns it. No other
// goroutine may read that tree while it is being resolved. Values copied in
// from a reference target are always fresh copies, so a resolved tree never
// shares sub-trees with itself or with the documents it was built from.
package resolver
