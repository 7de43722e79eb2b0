// Package pointer follows $ref pointer strings through a document tree and
// classifies references by where their target lives.
//
// A pointer is "#/" followed by mapping keys separated by "/":
//
//	doc := value.Of("a", value.Of("b", "target"))
//	v, err := pointer.Follow("#/a/b", doc) // v == "target"
//
// Segments are literal keys. The "~0" and "~1" escapes of RFC 6901 are not
// decoded, and sequences cannot be indexed into.
package pointer

import (
	"strings"

	"github.com/erraggy/dref/referrors"
	"github.com/erraggy/dref/value"
)

// Kind classifies a reference string.
type Kind int

const (
	// Internal references start with "#" and point into the current root document.
	Internal Kind = iota
	// External references name a file, optionally followed by "#" and a pointer.
	External
	// Web references use the http or https scheme and are never fetched.
	Web
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case External:
		return "external"
	case Web:
		return "web"
	default:
		return "unknown"
	}
}

// Classify reports the kind of ref.
func Classify(ref string) Kind {
	switch {
	case IsWeb(ref):
		return Web
	case IsInternal(ref):
		return Internal
	default:
		return External
	}
}

// IsInternal reports whether ref points into the current document.
func IsInternal(ref string) bool {
	return strings.HasPrefix(ref, "#")
}

// IsWeb reports whether ref uses the http or https scheme.
func IsWeb(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Scheme returns "http" or "https" for web references and "" otherwise.
func Scheme(ref string) string {
	if !IsWeb(ref) {
		return ""
	}
	scheme, _, _ := strings.Cut(ref, ":")
	return scheme
}

// Split separates an external reference into its file part and the pointer
// to follow inside that file. Only the first "#" separates; any later "#"
// belongs to the pointer. The returned pointer always starts with "#", so a
// bare file name yields "#", which selects the whole file.
func Split(ref string) (file, ptr string) {
	file, fragment, _ := strings.Cut(ref, "#")
	return file, "#" + fragment
}

// Follow walks document along ptr and returns the value it names.
//
// The pointers "", "#" and "#/" name the document itself. Otherwise the
// leading "#/" (or "#") is removed, the remainder is split on "/" and each
// segment is looked up as a key of the current mapping. Empty segments are
// keys too. When a segment is missing, or the current value is not a mapping,
// Follow returns an *referrors.InternalResolutionError naming ptr, the
// segment and the value at which the walk stopped.
func Follow(ptr string, document value.Value) (value.Value, error) {
	if ptr == "" || ptr == "#" || ptr == "#/" {
		return document, nil
	}

	path, ok := strings.CutPrefix(ptr, "#/")
	if !ok {
		path = strings.TrimPrefix(ptr, "#")
	}

	return walk(ptr, document, strings.Split(path, "/"))
}

// Walk follows keys down from root. Unlike Follow, a key may contain "/".
func Walk(root value.Value, keys ...string) (value.Value, error) {
	return walk("#/"+strings.Join(keys, "/"), root, keys)
}

func walk(ref string, current value.Value, keys []string) (value.Value, error) {
	for _, segment := range keys {
		m, isMap := current.(*value.Map)
		if !isMap || m == nil {
			return nil, &referrors.InternalResolutionError{Ref: ref, Segment: segment, At: current}
		}
		next, found := m.Get(segment)
		if !found {
			return nil, &referrors.InternalResolutionError{Ref: ref, Segment: segment, At: current}
		}
		current = next
	}
	return current, nil
}
