// Package referrors provides structured error types for dref.
//
// Import path: github.com/erraggy/dref/referrors
//
// Every failure raised while resolving references is terminal for the
// resolution call that triggered it and propagates unchanged to the caller.
// The types below let callers tell the failures apart with [errors.Is] and
// [errors.As].
//
// # Error Types
//
//   - [InternalResolutionError]: a "#/..." pointer segment was not found
//   - [FileResolutionError]: an external reference names a missing file
//   - [DecodeError]: a loaded file is neither valid JSON nor valid YAML
//   - [ResolutionError]: general failure, raised for http(s) references
//   - [CycleError]: a reference chain re-entered itself
//   - [ResourceLimitError]: depth or file size limits exceeded
//   - [ConfigError]: invalid configuration values
//
// # Sentinel Errors
//
// [ErrResolution] matches every resolution failure, so a single check covers
// the whole taxonomy:
//
//	resolved, err := resolver.Resolve(doc, resolver.WithCwd(dir))
//	if errors.Is(err, referrors.ErrResolution) {
//	    // any reference failure
//	}
//
// The narrower sentinels select one kind:
//
//	var fileErr *referrors.FileResolutionError
//	if errors.As(err, &fileErr) {
//	    fmt.Println("missing:", fileErr.Path)
//	}
//	if errors.Is(err, referrors.ErrCircularReference) {
//	    // cycle between documents
//	}
package referrors
