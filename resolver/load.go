package resolver

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/dref/referrors"
	"github.com/erraggy/dref/value"
)

// Load reads and decodes the file at path under the Resolver's size limit
// and cache. A missing file yields a *referrors.FileResolutionError whose
// cause satisfies errors.Is(err, fs.ErrNotExist).
func (r *Resolver) Load(path string) (value.Value, error) {
	return r.load(path, path, absPath(path))
}

// load fetches the document for ref, stored at path (absolute form abs).
func (r *Resolver) load(ref, path, abs string) (value.Value, error) {
	if r.cache != nil {
		if doc, ok := r.cache.Get(abs); ok {
			r.logger.Debug("external document cache hit", "path", abs)
			return value.Copy(doc), nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &referrors.FileResolutionError{Ref: ref, Path: path, Cause: err}
	}
	if info.IsDir() {
		return nil, &referrors.FileResolutionError{Ref: ref, Path: path, Cause: fmt.Errorf("%s is a directory", path)}
	}
	if info.Size() > r.maxFileSize {
		return nil, &referrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        r.maxFileSize,
			Actual:       info.Size(),
			Message:      fmt.Sprintf("external file '%s' is too large", path),
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304 - path comes from the document being resolved
	if err != nil {
		return nil, &referrors.FileResolutionError{Ref: ref, Path: path, Cause: err}
	}

	doc, err := r.decoder.Decode(path, data)
	if err != nil {
		var decodeErr *referrors.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, err
		}
		return nil, &referrors.DecodeError{Path: path, Cause: err}
	}
	r.logger.Debug("loaded external document", "path", abs, "size", len(data))

	if r.cache != nil {
		r.cache.Add(abs, value.Copy(doc))
	}
	return doc, nil
}
