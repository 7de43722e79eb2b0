package resolver

import (
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/erraggy/dref/codec"
	"github.com/erraggy/dref/pointer"
	"github.com/erraggy/dref/referrors"
	"github.com/erraggy/dref/value"
)

const (
	// DefaultMaxDepth is the maximum number of references followed in one chain.
	// It bounds chains that are long without being circular.
	DefaultMaxDepth = 100

	// DefaultMaxFileSize is the maximum size (in bytes) of an external file.
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

	// RefKey is the mapping key that marks a reference node.
	RefKey = "$ref"
)

// Decoder turns the content of an external file into a Value tree.
// codec.Decoder is the default implementation.
type Decoder interface {
	Decode(path string, data []byte) (value.Value, error)
}

// Context is the state a resolution carries down the tree. It is passed by
// value; crossing into another file replaces Root and Cwd together.
type Context struct {
	// Root is the document internal pointers are followed against.
	// A nil Root means the value passed to Resolve is its own root.
	Root value.Value
	// Cwd is the directory relative file references are resolved against.
	// Empty means the process working directory.
	Cwd string
	// ExternalOnly leaves internal references unresolved.
	ExternalOnly bool

	// source is the absolute path Root was loaded from, empty for documents
	// that never came from a file.
	source string
}

// Resolver substitutes $ref nodes with the values they point to.
// A Resolver is safe for concurrent use as long as each call resolves a
// separate tree.
type Resolver struct {
	decoder     Decoder
	logger      Logger
	maxDepth    int
	maxFileSize int64
	workers     int
	// cache holds decoded external documents by absolute path; nil when disabled
	cache *lru.Cache[string, value.Value]
}

// New creates a Resolver. Context options (WithRoot, WithCwd,
// WithExternalOnly) are accepted but only apply to the package-level
// functions; methods take a Context instead.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}
	return newResolver(cfg)
}

func newResolver(cfg *resolveConfig) (*Resolver, error) {
	r := &Resolver{
		decoder:     cfg.decoder,
		logger:      cfg.logger,
		maxDepth:    cfg.maxDepth,
		maxFileSize: cfg.maxFileSize,
		workers:     cfg.workers,
	}
	if r.decoder == nil {
		r.decoder = codec.Decoder{}
	}
	if r.logger == nil {
		r.logger = NopLogger{}
	}
	if r.maxDepth == 0 {
		r.maxDepth = DefaultMaxDepth
	}
	if r.maxFileSize == 0 {
		r.maxFileSize = DefaultMaxFileSize
	}
	if r.workers == 0 {
		r.workers = defaultWorkers()
	}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, value.Value](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("resolver: creating document cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Resolve replaces every reference node in v with the value it points to and
// returns the result. Sequences and mappings are updated in place, so a
// top-level mapping without a $ref comes back as the same *value.Map. Any
// failure aborts the whole call; there is no partial result.
//
//	doc := value.Of("a", "x", "b", value.Of("$ref", "#/a"))
//	out, err := resolver.Resolve(doc) // {"a": "x", "b": "x"}
func Resolve(v value.Value, opts ...Option) (value.Value, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}
	r, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}
	return r.Resolve(v, cfg.resolutionContext())
}

// Resolve resolves v within rc. See the package-level Resolve.
func (r *Resolver) Resolve(v value.Value, rc Context) (value.Value, error) {
	if rc.Root == nil {
		rc.Root = v
	}
	c := &chain{r: r}
	return c.resolve(v, rc)
}

// Pluck walks keys down from root and resolves the value found there, using
// the whole of root for internal references. root itself is left untouched.
//
//	target, err := resolver.Pluck(doc, "components", "schemas", "Pet")
func Pluck(root value.Value, keys ...string) (value.Value, error) {
	r, err := New()
	if err != nil {
		return nil, err
	}
	return r.Pluck(root, Context{}, keys...)
}

// Pluck is the method form of the package-level Pluck. rc.Root is replaced by
// root.
func (r *Resolver) Pluck(root value.Value, rc Context, keys ...string) (value.Value, error) {
	target, err := pointer.Walk(root, keys...)
	if err != nil {
		return nil, err
	}
	rc.Root = root
	return r.Resolve(value.Copy(target), rc)
}

// ResolveFile loads the document at path and resolves it, with relative file
// references taken against the document's own directory.
func ResolveFile(path string, opts ...Option) (value.Value, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}
	r, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}
	return r.ResolveFile(path, cfg.externalOnly)
}

// ResolveFile is the method form of the package-level ResolveFile.
func (r *Resolver) ResolveFile(path string, externalOnly bool) (value.Value, error) {
	doc, err := r.Load(path)
	if err != nil {
		return nil, err
	}
	return r.Resolve(doc, FileContext(path, doc, externalOnly))
}

// FileContext returns the Context for resolving doc, the content of the file
// at path.
func FileContext(path string, doc value.Value, externalOnly bool) Context {
	return Context{
		Root:         doc,
		Cwd:          filepath.Dir(path),
		ExternalOnly: externalOnly,
		source:       absPath(path),
	}
}

// chain tracks the references being followed from one top-level call, so a
// reference that leads back to itself is reported instead of recursing
// forever.
type chain struct {
	r     *Resolver
	stack []string
}

func (c *chain) resolve(v value.Value, rc Context) (value.Value, error) {
	switch node := v.(type) {
	case []any:
		for i, item := range node {
			resolved, err := c.resolve(item, rc)
			if err != nil {
				return nil, err
			}
			node[i] = resolved
		}
		return node, nil
	case *value.Map:
		if node == nil {
			return node, nil
		}
		if ref, ok := refOf(node); ok {
			return c.follow(ref, node, rc)
		}
		for k, item := range node.All() {
			resolved, err := c.resolve(item, rc)
			if err != nil {
				return nil, err
			}
			node.Set(k, resolved)
		}
		return node, nil
	default:
		return v, nil
	}
}

// refOf returns the pointer of a reference node. A $ref holding anything
// other than a string does not make a reference node.
func refOf(m *value.Map) (string, bool) {
	raw, ok := m.Get(RefKey)
	if !ok {
		return "", false
	}
	ref, ok := raw.(string)
	return ref, ok
}

func (c *chain) follow(ref string, node *value.Map, rc Context) (value.Value, error) {
	switch pointer.Classify(ref) {
	case pointer.Web:
		return nil, &referrors.ResolutionError{
			Ref:     ref,
			Scheme:  pointer.Scheme(ref),
			Message: "web resolution not implemented",
		}

	case pointer.Internal:
		if rc.ExternalOnly {
			return node, nil
		}
		if err := c.push(rc.source + ref); err != nil {
			return nil, err
		}
		defer c.pop()

		target, err := pointer.Follow(ref, rc.Root)
		if err != nil {
			return nil, err
		}
		c.r.logger.Debug("following internal reference", "ref", ref, "depth", len(c.stack))
		return c.resolve(value.Copy(target), rc)

	default:
		file, ptr := pointer.Split(ref)
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(rc.Cwd, path)
		}
		abs := absPath(path)
		if err := c.push(abs + ptr); err != nil {
			return nil, err
		}
		defer c.pop()

		doc, err := c.r.load(ref, path, abs)
		if err != nil {
			return nil, err
		}
		target, err := pointer.Follow(ptr, doc)
		if err != nil {
			return nil, err
		}
		c.r.logger.Debug("following external reference", "ref", ref, "path", path, "depth", len(c.stack))
		next := Context{
			Root:         doc,
			Cwd:          filepath.Dir(path),
			ExternalOnly: rc.ExternalOnly,
			source:       abs,
		}
		return c.resolve(value.Copy(target), next)
	}
}

// push records key as being followed. It fails when key is already being
// followed further up the chain, or when the chain is too long.
func (c *chain) push(key string) error {
	for i, k := range c.stack {
		if k == key {
			cycle := make([]string, 0, len(c.stack)-i+1)
			cycle = append(cycle, c.stack[i:]...)
			return &referrors.CycleError{Chain: append(cycle, key)}
		}
	}
	if len(c.stack) >= c.r.maxDepth {
		return &referrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(c.r.maxDepth),
			Actual:       int64(len(c.stack) + 1),
			Message:      fmt.Sprintf("too many nested references at '%s'", key),
		}
	}
	c.stack = append(c.stack, key)
	return nil
}

func (c *chain) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

// absPath returns the absolute form of path, or path itself when the working
// directory cannot be determined.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
