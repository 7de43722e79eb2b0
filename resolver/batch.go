package resolver

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/erraggy/dref/value"
)

// ResolveFiles resolves several independent documents concurrently. Results
// are returned in the order of paths. The first failure cancels the
// documents not yet started and is returned wrapped with its path.
func ResolveFiles(ctx context.Context, paths []string, opts ...Option) ([]value.Value, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}
	r, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}
	return r.ResolveFiles(ctx, paths, cfg.externalOnly)
}

// ResolveFiles is the method form of the package-level ResolveFiles.
func (r *Resolver) ResolveFiles(ctx context.Context, paths []string, externalOnly bool) ([]value.Value, error) {
	results := make([]value.Value, len(paths))
	p := pool.New().
		WithMaxGoroutines(r.workers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.logger.Debug("resolving document", "path", path, "index", i)
			v, err := r.ResolveFile(path, externalOnly)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = v
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
