package lookup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchLookup runs BulkLookup for each input file, each one appending to
// its DefaultOutputPath. Up to the WithConcurrency limit of files are
// processed at once.
//
// A failing file does not stop the others. All failures are joined into
// the returned error. Inputs that name the same file are processed once,
// so two workers never append to the same output.
func (s *Service) BatchLookup(ctx context.Context, inputs []string, mode Mode, opts ...BulkOption) error {
	if mode != ModeSimplified {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}

	o := newBulkOptions(opts)
	inputs = uniquePaths(inputs)

	s.logger.Debug("starting batch lookup",
		"files", len(inputs),
		"concurrency", o.concurrency,
	)
	startTime := time.Now()

	// One slot per input keeps the joined error in input order.
	errs := make([]error, len(inputs))

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			if err := s.BulkLookup(ctx, input, "", mode, opts...); err != nil {
				s.logger.Warn("bulk lookup failed", "input", input, "error", err)
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers report through errs

	s.logger.Debug("batch lookup complete",
		"files", len(inputs),
		"elapsed", time.Since(startTime),
	)
	return errors.Join(errs...)
}

// uniquePaths drops inputs that clean to an already seen path.
func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		key := filepath.Clean(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
