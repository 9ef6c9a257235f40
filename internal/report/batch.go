package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/logging"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// BatchItem is the outcome of one request in a batch. Exactly one of
// Assessment and Err is set.
type BatchItem struct {
	Index      int         `json:"index"`
	Assessment *Assessment `json:"assessment,omitempty"`
	Err        error       `json:"-"`
	Error      string      `json:"error,omitempty"`
}

// Batch assesses reqs with at most workers running at once. Items keep the
// order of reqs and carry their own errors; the returned error is set only
// when ctx ends before every request was assessed.
func Batch(ctx context.Context, reqs []analysis.Request, cfg *weights.Config, workers int, opts ...Option) ([]BatchItem, error) {
	if workers < 1 {
		workers = 1
	}
	log := logging.New("report")
	start := time.Now()

	items := make([]BatchItem, len(reqs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		items[i].Index = i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			a, err := Assess(req, cfg, opts...)
			if err != nil {
				items[i].Err = err
				items[i].Error = err.Error()
				log.DebugContext(gCtx, "assessment failed", "index", i, "error", err)
				return nil
			}
			items[i].Assessment = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return items, err
	}

	failed := 0
	for _, it := range items {
		if it.Err != nil {
			failed++
		}
	}
	log.InfoContext(ctx, "batch assessed",
		"requests", len(reqs),
		"failed", failed,
		"workers", workers,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}
