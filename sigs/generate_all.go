package sigs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sainfsm/sentinel/config"
	"github.com/sainfsm/sentinel/model"
)

// GenerateAll computes signatures for every block concurrently, one
// goroutine per block (spec §5: function blocks are independent graphs and
// may be processed without coordination). It is the only place below the
// top-level facade allowed to spawn goroutines. A cancelled ctx stops
// launching new blocks and GenerateAll returns ctx.Err() alongside
// whatever results already completed.
func GenerateAll(ctx context.Context, blocks []*model.FunctionBlock, cfg *config.Extraction) (map[string]Set, error) {
	results := make([]Set, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set, err := Generate(b, cfg)
			if err != nil {
				return err
			}
			results[i] = set
			return nil
		})
	}

	err := g.Wait()
	out := make(map[string]Set, len(blocks))
	for i, b := range blocks {
		if results[i] != nil {
			out[b.Name] = results[i]
		}
	}
	return out, err
}
