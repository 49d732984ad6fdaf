// Package sentinel is the top-level orchestration facade: given a set of
// lift-produced function blocks, it builds each model.FunctionBlock,
// generates its signatures, one goroutine per block, coordinated with
// golang.org/x/sync/errgroup (spec §5). Besides Extract, only
// sigs.GenerateAll spawns goroutines, and the only lock is the one
// guarding the shared diagnostics.Report.
package sentinel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sainfsm/sentinel/config"
	"github.com/sainfsm/sentinel/diagnostics"
	"github.com/sainfsm/sentinel/model"
	"github.com/sainfsm/sentinel/sigs"
)

// BlockResult holds the outcome of extracting one function block. Err is
// set for a model.ErrDuplicateState or model.ErrUndefinedState from
// model.Build (spec §7: "model errors abort the affected block only"), or
// for an error from sigs.Generate such as paths.ErrPathBoundExceeded, in
// which case Block is set and Signatures is nil; per-transition
// parse warnings never surface here — they land in the shared
// diagnostics.Report instead, and the block still builds.
type BlockResult struct {
	Name       string
	Block      *model.FunctionBlock
	Signatures sigs.Set
	Err        error
}

// Extract builds and generates signatures for every lift block
// concurrently. cfg may be nil. A cancelled ctx stops launching new blocks
// and Extract returns ctx.Err(); results already completed are still
// returned alongside it. The returned diagnostics.Report accumulates every
// dropped-transition warning across all blocks.
func Extract(ctx context.Context, lifts []model.LiftBlock, cfg *config.Extraction) ([]BlockResult, *diagnostics.Report, error) {
	report := &diagnostics.Report{}
	results := make([]BlockResult, len(lifts))

	g, gctx := errgroup.WithContext(ctx)
	for i, lift := range lifts {
		i, lift := i, lift
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = extractOne(lift, cfg, report)
			return nil
		})
	}
	err := g.Wait()
	return results, report, err
}

func extractOne(lift model.LiftBlock, cfg *config.Extraction, report *diagnostics.Report) BlockResult {
	block, err := model.Build(lift, cfg, report)
	if err != nil {
		return BlockResult{Name: lift.Name, Err: err}
	}
	set, err := sigs.Generate(block, cfg)
	if err != nil {
		return BlockResult{Name: lift.Name, Block: block, Err: err}
	}
	return BlockResult{Name: lift.Name, Block: block, Signatures: set}
}
