package recommendation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchConcurrency caps parallel pathway builds; each build is bounded by the
// catalog size, so a small cap keeps batches predictable.
const batchConcurrency = 8

// GenerateCurriculumBatch runs the pipeline for independent assessment
// sessions in parallel. Results keep input order. The first failure cancels
// the remaining work.
func (u Usecases) GenerateCurriculumBatch(ctx context.Context, inputs []GenerateCurriculumInput) ([]GenerateCurriculumOutput, error) {
	out := make([]GenerateCurriculumOutput, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			res, err := u.GenerateCurriculum(gctx, in)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
