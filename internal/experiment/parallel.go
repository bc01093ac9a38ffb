package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/junyaoshi/snakesim/internal/config"
	"github.com/junyaoshi/snakesim/internal/dynamo"
)

// Ensemble runs independent sessions of one configuration with randomized
// initial joint states. Each session owns its robot; only the seeds differ.
type Ensemble struct {
	cfg       *config.Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg *config.Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*dynamo.Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("%w: ensemble needs at least one run", dynamo.ErrBadConfig)
	}

	results := make([]*dynamo.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := *e.cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			mover, gen, err := Build(&cfgCopy)
			if err != nil {
				errs[idx] = err
				return
			}
			mover.RandomizeJointState(cfgCopy.Opposite)

			sess := NewSession(mover, gen, cfgCopy.Timestep, cfgCopy.Limits)
			for _, m := range DefaultMetrics(mover.Labels()) {
				sess.AddMetric(m)
			}

			results[idx], errs[idx] = sess.Run(ctx, cfgCopy.Steps)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
