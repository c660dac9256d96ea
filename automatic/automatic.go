// Package automatic solves batches of deals, one search per deal, spread
// over a fixed number of workers.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/cluj/config"
	"github.com/domino14/cluj/deal"
	"github.com/domino14/cluj/solver"
)

var (
	SolvedCounter *expvar.Int
	IsSolving     *expvar.Int
)

func init() {
	SolvedCounter = expvar.NewInt("solvedCounter")
	IsSolving = expvar.NewInt("isSolving")
}

// Result is the outcome of one deal.
type Result struct {
	Name     string           `yaml:"name"`
	ID       string           `yaml:"id"`
	Solved   bool             `yaml:"solved"`
	Steps    int              `yaml:"steps"`
	States   int              `yaml:"states"`
	Duration time.Duration    `yaml:"duration"`
	Err      string           `yaml:"error,omitempty"`
	Solution *solver.Solution `yaml:"solution,omitempty"`
}

// SolveOne runs a single search. Running out of moves or out of state
// budget is recorded in the result; any other error is returned.
func SolveOne(ctx context.Context, cfg *config.Config, d deal.Deal) (Result, error) {
	res := Result{Name: d.Name, ID: d.ID()}
	s := solver.NewSolver(cfg)
	start := time.Now()
	sol, err := s.Solve(ctx, d.Board)
	res.Duration = time.Since(start)
	res.States = s.Stats().States
	switch {
	case err == nil:
		res.Solved = true
		res.Steps = len(sol.Steps)
		res.Solution = sol
	case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrStateLimit):
		res.Err = err.Error()
	default:
		return res, err
	}
	log.Info().Str("deal", d.Name).Str("id", res.ID).Bool("solved", res.Solved).
		Int("steps", res.Steps).Int("states", res.States).
		Dur("duration", res.Duration).Msg("deal-finished")
	return res, nil
}

// SolveAll solves every deal, running up to cfg.Threads() searches at
// once. Results come back in the order of deals.
func SolveAll(ctx context.Context, cfg *config.Config, deals []deal.Deal) ([]Result, error) {
	results := make([]Result, len(deals))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads())
	log.Debug().Int("deals", len(deals)).Int("threads", cfg.Threads()).Msg("starting-batch")

	for i, d := range deals {
		i, d := i, d
		g.Go(func() error {
			IsSolving.Add(1)
			defer IsSolving.Add(-1)
			res, err := SolveOne(ctx, cfg, d)
			if err != nil {
				return err
			}
			results[i] = res
			if res.Solved {
				SolvedCounter.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
