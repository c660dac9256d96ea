package automatic

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of results.
type Summary struct {
	Deals       int     `yaml:"deals"`
	Solved      int     `yaml:"solved"`
	MeanSteps   float64 `yaml:"mean-steps"`
	StdDevSteps float64 `yaml:"stddev-steps"`
	MeanStates  float64 `yaml:"mean-states"`
	MaxStates   int     `yaml:"max-states"`
}

func solvedSteps(results []Result) []float64 {
	solved := lo.Filter(results, func(r Result, _ int) bool { return r.Solved })
	return lo.Map(solved, func(r Result, _ int) float64 { return float64(r.Steps) })
}

// Summarize computes step statistics over the solved deals and state
// statistics over all of them.
func Summarize(results []Result) Summary {
	sum := Summary{Deals: len(results)}
	steps := solvedSteps(results)
	sum.Solved = len(steps)
	if len(steps) > 0 {
		sum.MeanSteps = stat.Mean(steps, nil)
	}
	if len(steps) > 1 {
		sum.StdDevSteps = stat.StdDev(steps, nil)
	}
	if len(results) > 0 {
		states := lo.Map(results, func(r Result, _ int) float64 { return float64(r.States) })
		sum.MeanStates = stat.Mean(states, nil)
		sum.MaxStates = lo.MaxBy(results, func(a, b Result) bool {
			return a.States > b.States
		}).States
	}
	return sum
}

func (s Summary) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("solved %d of %d deals; steps %.1f ± %.1f; states mean %.0f, max %d",
		s.Solved, s.Deals, s.MeanSteps, s.StdDevSteps, s.MeanStates, s.MaxStates)
}

// WriteStepHistogram plots the solution lengths of the solved deals.
func WriteStepHistogram(w io.Writer, results []Result, bins int) error {
	steps := solvedSteps(results)
	if len(steps) == 0 {
		_, err := fmt.Fprintln(w, "no solved deals")
		return err
	}
	h := histogram.Hist(bins, steps)
	return histogram.Fprint(w, h, histogram.Linear(40))
}
