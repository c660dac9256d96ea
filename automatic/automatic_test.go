package automatic

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/card"
	"github.com/domino14/cluj/config"
	"github.com/domino14/cluj/deal"
)

func aceToEight() board.Column {
	return board.NewColumn(card.Span{Top: card.Ace, Len: 7})
}

func fullRun() board.Column {
	return board.NewColumn(card.Span{Top: card.Ace, Len: card.NumRanks})
}

func solvableDeal(name string) deal.Deal {
	return deal.Deal{Name: name, Board: board.New(
		aceToEight(), aceToEight(), aceToEight(), aceToEight(),
		board.ColumnFromCards(card.Six, card.Seven, card.Seven, card.Six),
		board.ColumnFromCards(card.Seven, card.Six, card.Six, card.Seven),
	)}
}

func stuckDeal() deal.Deal {
	return deal.Deal{Name: "stuck", Board: board.New(
		fullRun(), fullRun(), fullRun(),
		board.NewColumn(card.Span{Top: card.Ace, Len: 2}).WithSlot(card.Six),
		board.NewColumn(card.Span{Top: card.Queen, Len: 2}).WithSlot(card.Seven),
		board.NewColumn(card.Span{Top: card.Ten, Len: 2}).WithSlot(card.Eight),
	)}
}

func TestSolveAllCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	before := SolvedCounter.Value()
	results, err := SolveAll(ctx, config.DefaultConfig(), []deal.Deal{solvableDeal("a"), solvableDeal("b")})
	is.True(errors.Is(err, context.Canceled))
	is.Equal(results, nil)
	is.Equal(SolvedCounter.Value(), before)
	is.Equal(IsSolving.Value(), int64(0))
}

func TestSolveAll(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigThreads, 2)
	deals := []deal.Deal{solvableDeal("a"), stuckDeal(), solvableDeal("b")}

	before := SolvedCounter.Value()
	results, err := SolveAll(context.Background(), cfg, deals)
	is.NoErr(err)
	is.Equal(len(results), 3)
	is.Equal(SolvedCounter.Value()-before, int64(2))
	is.Equal(IsSolving.Value(), int64(0))

	is.Equal(results[0].Name, "a")
	is.True(results[0].Solved)
	is.True(results[0].Steps > 0)
	is.Equal(results[0].Steps, len(results[0].Solution.Steps))
	is.Equal(results[0].ID, results[2].ID)

	is.Equal(results[1].Name, "stuck")
	is.True(!results[1].Solved)
	is.True(strings.Contains(results[1].Err, "no solution"))
	is.Equal(results[1].States, 1)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Solved: true, Steps: 4, States: 10},
		{Solved: true, Steps: 8, States: 1500},
		{Solved: false, States: 2},
	}
	sum := Summarize(results)
	assert.Equal(t, 3, sum.Deals)
	assert.Equal(t, 2, sum.Solved)
	assert.InDelta(t, 6.0, sum.MeanSteps, 1e-9)
	assert.InDelta(t, 2.8284, sum.StdDevSteps, 1e-3)
	assert.InDelta(t, 504.0, sum.MeanStates, 1e-9)
	assert.Equal(t, 1500, sum.MaxStates)
	assert.Contains(t, sum.String(), "max 1,500")

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestWriteStepHistogram(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteStepHistogram(&buf, []Result{{Solved: true, Steps: 3}, {Solved: true, Steps: 5}}, 4))
	is.True(buf.Len() > 0)

	buf.Reset()
	is.NoErr(WriteStepHistogram(&buf, nil, 4))
	is.Equal(buf.String(), "no solved deals\n")
}
