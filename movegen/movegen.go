// Package movegen enumerates the legal transfers from a board.
package movegen

import (
	"github.com/rs/zerolog"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/move"
)

// Result pairs a generated move with the board it produces. The board is
// a fresh value, never shared with the source board.
type Result struct {
	Board board.Board
	Move  move.Move
}

// Generator walks every ordered (source, destination) column pair of a
// board and yields the transfers between them. It is finite and cannot be
// restarted; build a new one to enumerate again.
type Generator struct {
	b        board.Board
	logger   zerolog.Logger
	from, to int
	pending  []Result
}

// New returns a generator over the moves available on b. Each generated
// move is logged to logger at debug level.
func New(b board.Board, logger zerolog.Logger) *Generator {
	return &Generator{b: b, logger: logger}
}

// Next returns the next move, or false once all pairs are exhausted.
func (g *Generator) Next() (Result, bool) {
	for len(g.pending) == 0 {
		if g.from >= board.NumColumns {
			return Result{}, false
		}
		g.pending = g.pairMoves(g.from, g.to, g.pending[:0])
		g.to++
		if g.to == board.NumColumns {
			g.to = 0
			g.from++
		}
	}
	r := g.pending[0]
	g.pending = g.pending[1:]
	return r, true
}

// All drains a fresh generator over b.
func All(b board.Board, logger zerolog.Logger) []Result {
	var results []Result
	g := New(b, logger)
	for r, ok := g.Next(); ok; r, ok = g.Next() {
		results = append(results, r)
	}
	return results
}

// pairMoves appends the transfers from column from to column to.
func (g *Generator) pairMoves(from, to int, results []Result) []Result {
	b := g.b
	src, dst := b[from], b[to]
	if from == to || src.IsDead() || dst.IsDead() {
		return results
	}
	if _, occupied := dst.Slot(); occupied {
		return results
	}
	moving, ok := src.MovableSpan()
	if !ok {
		return results
	}
	emit := func(n uint8, toSlot bool, tag move.Tag) {
		g.logger.Debug().Int("from", from).Int("to", to).Uint8("n", n).
			Bool("slot", toSlot).Msg("gen-move")
		results = append(results, Result{
			Board: b.Transfer(from, to, n, toSlot),
			Move:  move.New(b, from, to, n, toSlot, tag),
		})
	}

	target, ok := dst.MovableSpan()
	if !ok {
		// An empty destination takes any number of cards off the moving span.
		for n := uint8(1); n <= moving.Len; n++ {
			emit(n, false, move.TagOntoEmpty)
		}
		return results
	}
	n := target.AcceptSpanSize(moving)
	if n > 0 {
		emit(n, false, move.TagOntoSpan)
	}
	if _, held := src.Slot(); n != 1 && !held {
		emit(1, true, move.TagIntoSlot)
	}
	return results
}
