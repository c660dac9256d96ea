package movegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/card"
	"github.com/domino14/cluj/deal"
	"github.com/domino14/cluj/move"
)

func fullRun() board.Column {
	return board.NewColumn(card.Span{Top: card.Ace, Len: card.NumRanks})
}

func sampleBoard() board.Board {
	return board.New(
		fullRun(), fullRun(), fullRun(),
		board.NewColumn(card.SpanFromCard(card.Ace), card.Span{Top: card.Ten, Len: 5}),
		board.NewColumn(card.Span{Top: card.King, Len: 3}),
		board.Column{},
	)
}

func TestBlockedBoardMoves(t *testing.T) {
	is := is.New(t)
	results := All(sampleBoard(), zerolog.Nop())

	var ontoEmpty, intoSlot, ontoSpan int
	for _, r := range results {
		switch r.Move.Tag {
		case move.TagOntoEmpty:
			ontoEmpty++
		case move.TagIntoSlot:
			intoSlot++
		case move.TagOntoSpan:
			ontoSpan++
		}
	}
	// 10-6 can split five ways and K-V three ways onto the empty column.
	is.Equal(ontoEmpty, 8)
	// 10-6 continues K-V as a whole.
	is.Equal(ontoSpan, 1)
	// both live pairs also get a slot move, since neither accepts exactly one card.
	is.Equal(intoSlot, 2)
	is.Equal(len(results), 11)
}

func TestDirectMoveAndSlotMove(t *testing.T) {
	is := is.New(t)
	// K-V can take 10-6 as a whole: five cards land directly, and a
	// slot move is offered too since n != 1.
	b := board.New(
		fullRun(), fullRun(), fullRun(),
		board.NewColumn(card.SpanFromCard(card.Ace), card.Span{Top: card.King, Len: 3}),
		board.NewColumn(card.Span{Top: card.Ten, Len: 5}),
	)
	is.NoErr(b.Validate())

	var direct []Result
	for _, r := range All(b, zerolog.Nop()) {
		if r.Move.Tag == move.TagOntoSpan {
			direct = append(direct, r)
		}
	}
	is.Equal(len(direct), 1)
	is.Equal(direct[0].Move.Count, uint8(5))
	is.Equal(direct[0].Board[3].String(), "[T K D V 10 9 8 7 6]")
	is.NoErr(direct[0].Board.Validate())
}

func TestNoMovesWhenEverySlotIsTaken(t *testing.T) {
	is := is.New(t)
	b := board.New(
		fullRun(), fullRun(), fullRun(),
		board.NewColumn(card.Span{Top: card.Ace, Len: 2}).WithSlot(card.Six),
		board.NewColumn(card.Span{Top: card.Queen, Len: 2}).WithSlot(card.Seven),
		board.NewColumn(card.Span{Top: card.Ten, Len: 2}).WithSlot(card.Eight),
	)
	is.NoErr(b.Validate())
	_, ok := New(b, zerolog.Nop()).Next()
	is.True(!ok)
}

func TestMovesLoggedAtDebug(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	All(sampleBoard(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	is.Equal(strings.Count(buf.String(), "gen-move"), 11)

	buf.Reset()
	All(sampleBoard(), zerolog.New(&buf).Level(zerolog.InfoLevel))
	is.Equal(buf.Len(), 0)
}

func TestGeneratorIsNotRestartable(t *testing.T) {
	is := is.New(t)
	g := New(sampleBoard(), zerolog.Nop())
	n := 0
	for _, ok := g.Next(); ok; _, ok = g.Next() {
		n++
	}
	is.Equal(n, 11)
	_, ok := g.Next()
	is.True(!ok)
}

func checkExclusions(is *is.I, b board.Board, results []Result) {
	for _, r := range results {
		from, to, err := r.Move.Locate(b)
		is.NoErr(err)
		is.True(from != to)
		is.True(!b[from].IsDead())
		is.True(!b[to].IsDead())
		_, occupied := b[to].Slot()
		is.True(!occupied)
		is.NoErr(r.Board.Validate())

		applied, err := r.Move.Apply(b)
		is.NoErr(err)
		is.Equal(applied.Canonicalize(), r.Board.Canonicalize())
	}
}

// Random walks from random deals keep four of every rank on the table
// and never produce an excluded move.
func TestRandomWalks(t *testing.T) {
	is := is.New(t)
	for walk := 0; walk < 50; walk++ {
		b := deal.Random("walk").Board
		for step := 0; step < 40; step++ {
			results := All(b, zerolog.Nop())
			checkExclusions(is, b, results)
			if len(results) == 0 {
				break
			}
			b = results[frand.Intn(len(results))].Board.Canonicalize()
		}
	}
}
