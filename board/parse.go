package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/domino14/cluj/card"
)

var (
	ErrTooManyOfRank  = errors.New("too many cards of one rank")
	ErrWrongCardCount = errors.New("wrong number of cards")
)

// NumRows is the number of cards dealt into each column.
const NumRows = 6

// Grid is a dealt table, indexed [row][column]. Row 0 is the base of each
// column; the last row holds the cards that can be moved first.
type Grid [NumRows][NumColumns]card.Rank

// Parse reads a deal: six lines of six rank tokens each. Whitespace is
// ignored, and so is the digit 1, so "10", "0" and "1 0" all read as a
// ten. Anything past the sixth line or the sixth token of a line is
// ignored.
//
//	7  v 8  k 6  k
//	10 t 7  7 7  8
//	d  9 v  9 k  8
//	d  d 9 10 9  t
//	6  v t 10 10 6
//	t  d k  8 6  v
func Parse(r io.Reader) (Board, error) {
	var grid Grid
	var counts [card.NumRanks]int
	total := 0
	scanner := bufio.NewScanner(r)
	for row := 0; row < NumRows && scanner.Scan(); row++ {
		col := 0
		for _, ch := range scanner.Text() {
			if unicode.IsSpace(ch) || ch == '1' {
				continue
			}
			if col == NumColumns {
				break
			}
			rank, err := card.ParseRank(string(ch))
			if err != nil {
				return Board{}, fmt.Errorf("row %d: %w", row+1, err)
			}
			counts[rank]++
			if counts[rank] > card.CardsPerRank {
				return Board{}, fmt.Errorf("%w: %v", ErrTooManyOfRank, rank)
			}
			grid[row][col] = rank
			col++
			total++
		}
	}
	if err := scanner.Err(); err != nil {
		return Board{}, err
	}
	if total != card.DeckSize {
		return Board{}, fmt.Errorf("%w: %d (expect %d)", ErrWrongCardCount,
			total, card.DeckSize)
	}
	b := FromGrid(grid)
	log.Debug().Str("board", b.String()).Msg("parsed-board")
	return b, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (Board, error) {
	return Parse(strings.NewReader(s))
}

// FromGrid stacks every grid column into spans, top row first.
func FromGrid(g Grid) Board {
	var b Board
	for col := 0; col < NumColumns; col++ {
		for row := 0; row < NumRows; row++ {
			b[col].addCard(g[row][col])
		}
	}
	return b
}
