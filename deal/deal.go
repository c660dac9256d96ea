// Package deal produces starting tables: read from files, or shuffled
// at random for batch runs and tests.
package deal

import (
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/card"
)

// Deal is a named starting board.
type Deal struct {
	Name  string
	Board board.Board
}

// ID identifies the position of the deal. Deals that differ only in
// column order share an ID.
func (d Deal) ID() string {
	return fmt.Sprintf("%016x", Fingerprint(d.Board))
}

// Fingerprint hashes the canonical form of b.
func Fingerprint(b board.Board) uint64 {
	return xxhash.Sum64String(b.Canonicalize().String())
}

// FromFile parses the deal stored at path.
func FromFile(path string) (Deal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deal{}, err
	}
	defer f.Close()
	b, err := board.Parse(f)
	if err != nil {
		return Deal{}, fmt.Errorf("%s: %w", path, err)
	}
	return Deal{Name: path, Board: b}, nil
}

// Deck returns the 36 cards of the game in rank order.
func Deck() []card.Rank {
	deck := make([]card.Rank, 0, card.DeckSize)
	for r := 0; r < card.NumRanks; r++ {
		for i := 0; i < card.CardsPerRank; i++ {
			deck = append(deck, card.Rank(r))
		}
	}
	return deck
}

// RandomGrid shuffles the deck and lays it out row by row.
func RandomGrid() board.Grid {
	deck := Deck()
	frand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	var g board.Grid
	for i, r := range deck {
		g[i/board.NumColumns][i%board.NumColumns] = r
	}
	return g
}

// Random returns a freshly shuffled deal.
func Random(name string) Deal {
	return Deal{Name: name, Board: board.FromGrid(RandomGrid())}
}

// Text renders g in the input format accepted by board.Parse.
func Text(g board.Grid) string {
	var sb strings.Builder
	for _, row := range g {
		for j, r := range row {
			if j != 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%-2s", r.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
