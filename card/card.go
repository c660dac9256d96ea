// Package card holds the rank and span primitives of the Cluj patience
// deck: nine ranks, four cards of each, suits ignored.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// NumRanks is the number of distinct ranks in the deck.
const NumRanks = 9

// CardsPerRank is how many cards of each rank the deck holds.
const CardsPerRank = 4

// DeckSize is the total number of cards in play.
const DeckSize = NumRanks * CardsPerRank

var ErrUnknownRank = errors.New("unknown rank")

// Rank is a card rank. 0 is the six, 8 is the ace (T).
type Rank uint8

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack  // V
	Queen // D
	King  // K
	Ace   // T
)

var rankNames = [NumRanks]string{"6", "7", "8", "9", "10", "V", "D", "K", "T"}

func (r Rank) String() string {
	if int(r) >= NumRanks {
		return fmt.Sprintf("?%d", uint8(r))
	}
	return rankNames[r]
}

// Add returns r+n. It panics if the result is not a valid rank.
func (r Rank) Add(n uint8) Rank {
	v := int(r) + int(n)
	if v >= NumRanks {
		panic(fmt.Sprintf("rank overflow: %v + %d", r, n))
	}
	return Rank(v)
}

// Sub returns r-n. It panics if the result is not a valid rank.
func (r Rank) Sub(n uint8) Rank {
	v := int(r) - int(n)
	if v < 0 {
		panic(fmt.Sprintf("rank underflow: %v - %d", r, n))
	}
	return Rank(v)
}

// ParseRank parses one rank token. "10", "0" and "1" all mean the ten,
// since input grids often drop or mangle the leading one.
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "0", "1":
		return Ten, nil
	case "V":
		return Jack, nil
	case "D":
		return Queen, nil
	case "K":
		return King, nil
	case "T":
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}
