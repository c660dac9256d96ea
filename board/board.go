// Package board models a Cluj patience position: six columns of spans,
// each with a one-card slot.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/cluj/card"
)

// NumColumns is the number of columns on the table.
const NumColumns = 6

var ErrColumnNotFound = errors.New("column not found")

// Board is a full position. It is a value: copying a Board copies every
// column, and a Board can be used as a map key.
type Board [NumColumns]Column

// New builds a board from up to six columns; missing columns are empty.
func New(cols ...Column) Board {
	var b Board
	if len(cols) > NumColumns {
		panic(fmt.Sprintf("too many columns: %d", len(cols)))
	}
	copy(b[:], cols)
	return b
}

// Canonicalize returns the board with its columns sorted into the fixed
// column order. Boards that differ only by column order canonicalize to
// the same value. It panics if the card multiset is broken, since that
// can only come from a bug in move generation or board construction.
func (b Board) Canonicalize() Board {
	// insertion sort; six columns do not need anything smarter.
	for i := 1; i < NumColumns; i++ {
		for j := i; j > 0 && Compare(b[j-1], b[j]) > 0; j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
	if err := b.Validate(); err != nil {
		panic(err)
	}
	return b
}

// Validate checks that every rank appears exactly four times across all
// spans and slots.
func (b Board) Validate() error {
	var counts [card.NumRanks]int
	for _, col := range b {
		for _, s := range col.spans[:col.n] {
			if s.Len == 0 {
				return fmt.Errorf("%v: empty span in column %v", b, col)
			}
			if int(s.Top) >= card.NumRanks || s.Len > uint8(s.Top)+1 {
				return fmt.Errorf("%v: malformed span %v", b, s)
			}
			for i := uint8(0); i < s.Len; i++ {
				counts[s.Top-card.Rank(i)]++
			}
		}
		if r, ok := col.Slot(); ok {
			if int(r) >= card.NumRanks {
				return fmt.Errorf("%v: malformed slot card %d", b, r)
			}
			counts[r]++
		}
	}
	for r, n := range counts {
		if n != card.CardsPerRank {
			return fmt.Errorf("%v does not pass validation: %d of rank %v",
				b, n, card.Rank(r))
		}
	}
	return nil
}

// IsSuccess is true when every column is dead or empty.
func (b Board) IsSuccess() bool {
	for _, col := range b {
		if !col.IsDead() && !col.IsEmpty() {
			return false
		}
	}
	return true
}

// Transfer moves n cards from column from to column to and returns the
// resulting board; b itself is untouched. If the source has a slot card
// it is the card that moves. If toSlot is set, the single card lands in
// the destination's slot, otherwise it continues (or starts) the
// destination's top span. The move is not checked for legality.
func (b Board) Transfer(from, to int, n uint8, toSlot bool) Board {
	var span card.Span
	if r, ok := b[from].takeSlot(); ok {
		if n != 1 {
			panic(fmt.Sprintf("cannot move %d cards out of a slot", n))
		}
		span = card.SpanFromCard(r)
	} else {
		span, ok = b[from].pop()
		if !ok {
			panic(fmt.Sprintf("column %d of %v has nothing to move", from, b))
		}
	}
	movedBottom := span.Bottom()
	span.Shrink(n)
	if span.Len > 0 {
		b[from].push(span)
	}
	if toSlot {
		if n != 1 {
			panic(fmt.Sprintf("cannot move %d cards into a slot", n))
		}
		b[to].slot = movedBottom
		b[to].hasSlot = true
		return b
	}
	dest, ok := b[to].pop()
	if ok {
		dest.Extend(n)
	} else {
		dest = card.Span{Top: movedBottom.Add(n - 1), Len: n}
	}
	b[to].push(dest)
	return b
}

// FindColumn returns the index of the first column equal to col, skipping
// index exclude (pass -1 to skip nothing).
func (b Board) FindColumn(col Column, exclude int) (int, error) {
	for i := range b {
		if i != exclude && b[i] == col {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v in %v", ErrColumnNotFound, col, b)
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, col := range b {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(col.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
