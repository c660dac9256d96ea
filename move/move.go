// Package move describes transfers between columns. A Move names its
// columns by content rather than by position, since canonical boards
// reorder columns freely.
package move

import (
	"fmt"

	"github.com/domino14/cluj/board"
)

// Tag breaks ties between equally promising moves in the search.
type Tag uint8

const (
	TagNone Tag = iota
	// TagOntoSpan continues the destination's top span.
	TagOntoSpan
	// TagIntoSlot parks one card in the destination's slot.
	TagIntoSlot
	// TagOntoEmpty starts a new span on an empty column.
	TagOntoEmpty
)

// Move is one transfer step.
type Move struct {
	From   board.Column
	To     board.Column
	Count  uint8
	ToSlot bool
	Tag    Tag
}

// New describes moving n cards from column from to column to on b.
func New(b board.Board, from, to int, n uint8, toSlot bool, tag Tag) Move {
	return Move{
		From:   b[from],
		To:     b[to],
		Count:  n,
		ToSlot: toSlot,
		Tag:    tag,
	}
}

// Locate finds the positions of the move's columns on b. The destination
// search skips the source, so two identical columns resolve to two
// different positions.
func (m Move) Locate(b board.Board) (int, int, error) {
	from, err := b.FindColumn(m.From, -1)
	if err != nil {
		return -1, -1, fmt.Errorf("source: %w", err)
	}
	to, err := b.FindColumn(m.To, from)
	if err != nil {
		return -1, -1, fmt.Errorf("destination: %w", err)
	}
	return from, to, nil
}

// Apply performs the move on b and returns the new board.
func (m Move) Apply(b board.Board) (board.Board, error) {
	from, to, err := m.Locate(b)
	if err != nil {
		return board.Board{}, err
	}
	return b.Transfer(from, to, m.Count, m.ToSlot), nil
}

// Cards lists the cards the move takes off its source column.
func (m Move) Cards() string {
	return m.From.ExplainLastNCards(m.Count)
}

// Explain describes the move as played on b, with 1-based columns.
func (m Move) Explain(b board.Board) (string, error) {
	from, to, err := m.Locate(b)
	if err != nil {
		return "", err
	}
	return m.Describe(from, to), nil
}

// Describe explains the move between the given 0-based column positions.
func (m Move) Describe(from, to int) string {
	return fmt.Sprintf("Move %s from %d -> %d. %v to %v.",
		m.Cards(), from+1, to+1, m.From, m.To)
}

func (m Move) String() string {
	dest := "span"
	if m.ToSlot {
		dest = "slot"
	}
	return fmt.Sprintf("<move %d from %v to %v (%s) tag %d>",
		m.Count, m.From, m.To, dest, m.Tag)
}
