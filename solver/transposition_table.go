package solver

import (
	"unsafe"

	"github.com/domino14/cluj/board"
)

// StateID is the stable identity of a canonical board within one search.
type StateID int

type tableEntry struct {
	board    board.Board
	steps    int
	expanded bool
}

// TranspositionTable assigns each distinct canonical board an identity
// the first time it is seen and keeps the fewest steps it has been
// reached in. Entries are never evicted.
type TranspositionTable struct {
	ids     map[board.Board]StateID
	entries []tableEntry
}

// approxEntryBytes is a rough per-state memory cost: the board in the
// arena, its copy as a map key, and a back-pointer holding two columns.
const approxEntryBytes = 3*int(unsafe.Sizeof(board.Board{})) + 64

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{ids: make(map[board.Board]StateID)}
}

// Lookup returns the identity of a canonical board, if it is known.
func (t *TranspositionTable) Lookup(b board.Board) (StateID, bool) {
	id, ok := t.ids[b]
	return id, ok
}

// Insert adds a canonical board that has not been seen before.
func (t *TranspositionTable) Insert(b board.Board, steps int) StateID {
	if _, ok := t.ids[b]; ok {
		panic("board inserted twice: " + b.String())
	}
	id := StateID(len(t.entries))
	t.entries = append(t.entries, tableEntry{board: b, steps: steps})
	t.ids[b] = id
	return id
}

func (t *TranspositionTable) Board(id StateID) board.Board {
	return t.entries[id].board
}

// Steps is the fewest moves id is known to be reached in.
func (t *TranspositionTable) Steps(id StateID) int {
	return t.entries[id].steps
}

func (t *TranspositionTable) setSteps(id StateID, steps int) {
	t.entries[id].steps = steps
}

// Expanded reports whether the successors of id were generated.
func (t *TranspositionTable) Expanded(id StateID) bool {
	return t.entries[id].expanded
}

func (t *TranspositionTable) markExpanded(id StateID) {
	t.entries[id].expanded = true
}

// Len is the number of distinct boards stored.
func (t *TranspositionTable) Len() int {
	return len(t.entries)
}
