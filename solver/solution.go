package solver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/move"
)

// Step is one explained move of a solution. Columns are numbered from 1
// as they appear in the dealt table.
type Step struct {
	Number      int       `yaml:"number"`
	Cards       string    `yaml:"cards"`
	From        int       `yaml:"from"`
	To          int       `yaml:"to"`
	Explanation string    `yaml:"explanation"`
	Board       string    `yaml:"board"`
	Score       int       `yaml:"score"`
	Move        move.Move `yaml:"-"`
}

// Solution is a replayable list of steps from the dealt table to a
// cleared one.
type Solution struct {
	Initial board.Board `yaml:"-"`
	Deal    string      `yaml:"deal"`
	Steps   []Step      `yaml:"steps"`
	States  int         `yaml:"states"`
}

// Text renders one line per step; verbose adds the board after each step.
func (sol *Solution) Text(verbose bool) string {
	var sb strings.Builder
	for _, st := range sol.Steps {
		fmt.Fprintf(&sb, "Step %3d. %s\n", st.Number, st.Explanation)
		if verbose {
			fmt.Fprintf(&sb, "          Board: %s (Score: %d)\n", st.Board, st.Score)
		}
	}
	return sb.String()
}

// Replay plays every step on the initial board and returns the result.
func (sol *Solution) Replay() (board.Board, error) {
	b := sol.Initial
	for _, st := range sol.Steps {
		var err error
		b, err = st.Move.Apply(b)
		if err != nil {
			return board.Board{}, fmt.Errorf("step %d: %w", st.Number, err)
		}
	}
	return b, nil
}

// reconstruct follows back-pointers from goal to the root and replays
// the moves on the dealt board, which is not canonical, to recover the
// column numbers the player sees.
func (s *Solver) reconstruct(initial board.Board, goal StateID) (*Solution, error) {
	var moves []move.Move
	id := goal
	for {
		bp, ok := s.backpointers[id]
		if !ok {
			break
		}
		if len(moves) > s.tt.Len() {
			return nil, fmt.Errorf("%w: back-pointer cycle at %v", ErrCorruptPath,
				s.tt.Board(id))
		}
		s.logger.Debug().Int("score", s.tt.Board(id).Score()).
			Stringer("board", s.tt.Board(id)).Msg("path")
		moves = append(moves, bp.move)
		id = bp.prev
	}
	slices.Reverse(moves)

	sol := &Solution{
		Initial: initial,
		Deal:    initial.String(),
		Steps:   make([]Step, 0, len(moves)),
		States:  s.tt.Len(),
	}
	b := initial
	for i, m := range moves {
		from, to, err := m.Locate(b)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrCorruptPath, i+1, err)
		}
		b = b.Transfer(from, to, m.Count, m.ToSlot)
		sol.Steps = append(sol.Steps, Step{
			Number:      i + 1,
			Cards:       m.Cards(),
			From:        from + 1,
			To:          to + 1,
			Explanation: m.Describe(from, to),
			Board:       b.String(),
			Score:       b.Score(),
			Move:        m,
		})
	}
	if !b.IsSuccess() {
		return nil, fmt.Errorf("%w: replay ends at %v", ErrCorruptPath, b)
	}
	return sol, nil
}
