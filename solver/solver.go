// Package solver searches for a sequence of transfers that clears a
// Cluj patience table. The search is best-first over canonical boards,
// guided by board.Score; it finds a solution when one is reachable but
// does not promise the shortest one.
package solver

import (
	"container/heap"
	"context"
	"errors"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/config"
	"github.com/domino14/cluj/move"
	"github.com/domino14/cluj/movegen"
)

var (
	ErrNoSolution  = errors.New("no solution found")
	ErrStateLimit  = errors.New("state limit reached")
	ErrCorruptPath = errors.New("solution path is inconsistent")
)

// how many frontier pops between context checks. The first pop is
// always checked.
const ctxCheckInterval = 4096

// backpointer records that a board was reached from prev by playing move.
type backpointer struct {
	prev StateID
	move move.Move
}

// Stats summarizes the last search.
type Stats struct {
	States    int
	Expanded  int
	BestScore int
}

type Solver struct {
	cfg    *config.Config
	logger zerolog.Logger

	tt           *TranspositionTable
	backpointers map[StateID]backpointer
	frontier     frontier

	maxStates        int
	progressInterval int

	expanded    int
	bestScore   int
	bestStateID StateID
}

// NewSolver creates a solver. A nil config means defaults.
func NewSolver(cfg *config.Config) *Solver {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Solver{cfg: cfg}
}

func (s *Solver) reset() {
	// per-node debug output is only wanted when asked for.
	s.logger = log.Logger
	if !s.cfg.GetBool(config.ConfigDebug) {
		s.logger = s.logger.Level(zerolog.InfoLevel)
	}
	s.tt = NewTranspositionTable()
	s.backpointers = make(map[StateID]backpointer)
	s.frontier = s.frontier[:0]
	s.expanded = 0
	s.bestScore = -1
	s.bestStateID = 0

	s.progressInterval = s.cfg.GetInt(config.ConfigProgressInterval)
	s.maxStates = s.cfg.GetInt(config.ConfigMaxStates)
	if frac := s.cfg.GetFloat64(config.ConfigMemoryFraction); frac > 0 {
		totalMem := memory.TotalMemory()
		fromMem := int(frac * float64(totalMem) / float64(approxEntryBytes))
		if s.maxStates == 0 || fromMem < s.maxStates {
			s.maxStates = fromMem
		}
		s.logger.Info().Uint64("total-system-memory-bytes", totalMem).
			Float64("memory-fraction", frac).
			Int("max-states", s.maxStates).
			Msg("state-limit-from-memory")
	}
}

// Stats returns counters from the last call to Solve.
func (s *Solver) Stats() Stats {
	st := Stats{Expanded: s.expanded, BestScore: s.bestScore}
	if s.tt != nil {
		st.States = s.tt.Len()
	}
	return st
}

// Solve searches from initial until a cleared table is found. It returns
// ErrNoSolution once every reachable board has been expanded, which is a
// normal outcome. ErrStateLimit means the configured state budget ran
// out first.
func (s *Solver) Solve(ctx context.Context, initial board.Board) (*Solution, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	s.reset()

	root := initial.Canonicalize()
	rootID := s.tt.Insert(root, 0)
	heap.Push(&s.frontier, frontierEntry{score: root.Score(), id: rootID})

	pops := 0
	for s.frontier.Len() > 0 {
		if pops%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				s.logger.Info().Int("states", s.tt.Len()).Msg("search-cancelled")
				return nil, err
			}
		}
		pops++
		e := heap.Pop(&s.frontier).(frontierEntry)
		if s.tt.Expanded(e.id) {
			continue
		}
		s.tt.markExpanded(e.id)
		s.expanded++
		cur := s.tt.Board(e.id)
		s.logger.Debug().Stringer("board", cur).Int("score", e.score).Msg("considering")
		if e.score > s.bestScore {
			s.bestScore = e.score
			s.bestStateID = e.id
		}
		if cur.IsSuccess() {
			s.logger.Info().Int("states", s.tt.Len()).Int("expanded", s.expanded).
				Int("steps", s.tt.Steps(e.id)).Msg("found-solution")
			return s.reconstruct(initial, e.id)
		}

		g := movegen.New(cur, s.logger)
		for r, ok := g.Next(); ok; r, ok = g.Next() {
			if err := s.relax(e.id, r); err != nil {
				return nil, err
			}
		}
	}
	s.logger.Info().Int("states", s.tt.Len()).Msg("search-exhausted")
	return nil, ErrNoSolution
}

// relax records the board produced by r, reached from parent. A board
// seen for the first time is queued. A board seen before only takes the
// new edge if it is reached in fewer steps; a board that was already
// expanded is not queued again, so its successors keep their old step
// counts.
func (s *Solver) relax(parent StateID, r movegen.Result) error {
	next := r.Board.Canonicalize()
	steps := s.tt.Steps(parent) + 1
	id, seen := s.tt.Lookup(next)
	if !seen {
		if s.maxStates > 0 && s.tt.Len() >= s.maxStates {
			s.logger.Info().Int("states", s.tt.Len()).Int("best-score", s.bestScore).
				Msg("state-limit-reached")
			return ErrStateLimit
		}
		id = s.tt.Insert(next, steps)
		s.backpointers[id] = backpointer{prev: parent, move: r.Move}
		heap.Push(&s.frontier, frontierEntry{
			score: next.Score(), steps: steps, tag: r.Move.Tag, id: id})
		s.reportProgress(id)
		return nil
	}
	if steps >= s.tt.Steps(id) {
		return nil
	}
	s.logger.Debug().Stringer("board", next).Int("old-steps", s.tt.Steps(id)).
		Int("new-steps", steps).Msg("shorter-path")
	s.tt.setSteps(id, steps)
	s.backpointers[id] = backpointer{prev: parent, move: r.Move}
	if !s.tt.Expanded(id) {
		heap.Push(&s.frontier, frontierEntry{
			score: next.Score(), steps: steps, tag: r.Move.Tag, id: id})
	}
	return nil
}

func (s *Solver) reportProgress(id StateID) {
	if s.progressInterval <= 0 || (int(id)+1)%s.progressInterval != 0 {
		return
	}
	s.logger.Info().Int("states", int(id)+1).
		Int("expanded", s.expanded).
		Int("best-score", s.bestScore).
		Str("best-board", s.tt.Board(s.bestStateID).String()).
		Msg("search-progress")
}
