package board

import "github.com/samber/lo"

// blockedPenalty is charged per card of the largest blocked span that
// cannot be parked in free slots.
const blockedPenalty = 10

// Score estimates how close the board is to a solution; higher is better.
// Each column earns points for having few spans and a free slot. If the
// longest span sitting on top of other spans is longer than the number of
// free slots on the table, the position is penalized, since that span
// cannot be taken apart to reach what is underneath.
func (b Board) Score() int {
	maxSpanLen, freeSlots := 0, 0
	for _, col := range b {
		if col.IsDead() {
			continue
		}
		if top, ok := col.TopSpan(); ok && col.n != 1 {
			maxSpanLen = max(maxSpanLen, int(top.Len))
		}
		if !col.hasSlot {
			freeSlots++
		}
	}
	score := lo.SumBy(b[:], func(col Column) int {
		tidy := MaxSpans - int(col.n)
		if !col.hasSlot {
			tidy++
		}
		return tidy
	})
	if maxSpanLen > freeSlots {
		penalty := (maxSpanLen - freeSlots) * blockedPenalty
		score -= min(score, penalty)
	}
	return score
}
