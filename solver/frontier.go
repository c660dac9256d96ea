package solver

import "github.com/domino14/cluj/move"

type frontierEntry struct {
	score int
	steps int
	tag   move.Tag
	id    StateID
}

// frontier is a container/heap priority queue. The best entry has the
// highest score, then the fewest steps, then the highest move tag.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.score != b.score {
		return a.score > b.score
	}
	if a.steps != b.steps {
		return a.steps < b.steps
	}
	if a.tag != b.tag {
		return a.tag > b.tag
	}
	return a.id > b.id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierEntry))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}
