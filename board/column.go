package board

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/domino14/cluj/card"
)

// MaxSpans bounds the number of spans a column can hold. A dealt column
// has six cards, and no transfer ever adds a span to a non-empty column,
// so six is enough for the whole game.
const MaxSpans = 6

// A Column is a stack of spans, base first, plus a one-card slot that
// sits on top of everything else. Column is a small comparable value;
// unused span entries are always zeroed so that == compares content.
type Column struct {
	spans   [MaxSpans]card.Span
	n       uint8
	slot    card.Rank
	hasSlot bool
}

// NewColumn builds a column from spans listed base first.
func NewColumn(spans ...card.Span) Column {
	var c Column
	for _, s := range spans {
		c.push(s)
	}
	return c
}

// ColumnFromCards builds a column from cards listed base first, merging
// each card into the span below it when it continues that span.
func ColumnFromCards(cards ...card.Rank) Column {
	var c Column
	for _, r := range cards {
		c.addCard(r)
	}
	return c
}

// WithSlot returns a copy of c holding r in its slot.
func (c Column) WithSlot(r card.Rank) Column {
	c.slot = r
	c.hasSlot = true
	return c
}

func (c *Column) addCard(r card.Rank) {
	if top, ok := c.pop(); ok {
		if top.CanAcceptCard(r) {
			top.Extend(1)
			c.push(top)
			return
		}
		c.push(top)
	}
	c.push(card.SpanFromCard(r))
}

func (c *Column) push(s card.Span) {
	if int(c.n) >= MaxSpans {
		panic(fmt.Sprintf("column %v is full, cannot push %v", *c, s))
	}
	c.spans[c.n] = s
	c.n++
}

func (c *Column) pop() (card.Span, bool) {
	if c.n == 0 {
		return card.Span{}, false
	}
	c.n--
	s := c.spans[c.n]
	c.spans[c.n] = card.Span{}
	return s, true
}

func (c *Column) takeSlot() (card.Rank, bool) {
	if !c.hasSlot {
		return 0, false
	}
	r := c.slot
	c.slot = 0
	c.hasSlot = false
	return r, true
}

func (c Column) NumSpans() int {
	return int(c.n)
}

// Slot returns the card held in the slot, if any.
func (c Column) Slot() (card.Rank, bool) {
	return c.slot, c.hasSlot
}

// TopSpan is the last span pushed onto the column, ignoring the slot.
func (c Column) TopSpan() (card.Span, bool) {
	if c.n == 0 {
		return card.Span{}, false
	}
	return c.spans[c.n-1], true
}

// IsDead is true for a column holding one complete run of all ranks.
// Dead columns take no further part in the game.
func (c Column) IsDead() bool {
	return c.n == 1 && c.spans[0].Len == card.NumRanks
}

func (c Column) IsEmpty() bool {
	return c.n == 0 && !c.hasSlot
}

// MovableSpan is the unit that can leave this column: the slot card if
// there is one, otherwise the top span.
func (c Column) MovableSpan() (card.Span, bool) {
	if c.IsDead() {
		return card.Span{}, false
	}
	if c.hasSlot {
		return card.SpanFromCard(c.slot), true
	}
	return c.TopSpan()
}

// ExplainLastNCards lists the last n cards that physically leave the
// column, in display order.
func (c Column) ExplainLastNCards(n uint8) string {
	var cards []string
	if c.hasSlot && n > 0 {
		n--
		cards = append(cards, c.slot.String())
	}
	if top, ok := c.TopSpan(); ok {
		for i := uint8(0); i < n && i < top.Len; i++ {
			cards = append(cards, (top.Bottom() + card.Rank(i)).String())
		}
	}
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
	return "[" + strings.Join(cards, " ") + "]"
}

// Cards lists every card of the column in physical order, base first,
// the slot card last.
func (c Column) Cards() []card.Rank {
	var cards []card.Rank
	for _, s := range c.spans[:c.n] {
		cards = append(cards, s.Cards()...)
	}
	if c.hasSlot {
		cards = append(cards, c.slot)
	}
	return cards
}

func (c Column) String() string {
	if c.IsDead() {
		return "[..]"
	}
	cards := c.Cards()
	strs := make([]string, len(cards))
	for i, r := range cards {
		strs[i] = r.String()
	}
	return "[" + strings.Join(strs, " ") + "]"
}

// Compare orders columns by content. It is the fixed total order used
// for canonical boards.
func Compare(a, b Column) int {
	for i := 0; i < MaxSpans; i++ {
		if a.spans[i] != b.spans[i] {
			if a.spans[i].Top != b.spans[i].Top {
				return cmp.Compare(int(a.spans[i].Top), int(b.spans[i].Top))
			}
			return cmp.Compare(int(a.spans[i].Len), int(b.spans[i].Len))
		}
	}
	if a.n != b.n {
		return cmp.Compare(int(a.n), int(b.n))
	}
	if a.hasSlot != b.hasSlot {
		if a.hasSlot {
			return 1
		}
		return -1
	}
	return cmp.Compare(int(a.slot), int(b.slot))
}
