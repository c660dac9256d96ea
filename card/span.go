package card

import "fmt"

// A Span is a run of strictly descending, sequential ranks that always
// moves as one unit. It is stored as its highest rank and its length.
type Span struct {
	Top Rank
	Len uint8
}

// SpanFromCard returns a span of a single card.
func SpanFromCard(c Rank) Span {
	return Span{Top: c, Len: 1}
}

// Bottom is the lowest rank of the span; it is the card that is
// physically accessible.
func (s Span) Bottom() Rank {
	return Rank(uint8(s.Top) + 1 - s.Len)
}

// CanAcceptCard returns true if c extends the span downward.
func (s Span) CanAcceptCard(c Rank) bool {
	return uint8(c)+1 == uint8(s.Bottom())
}

// AcceptSpanSize returns how many cards from the top of the moving span
// can land contiguously on s. Zero means the spans do not connect.
func (s Span) AcceptSpanSize(moving Span) uint8 {
	b := s.Bottom()
	if b > moving.Bottom() && uint8(moving.Top)+1 >= uint8(b) {
		return uint8(b - moving.Bottom())
	}
	return 0
}

// Extend grows the span downward by n cards.
func (s *Span) Extend(n uint8) {
	if int(s.Len)+int(n) > NumRanks {
		panic(fmt.Sprintf("span %v cannot grow by %d", *s, n))
	}
	s.Len += n
}

// Shrink removes the n lowest cards of the span.
func (s *Span) Shrink(n uint8) {
	if n > s.Len {
		panic(fmt.Sprintf("span %v cannot shrink by %d", *s, n))
	}
	s.Len -= n
}

// Cards lists the ranks of the span from the top (highest) down.
func (s Span) Cards() []Rank {
	cards := make([]Rank, 0, s.Len)
	for i := uint8(0); i < s.Len; i++ {
		cards = append(cards, s.Top-Rank(i))
	}
	return cards
}

func (s Span) String() string {
	if s.Len == 1 {
		return s.Top.String()
	}
	return fmt.Sprintf("%v-%v", s.Top, s.Bottom())
}
