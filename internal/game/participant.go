package game

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Participant is anyone seated at the table who holds a hand and decides
// whether to take another card.
type Participant interface {
	fmt.Stringer
	Name() string
	Hand() *Hand
	IsHitting() bool
	IsBusted() bool
	Bust()
}

// seat carries what players and the house have in common.
type seat struct {
	name string
	hand Hand
	out  io.Writer
}

func (s *seat) Name() string {
	return s.name
}

func (s *seat) Hand() *Hand {
	return &s.hand
}

func (s *seat) IsBusted() bool {
	return s.hand.Total() > 21
}

func (s *seat) Bust() {
	log.Debug().Str("name", s.name).Int("total", s.hand.Total()).Msg("bust")
	fmt.Fprintf(s.out, "%s bust!\n", s.name)
}

// String renders "Name: c1\tc2\t(total)". The total is left out while it
// is 0, e.g. when the first card is face down.
func (s *seat) String() string {
	if s.hand.Len() == 0 {
		return s.name + ": <empty>"
	}
	str := s.name + ": " + s.hand.String()
	if t := s.hand.Total(); t != 0 {
		str += fmt.Sprintf("(%d)", t)
	}
	return str
}
