package game

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

const (
	DefaultHouseName      = "House"
	DefaultHouseHitsUntil = 16
)

type House struct {
	seat
	hitsUntil int
}

// NewHouse seats the dealer. A hitsUntil of 0 or less means
// DefaultHouseHitsUntil; the house never plays a threshold below 1.
func NewHouse(name string, hitsUntil int, out io.Writer) *House {
	if len(name) == 0 {
		name = DefaultHouseName
	}
	if hitsUntil <= 0 {
		hitsUntil = DefaultHouseHitsUntil
	}
	if out == nil {
		out = io.Discard
	}
	return &House{
		seat:      seat{name: name, out: out},
		hitsUntil: hitsUntil,
	}
}

// IsHitting stands on hitsUntil+1 or more, soft or hard.
func (h *House) IsHitting() bool {
	return h.hand.Total() <= h.hitsUntil
}

// FlipFirstCard toggles the first card of the hand. Calling it twice puts
// the card back the way it was.
func (h *House) FlipFirstCard() error {
	if len(h.hand.cards) == 0 {
		log.Warn().Str("name", h.name).Msg("no card to flip")
		fmt.Fprintln(h.out, "No card to flip")
		return ErrNoCardToFlip
	}
	h.hand.cards[0].Flip()
	return nil
}
