package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

// Deck is the pile of undealt cards. Cards are dealt from the end.
type Deck struct {
	Hand
	rng *rand.Rand
	out io.Writer
}

func NewDeck(rng *rand.Rand, out io.Writer) *Deck {
	if rng == nil {
		rng = NewRand(0)
	}
	if out == nil {
		out = io.Discard
	}
	d := &Deck{rng: rng, out: out}
	d.cards = make(Cards, 0, DeckSize)
	d.Populate()
	return d
}

// Populate discards whatever is left and lays out all 52 cards face up,
// suit by suit from the Ace.
func (d *Deck) Populate() {
	d.Clear()
	for s := Clubs; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			d.Add(NewCard(r, s))
		}
	}
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal moves the top card into h. An empty deck is reported and h is left
// untouched.
func (d *Deck) Deal(h *Hand) error {
	c, ok := d.take()
	if !ok {
		log.Warn().Msg("deal from empty deck")
		fmt.Fprintln(d.out, "Out of cards. Unable to deal")
		return ErrOutOfCards
	}
	h.Add(c)
	return nil
}

// AdditionalCards keeps dealing to p while it wants a card and has not
// busted, showing the hand after every card.
func (d *Deck) AdditionalCards(p Participant) {
	for p.IsHitting() && !p.IsBusted() {
		if err := d.Deal(p.Hand()); err != nil {
			// nothing left to hand out, asking again would loop forever
			break
		}
		fmt.Fprintln(d.out, p.String())
	}
	if p.IsBusted() {
		p.Bust()
	}
}

// Replenish repopulates and shuffles when fewer than threshold cards are
// left. A threshold of 0 never replenishes.
func (d *Deck) Replenish(threshold int) bool {
	if threshold <= 0 || d.Len() >= threshold {
		return false
	}
	log.Debug().Int("remaining", d.Len()).Msg("replenish deck")
	d.Populate()
	d.Shuffle()
	return true
}
