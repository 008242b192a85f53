package game

import (
	"fmt"
	"io"
)

// Decider answers the hit-or-stand question for a player. Implementations
// may block, e.g. waiting on console input.
type Decider interface {
	WantsHit(p *Player) bool
}

// DeciderFunc adapts a plain function to Decider.
type DeciderFunc func(p *Player) bool

func (f DeciderFunc) WantsHit(p *Player) bool {
	return f(p)
}

// BotDecider hits while the hand total is at or below HitsUntil.
type BotDecider struct {
	HitsUntil int
}

func (b BotDecider) WantsHit(p *Player) bool {
	return p.hand.Total() <= b.HitsUntil
}

type Player struct {
	seat
	decider Decider
}

func NewPlayer(name string, decider Decider, out io.Writer) *Player {
	if out == nil {
		out = io.Discard
	}
	return &Player{
		seat:    seat{name: name, out: out},
		decider: decider,
	}
}

func (p *Player) IsHitting() bool {
	if p.decider == nil {
		return false
	}
	return p.decider.WantsHit(p)
}

func (p *Player) Win() {
	fmt.Fprintf(p.out, "%s wins\n", p.name)
}

func (p *Player) Lose() {
	fmt.Fprintf(p.out, "%s loses\n", p.name)
}

func (p *Player) Push() {
	fmt.Fprintf(p.out, "%s pushes\n", p.name)
}
