package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

const DefaultMaxPlayers = 7

type Status uint32

const (
	Idle Status = iota
	InitialDeal
	Reveal
	PlayerTurns
	HouseReveal
	HouseTurn
	Settlement
	Cleanup
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case InitialDeal:
		return "initial_deal"
	case Reveal:
		return "reveal"
	case PlayerTurns:
		return "player_turns"
	case HouseReveal:
		return "house_reveal"
	case HouseTurn:
		return "house_turn"
	case Settlement:
		return "settlement"
	case Cleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

type Result uint8

const (
	Win Result = iota
	Push
	Lose
	Busted
	Stood
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Push:
		return "push"
	case Lose:
		return "lose"
	case Busted:
		return "bust"
	default:
		return "stand"
	}
}

// Game runs rounds between one house and a fixed list of players. It is not
// safe for concurrent use.
type Game struct {
	id      string
	deck    *Deck
	house   *House
	players []*Player
	out     io.Writer

	reshuffleBelow int
	status         atomic.Uint32
	rounds         atomic.Uint32
}

type options struct {
	out            io.Writer
	rng            *rand.Rand
	decider        Decider
	deciders       map[int]Decider
	houseName      string
	houseHitsUntil int
	maxPlayers     int
	reshuffleBelow int
}

type Option func(o *options)

// WithOutput sets where the table is printed.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithRand replaces the wall clock seeded generator.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithDecider sets the decider used by every player without its own.
func WithDecider(d Decider) Option {
	return func(o *options) { o.decider = d }
}

// WithPlayerDecider overrides the decider of the player at index seat of
// the names given to NewGame.
func WithPlayerDecider(seat int, d Decider) Option {
	return func(o *options) {
		if o.deciders == nil {
			o.deciders = make(map[int]Decider)
		}
		o.deciders[seat] = d
	}
}

func WithHouse(name string, hitsUntil int) Option {
	return func(o *options) {
		o.houseName = name
		o.houseHitsUntil = hitsUntil
	}
}

func WithMaxPlayers(n int) Option {
	return func(o *options) { o.maxPlayers = n }
}

// WithReshuffleBelow refills the deck before a round when fewer than n
// cards are left.
func WithReshuffleBelow(n int) Option {
	return func(o *options) { o.reshuffleBelow = n }
}

// NewGame seats the named players in order. Blank names are skipped. The
// deck is populated and shuffled once, here.
func NewGame(names []string, opts ...Option) (*Game, error) {
	o := options{
		out:            io.Discard,
		houseName:      DefaultHouseName,
		houseHitsUntil: DefaultHouseHitsUntil,
		maxPlayers:     DefaultMaxPlayers,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var seated []string
	var seatDeciders []Decider
	for i, name := range names {
		if name = strings.TrimSpace(name); len(name) > 0 {
			d := o.decider
			if pd, ok := o.deciders[i]; ok {
				d = pd
			}
			seated = append(seated, name)
			seatDeciders = append(seatDeciders, d)
		}
	}
	if len(seated) == 0 {
		return nil, ErrNoPlayers
	}
	if o.maxPlayers > 0 && len(seated) > o.maxPlayers {
		return nil, fmt.Errorf("%w: %d seats, %d players", ErrTooManyPlayers, o.maxPlayers, len(seated))
	}

	g := &Game{
		id:             xid.New().String(),
		deck:           NewDeck(o.rng, o.out),
		house:          NewHouse(o.houseName, o.houseHitsUntil, o.out),
		out:            o.out,
		reshuffleBelow: o.reshuffleBelow,
	}
	for i, name := range seated {
		g.players = append(g.players, NewPlayer(name, seatDeciders[i], o.out))
	}
	g.deck.Shuffle()

	log.Debug().Str("game_id", g.id).Strs("players", seated).Msg("new game")
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) House() *House {
	return g.house
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) Status() Status {
	return Status(g.status.Load())
}

// Rounds returns how many rounds have been played.
func (g *Game) Rounds() int {
	return int(g.rounds.Load())
}

// Play runs one full round and returns what happened in it. Every hand is
// empty again when it returns.
func (g *Game) Play() Round {
	if g.deck.Replenish(g.reshuffleBelow) {
		log.Debug().Str("game_id", g.id).Msg("deck reshuffled")
	}

	g.setStatus(InitialDeal)
	for _, p := range g.players {
		g.deal(p)
		g.deal(p)
	}
	g.deal(g.house)
	g.deal(g.house)

	g.setStatus(Reveal)
	_ = g.house.FlipFirstCard()
	for _, p := range g.players {
		fmt.Fprintln(g.out, p.String())
	}
	fmt.Fprintln(g.out, g.house.String())

	g.setStatus(PlayerTurns)
	for _, p := range g.players {
		g.deck.AdditionalCards(p)
	}

	g.setStatus(HouseReveal)
	_ = g.house.FlipFirstCard()
	fmt.Fprintln(g.out, g.house.String())

	g.setStatus(HouseTurn)
	g.deck.AdditionalCards(g.house)

	g.setStatus(Settlement)
	results := g.settle()
	r := g.snapshot(results)

	g.setStatus(Cleanup)
	for _, p := range g.players {
		p.hand.Clear()
	}
	g.house.hand.Clear()

	g.setStatus(Idle)
	log.Debug().Str("game_id", g.id).Str("round_id", r.ID).Int("number", r.Number).
		Int("cards_left", g.deck.Len()).Msg("round finished")
	return r
}

// settle pays out every player who did not bust. Busted players already
// heard about it on their turn.
func (g *Game) settle() []Result {
	results := make([]Result, len(g.players))
	houseTotal := g.house.Hand().Total()
	houseBusted := g.house.IsBusted()
	for i, p := range g.players {
		if p.IsBusted() {
			results[i] = Busted
			continue
		}
		if houseBusted {
			results[i] = Win
		} else {
			results[i] = Compare(p.Hand().Total(), houseTotal)
		}
		switch results[i] {
		case Win:
			p.Win()
		case Lose:
			p.Lose()
		default:
			p.Push()
		}
	}
	return results
}

func (g *Game) deal(p Participant) {
	if err := g.deck.Deal(p.Hand()); err != nil {
		log.Debug().Err(err).Str("name", p.Name()).Msg("deal skipped")
	}
}

func (g *Game) setStatus(s Status) {
	g.status.Store(uint32(s))
}

func (g *Game) snapshot(results []Result) Round {
	r := Round{
		ID:     xid.New().String(),
		GameID: g.id,
		Number: int(g.rounds.Inc()),
		House:  newSeatResult(g.house, Stood),
	}
	if g.house.IsBusted() {
		r.House.Result = Busted
	}
	for i, p := range g.players {
		sr := newSeatResult(p, results[i])
		sr.Seat = i
		r.Players = append(r.Players, sr)
	}
	return r
}

// Compare settles a player total against the house total.
func Compare(player, house int) Result {
	if player > house {
		return Win
	} else if player < house {
		return Lose
	}
	return Push
}
