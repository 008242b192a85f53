package model

type Outcome string

const (
	OutcomeWin   Outcome = "win"
	OutcomeLose  Outcome = "lose"
	OutcomePush  Outcome = "push"
	OutcomeBust  Outcome = "bust"
	OutcomeStand Outcome = "stand"
)

type (
	// Record is one finished round as kept in the session history.
	Record struct {
		ID      uint64 `badgerhold:"key"`
		GameID  string `badgerhold:"index"`
		RoundID string
		Number  int
		House   Seat
		Players []Seat
	}

	// Seat is a participant's hand in a Record. Index is the player's
	// position at the table; the house seat keeps 0.
	Seat struct {
		Index   int
		Name    string
		Cards   string
		Total   int
		Outcome Outcome
	}
)

// Tally counts the outcomes of one player over a session.
type Tally struct {
	Name   string
	Wins   int
	Losses int
	Pushes int
	Busts  int
}

func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Pushes + t.Busts
}

func (t *Tally) Add(o Outcome) {
	switch o {
	case OutcomeWin:
		t.Wins++
	case OutcomeLose:
		t.Losses++
	case OutcomePush:
		t.Pushes++
	case OutcomeBust:
		t.Busts++
	}
}
