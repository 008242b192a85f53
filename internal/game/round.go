package game

// Round is what a finished round looked like just before the hands were
// cleared.
type Round struct {
	ID      string
	GameID  string
	Number  int
	House   SeatResult
	Players []SeatResult
}

// SeatResult is one participant's hand at the end of a round. Seat is the
// player's position at the table and stays the same for the whole game;
// names may repeat.
type SeatResult struct {
	Seat   int
	Name   string
	Cards  Cards
	Total  int
	Result Result
}

func newSeatResult(p Participant, res Result) SeatResult {
	return SeatResult{
		Name:   p.Name(),
		Cards:  p.Hand().Cards(),
		Total:  p.Hand().Total(),
		Result: res,
	}
}
