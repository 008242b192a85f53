package game

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/psucodervn/blackjack/internal/model"
)

var ErrRoundNotFound = errors.New("round not found")

// Manager plays rounds on games and keeps their history.
type Manager struct {
	store Storage

	mu                sync.RWMutex
	onRoundFinishFunc OnRoundFinishFunc
}

type OnRoundFinishFunc func(g *Game, r Round)

func NewManager(store Storage) *Manager {
	return &Manager{store: store}
}

func (m *Manager) OnRoundFinish(f OnRoundFinishFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onRoundFinishFunc = f
}

// PlayRound plays one round of g and records it. A failed save is reported
// but the round still counts.
func (m *Manager) PlayRound(ctx context.Context, g *Game) (Round, error) {
	r := g.Play()

	var err error
	if m.store != nil {
		if err = m.store.SaveRecord(ctx, ToRecord(r)); err != nil {
			log.Ctx(ctx).Err(err).Str("game_id", g.ID()).Int("number", r.Number).Msg("save round failed")
		}
	}

	m.mu.RLock()
	f := m.onRoundFinishFunc
	m.mu.RUnlock()

	if f != nil {
		f(g, r)
	}
	return r, err
}

// History returns up to limit recorded rounds of a game, newest first.
func (m *Manager) History(ctx context.Context, gameID string, limit int) ([]model.Record, error) {
	if m.store == nil {
		return nil, nil
	}
	return m.store.ListRecords(ctx, gameID, limit)
}

func (m *Manager) Round(ctx context.Context, gameID string, number int) (*model.Record, error) {
	if m.store == nil {
		return nil, ErrRoundNotFound
	}
	r, err := m.store.GetRecord(ctx, gameID, number)
	if err != nil {
		if model.IsNotFound(err) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return r, nil
}

// Summary tallies every seat's outcomes over the recorded rounds, in
// seating order. Players sharing a name keep separate rows.
func (m *Manager) Summary(ctx context.Context, gameID string) ([]model.Tally, error) {
	records, err := m.History(ctx, gameID, 0)
	if err != nil {
		return nil, err
	}

	var tallies []model.Tally
	idx := make(map[int]int)
	for i := len(records) - 1; i >= 0; i-- {
		for _, s := range records[i].Players {
			j, ok := idx[s.Index]
			if !ok {
				j = len(tallies)
				idx[s.Index] = j
				tallies = append(tallies, model.Tally{Name: s.Name})
			}
			tallies[j].Add(s.Outcome)
		}
	}
	return tallies, nil
}

func ToRecord(r Round) *model.Record {
	rec := &model.Record{
		GameID:  r.GameID,
		RoundID: r.ID,
		Number:  r.Number,
		House:   toSeat(r.House),
	}
	for _, s := range r.Players {
		rec.Players = append(rec.Players, toSeat(s))
	}
	return rec
}

func toSeat(s SeatResult) model.Seat {
	return model.Seat{
		Index:   s.Seat,
		Name:    s.Name,
		Cards:   s.Cards.String(),
		Total:   s.Total,
		Outcome: model.Outcome(s.Result.String()),
	}
}
