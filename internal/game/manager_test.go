package game

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psucodervn/blackjack/internal/model"
)

type memStorage struct {
	records []model.Record
	saveErr error
}

func (m *memStorage) SaveRecord(ctx context.Context, r *model.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	r.ID = uint64(len(m.records) + 1)
	m.records = append(m.records, *r)
	return nil
}

func (m *memStorage) ListRecords(ctx context.Context, gameID string, limit int) ([]model.Record, error) {
	var rs []model.Record
	for _, r := range m.records {
		if r.GameID == gameID {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Number > rs[j].Number })
	if limit > 0 && len(rs) > limit {
		rs = rs[:limit]
	}
	return rs, nil
}

func (m *memStorage) GetRecord(ctx context.Context, gameID string, number int) (*model.Record, error) {
	for _, r := range m.records {
		if r.GameID == gameID && r.Number == number {
			return &r, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memStorage) Close() error {
	return nil
}

func TestManager_PlayRound(t *testing.T) {
	ctx := context.Background()
	store := &memStorage{}
	m := NewManager(store)

	var finished []int
	m.OnRoundFinish(func(g *Game, r Round) {
		finished = append(finished, r.Number)
	})

	g, _ := newTestGame(t, []string{"Alice"})
	stackDeck(g.deck, 9, 7, 12, 6)
	r, err := m.PlayRound(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, finished)

	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.Equal(t, g.ID(), rec.GameID)
	assert.Equal(t, r.ID, rec.RoundID)
	assert.Equal(t, model.Seat{Name: "House", Cards: "Kc 7c", Total: 17, Outcome: model.OutcomeStand}, rec.House)
	assert.Equal(t, []model.Seat{{Name: "Alice", Cards: "10c 8c", Total: 18, Outcome: model.OutcomeWin}}, rec.Players)
}

func TestManager_PlayRound_SaveFails(t *testing.T) {
	saveErr := errors.New("disk full")
	m := NewManager(&memStorage{saveErr: saveErr})

	called := false
	m.OnRoundFinish(func(g *Game, r Round) { called = true })

	g, _ := newTestGame(t, []string{"Alice"})
	r, err := m.PlayRound(context.Background(), g)
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, 1, r.Number)
	assert.True(t, called)
}

func TestManager_HistoryAndSummary(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&memStorage{})

	bust := &scripted{answers: []bool{true}}
	g, _ := newTestGame(t, []string{"Alice", "Bob"}, WithPlayerDecider(1, bust))
	// round 1: Alice 10c 8c, Bob 10d 2d, House Kc 7c, Bob hits Kd
	stackDeck(g.deck, 9, 7, 22, 14, 12, 6, 25)
	_, err := m.PlayRound(ctx, g)
	require.NoError(t, err)

	// round 2: Alice 10h 7h, Bob 10s 9s, House Kh 7s
	stackDeck(g.deck, 35, 32, 48, 47, 38, 45)
	_, err = m.PlayRound(ctx, g)
	require.NoError(t, err)

	history, err := m.History(ctx, g.ID(), 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Number)

	history, err = m.History(ctx, g.ID(), 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	tallies, err := m.Summary(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, []model.Tally{
		{Name: "Alice", Wins: 1, Pushes: 1},
		{Name: "Bob", Wins: 1, Busts: 1},
	}, tallies)

	rec, err := m.Round(ctx, g.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeBust, rec.Players[1].Outcome)

	_, err = m.Round(ctx, g.ID(), 3)
	assert.ErrorIs(t, err, ErrRoundNotFound)
}

func TestManager_Summary_DuplicateNames(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&memStorage{})

	bust := &scripted{answers: []bool{true}}
	g, _ := newTestGame(t, []string{"Bob", "Bob"}, WithPlayerDecider(1, bust))
	stackDeck(g.deck, 9, 7, 22, 14, 12, 6, 25)
	_, err := m.PlayRound(ctx, g)
	require.NoError(t, err)

	stackDeck(g.deck, 35, 32, 48, 47, 38, 45)
	_, err = m.PlayRound(ctx, g)
	require.NoError(t, err)

	tallies, err := m.Summary(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, []model.Tally{
		{Name: "Bob", Wins: 1, Pushes: 1},
		{Name: "Bob", Wins: 1, Busts: 1},
	}, tallies)
	for _, tl := range tallies {
		assert.Equal(t, 2, tl.Rounds())
	}

	rec, err := m.Round(ctx, g.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Players[0].Index)
	assert.Equal(t, 1, rec.Players[1].Index)
}

func TestManager_WithoutStorage(t *testing.T) {
	m := NewManager(nil)
	g, _ := newTestGame(t, []string{"Alice"})

	_, err := m.PlayRound(context.Background(), g)
	require.NoError(t, err)

	tallies, err := m.Summary(context.Background(), g.ID())
	require.NoError(t, err)
	assert.Empty(t, tallies)
}
