package storage

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/psucodervn/blackjack/internal/model"
)

// BadgerHoldStorage keeps the round history of a session. It runs badger
// in memory, so nothing outlives the process.
type BadgerHoldStorage struct {
	store *badgerhold.Store
}

func NewBadgerHoldStorage() (*BadgerHoldStorage, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = ""
	opts.ValueDir = ""
	opts.InMemory = true
	opts.NumVersionsToKeep = 1
	opts.Logger = nil
	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerHoldStorage{
		store: store,
	}, nil
}

func (b *BadgerHoldStorage) Close() error {
	return b.store.Close()
}

func (b *BadgerHoldStorage) SaveRecord(ctx context.Context, r *model.Record) error {
	return b.store.Insert(badgerhold.NextSequence(), r)
}

// ListRecords returns the rounds of a game, newest first. A limit of 0
// returns all of them.
func (b *BadgerHoldStorage) ListRecords(ctx context.Context, gameID string, limit int) ([]model.Record, error) {
	var records []model.Record
	q := badgerhold.Where("GameID").Eq(gameID).Index("GameID").SortBy("Number").Reverse()
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := b.store.Find(&records, q)
	return records, err
}

func (b *BadgerHoldStorage) GetRecord(ctx context.Context, gameID string, number int) (*model.Record, error) {
	var r model.Record
	err := b.store.FindOne(&r, badgerhold.Where("GameID").Eq(gameID).And("Number").Eq(number))
	if err != nil {
		return nil, err
	}
	return &r, nil
}
