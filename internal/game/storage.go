package game

import (
	"context"

	"github.com/psucodervn/blackjack/internal/model"
)

type Storage interface {
	SaveRecord(ctx context.Context, r *model.Record) error
	ListRecords(ctx context.Context, gameID string, limit int) ([]model.Record, error)
	GetRecord(ctx context.Context, gameID string, number int) (*model.Record, error)
	Close() error
}
