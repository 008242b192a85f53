package game

import (
	"errors"
)

var (
	ErrOutOfCards     = errors.New("out of cards")
	ErrNoCardToFlip   = errors.New("no card to flip")
	ErrNoPlayers      = errors.New("no players")
	ErrTooManyPlayers = errors.New("too many players")
)
