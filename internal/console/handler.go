package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/psucodervn/blackjack/internal/config"
	"github.com/psucodervn/blackjack/internal/game"
)

// Handler drives a blackjack session over a line oriented terminal.
type Handler struct {
	game    *game.Manager
	cfg     config.GameConfig
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

func NewHandler(manager *game.Manager, cfg config.GameConfig, in io.Reader, out io.Writer) *Handler {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Handler{
		game:    manager,
		cfg:     cfg,
		scanner: sc,
		out:     out,
	}
}

// Run plays rounds until the table declines another one. Names are asked
// for when none are given; bots computer players are seated after them.
func (h *Handler) Run(ctx context.Context, names []string, bots int) error {
	h.printf("\t\tWelcome to Blackjack!\n\n")

	if len(names) == 0 {
		n, err := h.AskPlayerCount(h.maxHumans(bots))
		if err != nil {
			return err
		}
		if names, err = h.AskNames(n); err != nil {
			return err
		}
		h.printf("\n")
	}

	opts := []game.Option{
		game.WithOutput(h.out),
		game.WithRand(game.NewRand(h.cfg.Seed)),
		game.WithDecider(h),
		game.WithHouse(h.cfg.HouseName, h.cfg.HouseHitsUntil),
		game.WithMaxPlayers(h.cfg.MaxPlayers),
		game.WithReshuffleBelow(h.cfg.ReshuffleBelow),
	}
	for i := 1; i <= bots; i++ {
		opts = append(opts, game.WithPlayerDecider(len(names), game.BotDecider{HitsUntil: h.cfg.BotHitsUntil}))
		names = append(names, fmt.Sprint("Bot#", i))
	}

	g, err := game.NewGame(names, opts...)
	if err != nil {
		return err
	}

	for again := true; again; again = h.AskPlayAgain() {
		if _, err := h.game.PlayRound(ctx, g); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("round not recorded")
		}
	}

	return h.PrintSummary(ctx, g)
}

func (h *Handler) maxHumans(bots int) int {
	n := h.cfg.MaxPlayers
	if n <= 0 {
		n = game.DefaultMaxPlayers
	}
	if n -= bots; n < 1 {
		n = 1
	}
	return n
}

// AskPlayerCount asks until it gets a number in 1..limit. Anything that is
// not a number counts as 0.
func (h *Handler) AskPlayerCount(limit int) (int, error) {
	for {
		h.printf("How many players? (1-%d): ", limit)
		s, ok := h.next()
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		n, err := cast.ToIntE(s)
		if err != nil {
			log.Debug().Str("input", s).Msg("invalid player count")
		}
		if n >= 1 && n <= limit {
			return n, nil
		}
	}
}

func (h *Handler) AskNames(n int) ([]string, error) {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		h.printf("Enter player name: ")
		s, ok := h.next()
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		names = append(names, s)
	}
	return names, nil
}

// WantsHit asks a human player for a y/n answer. Anything but y or Y,
// including a closed input, stands.
func (h *Handler) WantsHit(p *game.Player) bool {
	h.printf("\n%s, do you want a hit? (y/n): ", p.Name())
	s, ok := h.next()
	if !ok {
		return false
	}
	return isYes(s)
}

func (h *Handler) AskPlayAgain() bool {
	h.printf("Do you want to play again? (Y/N)\n")
	s, ok := h.next()
	if !ok {
		return false
	}
	return isYes(s)
}

func (h *Handler) next() (string, bool) {
	if h.eof {
		return "", false
	}
	if !h.scanner.Scan() {
		h.eof = true
		if err := h.scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
			log.Err(err).Msg("read input failed")
		}
		return "", false
	}
	return h.scanner.Text(), true
}

func (h *Handler) printf(format string, a ...any) {
	fmt.Fprintf(h.out, format, a...)
}

func isYes(s string) bool {
	return strings.HasPrefix(s, "y") || strings.HasPrefix(s, "Y")
}
