package play

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/psucodervn/blackjack/internal/config"
	"github.com/psucodervn/blackjack/internal/console"
	"github.com/psucodervn/blackjack/internal/game"
	"github.com/psucodervn/blackjack/internal/storage"
)

var (
	players []string
	bots    int
	seed    int64
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "play blackjack against the house",
		Run:   run,
	}
	cmd.Flags().StringSliceVarP(&players, "player", "p", nil, "player names, asked for when empty")
	cmd.Flags().IntVar(&bots, "bots", 0, "number of computer players")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed, 0 seeds from the clock")
	return cmd
}

func run(cmd *cobra.Command, args []string) {
	cfg := config.MustReadGameConfig()
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	store, err := storage.NewBadgerHoldStorage()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Err(err).Msg("failed to close storage")
		}
	}()

	ctx := log.Logger.WithContext(context.Background())
	manager := game.NewManager(store)
	manager.OnRoundFinish(func(g *game.Game, r game.Round) {
		log.Debug().Str("game_id", g.ID()).Int("round", r.Number).
			Int("cards_left", g.Deck().Len()).Msg("round recorded")
	})

	h := console.NewHandler(manager, cfg, os.Stdin, os.Stdout)
	if err := h.Run(ctx, players, bots); err != nil {
		log.Error().Err(err).Msg("game aborted")
	}
}
