package console

import (
	"context"
	"text/tabwriter"

	"github.com/psucodervn/blackjack/internal/game"
	"github.com/psucodervn/blackjack/internal/stringer"
)

// PrintSummary prints how every player did over the session.
func (h *Handler) PrintSummary(ctx context.Context, g *game.Game) error {
	tallies, err := h.game.Summary(ctx, g.ID())
	if err != nil {
		return err
	}
	if len(tallies) == 0 {
		return nil
	}

	h.printf("\nRounds played: %s\n", stringer.FormatNumber(g.Rounds()))
	tw := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	_, _ = tw.Write([]byte("Player\tWins\tLosses\tPushes\tBusts\tWin rate\n"))
	for _, t := range tallies {
		_, _ = tw.Write([]byte(stringer.Capitalize(t.Name) + "\t" +
			stringer.FormatNumber(t.Wins) + "\t" +
			stringer.FormatNumber(t.Losses) + "\t" +
			stringer.FormatNumber(t.Pushes) + "\t" +
			stringer.FormatNumber(t.Busts) + "\t" +
			stringer.Percent(t.Wins, t.Rounds()) + "\n"))
	}
	return nil
}
