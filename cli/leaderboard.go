package cli

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/persistence"
	"github.com/automoto/kickoff/simulation"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const defaultListLimit = 10

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8b949e"))
	styleRank   = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color("#6e7681"))
	styleScore  = lipgloss.NewStyle().Width(7).Align(lipgloss.Right).Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleResult = lipgloss.NewStyle().Width(8).PaddingLeft(2)
	styleDate   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#6e7681"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))

	outcomeColors = map[simulation.Outcome]lipgloss.Color{
		simulation.PlayerWin:   lipgloss.Color("#7ee787"),
		simulation.OpponentWin: lipgloss.Color("#ff7b72"),
		simulation.Draw:        lipgloss.Color("#d0d7de"),
	}
)

func newLeaderboardCmd(deps Deps) *cobra.Command {
	var (
		limit int
		wipe  bool
	)

	c := &cobra.Command{
		Use:          "leaderboard",
		Short:        "Print the saved high score and leaderboard",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := deps.OpenStore(cfg.Match.AppName)
			if err != nil {
				return err
			}

			if wipe {
				if err := persistence.Clear(store); err != nil {
					return fmt.Errorf("clear leaderboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Leaderboard cleared.")
				return nil
			}

			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLeaderboard(store.HighScore(), store.Leaderboard(), limit))
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", defaultListLimit, "number of entries to print")
	c.Flags().BoolVar(&wipe, "clear", false, "erase the high score and every entry")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

func renderLeaderboard(high int, entries []persistence.Entry, limit int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("High score: %d", high)))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(styleDim.Render("No matches played yet."))
		b.WriteString("\n")
		return b.String()
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styleRank.Inherit(styleHeader).Render("#"),
		styleScore.Inherit(styleHeader).Render("SCORE"),
		styleResult.Inherit(styleHeader).Render("RESULT"),
		styleDate.Inherit(styleHeader).Render("PLAYED"),
	))
	b.WriteString("\n")

	for i, e := range entries {
		outcome := simulation.Compare(e.Score, e.Opponent)
		result := styleResult.Foreground(outcomeColors[outcome]).Render(outcome.String())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			styleRank.Render(fmt.Sprintf("%d.", i+1)),
			styleScore.Render(fmt.Sprintf("%d-%d", e.Score, e.Opponent)),
			result,
			styleDate.Render(e.At.Local().Format("2006-01-02 15:04")),
		))
		b.WriteString("\n")
	}
	return b.String()
}
