package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fadedpez/cardkit/pkg/cards"
	"github.com/fadedpez/cardkit/pkg/types"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [card_name...]",
		Short: "Describe cards given by short or pack name",
		Long: `Describe parses each card name (for example QS, TD or AH1) and prints
its pack name, short name, long name, unicode name and color.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			failed := 0
			for _, name := range args {
				card, err := cards.ParseCard(name)
				if err != nil {
					a.logger.LogError(err)
					fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s: not a card name\n", name)
					failed++
					continue
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\tpack %d\t%s\n",
					card.PackName(),
					card.Name(),
					card.LongName(),
					a.styler.Paint(card.Suit.Color(), card.UnicodeNameVariant(a.variant)),
					card.PackID,
					card.Suit.Color(),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return types.NewCardError(types.ErrInvalidCardName, fmt.Sprintf("%d of %d card names could not be parsed", failed, len(args)))
			}
			return nil
		},
	}
}

func newRanksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "List the thirteen ranks from ace to king",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range cards.AllRanks() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Code(), r.TrueName(), r.LongName())
			}
			return w.Flush()
		},
	}
}

func newSuitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suits",
		Short: "List the four suits in bridge order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range cards.AllSuits() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					s.Code(),
					a.styler.Paint(s.Color(), s.UnicodeNameVariant(a.variant)),
					s.LongName(),
					s.Color(),
				)
			}
			return w.Flush()
		},
	}
}

func newPackCmd(a *app) *cobra.Command {
	var packs int

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "List the pack names of every card in one or more packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := cards.NewPacks(packs)
			if err != nil {
				return err
			}
			a.logger.Debug("listing %d cards from %d packs", len(all), packs)

			// one line per suit of each pack
			for start := 0; start < len(all); start += len(cards.AllRanks()) {
				row := all[start : start+len(cards.AllRanks())]
				names := make([]string, len(row))
				for i, c := range row {
					names[i] = a.styler.Paint(c.Suit.Color(), c.PackName())
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&packs, "packs", "n", a.cfg.Packs, "number of packs")
	return cmd
}
