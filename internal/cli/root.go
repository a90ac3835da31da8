package cli

import (
	"github.com/fadedpez/cardkit/internal/config"
	"github.com/fadedpez/cardkit/internal/logging"
	"github.com/fadedpez/cardkit/pkg/cards"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are resolved
type app struct {
	cfg     *config.Config
	logger  *logging.Logger
	styler  Styler
	variant cards.Variant

	colorMode   string
	variantName string
}

// NewRootCmd builds the cardkit command tree
func NewRootCmd(cfg *config.Config, logger *logging.Logger) *cobra.Command {
	return newRootCmd(&app{cfg: cfg, logger: logger})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cardkit",
		Short: "Inspect playing card names",
		Long: `Cardkit parses and describes playing cards written as short names
such as QS (queen of spades) or TD1 (ten of diamonds from the second pack).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.colorMode, "color", a.cfg.Color, "color output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&a.variantName, "variant", a.cfg.UnicodeVariant, "suit symbol presentation: emoji or text")

	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newRanksCmd(a))
	rootCmd.AddCommand(newSuitsCmd(a))
	rootCmd.AddCommand(newPackCmd(a))

	return rootCmd
}

// resolve turns the persistent flags into a styler and variant
func (a *app) resolve(cmd *cobra.Command) error {
	variant, err := cards.ParseVariant(a.variantName)
	if err != nil {
		return err
	}
	a.variant = variant

	if a.styler == nil {
		styler, err := stylerFor(a.colorMode, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		a.styler = styler
	}

	a.logger.Debug("running %s with color=%s variant=%s", cmd.Name(), a.colorMode, a.variant)
	return nil
}
