package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/irfansharif/harmony/internal/app"
	"github.com/irfansharif/harmony/internal/config"
	"github.com/irfansharif/harmony/internal/palette"
)

var log = logrus.New()

var (
	seedFlag    string
	ruleFlag    string
	sortFlag    string
	formatFlag  string
	countFlag   int
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "harmony",
	Short: "Derive color palettes from a seed color",
	Long: `harmony derives a palette from one seed color using a classical
harmony rule, and prints the swatches.

Settings come from HARMONY_* environment variables (or a .env file) and
are overridden by flags.

Examples:
  harmony --seed '#ff0000'                  # triad from red
  harmony --seed '#3366cc' --rule tetradic  # four evenly spaced hues
  harmony --rule analogous --sort brightness --count 3 --format json`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			log.SetLevel(logrus.DebugLevel)
			app.EnableDebug(os.Stderr)
			palette.EnableDebug(os.Stderr)
		}
	},
	RunE: runPalette,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available harmony rules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range palette.Names() {
			r, _ := palette.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d colors\n", name, r.Size())
		}
	},
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging for the CLI, app and palette packages")
	rootCmd.Flags().StringVarP(&seedFlag, "seed", "s", "", "seed color as #rrggbb (default random)")
	rootCmd.Flags().StringVarP(&ruleFlag, "rule", "r", "", "harmony rule (see 'harmony rules')")
	rootCmd.Flags().StringVar(&sortFlag, "sort", "", "sort swatches by hue, saturation or brightness")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: text or json")
	rootCmd.Flags().IntVarP(&countFlag, "count", "n", 1, "number of palettes to derive")

	rootCmd.AddCommand(rulesCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if seedFlag != "" {
		if err := cfg.SetSeed(seedFlag); err != nil {
			return err
		}
	}
	if ruleFlag != "" {
		if err := cfg.SetRule(ruleFlag); err != nil {
			return err
		}
	}
	if sortFlag != "" {
		if err := cfg.SetSort(sortFlag); err != nil {
			return err
		}
	}
	if formatFlag != "" {
		if err := cfg.SetFormat(formatFlag); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"rule":        cfg.Rule.Name(),
		"random_seed": cfg.RandomSeed,
		"format":      cfg.Format,
	}).Debug("configuration loaded")

	palettes, err := app.NewApp(cfg).GenerateN(countFlag)
	if err != nil {
		return err
	}
	return app.Write(cmd.OutOrStdout(), cfg.Format, palettes)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
