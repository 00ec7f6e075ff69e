package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Yates-Labs/floriography/internal/orchestrator"
	"github.com/Yates-Labs/floriography/internal/render"
	"github.com/spf13/cobra"
)

var (
	noNarrative bool
	noImage     bool
	offline     bool
)

var flowerCmd = &cobra.Command{
	Use:   "flower [name]",
	Short: "Look up the meaning of a flower",
	Long: `Look up what a flower means, with a short explanation of the cultural or
historical significance and a picture when one is available.

The name is the color and flower as they appear in the dataset, matched
without regard to case or surrounding whitespace.

Examples:
  floriography flower red rose
  floriography flower "White Lily" --no-image
  floriography flower tulip --offline`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFlower,
}

var meaningCmd = &cobra.Command{
	Use:   "meaning [meaning]",
	Short: "Find the flower that carries a meaning",
	Long: `Find the flower associated with a meaning, with a picture when one is available.

Examples:
  floriography meaning love
  floriography meaning "Pure and lovely"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMeaning,
}

func init() {
	rootCmd.AddCommand(flowerCmd)
	rootCmd.AddCommand(meaningCmd)

	flowerCmd.Flags().BoolVar(&noNarrative, "no-narrative", false, "Skip narrative generation")
	flowerCmd.Flags().BoolVar(&offline, "offline", false, "Use a canned narrative instead of calling the model")
	for _, c := range []*cobra.Command{flowerCmd, meaningCmd} {
		c.Flags().BoolVar(&noImage, "no-image", false, "Skip the image lookup")
	}
}

func lookupOptions() serviceOptions {
	return serviceOptions{noNarrative: noNarrative, noImage: noImage, offline: offline}
}

func runFlower(cmd *cobra.Command, args []string) error {
	svc, err := newService(cfg, lookupOptions())
	if err != nil {
		return err
	}

	res, err := svc.LookupFlower(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return lookupError(cmd, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Flower(res))
	return nil
}

func runMeaning(cmd *cobra.Command, args []string) error {
	svc, err := newService(cfg, serviceOptions{noNarrative: true, noImage: noImage})
	if err != nil {
		return err
	}

	res, err := svc.LookupMeaning(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return lookupError(cmd, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Meaning(res))
	return nil
}

// lookupError shows the dataset panel for load failures and passes the error
// on so the process exits non-zero.
func lookupError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, orchestrator.ErrDatasetUnavailable):
		fmt.Fprintln(cmd.OutOrStdout(), render.DatasetError(err))
		return err
	case errors.Is(err, orchestrator.ErrNoSelection):
		return fmt.Errorf("nothing to look up: %w", err)
	default:
		return err
	}
}
