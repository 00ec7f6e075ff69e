package cmd

import (
	"errors"
	"fmt"

	"github.com/Yates-Labs/floriography/internal/lookup"
	"github.com/Yates-Labs/floriography/internal/orchestrator"
	"github.com/Yates-Labs/floriography/internal/render"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick flowers and meanings from interactive lists",
	Long: `Browse the dataset with two selection lists, one of flower names and one of
meanings. Each list starts with "None"; choosing None in both lists, or
pressing Ctrl+C, ends the session.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVar(&noNarrative, "no-narrative", false, "Skip narrative generation")
	browseCmd.Flags().BoolVar(&noImage, "no-image", false, "Skip the image lookup")
	browseCmd.Flags().BoolVar(&offline, "offline", false, "Use a canned narrative instead of calling the model")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	svc, err := newService(cfg, lookupOptions())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	vocab, err := svc.Vocabulary(ctx)
	if err != nil {
		return lookupError(cmd, err)
	}

	fmt.Fprintln(out, render.Banner())
	fmt.Fprintln(out)

	for {
		flower, meaning := orchestrator.NoneOption, orchestrator.NoneOption

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Enter a flower name (e.g., 'Red Rose'):").
					Options(selectOptions(vocab.Flowers)...).
					Value(&flower),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Enter a meaning to find the flower:").
					Options(selectOptions(vocab.Meanings)...).
					Value(&meaning),
			),
		).WithShowHelp(false)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if !orchestrator.IsSelection(flower) && !orchestrator.IsSelection(meaning) {
			return nil
		}

		if orchestrator.IsSelection(flower) {
			res, err := svc.LookupFlower(ctx, flower)
			if err != nil {
				return lookupError(cmd, err)
			}
			fmt.Fprintln(out, render.Flower(res))
		}
		if orchestrator.IsSelection(meaning) {
			res, err := svc.LookupMeaning(ctx, meaning)
			if err != nil {
				return lookupError(cmd, err)
			}
			fmt.Fprintln(out, render.Meaning(res))
		}
		fmt.Fprintln(out)
	}
}

// selectOptions puts the None placeholder ahead of the sorted keys.
func selectOptions(keys []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(keys)+1)
	options = append(options, huh.NewOption(orchestrator.NoneOption, orchestrator.NoneOption))
	for _, k := range keys {
		options = append(options, huh.NewOption(lookup.DisplayName(k), k))
	}
	return options
}
