package cmd

import (
	"fmt"
	"time"

	"github.com/Yates-Labs/floriography/internal/render"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:       "list [flowers|meanings]",
	Short:     "List the flowers or meanings in the dataset",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"flowers", "meanings"},
	RunE:      runList,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of the loaded dataset",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newService(cfg, serviceOptions{noNarrative: true, noImage: true})
	if err != nil {
		return err
	}

	vocab, err := svc.Vocabulary(cmd.Context())
	if err != nil {
		return lookupError(cmd, err)
	}

	which := "flowers"
	if len(args) == 1 {
		which = args[0]
	}

	out := cmd.OutOrStdout()
	switch which {
	case "meanings":
		fmt.Fprintln(out, render.List("Meanings", vocab.Meanings))
	default:
		fmt.Fprintln(out, render.List("Flowers", vocab.Flowers))
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	svc, err := newService(cfg, serviceOptions{noNarrative: true, noImage: true})
	if err != nil {
		return err
	}

	status, err := svc.Status(cmd.Context())
	if err != nil {
		return lookupError(cmd, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Status(status, time.Now()))
	return nil
}
