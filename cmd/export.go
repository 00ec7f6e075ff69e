package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resolved flower table",
	Long: `Export every flower label with the meaning it resolves to, after duplicate
keys have been settled, sorted by label.

Examples:
  floriography export
  floriography export --format csv --output flowers.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, err := newService(cfg, serviceOptions{noNarrative: true, noImage: true})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := svc.Export(cmd.Context(), exportFormat, out); err != nil {
		return lookupError(cmd, err)
	}
	return nil
}
