package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yates-Labs/floriography/internal/server"
	"github.com/spf13/cobra"
)

var (
	addrFlag    string
	rateFlag    int
	warmDataset bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lookup page and JSON API over HTTP",
	Long: `Serve the web page with the two selection lists, the HTML panel fragments,
and the JSON API.

Endpoints:
  GET  /                 lookup page (?flower=...&meaning=...)
  GET  /developers       developer information
  GET  /flower?name=     flower panel fragment
  GET  /meaning?q=       meaning panel fragment
  GET  /api/flower       flower lookup as JSON
  GET  /api/meaning      meaning lookup as JSON
  GET  /api/vocabulary   selectable flowers and meanings
  GET  /api/status       dataset summary
  POST /api/reload       reload the dataset
  DELETE /api/cache      drop the cached dataset
  GET  /healthz          liveness`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides FLORIOGRAPHY_ADDR)")
	serveCmd.Flags().IntVar(&rateFlag, "narrative-rate", -1, "Narrative requests per IP per hour, 0 for unlimited (overrides FLORIOGRAPHY_NARRATIVE_RATE)")
	serveCmd.Flags().BoolVar(&noNarrative, "no-narrative", false, "Skip narrative generation")
	serveCmd.Flags().BoolVar(&noImage, "no-image", false, "Skip the image lookup")
	serveCmd.Flags().BoolVar(&offline, "offline", false, "Use a canned narrative instead of calling the model")
	serveCmd.Flags().BoolVar(&warmDataset, "warm", true, "Load the dataset before accepting requests")
}

func runServe(cmd *cobra.Command, args []string) error {
	if addrFlag != "" {
		cfg.Server.Addr = addrFlag
	}
	if rateFlag >= 0 {
		cfg.Server.NarrativeRate = rateFlag
	}

	svc, err := newService(cfg, lookupOptions())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed warm-up is not fatal; the page shows the dataset panel and
	// the next request retries the load.
	if warmDataset {
		if _, err := svc.Status(ctx); err != nil {
			cmd.PrintErrln("warning:", err)
		}
	}

	return server.New(svc, cfg.Server.Addr, cfg.Server.NarrativeRate).Run(ctx, cfg.Server.ShutdownTimeout)
}
