package cmd

import (
	"fmt"
	"os"

	"github.com/Yates-Labs/floriography/internal/config"
	"github.com/Yates-Labs/floriography/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	datasetFlag  string
	logLevelFlag string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "floriography",
	Short: "Floriography - Language of Flowers lookup",
	Long: `Floriography looks up what flowers mean in the Victorian language of flowers.

It loads a Color/Flower/Meaning table, answers flower-to-meaning and
meaning-to-flower queries, explains each pairing with a short generated
narrative, and finds a picture of the flower on the image host.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if datasetFlag != "" {
			cfg.Dataset.Location = datasetFlag
		}
		if logLevelFlag != "" {
			cfg.Log.Level = logLevelFlag
		}
		logging.Init(logging.ParseLevel(cfg.Log.Level))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "Dataset file path or <git-url>#<path> (overrides FLORIOGRAPHY_DATASET)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (overrides FLORIOGRAPHY_LOG_LEVEL)")
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
