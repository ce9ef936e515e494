// Package cli wires the application together and exposes it as cobra
// commands.
package cli

import (
	"github.com/spf13/cobra"

	"docqa/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Question answering over uploaded text documents",
	Long: `docqa answers natural-language questions over uploaded plain-text
documents. Relevant passages are retrieved lexically and forwarded as
grounding context to an external completion service; answers come back
with their evidence chunks and highlight phrases.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
