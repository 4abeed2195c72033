// Command simlab compares text-similarity algorithms on a query and a small
// document set from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries state shared by all subcommands.
type cli struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "simlab",
		Short: "Compare text-similarity algorithms side by side",
		Long: `simlab scores a query against a document set with five similarity
methods (jaccard, cosine, tfidf, levenshtein, word_overlap) and ranks the
documents under each method independently.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newCompareCmd(c), newMethodsCmd(c))
	return root
}
