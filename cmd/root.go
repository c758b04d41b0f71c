package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathcoach",
	Short: "AI math tutoring backend",
	Long:  "MathCoach — backend service that generates math word problems, grades free-text answers, and tracks tutoring sessions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHCOACH_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then MATHCOACH_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
