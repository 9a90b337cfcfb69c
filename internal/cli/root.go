// Package cli wires the tombs commands: local play, the SSH server and
// version reporting.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"tombs/internal/config"
)

var (
	cfgFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "tombs",
	Short: "Tombs of the Ancient Kings, a terminal roguelike",
	Long: `Descend through randomly generated dungeon levels, fight monsters,
collect scrolls and gear, and see how deep you can go.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: tombs.yaml in the user config dir or working dir)")
	rootCmd.PersistentFlags().Int64("seed", 0, "dungeon seed; 0 picks one from the clock")
	_ = v.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

// Execute runs the root command with the process arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteServe runs the serve subcommand, for the dedicated server binary.
func ExecuteServe() {
	rootCmd.SetArgs(append([]string{"serve"}, os.Args[1:]...))
	Execute()
}
