package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.2.0"

// flags holds command-line overrides of the config file.
var flags struct {
	configPath string
	prompt     string
	ignoreCase bool
	top        bool
	bottom     bool
	logFile    string
	debug      bool
}

var rootCmd = &cobra.Command{
	Use:   "slmenu",
	Short: "Single-line terminal menu",
	Long: "slmenu reads lines from stdin, lets you narrow them by typing on one terminal row,\n" +
		"and prints the chosen line (or the typed text) to stdout.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/slmenu/config.yaml)")
	f.StringVarP(&flags.prompt, "prompt", "p", "", "prompt shown left of the input")
	f.BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	f.BoolVarP(&flags.top, "top", "t", false, "draw the menu on the top row")
	f.BoolVarP(&flags.bottom, "bottom", "b", false, "draw the menu on the bottom row")
	f.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&flags.debug, "debug", false, "log at debug level")
	rootCmd.MarkFlagsMutuallyExclusive("top", "bottom")
}
