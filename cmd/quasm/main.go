// Package main implements the quasm CLI.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quasm/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "quasm",
	Short: "Quantum circuit to OpenQASM3 exporter",
	Long:  `quasm reads circuit description files and exports OpenQASM3 programs`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// configureColor applies the persistent --color flag to the fatih/color
// global switch.
func configureColor(cmd *cobra.Command) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
