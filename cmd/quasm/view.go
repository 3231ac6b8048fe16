package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"quasm/internal/circuitfile"
	"quasm/internal/qasm3"
	"quasm/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <circuit-file>",
	Short: "Browse a circuit and its OpenQASM3 rendering in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  viewExecution,
}

func viewExecution(cmd *cobra.Command, args []string) error {
	configureColor(cmd)

	circ, err := circuitfile.Load(args[0])
	if err != nil {
		return err
	}
	text, err := qasm3.Export(circ)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	model := ui.NewViewerModel(filepath.Base(args[0]), circ, text)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
