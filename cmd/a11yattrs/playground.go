package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riceharvest/a11yutils/internal/tui"
)

func newPlaygroundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Interactively combine patterns and watch the merged attributes change",
		Args:  cobra.NoArgs,
		RunE:  runPlayground,
	}
}

func runPlayground(cmd *cobra.Command, _ []string) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return newCommandError("start playground", "checking terminal", errors.New("stdin and stdout must be a terminal"), "Run the playground from an interactive shell, or use 'a11yattrs render' for scripted output.")
	}

	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run playground: %w", err)
	}
	return nil
}
