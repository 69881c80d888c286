package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/appnotresponding/rumbo/internal/logger"
	"github.com/appnotresponding/rumbo/internal/tui"
)

var errNoTerminal = errors.New("preview needs an interactive terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	var (
		theme string
		chat  bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Launch the interactive sign-up and chat preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNoTerminal
			}

			resolved, err := app.Theme(theme, "")
			if err != nil {
				return err
			}

			screen := tui.ScreenSignUp
			if chat {
				screen = tui.ScreenChat
			}

			app.Logger.Info("launching preview")
			// The program owns the terminal, so nothing may log to it while it runs.
			model := tui.NewModel(tui.Options{
				Theme:    resolved,
				Locale:   app.Locale,
				Registry: app.Registry,
				Logger:   logger.Nop(),
				Screen:   screen,
			})

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				app.Logger.Error(err, "preview failed")
				return fmt.Errorf("failed to run preview: %w", err)
			}

			app.Logger.Info("preview closed")
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme mode: light, dark or auto")
	cmd.Flags().BoolVar(&chat, "chat", false, "Start on the chat screen")

	return cmd
}
