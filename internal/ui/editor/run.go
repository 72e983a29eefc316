package editor

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the editor full screen and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	model := New(ctx, opts)
	defer model.Close()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	model.SetSender(program.Send)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
