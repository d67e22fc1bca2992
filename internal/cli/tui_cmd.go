package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Abre el seguimiento interactivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTracker(app, planFlag(cmd))
		},
	}
}

// runTracker resolves the plan (prompting when several exist) and runs
// the interactive tracker until the user quits.
func runTracker(app *App, plan string) error {
	if plan == "" {
		picked, err := pickPlan(context.Background(), app)
		if err != nil {
			return err
		}
		plan = picked
	}

	model := newTrackerModel(app, plan)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
