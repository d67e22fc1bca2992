package cli

import (
	"fmt"

	"github.com/rcastellanos/malla/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAvailableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "available",
		Aliases: []string{"disponibles"},
		Short:   "Muestra los paquetes de materias que puedes inscribir",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), app, planFlag(cmd))
			if err != nil {
				return err
			}
			bundles, err := app.Progress.Available(cmd.Context(), plan)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBundles(bundles))
			return nil
		},
	}
}
