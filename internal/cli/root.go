package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcastellanos/malla/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Progress service.ProgressService

	// IsInteractive reports whether stdin is attached to a terminal.
	// When true, running malla without a subcommand opens the tracker.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "malla" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "malla",
		Short: "Seguimiento de avance en un plan de estudios",
		Long: `malla carga un plan de estudios (un grafo de materias con
prerrequisitos y correquisitos) y muestra qué paquetes de materias
puedes inscribir conforme completas sus prerrequisitos.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				plan, _ := cmd.Flags().GetString("plan")
				return runTracker(app, plan)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("plan", "", "Nombre del plan activo")

	root.AddCommand(
		newPlanCmd(app),
		newAvailableCmd(app),
		newStartCmd(app),
		newCompleteCmd(app),
		newResetCmd(app),
		newHistoryCmd(app),
		newTuiCmd(app),
	)

	return root
}

// resolvePlan returns the plan to operate on: the --plan flag when given,
// otherwise the only plan in the store. With several plans the flag is
// required.
func resolvePlan(ctx context.Context, app *App, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	infos, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}
	switch len(infos) {
	case 0:
		return "", fmt.Errorf("no hay planes: agrega archivos .json al directorio de planes")
	case 1:
		return infos[0].Name, nil
	default:
		names := make([]string, len(infos))
		for i, info := range infos {
			names[i] = info.Name
		}
		return "", fmt.Errorf("hay varios planes (%s): elige uno con --plan", strings.Join(names, ", "))
	}
}

func planFlag(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("plan")
	return v
}
