package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <clave>...",
		Short: "Marca materias como cursando",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), app, planFlag(cmd))
			if err != nil {
				return err
			}
			if err := app.Progress.StartCourses(cmd.Context(), plan, args); err != nil {
				return err
			}
			fmt.Printf("Cursando: %v\n", args)
			return nil
		},
	}
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <clave>...",
		Short: "Marca materias como completadas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), app, planFlag(cmd))
			if err != nil {
				return err
			}
			if err := app.Progress.CompleteCourses(cmd.Context(), plan, args); err != nil {
				return err
			}
			fmt.Printf("Completadas: %v\n", args)
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var all bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset [clave]...",
		Short: "Regresa materias a pendiente, o todo el plan con --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), app, planFlag(cmd))
			if err != nil {
				return err
			}

			if all {
				if !yes {
					interactive := app.IsInteractive != nil && app.IsInteractive()
					if !interactive {
						return fmt.Errorf("reset --all borra todo el avance: confirma con --yes")
					}
					ok, err := confirmResetAll(plan)
					if err != nil {
						return err
					}
					if !ok {
						return nil
					}
				}
				if err := app.Progress.ResetAll(cmd.Context(), plan); err != nil {
					return err
				}
				fmt.Printf("Avance de %q reiniciado\n", plan)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("indica claves de materias o usa --all")
			}
			if err := app.Progress.ResetCourses(cmd.Context(), plan, args); err != nil {
				return err
			}
			fmt.Printf("Pendientes: %v\n", args)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Reinicia todas las materias del plan")
	cmd.Flags().BoolVar(&yes, "yes", false, "No pedir confirmación")

	return cmd
}
