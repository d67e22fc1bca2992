package cli

import (
	"fmt"

	"github.com/rcastellanos/malla/internal/cli/formatter"
	"github.com/rcastellanos/malla/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// statusFlag parses an estado value for the --to filter. It accepts the
// numeric wire values as well as the Spanish labels shown in the UI.
type statusFlag struct {
	set bool
	val domain.Status
}

var _ pflag.Value = (*statusFlag)(nil)

func (f *statusFlag) String() string {
	if !f.set {
		return ""
	}
	return f.val.String()
}

func (f *statusFlag) Set(s string) error {
	switch s {
	case "0", "pendiente":
		f.val = domain.StatusNotStarted
	case "1", "cursando":
		f.val = domain.StatusInProgress
	case "2", "completada":
		f.val = domain.StatusCompleted
	default:
		return fmt.Errorf("estado inválido %q (usa 0, 1, 2, pendiente, cursando o completada)", s)
	}
	f.set = true
	return nil
}

func (f *statusFlag) Type() string { return "estado" }

func newHistoryCmd(app *App) *cobra.Command {
	var course string
	var to statusFlag

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Muestra el historial de cambios de estado",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd.Context(), app, planFlag(cmd))
			if err != nil {
				return err
			}

			var entries []*domain.ProgressEntry
			if course != "" {
				entries, err = app.Progress.CourseHistory(cmd.Context(), plan, course)
			} else {
				entries, err = app.Progress.History(cmd.Context(), plan)
			}
			if err != nil {
				return err
			}

			if to.set {
				filtered := entries[:0]
				for _, e := range entries {
					if e.ToStatus == to.val {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			fmt.Print(formatter.FormatHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Filtra por clave de materia")
	cmd.Flags().Var(&to, "to", "Filtra por estado final (0/1/2 o pendiente/cursando/completada)")

	return cmd
}
