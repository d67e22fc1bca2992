package cli

import (
	"fmt"
	"os"

	"github.com/rcastellanos/malla/internal/cli/formatter"
	"github.com/rcastellanos/malla/internal/planfile"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Consulta y valida planes de estudio",
	}
	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanValidateCmd(app),
	)
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los planes disponibles",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]formatter.PlanRow, len(infos))
			for i, info := range infos {
				rows[i] = formatter.PlanRow{Name: info.Name, Courses: info.Courses, Credits: info.Credits}
			}
			fmt.Print(formatter.FormatPlanList(rows))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [nombre]",
		Short: "Muestra las materias del plan por semestre",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := planFlag(cmd)
			if len(args) == 1 {
				name = args[0]
			}
			name, err := resolvePlan(cmd.Context(), app, name)
			if err != nil {
				return err
			}
			g, err := app.Plans.LoadGraph(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSemesters(g))
			return nil
		},
	}
}

func newPlanValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <archivo.json>",
		Short: "Valida un archivo de plan antes de usarlo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			records, err := planfile.Parse(data)
			if err != nil {
				return err
			}
			errs := planfile.ValidateRecords(records)
			if len(errs) == 0 {
				fmt.Printf("%s: %d materias, sin problemas\n", args[0], len(records))
				return nil
			}
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  - %v\n", e)
			}
			return fmt.Errorf("%d problemas en %s", len(errs), args[0])
		},
	}
}
